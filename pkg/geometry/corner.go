package geometry

// Corner identifies one of the four container corners a floating tile can
// rest in.
type Corner string

// The four resting corners for a picture-in-picture tile.
const (
	CornerTopLeft     Corner = "top-left"
	CornerTopRight    Corner = "top-right"
	CornerBottomLeft  Corner = "bottom-left"
	CornerBottomRight Corner = "bottom-right"
)

// CornerPosition returns the resting coordinates for an item of the given
// size parked in corner, inset by padding on both axes.
func CornerPosition(corner Corner, container, item Dimensions, padding float64) Position {
	switch corner {
	case CornerTopLeft:
		return Position{Top: padding, Left: padding}
	case CornerTopRight:
		return Position{Top: padding, Left: container.Width - item.Width - padding}
	case CornerBottomLeft:
		return Position{Top: container.Height - item.Height - padding, Left: padding}
	default: // CornerBottomRight
		return Position{
			Top:  container.Height - item.Height - padding,
			Left: container.Width - item.Width - padding,
		}
	}
}

// NearestCorner picks the corner closest to a freely dragged item, judged by
// the item's center point against the container's center. Callers use this to
// decide where the tile snaps back after drag release; the animation itself
// belongs to the rendering layer.
func NearestCorner(current Position, container, item Dimensions) Corner {
	centerX := current.Left + item.Width/2
	centerY := current.Top + item.Height/2

	left := centerX < container.Width/2
	top := centerY < container.Height/2

	switch {
	case top && left:
		return CornerTopLeft
	case top:
		return CornerTopRight
	case left:
		return CornerBottomLeft
	default:
		return CornerBottomRight
	}
}
