// Package geometry provides the primitive value types and aspect-ratio math
// shared by every layout planner.
//
// All coordinates are in pixels. Positions are absolute relative to the
// container origin (top-left). Planners that hide an item report the
// OffscreenPosition sentinel instead of omitting the item, so callers can
// read a position for any index without bounds checking.
package geometry

// Dimensions is a non-negative width/height pair, used for both containers
// and individual cells.
type Dimensions struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// IsZero returns true if either dimension is zero or negative.
// A container mid-resize can momentarily report 0x0; planners treat that as
// a degenerate (all-zero) layout rather than an error.
func (d Dimensions) IsZero() bool {
	return d.Width <= 0 || d.Height <= 0
}

// IsPortrait returns true if the container is taller than it is wide.
func (d Dimensions) IsPortrait() bool {
	return d.Height > d.Width
}

// Ratio returns height/width, or 0 for a zero-width container.
func (d Dimensions) Ratio() float64 {
	if d.Width <= 0 {
		return 0
	}
	return d.Height / d.Width
}

// Position is an absolute top/left offset from the container origin.
type Position struct {
	Top  float64 `json:"top" bson:"top"`
	Left float64 `json:"left" bson:"left"`
}

// Offscreen coordinates mark hidden items (paginated out, beyond the
// visible cap, or out of range). Callers render unconditionally and the
// sentinel keeps hidden tiles far outside any plausible viewport.
const OffscreenCoord = -9999.0

// OffscreenPosition is the sentinel position for hidden items.
var OffscreenPosition = Position{Top: OffscreenCoord, Left: OffscreenCoord}

// IsOffscreen reports whether p is the hidden-item sentinel.
func (p Position) IsOffscreen() bool {
	return p.Top == OffscreenCoord && p.Left == OffscreenCoord
}
