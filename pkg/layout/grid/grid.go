// Package grid packs N equal-aspect-ratio items into the column/row count
// that maximizes item area without overflowing the container.
//
// The search generates candidate item widths from both the width constraint
// (n columns sharing the width) and the height constraint (n rows sharing the
// height), then takes the widest candidate whose implied grid holds every
// item. Positions follow a pure index mapping with the last, possibly
// incomplete, row re-centered horizontally.
package grid

import (
	"math"
	"sort"

	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
)

// capacityEps nudges floor division so an exactly filled axis still counts
// its full column/row complement.
const capacityEps = 1e-9

// Grid is a packed uniform layout. The zero value is not useful; construct
// one with Pack.
type Grid struct {
	ItemWidth  float64
	ItemHeight float64
	Rows       int
	Cols       int

	count     int
	container geometry.Dimensions
	gap       float64
}

// Pack finds the densest uniform grid for count items of the given
// height-per-width ratio inside container, honoring gap pixels between items
// and around the outer edge.
//
// count == 0 or a zero container produce a degenerate zero-size 1x1 grid.
func Pack(count int, container geometry.Dimensions, ratio, gap float64) Grid {
	g := Grid{Rows: 1, Cols: 1, count: count, container: container, gap: gap}
	if count <= 0 || container.IsZero() {
		return g
	}
	if ratio <= 0 {
		ratio = geometry.MustParseRatio(geometry.DefaultRatio)
	}

	widths := candidateWidths(count, container, ratio, gap)
	sort.Sort(sort.Reverse(sort.Float64Slice(widths)))

	for _, w := range widths {
		h := w * ratio
		cols := capacity(container.Width, w, gap)
		rows := capacity(container.Height, h, gap)
		if cols < 1 || cols*rows < count {
			continue
		}
		if cols > count {
			cols = count
		}

		// Re-derive the shape from the count so a capacity surplus in one
		// axis does not leave phantom columns.
		rows = (count + cols - 1) / cols
		cols = max(1, (count+rows-1)/rows)
		rows = (count + cols - 1) / cols

		g.ItemWidth = w
		g.ItemHeight = h
		g.Cols = cols
		g.Rows = rows
		return g
	}

	return packSingleColumn(count, container, ratio, gap, g)
}

// candidateWidths generates, for every n in 1..count, the width n columns
// sharing the container width would get (outer and inner gaps removed) and
// the width implied by n rows splitting the height at inner gaps. The
// height-driven family is deliberately optimistic; the capacity check culls
// the members that cannot actually pack count items.
func candidateWidths(count int, container geometry.Dimensions, ratio, gap float64) []float64 {
	widths := make([]float64, 0, 2*count)
	for n := 1; n <= count; n++ {
		if w := (container.Width - gap*float64(n+1)) / float64(n); w > 0 {
			widths = append(widths, w)
		}
		if h := (container.Height - gap*float64(n-1)) / float64(n); h > 0 {
			if w := h / ratio; w > 0 {
				widths = append(widths, w)
			}
		}
	}
	return widths
}

// capacity returns how many items of the given size fit across span with gap
// between items and at both edges.
func capacity(span, item, gap float64) int {
	if item+gap <= 0 {
		return 0
	}
	return int(math.Floor((span-gap)/(item+gap) + capacityEps))
}

// packSingleColumn is the fallback when no candidate supports even one
// column: stack everything vertically and shrink to fit the height.
func packSingleColumn(count int, container geometry.Dimensions, ratio, gap float64, g Grid) Grid {
	w := container.Width - 2*gap
	if w < 0 {
		w = 0
	}
	h := w * ratio

	avail := container.Height - gap*float64(count+1)
	if need := float64(count) * h; need > avail && need > 0 {
		scale := avail / need
		if scale < 0 {
			scale = 0
		}
		w *= scale
		h *= scale
	}

	g.ItemWidth = w
	g.ItemHeight = h
	g.Cols = 1
	g.Rows = count
	return g
}

// Position returns the top-left corner of the item at index. Rows anchor at
// the top inset by gap; each row centers horizontally on the items it
// actually holds, so an incomplete last row sits centered. Indices outside
// [0, count) report the off-screen sentinel.
func (g Grid) Position(index int) geometry.Position {
	if index < 0 || index >= g.count || g.Cols < 1 {
		return geometry.OffscreenPosition
	}

	row := index / g.Cols
	col := index % g.Cols

	inRow := g.Cols
	if first := row * g.Cols; g.count-first < inRow {
		inRow = g.count - first
	}

	rowWidth := float64(inRow)*g.ItemWidth + float64(inRow-1)*g.gap
	left := (g.container.Width-rowWidth)/2 + float64(col)*(g.ItemWidth+g.gap)
	top := g.gap + float64(row)*(g.ItemHeight+g.gap)

	return geometry.Position{Top: top, Left: left}
}

// ItemDimensions returns the uniform cell size.
func (g Grid) ItemDimensions() geometry.Dimensions {
	return geometry.Dimensions{Width: g.ItemWidth, Height: g.ItemHeight}
}
