// Package justified packs items with heterogeneous aspect ratios into rows
// that all span the container width.
//
// The packer searches row counts for the one whose natural (ratio-preserving)
// total height lands closest to the available height, then applies a single
// uniform scale to the whole arrangement. Scaling width and height together
// keeps every item's individual aspect ratio exact while rows shrink to fit.
package justified

import (
	"math"

	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pagination"
)

// rowSearchFactor bounds the row-count search at ceil(sqrt(n) * factor).
const rowSearchFactor = 2.5

// Options are the inputs to Plan.
type Options struct {
	Container geometry.Dimensions
	Gap       float64

	// Ratios holds one height-per-width ratio per item, index-aligned with
	// the caller's item list.
	Ratios []float64

	// Pagination window settings, identical to the engine-level semantics.
	PageSize    int
	CurrentPage int
	MaxVisible  int
}

// Item is one placed tile.
type Item struct {
	Position geometry.Position
	Size     geometry.Dimensions
}

// Layout is a computed justified arrangement over the visible subset.
type Layout struct {
	Container geometry.Dimensions
	Rows      int
	Window    pagination.State
	Scale     float64

	items []Item // visible-relative
	count int
}

// Plan computes the justified layout. Items outside the visible window (and
// out-of-range indices) resolve to the off-screen sentinel through the
// accessors.
func Plan(opts Options) Layout {
	count := len(opts.Ratios)
	l := Layout{Container: opts.Container, Rows: 1, Scale: 1, count: count}
	l.Window = pagination.Plan(count, opts.PageSize, opts.CurrentPage, opts.MaxVisible)

	if count == 0 || opts.Container.IsZero() {
		return l
	}

	visible := opts.Ratios[l.Window.StartIndex:l.Window.EndIndex]
	n := len(visible)
	if n == 0 {
		return l
	}

	// width-per-height factors; fill/zero ratios fall back to 16:9 so a lone
	// stretch item cannot blow up a row.
	wph := make([]float64, n)
	for i, r := range visible {
		if r <= 0 {
			r = geometry.MustParseRatio(geometry.DefaultRatio)
		}
		wph[i] = 1 / r
	}

	gap := opts.Gap
	availW := opts.Container.Width - 2*gap
	availH := opts.Container.Height - 2*gap
	if availW <= 0 || availH <= 0 {
		return l
	}

	rows, rowHeights := searchRows(wph, availW, availH, gap)
	l.Rows = rows

	// One global scale keeps every ratio exact while fitting the height.
	natural := totalHeight(rowHeights, gap)
	scale := 1.0
	if natural > availH {
		scale = availH / natural
	}
	l.Scale = scale

	l.items = place(wph, rowHeights, rows, opts.Container, gap, scale)
	return l
}

// searchRows picks the row count whose natural height tracks the available
// height closest. Natural height grows with the row count, so the search
// stops at the first crossing; the optimum is that count or the one before.
func searchRows(wph []float64, availW, availH, gap float64) (int, []float64) {
	n := len(wph)
	maxRows := int(math.Ceil(math.Sqrt(float64(n)) * rowSearchFactor))
	if maxRows > n {
		maxRows = n
	}

	bestRows := 1
	bestDiff := math.Inf(1)
	var bestHeights []float64

	for rows := 1; rows <= maxRows; rows++ {
		heights := rowHeights(wph, rows, availW)
		natural := totalHeight(heights, gap)
		diff := math.Abs(natural - availH)
		if diff < bestDiff {
			bestDiff = diff
			bestRows = rows
			bestHeights = heights
		}
		if natural > availH {
			break
		}
	}
	return bestRows, bestHeights
}

// rowHeights distributes the items evenly over rows and returns each row's
// natural height: the height at which the row's items exactly span availW.
func rowHeights(wph []float64, rows int, availW float64) []float64 {
	n := len(wph)
	base := n / rows
	extra := n % rows

	heights := make([]float64, rows)
	idx := 0
	for r := 0; r < rows; r++ {
		size := base
		if r < extra {
			size++
		}
		var sum float64
		for i := 0; i < size; i++ {
			sum += wph[idx]
			idx++
		}
		if sum > 0 {
			heights[r] = availW / sum
		}
	}
	return heights
}

func totalHeight(heights []float64, gap float64) float64 {
	var total float64
	for _, h := range heights {
		total += h
	}
	return total + gap*float64(len(heights)-1)
}

// place computes the final item boxes: rows centered horizontally in any
// leftover width, the whole block centered vertically in leftover height.
func place(wph []float64, heights []float64, rows int, container geometry.Dimensions, gap, scale float64) []Item {
	n := len(wph)
	base := n / rows
	extra := n % rows

	blockH := totalHeight(heights, gap) * scale
	top := gap + (container.Height-2*gap-blockH)/2

	items := make([]Item, 0, n)
	idx := 0
	for r := 0; r < rows; r++ {
		size := base
		if r < extra {
			size++
		}
		h := heights[r] * scale

		var rowW float64
		for i := 0; i < size; i++ {
			rowW += wph[idx+i] * h
		}
		rowW += gap * float64(size-1)

		left := (container.Width - rowW) / 2
		for i := 0; i < size; i++ {
			w := wph[idx] * h
			items = append(items, Item{
				Position: geometry.Position{Top: top, Left: left},
				Size:     geometry.Dimensions{Width: w, Height: h},
			})
			left += w + gap
			idx++
		}
		top += h + gap
	}
	return items
}

// IsVisible reports whether the item at the absolute index renders.
func (l Layout) IsVisible(index int) bool {
	if index < 0 || index >= l.count || !l.Window.Contains(index) {
		return false
	}
	return index-l.Window.StartIndex < len(l.items)
}

// Position returns the top-left of the item at the absolute index.
func (l Layout) Position(index int) geometry.Position {
	if !l.IsVisible(index) {
		return geometry.OffscreenPosition
	}
	return l.items[index-l.Window.StartIndex].Position
}

// ItemDimensions returns the box size for the item at the absolute index.
func (l Layout) ItemDimensions(index int) geometry.Dimensions {
	if !l.IsVisible(index) {
		return geometry.Dimensions{}
	}
	return l.items[index-l.Window.StartIndex].Size
}
