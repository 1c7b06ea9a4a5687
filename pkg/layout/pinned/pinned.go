// Package pinned partitions the container into a main region for one pinned
// item and a thumbnail strip for everyone else.
//
// The strip hangs on one of the four container edges. Its thickness comes
// from a small search over row (or column) counts that maximizes thumbnail
// area inside empirically tuned bounds; the visible thumbnails are then
// packed as a uniform grid bounded to the strip.
package pinned

import (
	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/grid"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pagination"
)

// Side is the container edge the others strip attaches to.
type Side string

// Strip placements. Portrait containers force SideBottom regardless of the
// requested side.
const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Tuning constants for the strip-thickness search. These are empirically
// calibrated values carried over from visual tuning; changing them changes
// on-screen output.
const (
	// mobileWidth is the container width below which portrait containers use
	// the direct mobile sizing path.
	mobileWidth = 500.0

	// mobileMaxCols caps thumbnail columns on mobile portrait strips.
	mobileMaxCols = 2

	// mobileStripCap / mobileMainMin split the container on mobile: the strip
	// never takes more than 70%, the pin always keeps at least 30%.
	mobileStripCap = 0.7
	mobileMainMin  = 0.3

	// maxSearchRows bounds the row/column search for strip sizing.
	maxSearchRows = 3

	// vStripSearchCap rejects vertical-strip candidates taller than half the
	// container.
	vStripSearchCap = 0.5

	// minThumbHeight rejects strip candidates whose thumbnails collapse below
	// a usable size.
	minThumbHeight = 40.0

	// Vertical strip-height ratio bounds and fallbacks.
	vStripRatioMin     = 0.12
	vStripRatioMax     = 0.45
	vFallbackPortrait  = 0.25
	vFallbackLandscape = 0.2

	// Horizontal strip-width ratio acceptance window and fallback clamp.
	hStripAcceptMin = 0.1
	hStripAcceptMax = 0.4
	hStripClampMin  = 0.12
	hStripClampMax  = 0.35

	// mainAreaBonus weights the horizontal search score toward candidates
	// that leave more room for the pinned item.
	mainAreaBonus = 0.5
)

// Options are the inputs to Plan.
type Options struct {
	Container   geometry.Dimensions
	Gap         float64
	Ratio       float64 // thumbnail height-per-width
	Count       int
	PinnedIndex int
	Side        Side
	MaxVisible  int // cap on visible others, 0 = unlimited
	CurrentPage int // others page when MaxVisible is set
}

// Layout is a computed pin-plus-strip partition.
type Layout struct {
	Container geometry.Dimensions
	Side      Side

	MainPos geometry.Position
	Main    geometry.Dimensions

	StripPos geometry.Position
	Strip    geometry.Dimensions

	// Window is the visible slice of others-relative indices; HiddenCount is
	// the "+N" indicator value (zero while paging past the first page).
	Window      pagination.State
	HiddenCount int

	count       int
	pinnedIndex int
	others      grid.Grid
}

// Plan computes the pinned layout. count == 0 yields an empty layout;
// count == 1 gives the pinned item the whole container.
func Plan(opts Options) Layout {
	l := Layout{
		Container:   opts.Container,
		Side:        effectiveSide(opts.Side, opts.Container),
		count:       opts.Count,
		pinnedIndex: clampIndex(opts.PinnedIndex, opts.Count),
	}
	if opts.Count <= 0 || opts.Container.IsZero() {
		return l
	}
	if opts.Count == 1 {
		l.Main = opts.Container
		l.Window = pagination.All(0)
		return l
	}

	others := opts.Count - 1
	l.Window, l.HiddenCount = othersWindow(others, opts.MaxVisible, opts.CurrentPage)
	visible := l.Window.ItemsOnPage

	ratio := opts.Ratio
	if ratio <= 0 {
		ratio = geometry.MustParseRatio(geometry.DefaultRatio)
	}

	if l.Side == SideTop || l.Side == SideBottom {
		l.placeVertical(opts, ratio, visible)
	} else {
		l.placeHorizontal(opts, ratio, visible)
	}

	l.others = grid.Pack(visible, l.Strip, ratio, opts.Gap)
	return l
}

// effectiveSide forces the strip to the bottom edge in portrait containers,
// where side strips would starve the pinned item of width.
func effectiveSide(side Side, container geometry.Dimensions) Side {
	if container.IsPortrait() {
		return SideBottom
	}
	switch side {
	case SideLeft, SideRight, SideTop, SideBottom:
		return side
	default:
		return SideRight
	}
}

// othersWindow applies max-visible capping with page navigation over the
// others list. The "+N" hidden count only shows on the first page; past it,
// navigation is the affordance that reveals more items.
func othersWindow(others, maxVisible, page int) (pagination.State, int) {
	if maxVisible <= 0 || others <= maxVisible {
		return pagination.All(others), 0
	}
	w := pagination.Paged(others, maxVisible, page)
	hidden := 0
	if w.CurrentPage == 0 {
		hidden = others - maxVisible + 1
	}
	return w, hidden
}

// placeVertical sizes a top or bottom strip.
func (l *Layout) placeVertical(opts Options, ratio float64, visible int) {
	c := opts.Container
	stripRatio := verticalStripRatio(c, opts.Gap, ratio, visible)
	stripH := stripRatio * c.Height

	l.Strip = geometry.Dimensions{Width: c.Width, Height: stripH}
	l.Main = geometry.Dimensions{Width: c.Width, Height: c.Height - stripH}

	if l.Side == SideTop {
		l.StripPos = geometry.Position{}
		l.MainPos = geometry.Position{Top: stripH}
	} else {
		l.MainPos = geometry.Position{}
		l.StripPos = geometry.Position{Top: c.Height - stripH}
	}
}

// verticalStripRatio picks the strip height as a fraction of the container.
func verticalStripRatio(c geometry.Dimensions, gap, ratio float64, visible int) float64 {
	if visible <= 0 {
		return 0
	}

	// Mobile portrait: size the strip directly from thumbnail geometry
	// instead of searching, capped so the pin keeps its minimum share.
	if c.Width < mobileWidth && c.IsPortrait() {
		cols := visible
		if cols > mobileMaxCols {
			cols = mobileMaxCols
		}
		thumbW := (c.Width - gap*float64(cols+1)) / float64(cols)
		thumbH := thumbW * ratio
		rows := (visible + cols - 1) / cols
		stripH := float64(rows)*thumbH + gap*float64(rows+1)

		r := stripH / c.Height
		if r > mobileStripCap {
			r = mobileStripCap
		}
		if r > 1-mobileMainMin {
			r = 1 - mobileMainMin
		}
		return r
	}

	best := -1.0
	bestRatio := 0.0
	for rows := 1; rows <= maxSearchRows; rows++ {
		cols := (visible + rows - 1) / rows
		thumbW := (c.Width - gap*float64(cols+1)) / float64(cols)
		if thumbW <= 0 {
			continue
		}
		thumbH := thumbW * ratio
		stripH := float64(rows)*thumbH + gap*float64(rows+1)
		if stripH > vStripSearchCap*c.Height || thumbH < minThumbHeight {
			continue
		}
		if area := thumbW * thumbH; area > best {
			best = area
			bestRatio = stripH / c.Height
		}
	}

	if best < 0 {
		if c.IsPortrait() {
			return vFallbackPortrait
		}
		return vFallbackLandscape
	}
	return clamp(bestRatio, vStripRatioMin, vStripRatioMax)
}

// placeHorizontal sizes a left or right strip.
func (l *Layout) placeHorizontal(opts Options, ratio float64, visible int) {
	c := opts.Container
	stripRatio := horizontalStripRatio(c, opts.Gap, ratio, visible)
	stripW := stripRatio * c.Width

	l.Strip = geometry.Dimensions{Width: stripW, Height: c.Height}
	l.Main = geometry.Dimensions{Width: c.Width - stripW, Height: c.Height}

	if l.Side == SideLeft {
		l.StripPos = geometry.Position{}
		l.MainPos = geometry.Position{Left: stripW}
	} else {
		l.MainPos = geometry.Position{}
		l.StripPos = geometry.Position{Left: c.Width - stripW}
	}
}

// horizontalStripRatio picks the strip width as a fraction of the container,
// scoring candidates by thumbnail area with a bonus for leaving more main
// area.
func horizontalStripRatio(c geometry.Dimensions, gap, ratio float64, visible int) float64 {
	if visible <= 0 {
		return 0
	}

	best := -1.0
	bestRatio := 0.0
	for cols := 1; cols <= maxSearchRows; cols++ {
		rows := (visible + cols - 1) / cols
		thumbH := (c.Height - gap*float64(rows+1)) / float64(rows)
		if thumbH <= 0 {
			continue
		}
		thumbW := thumbH / ratio
		stripW := float64(cols)*thumbW + gap*float64(cols+1)

		r := stripW / c.Width
		if r < hStripAcceptMin || r > hStripAcceptMax {
			continue
		}
		score := thumbW * thumbH * (1 + mainAreaBonus*(1-r))
		if score > best {
			best = score
			bestRatio = r
		}
	}

	if best < 0 {
		// Single column at natural thumbnail width, clamped into the
		// tolerated band.
		thumbW := (c.Height*0.25)/ratio + 2*gap
		return clamp(thumbW/c.Width, hStripClampMin, hStripClampMax)
	}
	return bestRatio
}

// IsMain reports whether index is the pinned item.
func (l Layout) IsMain(index int) bool {
	return l.count > 0 && index == l.pinnedIndex
}

// othersIndex maps an absolute index to its others-relative index.
func (l Layout) othersIndex(index int) int {
	if index > l.pinnedIndex {
		return index - 1
	}
	return index
}

// IsVisible reports whether the item at index renders on screen.
func (l Layout) IsVisible(index int) bool {
	if index < 0 || index >= l.count {
		return false
	}
	if l.IsMain(index) {
		return true
	}
	return l.Window.Contains(l.othersIndex(index))
}

// Position returns the top-left of the item at index. Hidden and
// out-of-range items report the off-screen sentinel.
func (l Layout) Position(index int) geometry.Position {
	if index < 0 || index >= l.count {
		return geometry.OffscreenPosition
	}
	if l.IsMain(index) {
		return l.MainPos
	}
	rel := l.othersIndex(index)
	if !l.Window.Contains(rel) {
		return geometry.OffscreenPosition
	}
	p := l.others.Position(rel - l.Window.StartIndex)
	return geometry.Position{Top: p.Top + l.StripPos.Top, Left: p.Left + l.StripPos.Left}
}

// ItemDimensions returns the cell size for the item at index: the whole main
// area for the pin, the thumbnail cell for visible others, zero otherwise.
func (l Layout) ItemDimensions(index int) geometry.Dimensions {
	if index < 0 || index >= l.count {
		return geometry.Dimensions{}
	}
	if l.IsMain(index) {
		return l.Main
	}
	if !l.Window.Contains(l.othersIndex(index)) {
		return geometry.Dimensions{}
	}
	return l.others.ItemDimensions()
}

// LastVisibleOthersIndex returns the absolute index occupying the last
// visible strip slot, where callers render the "+N" indicator. Returns -1
// when the strip is empty.
func (l Layout) LastVisibleOthersIndex() int {
	rel := l.Window.LastVisibleIndex()
	if rel < 0 {
		return -1
	}
	if rel >= l.pinnedIndex {
		return rel + 1
	}
	return rel
}

// Rows and Cols expose the strip grid shape.
func (l Layout) Rows() int { return l.others.Rows }

// Cols returns the strip grid column count.
func (l Layout) Cols() int { return l.others.Cols }

func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if count > 0 && i >= count {
		return count - 1
	}
	return i
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
