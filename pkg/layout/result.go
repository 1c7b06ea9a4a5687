package layout

import (
	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/float"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/grid"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/justified"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pagination"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pinned"
)

// kind is the strategy Compute selected.
type kind int

const (
	kindEmpty kind = iota
	kindSpotlight
	kindPinned
	kindFloat
	kindUniform
	kindJustified
)

// Result is one computed layout snapshot. It is immutable; callers query it
// per index and recompute when inputs change. Indices outside the visible
// range answer with the off-screen sentinel and zero size, never an error.
type Result struct {
	Mode Mode

	// Rows and Cols describe the grid shape: the uniform grid itself, the
	// strip grid in pinned layouts, or rows and the widest row for justified.
	Rows, Cols int

	// Pagination is the visible window. In pinned layouts it covers the
	// others list (pin excluded); elsewhere it covers all items.
	Pagination pagination.State

	// HiddenCount is the "+N more" indicator value, 0 when nothing is hidden.
	HiddenCount int

	kind     kind
	defRatio float64
	opts     Options

	grid grid.Grid
	pin  *pinned.Layout
	just *justified.Layout
	two  *float.Layout
	spot spotlight
}

// Width is the container width the layout was computed for.
func (r *Result) Width() float64 { return r.opts.Dimensions.Width }

// Height is the container height the layout was computed for.
func (r *Result) Height() float64 { return r.opts.Dimensions.Height }

// Count is the total participant count, visible or not.
func (r *Result) Count() int { return r.opts.Count }

// Position returns the top-left corner of the tile at index. Hidden or
// out-of-range indices report the off-screen sentinel. The two-person float
// tile answers with its default bottom-right resting spot; interactive
// callers reposition it through geometry.NearestCorner and CornerPosition.
func (r *Result) Position(index int) geometry.Position {
	if index < 0 || index >= r.opts.Count {
		return geometry.OffscreenPosition
	}
	switch r.kind {
	case kindSpotlight:
		if index == r.spot.index {
			return r.spot.pos
		}
	case kindPinned:
		return r.pin.Position(index)
	case kindFloat:
		if index == 0 {
			return geometry.Position{}
		}
		return geometry.CornerPosition(
			geometry.CornerBottomRight, r.opts.Dimensions, r.two.Float, r.opts.Gap)
	case kindUniform:
		if r.Pagination.Contains(index) {
			return r.grid.Position(index - r.Pagination.StartIndex)
		}
	case kindJustified:
		return r.just.Position(index)
	}
	return geometry.OffscreenPosition
}

// ItemDimensions returns the cell size of the tile at index, zero when the
// tile is hidden or out of range.
func (r *Result) ItemDimensions(index int) geometry.Dimensions {
	if index < 0 || index >= r.opts.Count {
		return geometry.Dimensions{}
	}
	switch r.kind {
	case kindSpotlight:
		if index == r.spot.index {
			return r.spot.dims
		}
	case kindPinned:
		return r.pin.ItemDimensions(index)
	case kindFloat:
		if index == 0 {
			return r.opts.Dimensions
		}
		return r.two.Float
	case kindUniform:
		if r.Pagination.Contains(index) {
			return r.grid.ItemDimensions()
		}
	case kindJustified:
		return r.just.ItemDimensions(index)
	}
	return geometry.Dimensions{}
}

// ItemContentDimensions fits ratio-aware content into the tile's cell. An
// explicit ratio wins over the item's configured ratio, which wins over the
// default. A malformed ratio string is the only possible error.
func (r *Result) ItemContentDimensions(index int, ratio string) (geometry.ContentFit, error) {
	cell := r.ItemDimensions(index)
	if ratio == "" {
		ratio = r.opts.itemRatioString(index)
	}
	eff, err := geometry.EffectiveRatio(ratio, r.defRatio)
	if err != nil {
		return geometry.ContentFit{}, err
	}
	return geometry.FitContent(cell, eff), nil
}

// IsMainItem reports whether index is the featured participant: the pin, the
// spotlit item, or the full-screen half of a two-person call.
func (r *Result) IsMainItem(index int) bool {
	if index < 0 || index >= r.opts.Count {
		return false
	}
	switch r.kind {
	case kindSpotlight:
		return index == r.spot.index
	case kindPinned:
		return r.pin.IsMain(index)
	case kindFloat:
		return index == 0
	}
	return false
}

// IsItemVisible reports whether the tile at index renders on screen.
func (r *Result) IsItemVisible(index int) bool {
	if index < 0 || index >= r.opts.Count {
		return false
	}
	switch r.kind {
	case kindSpotlight:
		return index == r.spot.index
	case kindPinned:
		return r.pin.IsVisible(index)
	case kindFloat:
		return true
	case kindUniform:
		return r.Pagination.Contains(index)
	case kindJustified:
		return r.just.IsVisible(index)
	}
	return false
}

// LastVisibleOthersIndex is the absolute index of the final visible slot,
// where callers draw the "+N more" indicator. Returns -1 when no slot
// qualifies.
func (r *Result) LastVisibleOthersIndex() int {
	switch r.kind {
	case kindPinned:
		return r.pin.LastVisibleOthersIndex()
	case kindUniform, kindJustified:
		return r.Pagination.LastVisibleIndex()
	}
	return -1
}

// FloatIndex is the index of the floating picture-in-picture tile, or -1
// when the layout has none.
func (r *Result) FloatIndex() int {
	if r.kind == kindFloat {
		return r.two.FloatIndex
	}
	return -1
}

// FloatDimensions is the floating tile's size, zero when FloatIndex is -1.
func (r *Result) FloatDimensions() geometry.Dimensions {
	if r.kind == kindFloat {
		return r.two.Float
	}
	return geometry.Dimensions{}
}
