package layout

import (
	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/float"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/grid"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/justified"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pagination"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pinned"
)

// Compute runs one layout computation. The only error it returns is a
// malformed aspect-ratio string; every other degenerate input yields a
// degenerate but valid Result.
func Compute(opts Options) (*Result, error) {
	opts = opts.withDefaults()

	defRatio := 0.0
	if !geometry.IsFillRatio(opts.AspectRatio) {
		r, err := geometry.ParseRatio(opts.AspectRatio)
		if err != nil {
			return nil, err
		}
		defRatio = r
	}

	res := &Result{Mode: opts.Mode, opts: opts, defRatio: defRatio}

	if opts.Count == 0 || opts.Dimensions.IsZero() {
		res.kind = kindEmpty
		return res, nil
	}

	if opts.Mode == ModeSpotlight {
		s, err := planSpotlight(opts, defRatio)
		if err != nil {
			return nil, err
		}
		res.kind = kindSpotlight
		res.spot = s
		res.Rows, res.Cols = 1, 1
		return res, nil
	}

	if pin := opts.pinnedAt(); pin >= 0 {
		l := pinned.Plan(pinned.Options{
			Container:   opts.Dimensions,
			Gap:         opts.Gap,
			Ratio:       defRatio,
			Count:       opts.Count,
			PinnedIndex: pin,
			Side:        opts.OthersPosition,
			MaxVisible:  opts.MaxVisible,
			CurrentPage: opts.CurrentVisiblePage,
		})
		res.kind = kindPinned
		res.pin = &l
		res.Rows, res.Cols = l.Rows(), l.Cols()
		res.Pagination = l.Window
		res.HiddenCount = l.HiddenCount
		return res, nil
	}

	if opts.Count == 2 {
		l := float.Plan(float.Options{
			Container:   opts.Dimensions,
			Width:       opts.FloatWidth,
			Height:      opts.FloatHeight,
			Breakpoints: opts.FloatBreakpoints,
		})
		res.kind = kindFloat
		res.two = &l
		res.Rows, res.Cols = 1, 1
		res.Pagination = pagination.All(2)
		return res, nil
	}

	// Small containers stretch tiles to the container's own shape so no space
	// goes unused; this also bypasses the justified packer.
	mobile := opts.Dimensions.Width < mobileWidth && opts.Count > 1
	if mobile {
		defRatio = opts.Dimensions.Ratio()
		res.defRatio = defRatio
	}

	if !mobile {
		mixed, ratios, err := itemRatios(opts, defRatio)
		if err != nil {
			return nil, err
		}
		if mixed {
			l := justified.Plan(justified.Options{
				Container:   opts.Dimensions,
				Gap:         opts.Gap,
				Ratios:      ratios,
				PageSize:    opts.MaxItemsPerPage,
				CurrentPage: opts.CurrentPage,
				MaxVisible:  opts.MaxVisible,
			})
			res.kind = kindJustified
			res.just = &l
			res.Rows = l.Rows
			res.Cols = widestRow(l.Window.ItemsOnPage, l.Rows)
			res.Pagination = l.Window
			res.HiddenCount = l.Window.HiddenCount
			return res, nil
		}
		if len(ratios) > 0 && ratios[0] > 0 {
			// Equal per-item ratios collapse to the shared one.
			defRatio = ratios[0]
			res.defRatio = defRatio
		}
	}

	window := visibleWindow(opts)
	packRatio := defRatio
	if packRatio <= 0 {
		packRatio = opts.Dimensions.Ratio()
	}

	res.kind = kindUniform
	res.grid = grid.Pack(window.ItemsOnPage, opts.Dimensions, packRatio, opts.Gap)
	res.Rows, res.Cols = res.grid.Rows, res.grid.Cols
	res.Pagination = window
	res.HiddenCount = window.HiddenCount
	return res, nil
}

// itemRatios resolves every item's effective ratio and reports whether they
// genuinely differ. Fill and absent entries inherit the default.
func itemRatios(opts Options, defRatio float64) (mixed bool, ratios []float64, err error) {
	if len(opts.ItemAspectRatios) == 0 {
		return false, nil, nil
	}

	ratios = make([]float64, opts.Count)
	for i := range ratios {
		r, err := geometry.EffectiveRatio(opts.itemRatioString(i), defRatio)
		if err != nil {
			return false, nil, err
		}
		if r <= 0 {
			r = defRatio
		}
		ratios[i] = r
	}
	for i := 1; i < len(ratios); i++ {
		if ratios[i] != ratios[0] {
			return true, ratios, nil
		}
	}
	return false, ratios, nil
}

// visibleWindow picks the uniform grid's visible index range. Page-based
// windows win; a max-visible cap pages through fixed windows once the caller
// navigates past the first page, suppressing the overflow indicator.
func visibleWindow(opts Options) pagination.State {
	if opts.MaxItemsPerPage > 0 {
		return pagination.Paged(opts.Count, opts.MaxItemsPerPage, opts.CurrentPage)
	}
	if opts.MaxVisible > 0 && opts.CurrentVisiblePage > 0 {
		return pagination.Paged(opts.Count, opts.MaxVisible, opts.CurrentVisiblePage)
	}
	return pagination.MaxVisible(opts.Count, opts.MaxVisible)
}

// widestRow is the item count of the fullest row under even distribution.
func widestRow(count, rows int) int {
	if rows <= 0 || count <= 0 {
		return 0
	}
	return (count + rows - 1) / rows
}
