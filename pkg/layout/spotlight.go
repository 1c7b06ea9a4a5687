package layout

import (
	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
)

// spotlight holds the single placed item of spotlight mode.
type spotlight struct {
	index int
	pos   geometry.Position
	dims  geometry.Dimensions
}

// planSpotlight fits one item into the container inset by the gap. A fill
// ratio occupies the whole inset area; a real ratio is fit and centered.
func planSpotlight(opts Options, defRatio float64) (spotlight, error) {
	s := spotlight{index: 0}
	if i := opts.pinnedAt(); i >= 0 {
		s.index = i
	}

	avail := geometry.Dimensions{
		Width:  opts.Dimensions.Width - 2*opts.Gap,
		Height: opts.Dimensions.Height - 2*opts.Gap,
	}
	if avail.Width < 0 {
		avail.Width = 0
	}
	if avail.Height < 0 {
		avail.Height = 0
	}

	ratio, err := geometry.EffectiveRatio(opts.itemRatioString(s.index), defRatio)
	if err != nil {
		return s, err
	}

	fit := geometry.FitContent(avail, ratio)
	s.dims = geometry.Dimensions{Width: fit.Width, Height: fit.Height}
	s.pos = geometry.Position{
		Top:  opts.Gap + fit.OffsetTop,
		Left: opts.Gap + fit.OffsetLeft,
	}
	return s, nil
}
