package layout

import (
	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/float"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pinned"
)

// Mode selects the top-level layout family.
type Mode string

// Layout modes. Gallery subsumes the grid, pinned, float and justified
// sub-strategies; spotlight isolates exactly one item.
const (
	ModeGallery   Mode = "gallery"
	ModeSpotlight Mode = "spotlight"
)

// DefaultGap is the inter-tile gap in pixels applied by DefaultOptions.
const DefaultGap = 8.0

// mobileWidth is the container width below which multi-item galleries stretch
// tiles to the container's own aspect ratio instead of the default.
const mobileWidth = 500.0

// Options are the inputs to one layout computation. There is no hidden state:
// two Compute calls with equal Options yield equal Results.
type Options struct {
	// Dimensions is the container size in pixels. A zero container produces a
	// degenerate result rather than an error, so callers mid-resize stay safe.
	Dimensions geometry.Dimensions `json:"dimensions" bson:"dimensions"`

	// Count is the number of participants, including a pinned one.
	Count int `json:"count" bson:"count"`

	// AspectRatio is the default tile ratio as "W:H". Empty means 16:9.
	AspectRatio string `json:"aspect_ratio,omitempty" bson:"aspect_ratio,omitempty"`

	// Gap is the spacing between tiles and container edges, in pixels.
	Gap float64 `json:"gap" bson:"gap"`

	// Mode is gallery or spotlight. Empty means gallery.
	Mode Mode `json:"layout_mode,omitempty" bson:"layout_mode,omitempty"`

	// PinnedIndex designates the main participant. Nil means no pin.
	PinnedIndex *int `json:"pinned_index,omitempty" bson:"pinned_index,omitempty"`

	// OthersPosition is the strip edge in pinned layouts. Empty means right.
	OthersPosition pinned.Side `json:"others_position,omitempty" bson:"others_position,omitempty"`

	// MaxItemsPerPage enables page-based windows; 0 disables them.
	MaxItemsPerPage int `json:"max_items_per_page,omitempty" bson:"max_items_per_page,omitempty"`

	// CurrentPage is the requested page when MaxItemsPerPage is set.
	CurrentPage int `json:"current_page,omitempty" bson:"current_page,omitempty"`

	// MaxVisible caps visible tiles with "+N more" overflow semantics; 0
	// disables the cap. Ignored while MaxItemsPerPage is active.
	MaxVisible int `json:"max_visible,omitempty" bson:"max_visible,omitempty"`

	// CurrentVisiblePage pages through max-visible windows. Past the first
	// page the overflow indicator is suppressed.
	CurrentVisiblePage int `json:"current_visible_page,omitempty" bson:"current_visible_page,omitempty"`

	// ItemAspectRatios overrides the ratio per index. Entries may be "W:H",
	// the "fill"/"auto" sentinel, or empty to inherit the default.
	ItemAspectRatios []string `json:"item_aspect_ratios,omitempty" bson:"item_aspect_ratios,omitempty"`

	// FloatWidth and FloatHeight override the two-person float size when both
	// are positive.
	FloatWidth  float64 `json:"float_width,omitempty" bson:"float_width,omitempty"`
	FloatHeight float64 `json:"float_height,omitempty" bson:"float_height,omitempty"`

	// FloatBreakpoints is the responsive float-size table.
	FloatBreakpoints []float.Breakpoint `json:"float_breakpoints,omitempty" bson:"float_breakpoints,omitempty"`
}

// DefaultOptions returns an Options with the documented defaults filled in.
func DefaultOptions() Options {
	return Options{
		AspectRatio:    geometry.DefaultRatio,
		Gap:            DefaultGap,
		Mode:           ModeGallery,
		OthersPosition: pinned.SideRight,
	}
}

// withDefaults normalizes the zero values Compute treats as "unset". Gap is
// taken as given; use DefaultOptions for the conventional 8px.
func (o Options) withDefaults() Options {
	if o.AspectRatio == "" {
		o.AspectRatio = geometry.DefaultRatio
	}
	if o.Mode == "" {
		o.Mode = ModeGallery
	}
	if o.OthersPosition == "" {
		o.OthersPosition = pinned.SideRight
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.Count < 0 {
		o.Count = 0
	}
	return o
}

// pinnedAt returns the clamped pinned index, or -1 when no pin is set.
func (o Options) pinnedAt() int {
	if o.PinnedIndex == nil {
		return -1
	}
	i := *o.PinnedIndex
	if i < 0 {
		i = 0
	}
	if o.Count > 0 && i >= o.Count {
		i = o.Count - 1
	}
	return i
}

// itemRatioString returns the per-item ratio override for index, or "".
func (o Options) itemRatioString(index int) string {
	if index < 0 || index >= len(o.ItemAspectRatios) {
		return ""
	}
	return o.ItemAspectRatios[index]
}
