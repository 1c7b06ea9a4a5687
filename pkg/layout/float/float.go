// Package float computes the two-person "speaker plus floating self-view"
// layout: item 0 fills the container edge to edge and item 1 becomes a
// floating overlay sized from a responsive breakpoint table.
//
// Only the float's size is decided here. Its resting position is the
// geometry.NearestCorner / CornerPosition pair's job once the rendering
// layer knows where the user last dragged it.
package float

import (
	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
)

// Legacy float sizes used when no breakpoint table or explicit override is
// configured.
const (
	legacyNarrowWidth = 500.0

	legacySmallW = 130.0
	legacySmallH = 175.0
	legacyLargeW = 180.0
	legacyLargeH = 240.0
)

// Breakpoint is one row of the responsive float-size table.
type Breakpoint struct {
	MinWidth float64 `json:"min_width" toml:"min_width" bson:"min_width"`
	Width    float64 `json:"width" toml:"width" bson:"width"`
	Height   float64 `json:"height" toml:"height" bson:"height"`
}

// Options are the inputs to Plan.
type Options struct {
	Container geometry.Dimensions

	// Explicit size override; both must be positive to take effect.
	Width, Height float64

	// Breakpoints is consulted when no override is set.
	Breakpoints []Breakpoint
}

// Layout is the computed two-person arrangement.
type Layout struct {
	Container geometry.Dimensions

	// FloatIndex is always 1: the second participant floats.
	FloatIndex int
	Float      geometry.Dimensions
}

// Plan computes the layout for exactly two items. Size resolution order:
// explicit override, breakpoint table, legacy width-based defaults.
func Plan(opts Options) Layout {
	l := Layout{Container: opts.Container, FloatIndex: 1}
	if opts.Container.IsZero() {
		return l
	}

	switch {
	case opts.Width > 0 && opts.Height > 0:
		l.Float = geometry.Dimensions{Width: opts.Width, Height: opts.Height}
	case len(opts.Breakpoints) > 0:
		l.Float = ResolveSize(opts.Container.Width, opts.Breakpoints)
	case opts.Container.Width < legacyNarrowWidth:
		l.Float = geometry.Dimensions{Width: legacySmallW, Height: legacySmallH}
	default:
		l.Float = geometry.Dimensions{Width: legacyLargeW, Height: legacyLargeH}
	}
	return l
}

// ResolveSize picks the breakpoint with the greatest MinWidth not exceeding
// containerWidth. Below every breakpoint, the smallest-MinWidth entry is the
// fallback.
func ResolveSize(containerWidth float64, table []Breakpoint) geometry.Dimensions {
	var match *Breakpoint
	var smallest *Breakpoint

	for i := range table {
		bp := &table[i]
		if smallest == nil || bp.MinWidth < smallest.MinWidth {
			smallest = bp
		}
		if bp.MinWidth <= containerWidth && (match == nil || bp.MinWidth > match.MinWidth) {
			match = bp
		}
	}

	if match == nil {
		match = smallest
	}
	if match == nil {
		return geometry.Dimensions{}
	}
	return geometry.Dimensions{Width: match.Width, Height: match.Height}
}

// MainPosition is where item 0 sits: the container origin, edge to edge.
func (l Layout) MainPosition() geometry.Position { return geometry.Position{} }

// MainDimensions is item 0's size: the full container, gap ignored.
func (l Layout) MainDimensions() geometry.Dimensions { return l.Container }
