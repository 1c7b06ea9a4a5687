// Package pipeline provides the compute → render pipeline behind the CLI
// and the HTTP service.
//
// Centralizing the two stages here keeps caching and defaulting behavior
// identical across entry points:
//
//  1. Compute: run the layout engine and export a frame
//  2. Render: generate output artifacts (SVG, JSON) from the frame
//
// Each stage is cached by a content hash of its inputs, so a resize storm or
// a repeated API call with the same options never recomputes.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Layout: layout.Options{
//	        Dimensions: geometry.Dimensions{Width: 1280, Height: 720},
//	        Count:      9,
//	    },
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/thangdevalone/meeting-layout-grid/pkg/cache"
	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
)

// Default values shared by CLI and API.
const (
	// DefaultWidth is the default container width in pixels.
	DefaultWidth = 1280.0

	// DefaultHeight is the default container height in pixels.
	DefaultHeight = 720.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout holds the engine inputs.
	Layout layout.Options `json:"layout"`

	// Render options.
	Formats      []string `json:"formats,omitempty"`
	Background   string   `json:"background,omitempty"`
	TileFill     string   `json:"tile_fill,omitempty"`
	TileStroke   string   `json:"tile_stroke,omitempty"`
	NoLabels     bool     `json:"no_labels,omitempty"`
	ContentBoxes bool     `json:"content_boxes,omitempty"`

	// Refresh bypasses cache reads, forcing recomputation.
	Refresh bool `json:"refresh,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Frame is the computed layout snapshot.
	Frame frame.Frame

	// FrameHash is the content hash of the frame.
	FrameHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tiles       int
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ComputeHit bool // Whether the frame came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent: calling it twice has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Layout.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", o.Layout.Count)
	}
	if o.Layout.Dimensions.Width < 0 || o.Layout.Dimensions.Height < 0 {
		return fmt.Errorf("dimensions must be non-negative, got %gx%g",
			o.Layout.Dimensions.Width, o.Layout.Dimensions.Height)
	}

	if o.Layout.Dimensions.IsZero() {
		o.Layout.Dimensions.Width = DefaultWidth
		o.Layout.Dimensions.Height = DefaultHeight
	}
	// An omitted gap means the conventional spacing, not zero.
	if o.Layout.Gap == 0 {
		o.Layout.Gap = layout.DefaultGap
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// OptionsHash is the content hash identifying the layout inputs, used as the
// frame cache key.
func (o *Options) OptionsHash() (string, error) {
	data, err := json.Marshal(o.Layout)
	if err != nil {
		return "", fmt.Errorf("hash layout options: %w", err)
	}
	return cache.Hash(data), nil
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		Background:   o.Background,
		TileFill:     o.TileFill,
		TileStroke:   o.TileStroke,
		Labels:       !o.NoLabels,
		ContentBoxes: o.ContentBoxes,
	}
}
