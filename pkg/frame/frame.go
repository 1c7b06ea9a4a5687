// Package frame is the serialization format for computed layouts. A Frame is
// the flattened, renderer-facing snapshot of one layout computation: every
// tile's box and flags, the grid shape, and the pagination state, ready for
// JSON artifacts, cache entries, and preset stores.
package frame

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pagination"
)

// Layout modes a Frame can carry.
const (
	ModeGallery   = "gallery"
	ModeSpotlight = "spotlight"
)

// Frame is one serialized layout snapshot.
type Frame struct {
	Mode string `json:"mode" bson:"mode"`

	// Container dimensions and gap the layout was computed for.
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Gap    float64 `json:"gap" bson:"gap"`

	// Grid shape.
	Count int `json:"count" bson:"count"`
	Rows  int `json:"rows" bson:"rows"`
	Cols  int `json:"cols" bson:"cols"`

	Tiles []Tile `json:"tiles,omitempty" bson:"tiles,omitempty"`

	Pagination  pagination.State `json:"pagination" bson:"pagination"`
	HiddenCount int              `json:"hidden_count,omitempty" bson:"hidden_count,omitempty"`

	// FloatIndex is the picture-in-picture tile's index, 0 when the layout
	// has none (index 0 is never a float; it is the full-screen main).
	FloatIndex      int                 `json:"float_index,omitempty" bson:"float_index,omitempty"`
	FloatDimensions geometry.Dimensions `json:"float_dimensions,omitempty" bson:"float_dimensions,omitempty"`
}

// Tile is one participant's box within a Frame. Hidden tiles keep the
// off-screen sentinel position and zero size so consumers can render
// unconditionally.
type Tile struct {
	Index int `json:"index" bson:"index"`

	Top    float64 `json:"top" bson:"top"`
	Left   float64 `json:"left" bson:"left"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Content is the ratio-fit box centered inside the cell.
	Content geometry.ContentFit `json:"content" bson:"content"`

	Main    bool `json:"main,omitempty" bson:"main,omitempty"`
	Visible bool `json:"visible" bson:"visible"`
	Float   bool `json:"float,omitempty" bson:"float,omitempty"`
}

// HasFloat reports whether the frame carries a floating tile.
func (f *Frame) HasFloat() bool { return f.FloatIndex > 0 }

// Marshal serializes a Frame to pretty-printed JSON bytes.
func Marshal(f Frame) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Frame and validates the basics:
// a recognized mode, non-negative dimensions, and one tile per participant.
func Unmarshal(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("unmarshal frame: %w", err)
	}

	if f.Mode == "" {
		f.Mode = ModeGallery
	}
	if f.Mode != ModeGallery && f.Mode != ModeSpotlight {
		return Frame{}, fmt.Errorf("unknown layout mode %q", f.Mode)
	}
	if f.Width < 0 || f.Height < 0 {
		return Frame{}, fmt.Errorf("negative frame dimensions %gx%g", f.Width, f.Height)
	}
	if f.Count < 0 {
		return Frame{}, fmt.Errorf("negative tile count %d", f.Count)
	}
	if f.Count > 0 && len(f.Tiles) != f.Count {
		return Frame{}, fmt.Errorf("frame has %d tiles for %d participants", len(f.Tiles), f.Count)
	}

	return f, nil
}

// WriteFile writes a Frame to a JSON file.
func WriteFile(f Frame, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Frame from a JSON file.
func ReadFile(path string) (Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Frame{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
