package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestComputeOptsConversion(t *testing.T) {
	opts := computeOpts{
		count:      5,
		width:      800,
		height:     600,
		gap:        8,
		ratio:      "4:3",
		mode:       "spotlight",
		pin:        2,
		maxVisible: 4,
		itemRatios: "16:9,1:1",
		refresh:    true,
	}

	p := opts.pipelineOptions()

	if p.Layout.Count != 5 {
		t.Errorf("Count = %d, want 5", p.Layout.Count)
	}
	if p.Layout.Mode != layout.ModeSpotlight {
		t.Errorf("Mode = %q, want spotlight", p.Layout.Mode)
	}
	if p.Layout.PinnedIndex == nil || *p.Layout.PinnedIndex != 2 {
		t.Error("PinnedIndex should be 2")
	}
	if len(p.Layout.ItemAspectRatios) != 2 {
		t.Errorf("ItemAspectRatios = %v, want 2 entries", p.Layout.ItemAspectRatios)
	}
	if !p.Refresh {
		t.Error("Refresh should carry through")
	}
}

func TestComputeOptsNoPin(t *testing.T) {
	opts := computeOpts{count: 3, pin: -1}
	p := opts.pipelineOptions()
	if p.Layout.PinnedIndex != nil {
		t.Error("PinnedIndex should be nil when pin is -1")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		framePath string
		output    string
		format    string
		multi     bool
		want      string
	}{
		{"explicit single", "frame.json", "out.svg", "svg", false, "out.svg"},
		{"derived from frame", "frame.json", "", "svg", false, "frame.svg"},
		{"multi with base", "frame.json", "room", "json", true, "room.json"},
		{"multi without base", "layouts/frame.json", "", "svg", true, "layouts/frame.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.framePath, tt.output, tt.format, tt.multi)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCommandStructure(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"compute": false, "render": false, "preview": false,
		"serve": false, "cache": false, "completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q should be registered", name)
		}
	}
}
