package frame

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pagination"
)

func sampleFrame() Frame {
	return Frame{
		Mode:   ModeGallery,
		Width:  800,
		Height: 600,
		Gap:    8,
		Count:  2,
		Rows:   1,
		Cols:   2,
		Tiles: []Tile{
			{Index: 0, Top: 8, Left: 8, Width: 384, Height: 216, Visible: true},
			{Index: 1, Top: 8, Left: 400, Width: 384, Height: 216, Visible: true},
		},
		Pagination: pagination.All(2),
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	f := sampleFrame()
	data, err := Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Count != f.Count || len(got.Tiles) != len(f.Tiles) {
		t.Errorf("round trip lost tiles: %+v", got)
	}
	if got.Tiles[1].Left != 400 {
		t.Errorf("Tiles[1].Left = %v, want 400", got.Tiles[1].Left)
	}
}

func TestUnmarshalValidation(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"not json", "{", "unmarshal frame"},
		{"unknown mode", `{"mode":"mosaic"}`, "unknown layout mode"},
		{"negative dimensions", `{"width":-1,"height":600}`, "negative frame dimensions"},
		{"negative count", `{"count":-3}`, "negative tile count"},
		{"tile count mismatch", `{"count":2,"tiles":[{"index":0}]}`, "2 participants"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalDefaultsMode(t *testing.T) {
	f, err := Unmarshal([]byte(`{"width":100,"height":100}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if f.Mode != ModeGallery {
		t.Errorf("Mode = %q, want gallery default", f.Mode)
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.json")
	f := sampleFrame()
	f.FloatIndex = 1
	f.FloatDimensions = geometry.Dimensions{Width: 180, Height: 240}

	if err := WriteFile(f, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !got.HasFloat() || got.FloatDimensions.Width != 180 {
		t.Errorf("float info lost: %+v", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
