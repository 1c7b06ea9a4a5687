package geometry

import (
	"math"
	"testing"
)

func TestFitContent(t *testing.T) {
	tests := []struct {
		name  string
		cell  Dimensions
		ratio float64
		want  ContentFit
	}{
		{
			name:  "no ratio returns cell unchanged",
			cell:  Dimensions{Width: 320, Height: 180},
			ratio: 0,
			want:  ContentFit{Width: 320, Height: 180},
		},
		{
			name:  "width first fit in wide cell",
			cell:  Dimensions{Width: 400, Height: 400},
			ratio: 9.0 / 16.0,
			want:  ContentFit{Width: 400, Height: 225, OffsetTop: 87.5},
		},
		{
			name:  "shrinks to height when width-first overflows",
			cell:  Dimensions{Width: 400, Height: 100},
			ratio: 9.0 / 16.0,
			want:  ContentFit{Width: 1600.0 / 9.0, Height: 100, OffsetLeft: (400 - 1600.0/9.0) / 2},
		},
		{
			name:  "exact fit has zero offsets",
			cell:  Dimensions{Width: 160, Height: 90},
			ratio: 9.0 / 16.0,
			want:  ContentFit{Width: 160, Height: 90},
		},
		{
			name:  "zero cell",
			cell:  Dimensions{},
			ratio: 1,
			want:  ContentFit{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitContent(tt.cell, tt.ratio)
			fields := []struct {
				label     string
				got, want float64
			}{
				{"Width", got.Width, tt.want.Width},
				{"Height", got.Height, tt.want.Height},
				{"OffsetTop", got.OffsetTop, tt.want.OffsetTop},
				{"OffsetLeft", got.OffsetLeft, tt.want.OffsetLeft},
			}
			for _, f := range fields {
				if math.Abs(f.got-f.want) > 1e-6 {
					t.Errorf("%s = %v, want %v", f.label, f.got, f.want)
				}
			}
		})
	}
}

func TestFitContentPreservesRatio(t *testing.T) {
	cells := []Dimensions{
		{Width: 100, Height: 700},
		{Width: 700, Height: 100},
		{Width: 333, Height: 333},
	}
	ratios := []float64{9.0 / 16.0, 16.0 / 9.0, 1, 3.0 / 4.0}

	for _, cell := range cells {
		for _, r := range ratios {
			fit := FitContent(cell, r)
			if fit.Width <= 0 || fit.Height <= 0 {
				t.Fatalf("degenerate fit for cell %+v ratio %v", cell, r)
			}
			if got := fit.Height / fit.Width; math.Abs(got-r) > 1e-6 {
				t.Errorf("cell %+v ratio %v: content ratio %v", cell, r, got)
			}
			if fit.Width > cell.Width+1e-9 || fit.Height > cell.Height+1e-9 {
				t.Errorf("cell %+v ratio %v: content overflows cell: %+v", cell, r, fit)
			}
		}
	}
}
