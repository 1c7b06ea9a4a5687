package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestParseRatio(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{
			name:  "widescreen",
			input: "16:9",
			want:  9.0 / 16.0,
		},
		{
			name:  "portrait",
			input: "9:16",
			want:  16.0 / 9.0,
		},
		{
			name:  "square",
			input: "1:1",
			want:  1,
		},
		{
			name:  "whitespace tolerated",
			input: " 4 : 3 ",
			want:  3.0 / 4.0,
		},
		{
			name:    "missing half",
			input:   "16:",
			wantErr: true,
		},
		{
			name:    "no separator",
			input:   "169",
			wantErr: true,
		},
		{
			name:    "non numeric",
			input:   "a:b",
			wantErr: true,
		},
		{
			name:    "zero component",
			input:   "16:0",
			wantErr: true,
		},
		{
			name:    "negative component",
			input:   "-16:9",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRatio(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRatio(%q) expected error, got %v", tt.input, got)
				}
				var ire *InvalidRatioError
				if !errors.As(err, &ire) {
					t.Errorf("expected InvalidRatioError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRatio(%q) error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseRatio(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsFillRatio(t *testing.T) {
	if !IsFillRatio("fill") || !IsFillRatio("auto") {
		t.Error("fill and auto should both be fill sentinels")
	}
	if IsFillRatio("16:9") || IsFillRatio("") {
		t.Error("regular ratios and empty strings are not fill sentinels")
	}
}

func TestEffectiveRatio(t *testing.T) {
	def := MustParseRatio("16:9")

	got, err := EffectiveRatio("", def)
	if err != nil || got != def {
		t.Errorf("empty item ratio should inherit default: got %v, %v", got, err)
	}

	got, err = EffectiveRatio("fill", def)
	if err != nil || got != 0 {
		t.Errorf("fill sentinel should resolve to 0: got %v, %v", got, err)
	}

	got, err = EffectiveRatio("1:2", def)
	if err != nil || math.Abs(got-2) > 1e-9 {
		t.Errorf("explicit ratio should win: got %v, %v", got, err)
	}

	if _, err = EffectiveRatio("bogus", def); err == nil {
		t.Error("malformed item ratio should error")
	}
}
