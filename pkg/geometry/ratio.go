package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// Ratio sentinels. An item carrying one of these stretches to fill its cell
// instead of being ratio-fit.
const (
	RatioFill = "fill"
	RatioAuto = "auto"
)

// DefaultRatio is the default tile aspect ratio.
const DefaultRatio = "16:9"

// InvalidRatioError reports an aspect-ratio string that could not be parsed
// into two positive integers. This is the only validation failure the layout
// engine raises; all other malformed inputs degrade to empty layouts.
type InvalidRatioError struct {
	Input string
}

// Error implements the error interface.
func (e *InvalidRatioError) Error() string {
	return fmt.Sprintf("invalid aspect ratio %q: want \"W:H\" with positive integers", e.Input)
}

// IsFillRatio reports whether s is one of the fill sentinels.
func IsFillRatio(s string) bool {
	return s == RatioFill || s == RatioAuto
}

// ParseRatio parses a "W:H" string into a height-per-width factor.
// "16:9" yields 0.5625. Both sides must be positive integers.
func ParseRatio(s string) (float64, error) {
	w, h, err := splitRatio(s)
	if err != nil {
		return 0, err
	}
	return float64(h) / float64(w), nil
}

// MustParseRatio is ParseRatio for compile-time-known constants; it panics
// on malformed input.
func MustParseRatio(s string) float64 {
	r, err := ParseRatio(s)
	if err != nil {
		panic(err)
	}
	return r
}

func splitRatio(s string) (w, h int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, &InvalidRatioError{Input: s}
	}
	w, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || w <= 0 {
		return 0, 0, &InvalidRatioError{Input: s}
	}
	h, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || h <= 0 {
		return 0, 0, &InvalidRatioError{Input: s}
	}
	return w, h, nil
}
