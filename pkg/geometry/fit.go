package geometry

// ContentFit describes the largest ratio-preserving content box inside a
// cell, centered via the offsets.
type ContentFit struct {
	Width      float64 `json:"width" bson:"width"`
	Height     float64 `json:"height" bson:"height"`
	OffsetTop  float64 `json:"offset_top" bson:"offset_top"`
	OffsetLeft float64 `json:"offset_left" bson:"offset_left"`
}

// FitContent scales content into cell while preserving the given
// height-per-width ratio. A non-positive ratio means "no ratio": the cell is
// returned unchanged with zero offsets (the fill sentinel resolves to this).
//
// The fit is width-first: content spans the full cell width unless the
// resulting height overflows, in which case it shrinks to the cell height.
func FitContent(cell Dimensions, ratio float64) ContentFit {
	if ratio <= 0 || cell.IsZero() {
		return ContentFit{Width: cell.Width, Height: cell.Height}
	}

	w := cell.Width
	h := w * ratio
	if h > cell.Height {
		h = cell.Height
		w = h / ratio
	}

	return ContentFit{
		Width:      w,
		Height:     h,
		OffsetTop:  (cell.Height - h) / 2,
		OffsetLeft: (cell.Width - w) / 2,
	}
}

// EffectiveRatio resolves an item's ratio string against a default.
// Returns 0 (no ratio) for fill sentinels, the parsed item ratio when
// present, or the default otherwise. Malformed item strings surface the
// parse error.
func EffectiveRatio(itemRatio string, defaultRatio float64) (float64, error) {
	if itemRatio == "" {
		return defaultRatio, nil
	}
	if IsFillRatio(itemRatio) {
		return 0, nil
	}
	return ParseRatio(itemRatio)
}
