package layout

import (
	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
)

// Export flattens the Result into a serializable Frame: one Tile per
// participant, hidden ones included with their off-screen sentinel. The only
// possible error is a malformed per-item ratio string that the computation
// path never had to parse.
func (r *Result) Export() (frame.Frame, error) {
	f := frame.Frame{
		Mode:        string(r.Mode),
		Width:       r.Width(),
		Height:      r.Height(),
		Gap:         r.opts.Gap,
		Count:       r.opts.Count,
		Rows:        r.Rows,
		Cols:        r.Cols,
		Pagination:  r.Pagination,
		HiddenCount: r.HiddenCount,
	}

	if i := r.FloatIndex(); i > 0 {
		f.FloatIndex = i
		f.FloatDimensions = r.FloatDimensions()
	}

	for i := 0; i < r.opts.Count; i++ {
		pos := r.Position(i)
		dims := r.ItemDimensions(i)
		content, err := r.ItemContentDimensions(i, "")
		if err != nil {
			return frame.Frame{}, err
		}
		f.Tiles = append(f.Tiles, frame.Tile{
			Index:   i,
			Top:     pos.Top,
			Left:    pos.Left,
			Width:   dims.Width,
			Height:  dims.Height,
			Content: content,
			Main:    r.IsMainItem(i),
			Visible: r.IsItemVisible(i),
			Float:   i == r.FloatIndex(),
		})
	}

	return f, nil
}
