package sink

import (
	"bytes"
	"fmt"

	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background  string
	fill        string
	stroke      string
	labels      bool
	contentBox  bool
	cornerRound float64
}

// WithBackground sets the container background color.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithTileColors sets the tile fill and stroke colors.
func WithTileColors(fill, stroke string) SVGOption {
	return func(r *svgRenderer) { r.fill = fill; r.stroke = stroke }
}

// WithoutLabels disables the per-tile index labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// WithContentBoxes draws each tile's ratio-fit content box as a dashed inset.
func WithContentBoxes() SVGOption { return func(r *svgRenderer) { r.contentBox = true } }

// WithCornerRadius sets the tile corner rounding in pixels.
func WithCornerRadius(radius float64) SVGOption {
	return func(r *svgRenderer) { r.cornerRound = radius }
}

// RenderSVG draws the frame as a standalone SVG document: one rounded
// rectangle per visible tile, the pinned or spotlit tile with a heavier
// stroke, the floating tile dashed, and a "+N more" badge on the last
// visible slot when the frame hides items. Hidden tiles are skipped; their
// off-screen sentinel has no useful place in a fixed viewBox.
func RenderSVG(f frame.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{
		background:  "#0d1117",
		fill:        "#21262d",
		stroke:      "#484f58",
		labels:      true,
		cornerRound: 6,
	}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		f.Width, f.Height, r.background)

	badge := -1
	if f.HiddenCount > 0 {
		for _, t := range f.Tiles {
			if t.Visible {
				badge = t.Index
			}
		}
	}

	for _, t := range f.Tiles {
		if !t.Visible {
			continue
		}
		r.renderTile(&buf, t, t.Index != badge)
		if t.Index == badge {
			r.renderOverflowBadge(&buf, t, f.HiddenCount)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderTile(buf *bytes.Buffer, t frame.Tile, withLabel bool) {
	strokeWidth := 1.0
	dash := ""
	if t.Main {
		strokeWidth = 2.5
	}
	if t.Float {
		dash = ` stroke-dasharray="6 3"`
	}

	fmt.Fprintf(buf, `  <rect id="tile-%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
		t.Index, t.Left, t.Top, t.Width, t.Height, r.cornerRound, r.fill, r.stroke, strokeWidth, dash)

	if r.contentBox && (t.Content.Width != t.Width || t.Content.Height != t.Height) {
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="0.5" stroke-dasharray="2 2"/>`+"\n",
			t.Left+t.Content.OffsetLeft, t.Top+t.Content.OffsetTop,
			t.Content.Width, t.Content.Height, r.stroke)
	}

	if r.labels && withLabel {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.0f" fill="#8b949e">%d</text>`+"\n",
			t.Left+t.Width/2, t.Top+t.Height/2, labelSize(t), t.Index+1)
	}
}

func (r *svgRenderer) renderOverflowBadge(buf *bytes.Buffer, t frame.Tile, hidden int) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.0f" font-weight="bold" fill="#c9d1d9">+%d</text>`+"\n",
		t.Left+t.Width/2, t.Top+t.Height/2, labelSize(t)*1.4, hidden)
}

func labelSize(t frame.Tile) float64 {
	s := t.Height / 6
	if s < 10 {
		s = 10
	}
	if s > 28 {
		s = 28
	}
	return s
}
