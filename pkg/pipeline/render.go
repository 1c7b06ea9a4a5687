package pipeline

import (
	"fmt"

	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
	"github.com/thangdevalone/meeting-layout-grid/pkg/render/sink"
)

// renderFrame produces every requested format from the frame.
func renderFrame(f frame.Frame, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = sink.RenderSVG(f, svgOptions(opts)...)
		case FormatJSON:
			data, err := sink.RenderJSON(f)
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}

	return artifacts, nil
}

// svgOptions translates pipeline options into sink options.
func svgOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	if opts.TileFill != "" && opts.TileStroke != "" {
		svgOpts = append(svgOpts, sink.WithTileColors(opts.TileFill, opts.TileStroke))
	}
	if opts.NoLabels {
		svgOpts = append(svgOpts, sink.WithoutLabels())
	}
	if opts.ContentBoxes {
		svgOpts = append(svgOpts, sink.WithContentBoxes())
	}
	return svgOpts
}
