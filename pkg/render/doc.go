// Package render turns computed layout frames into visual outputs.
//
// # Overview
//
// Rendering is intentionally thin: the layout engine has already decided
// every position and dimension, so a renderer only has to draw tiles. The
// [sink] subpackage provides the output formats:
//
//   - SVG: a schematic drawing of the grid for debugging and documentation
//   - JSON: the frame itself, for clients that do their own drawing
//
// # Usage
//
//	svg := sink.RenderSVG(f, sink.WithBackground("#000000"))
//	data, err := sink.RenderJSON(f)
//
// [sink]: github.com/thangdevalone/meeting-layout-grid/pkg/render/sink
package render
