// Package sink turns a computed [frame.Frame] into output artifacts.
//
// A "sink" is a pure function from frame to bytes. Two formats exist:
//
//   - SVG: a visual proof of the layout, one rectangle per visible tile,
//     with optional content boxes and index labels and a "+N more" badge on
//     the last visible slot.
//   - JSON: the frame itself as a pretty-printed interchange document.
//
// Basic usage:
//
//	svg := sink.RenderSVG(f,
//	    sink.WithContentBoxes(),
//	    sink.WithTileColors("#1f6feb", "#388bfd"),
//	)
//
// To add a new format, write RenderFoo(f frame.Frame, opts ...FooOption)
// ([]byte, error) with its own option type and register it in
// internal/cli/render.go.
//
// [frame.Frame]: github.com/thangdevalone/meeting-layout-grid/pkg/frame.Frame
package sink
