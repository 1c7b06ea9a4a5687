package sink

import (
	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
)

// RenderJSON exports the frame as a pretty-printed JSON document, the primary
// interchange format for cached layouts and external consumers. The output
// round-trips through [frame.Unmarshal] unchanged.
func RenderJSON(f frame.Frame) ([]byte, error) {
	return frame.Marshal(f)
}
