package sink

import (
	"github.com/matzehuels/prismview/pkg/render/draw"
)

// RenderJSON exports the frame as pretty-printed JSON. The output can be
// read back with [draw.UnmarshalFrame] and rendered again by any sink.
func RenderJSON(f draw.Frame) ([]byte, error) {
	return draw.MarshalFrame(f)
}
