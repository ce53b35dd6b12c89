package pipeline

import (
	"github.com/matzehuels/prismview/pkg/render/draw"
	"github.com/matzehuels/prismview/pkg/render/grid"
	"github.com/matzehuels/prismview/pkg/scene"
)

// GenerateFrame lays out the scene named in opts. Options must already be
// validated for layout.
func GenerateFrame(opts Options) (draw.Frame, error) {
	k, err := scene.Parse(opts.Scene)
	if err != nil {
		return draw.Frame{}, err
	}
	m, err := grid.ParseMetric(opts.Metric)
	if err != nil {
		return draw.Frame{}, err
	}
	return scene.Build(k, opts.Viewport(), scene.WithMetric(m))
}
