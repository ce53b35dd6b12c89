package scene

import (
	"fmt"
	"slices"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/palette"
	"github.com/matzehuels/prismview/pkg/render/draw"
	"github.com/matzehuels/prismview/pkg/render/gradient"
	"github.com/matzehuels/prismview/pkg/render/grid"
	"github.com/matzehuels/prismview/pkg/render/ring"
	"github.com/matzehuels/prismview/pkg/render/tile"
)

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	metric grid.Metric
}

// WithMetric selects the grid ratio metric for tiled scenes.
func WithMetric(m grid.Metric) Option {
	return func(o *buildOptions) { o.metric = m }
}

// Build lays out the scene's built-in hierarchy.
func Build(k Kind, vp geom.Viewport, opts ...Option) (draw.Frame, error) {
	return BuildWith(k, k.Hierarchy(), vp, opts...)
}

// BuildWith lays out h using the generator of scene k. Layout errors are
// returned with their codes intact.
func BuildWith(k Kind, h palette.Hierarchy, vp geom.Viewport, opts ...Option) (draw.Frame, error) {
	o := buildOptions{metric: grid.MetricTruncated}
	for _, opt := range opts {
		opt(&o)
	}
	if err := vp.Validate(); err != nil {
		return draw.Frame{}, err
	}

	if !slices.Contains(kinds, k) {
		return draw.Frame{}, errors.New(errors.ErrCodeInvalidScene, "unknown scene %q", k)
	}
	if len(h) == 0 {
		return draw.Frame{}, errors.New(errors.ErrCodeInvalidHierarchy, "%s: hierarchy has no stages", k)
	}

	f := draw.Frame{Scene: string(k), Viewport: vp}
	var err error
	switch k {
	case HueWheel:
		err = buildRings(&f, h)
	case ColorPeaks:
		err = buildPeaks(&f, h, o.metric)
	case Gradients:
		err = buildGradients(&f, h)
	}
	if err != nil {
		return draw.Frame{}, fmt.Errorf("%s: %w", k, err)
	}
	return f, nil
}

func buildRings(f *draw.Frame, h palette.Hierarchy) error {
	res, err := ring.Layout(h, f.Viewport)
	if err != nil {
		return err
	}
	f.Meshes = res.Meshes
	f.Instructions = res.Instructions()
	return nil
}

func buildPeaks(f *draw.Frame, h palette.Hierarchy, m grid.Metric) error {
	if err := h.Validate(); err != nil {
		return err
	}
	g := grid.New(f.Viewport, grid.WithMetric(m))
	cells, err := g.Assign(h)
	if err != nil {
		return err
	}
	for _, c := range cells {
		tris, err := tile.Triangulate(c.Tile, c.Colors)
		if err != nil {
			return fmt.Errorf("cell %d,%d: %w", c.Col, c.Row, err)
		}
		for _, t := range tris {
			f.Instructions = append(f.Instructions, draw.TriangleOp(t))
		}
	}
	return nil
}

func buildGradients(f *draw.Frame, h palette.Hierarchy) error {
	if err := h.Validate(); err != nil {
		return err
	}
	rects, err := gradient.Strips(h, f.Viewport)
	if err != nil {
		return err
	}
	for _, r := range rects {
		f.Instructions = append(f.Instructions, draw.RectOp(r))
	}
	return nil
}
