// Package pkg provides the libraries behind prismview, a layout engine
// for color-theory visualizations.
//
// # Overview
//
// prismview turns small color hierarchies (primaries, secondaries,
// tertiaries and so on) into pictures: a hue wheel of concentric rings,
// a grid of tiled "color peaks", and a set of gradient swatches. The pkg
// directory is organized into these areas:
//
//  1. [palette], [geom] - colors, hierarchies and planar geometry
//  2. [render] - generators (grid, tile, ring, gradient) and outputs (sink, nodelink)
//  3. [scene] - the three built-in visualizations
//  4. [pipeline] - orchestration (layout → render) with caching
//  5. [cache], [config], [observability] - infrastructure
//  6. [server] - HTTP API over the pipeline
//
// # Architecture
//
// The typical data flow:
//
//	scene.Kind
//	     ↓
//	[palette] hierarchy
//	     ↓
//	[render] generators → draw.Frame
//	     ↓
//	[render/sink] SVG/PNG/JSON/terminal output
//
// # Quick Start
//
// Build a scene and render it with [render/sink]:
//
//	import (
//	    "github.com/matzehuels/prismview/pkg/geom"
//	    "github.com/matzehuels/prismview/pkg/render/sink"
//	    "github.com/matzehuels/prismview/pkg/scene"
//	)
//
//	frame, err := scene.Build(scene.HueWheel, geom.Viewport{Width: 800, Height: 600})
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(frame)
//
// Or go through the pipeline to get caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), cache.NewDefaultKeyer(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Scene:   "color-peaks",
//	    Formats: []string{"svg", "png"},
//	})
//
// [palette]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/palette
// [geom]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/geom
// [render]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/render/sink
// [scene]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/observability
// [server]: https://pkg.go.dev/github.com/matzehuels/prismview/pkg/server
package pkg
