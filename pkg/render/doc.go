// Package render groups the layout generators and output renderers that
// turn color hierarchies into pictures.
//
// # Overview
//
// Rendering happens in two steps. Generators compute geometry from a
// color hierarchy and a viewport; sinks turn that geometry into files.
// The [draw] subpackage is the contract between them.
//
// Generators (pure, synchronous):
//   - [grid]: aspect-ratio-driven partitioning of the viewport into cells
//   - [tile]: triangle fans splitting a cell into up to four colors
//   - [ring]: concentric rings of circular sectors sharing one mesh per ring
//   - [gradient]: RGBA8 gradient textures and their swatch layout
//
// Outputs:
//   - [sink]: SVG, PNG, JSON and terminal previews of a [draw.Frame]
//   - [nodelink]: Graphviz diagrams of a hierarchy's structure
//
// The scene package wires generators to scenes; most callers start there:
//
//	frame, err := scene.Build(scene.ColorPeaks, viewport)
//	svg := sink.RenderSVG(frame)
//
// [draw]: github.com/matzehuels/prismview/pkg/render/draw
// [draw.Frame]: github.com/matzehuels/prismview/pkg/render/draw.Frame
// [grid]: github.com/matzehuels/prismview/pkg/render/grid
// [tile]: github.com/matzehuels/prismview/pkg/render/tile
// [ring]: github.com/matzehuels/prismview/pkg/render/ring
// [gradient]: github.com/matzehuels/prismview/pkg/render/gradient
// [sink]: github.com/matzehuels/prismview/pkg/render/sink
// [nodelink]: github.com/matzehuels/prismview/pkg/render/nodelink
package render
