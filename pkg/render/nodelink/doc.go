// Package nodelink renders color hierarchies as node-link diagrams.
//
// # Overview
//
// Where the scene sinks draw what a hierarchy looks like once laid out,
// this package shows how it is structured: the scene at the root, one
// node per stage, and one swatch node per color filled with that color.
//
// # Usage
//
// Convert a hierarchy to DOT format, then render to SVG or PNG:
//
//	dot := nodelink.ToDOT("hue-wheel", palette.HueWheelHierarchy(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: When true, color labels include their HCL coordinates
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//
// Colors of one stage share a rank so each stage reads as a row.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering and golang.org/x/image/draw to resample PNG output.
package nodelink
