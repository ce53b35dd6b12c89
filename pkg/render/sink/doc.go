// Package sink provides output format renderers for scene frames.
//
// # Overview
//
// A "sink" transforms a computed [draw.Frame] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics, one element per instruction
//   - PNG: Raster image output drawn with fogleman/gg
//   - JSON: Frame export for caching and re-rendering
//   - ANSI: Half-block terminal preview used by `prismview view`
//
// # Painting Order
//
// Every sink paints instructions in ascending Z order ([draw.Frame.SortedByZ]),
// so the hue wheel's outer rings are drawn first and inner rings cover
// them. Fills are painted with the channel values stored in the frame.
//
// # Coordinates
//
// Frames use centered, y-up coordinates. Sinks map them to image space
// with [geom.Viewport.ToScreen].
//
// Basic usage:
//
//	svg := sink.RenderSVG(frame, sink.WithBackground("#202020"))
//	png, err := sink.RenderPNG(frame, sink.WithScale(2))
//	preview := sink.RenderANSI(frame, 80, 24)
//
// [draw.Frame]: github.com/matzehuels/prismview/pkg/render/draw.Frame
// [draw.Frame.SortedByZ]: github.com/matzehuels/prismview/pkg/render/draw.Frame.SortedByZ
// [geom.Viewport.ToScreen]: github.com/matzehuels/prismview/pkg/geom.Viewport.ToScreen
package sink
