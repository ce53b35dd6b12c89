// Package geom holds the small value types shared by every layout
// generator: points and the viewport they are laid out in.
//
// Coordinates are centered and y-up: the origin is the middle of the
// viewport, X grows to the right and Y grows upward. Sinks that draw in
// image space (y-down, origin top-left) convert with [Viewport.ToScreen].
package geom
