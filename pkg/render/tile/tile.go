// Package tile decomposes rectangular tiles into triangle fans, one
// triangle per color, meeting at the tile center.
package tile

import (
	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/palette"
	"github.com/matzehuels/prismview/pkg/render/draw"
)

// MaxColors is the number of triangles a tile can be split into: one per
// edge.
const MaxColors = 4

// Tile is an axis-aligned rectangle in y-up space, so TopLeft.Y is
// greater than BottomRight.Y.
type Tile struct {
	TopLeft     geom.Point `json:"top_left"`
	BottomRight geom.Point `json:"bottom_right"`
}

// NewFromTopLeft returns the tile with the given top-left corner extending
// w to the right and h downward.
func NewFromTopLeft(x, y, w, h float32) Tile {
	return Tile{TopLeft: geom.Pt(x, y), BottomRight: geom.Pt(x+w, y-h)}
}

// NewFromCenter returns the w by h tile centered on (x, y).
func NewFromCenter(x, y, w, h float32) Tile {
	return NewFromTopLeft(x-w/2, y+h/2, w, h)
}

func (t Tile) TopRight() geom.Point   { return geom.Pt(t.BottomRight.X, t.TopLeft.Y) }
func (t Tile) BottomLeft() geom.Point { return geom.Pt(t.TopLeft.X, t.BottomRight.Y) }
func (t Tile) Width() float32         { return t.BottomRight.X - t.TopLeft.X }
func (t Tile) Height() float32        { return t.TopLeft.Y - t.BottomRight.Y }
func (t Tile) Area() float32          { return t.Width() * t.Height() }

// Center returns the midpoint of the diagonal.
func (t Tile) Center() geom.Point {
	return geom.Pt((t.TopLeft.X+t.BottomRight.X)/2, (t.TopLeft.Y+t.BottomRight.Y)/2)
}

// Corners returns the corners clockwise from the top left.
func (t Tile) Corners() [4]geom.Point {
	return [4]geom.Point{t.TopLeft, t.TopRight(), t.BottomRight, t.BottomLeft()}
}

// Triangulate emits one triangle per color. Color i fills the triangle
// between corner i, corner i+1 (clockwise from the top left, wrapping)
// and the center. Fewer than MaxColors colors leave part of the tile
// uncovered.
func Triangulate(t Tile, colors []palette.Color) ([]draw.Triangle, error) {
	if len(colors) > MaxColors {
		return nil, errors.New(errors.ErrCodeTooManyColors,
			"tile holds at most %d colors, got %d", MaxColors, len(colors))
	}

	corners := t.Corners()
	center := t.Center()
	tris := make([]draw.Triangle, len(colors))
	for i, c := range colors {
		tris[i] = draw.Triangle{
			P0:   corners[i],
			P1:   corners[(i+1)%len(corners)],
			P2:   center,
			Fill: draw.RGBA(c.LinearRGB()),
		}
	}
	return tris, nil
}
