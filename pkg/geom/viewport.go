package geom

import (
	"github.com/chewxy/math32"

	"github.com/matzehuels/prismview/pkg/errors"
)

// Viewport is the drawable area a scene is laid out in.
type Viewport struct {
	Width  float32 `json:"width" bson:"width"`
	Height float32 `json:"height" bson:"height"`
}

// Validate checks that both sides are finite and positive.
func (v Viewport) Validate() error {
	if err := errors.ValidateDimension("width", float64(v.Width)); err != nil {
		return err
	}
	return errors.ValidateDimension("height", float64(v.Height))
}

// Min returns the shorter side.
func (v Viewport) Min() float32 { return math32.Min(v.Width, v.Height) }

// Scale returns the viewport with each side multiplied by its factor.
func (v Viewport) Scale(sx, sy float32) Viewport {
	return Viewport{Width: v.Width * sx, Height: v.Height * sy}
}

// ToScreen converts a layout point into y-down image coordinates with the
// origin in the top-left corner.
func (v Viewport) ToScreen(p Point) (x, y float32) {
	return p.X + v.Width/2, v.Height/2 - p.Y
}
