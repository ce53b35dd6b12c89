package gradient

import (
	"github.com/chewxy/math32"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/palette"
	"github.com/matzehuels/prismview/pkg/render/draw"
)

// Swatch geometry relative to the viewport.
const (
	SwatchWidthRatio  = 1.0 / 2
	SwatchHeightRatio = 1.0 / 8
	// SwatchSpacing is the distance between swatch centers in swatch
	// heights.
	SwatchSpacing = 1.1
	// TopRatio places the first swatch center at this share of the
	// upper half of the viewport.
	TopRatio = 0.5
)

// Strips returns one gradient swatch per stage, stacked downward from
// the upper half of vp. Each stage supplies the start and end colors of
// its swatch. Textures are rasterized at the floored swatch size.
func Strips(h palette.Hierarchy, vp geom.Viewport) ([]draw.TexturedRect, error) {
	size := vp.Scale(SwatchWidthRatio, SwatchHeightRatio)
	top := vp.Height / 2 * TopRatio
	tw, th := int(math32.Floor(size.Width)), int(math32.Floor(size.Height))

	rects := make([]draw.TexturedRect, 0, len(h))
	for i, stage := range h {
		if len(stage) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidHierarchy,
				"gradient %d needs a start and an end color, got %d colors", i, len(stage))
		}
		tex, err := Texture(stage[0], stage[1], tw, th)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "rasterize gradient %d", i)
		}
		rects = append(rects, draw.TexturedRect{
			Width:    size.Width,
			Height:   size.Height,
			Position: geom.Pt(0, top-size.Height*SwatchSpacing*float32(i)),
			Texture:  tex,
		})
	}
	return rects, nil
}
