// Package gradient rasterizes linear color gradients into RGBA8 pixel
// buffers and lays gradient swatches out as a vertical stack.
package gradient

import (
	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/palette"
	"github.com/matzehuels/prismview/pkg/render/draw"
)

// Sampler produces n colors from start to end.
type Sampler func(start, end palette.Color, n int) []palette.Color

// Rasterize fills a width by height RGBA8 buffer with a left-to-right
// gradient sampled by palette.Gradient.
func Rasterize(start, end palette.Color, width, height int) ([]byte, error) {
	return RasterizeWith(palette.Gradient, start, end, width, height)
}

// RasterizeWith is Rasterize with a custom sampler. Column x takes
// sample x encoded with LinearBytes; every row is identical. A sampler
// returning fewer than width colors fails with GRADIENT_UNDERRUN.
func RasterizeWith(sample Sampler, start, end palette.Color, width, height int) ([]byte, error) {
	if width < 0 || height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidViewport,
			"texture size must not be negative, got %dx%d", width, height)
	}

	colors := sample(start, end, width)
	if len(colors) < width {
		return nil, errors.New(errors.ErrCodeGradientUnderrun,
			"sampler returned %d colors for a %d pixel wide texture", len(colors), width)
	}

	stride := width * 4
	pix := make([]byte, stride*height)
	if height == 0 {
		return pix, nil
	}

	row := pix[:stride]
	for x := 0; x < width; x++ {
		b := colors[x].LinearBytes()
		copy(row[x*4:x*4+4], b[:])
	}
	for y := 1; y < height; y++ {
		copy(pix[y*stride:(y+1)*stride], row)
	}
	return pix, nil
}

// Texture wraps Rasterize in a draw.Texture.
func Texture(start, end palette.Color, width, height int) (draw.Texture, error) {
	pix, err := Rasterize(start, end, width, height)
	if err != nil {
		return draw.Texture{}, err
	}
	return draw.Texture{Width: width, Height: height, Pix: pix}, nil
}
