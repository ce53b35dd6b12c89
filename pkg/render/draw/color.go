package draw

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA is a fill color with four float channels in [0, 1].
type RGBA [4]float32

// NRGBA converts to an 8-bit non-premultiplied color, clamping each channel.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

// Hex returns "#rrggbb".
func (c RGBA) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// Opacity returns the alpha channel clamped to [0, 1].
func (c RGBA) Opacity() float32 {
	return float32(math.Max(0, math.Min(1, float64(c[3]))))
}

func to8(v float32) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
}
