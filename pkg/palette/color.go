package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/prismview/pkg/errors"
)

// AchromaticChroma is the chroma below which a color is treated as having
// no meaningful hue.
const AchromaticChroma = 1e-3

// Spherical HCL bounds. SphericalHCL maps its unit chroma and luminance
// onto these maxima so every hue stays close to the sRGB gamut.
const (
	SphericalMaxChroma    = 0.5
	SphericalMaxLuminance = 0.75
)

// Color is an immutable color value. The zero value is transparent black.
type Color struct {
	h, c, l float64 // HCL, hue in degrees [0, 360)
	a       float64
}

// HCL returns an opaque color from hue (degrees), chroma and luminance.
func HCL(h, c, l float64) Color {
	return Color{h: normHue(h), c: c, l: l, a: 1}
}

// SphericalHCL returns an opaque color from hue in turns and chroma and
// luminance in [0, 1].
func SphericalHCL(h, c, l float64) Color {
	return HCL(h*360, clamp01(c)*SphericalMaxChroma, clamp01(l)*SphericalMaxLuminance)
}

// FromRGB returns a color from display (gamma-encoded) RGBA channels in [0, 1].
func FromRGB(r, g, b, a float64) Color {
	return FromColorful(colorful.Color{R: r, G: g, B: b}, a)
}

// FromColorful converts a go-colorful color with the given alpha.
func FromColorful(c colorful.Color, alpha float64) Color {
	h, ch, l := c.Hcl()
	return Color{h: normHue(h), c: ch, l: l, a: clamp01(alpha)}
}

// ParseHex parses "#rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", s)
	}
	return FromColorful(c, 1), nil
}

// Hue returns the hue in degrees.
func (c Color) Hue() float64 { return c.h }

// Chroma returns the HCL chroma.
func (c Color) Chroma() float64 { return c.c }

// Luminance returns the HCL luminance.
func (c Color) Luminance() float64 { return c.l }

// Alpha returns the alpha channel in [0, 1].
func (c Color) Alpha() float64 { return c.a }

// IsAchromatic reports whether the color has no meaningful hue.
func (c Color) IsAchromatic() bool { return c.c < AchromaticChroma }

// Colorful returns the display color, clamped to the sRGB gamut.
func (c Color) Colorful() colorful.Color {
	return colorful.Hcl(c.h, c.c, c.l).Clamped()
}

// RGB returns display (gamma-encoded) RGBA in [0, 1].
func (c Color) RGB() [4]float32 {
	cf := c.Colorful()
	return [4]float32{float32(cf.R), float32(cf.G), float32(cf.B), float32(c.a)}
}

// LinearRGB returns linear-light RGBA in [0, 1].
func (c Color) LinearRGB() [4]float32 {
	r, g, b := c.Colorful().LinearRgb()
	return [4]float32{float32(clamp01(r)), float32(clamp01(g)), float32(clamp01(b)), float32(c.a)}
}

// Bytes returns RGB() rounded to 8 bits per channel.
func (c Color) Bytes() [4]uint8 { return toBytes(c.RGB()) }

// LinearBytes returns LinearRGB() rounded to 8 bits per channel.
func (c Color) LinearBytes() [4]uint8 { return toBytes(c.LinearRGB()) }

// Hex returns the display color as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string { return c.Colorful().Hex() }

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.a < 1 {
		return fmt.Sprintf("%s@%.2f", c.Hex(), c.a)
	}
	return c.Hex()
}

// MarshalText encodes the color as its hex string.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText decodes a hex string produced by MarshalText.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func toBytes(v [4]float32) [4]uint8 {
	var out [4]uint8
	for i, ch := range v {
		out[i] = uint8(math.Round(clamp01(float64(ch)) * 255))
	}
	return out
}

func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
