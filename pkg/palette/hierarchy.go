package palette

import (
	"slices"

	"github.com/matzehuels/prismview/pkg/errors"
)

// Hierarchy is an ordered list of stages, each an ordered list of colors.
type Hierarchy [][]Color

// Validate rejects hierarchies without stages and stages without colors.
func (h Hierarchy) Validate() error {
	if len(h) == 0 {
		return errors.New(errors.ErrCodeInvalidHierarchy, "hierarchy has no stages")
	}
	for i, stage := range h {
		if len(stage) == 0 {
			return errors.New(errors.ErrCodeInvalidHierarchy, "stage %d has no colors", i)
		}
	}
	return nil
}

// ColorCount returns the number of colors across all stages.
func (h Hierarchy) ColorCount() int {
	n := 0
	for _, stage := range h {
		n += len(stage)
	}
	return n
}

// Clone returns a deep copy.
func (h Hierarchy) Clone() Hierarchy {
	out := make(Hierarchy, len(h))
	for i, stage := range h {
		out[i] = slices.Clone(stage)
	}
	return out
}

// HueWheelHierarchy returns white followed by the four hue sets.
func HueWheelHierarchy() Hierarchy {
	return Hierarchy{{White}, Primary, Secondary, Tertiary, Quaternary}.Clone()
}

// Tint mixes c halfway toward white.
func Tint(c Color) Color { return Mix(c, White, 0.5) }

// Shade mixes c halfway toward black.
func Shade(c Color) Color { return Mix(c, Black, 0.5) }

// Tone mixes c halfway toward gray.
func Tone(c Color) Color { return Mix(c, Gray, 0.5) }

// PeaksHierarchy returns one stage per quaternary hue, each holding the
// hue followed by its tint, shade and tone.
func PeaksHierarchy() Hierarchy {
	h := make(Hierarchy, len(Quaternary))
	for i, c := range Quaternary {
		h[i] = []Color{c, Tint(c), Shade(c), Tone(c)}
	}
	return h
}

// GradientHierarchy returns the start/end pairs of the gradient swatches:
// black to each primary, then a full sweep of the hue wheel.
func GradientHierarchy() Hierarchy {
	return Hierarchy{
		{Black, Red},
		{Black, Green},
		{Black, Blue},
		{SphericalHCL(0, 1, 1), SphericalHCL(0.9999, 1, 1)},
	}
}
