// Package scene names the three visualizations and turns a scene's color
// hierarchy into a renderable draw.Frame.
//
// The generators in pkg/render/{grid,tile,ring,gradient} are pure
// functions; this package is the adapter that runs the right generator
// for a scene and collects its output into a frame:
//
//	frame, err := scene.Build(scene.HueWheel, geom.Viewport{Width: 800, Height: 600})
//
// [Cycler] keeps the "current scene" state used by interactive viewers.
package scene

import (
	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/palette"
)

// Kind identifies a visualization.
type Kind string

const (
	HueWheel   Kind = "hue-wheel"
	ColorPeaks Kind = "color-peaks"
	Gradients  Kind = "gradients"
)

var kinds = []Kind{HueWheel, ColorPeaks, Gradients}

// All returns every scene in cycling order.
func All() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Parse resolves a scene name.
func Parse(name string) (Kind, error) {
	if err := errors.ValidateSceneName(name); err != nil {
		return "", err
	}
	for _, k := range kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidScene,
		"unknown scene %q (available: %s, %s, %s)", name, HueWheel, ColorPeaks, Gradients)
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// Hierarchy returns the built-in color hierarchy of the scene.
func (k Kind) Hierarchy() palette.Hierarchy {
	switch k {
	case HueWheel:
		return palette.HueWheelHierarchy()
	case ColorPeaks:
		return palette.PeaksHierarchy()
	case Gradients:
		return palette.GradientHierarchy()
	}
	return nil
}

// Title returns a human-readable name.
func (k Kind) Title() string {
	switch k {
	case HueWheel:
		return "Hue Wheel"
	case ColorPeaks:
		return "Color Peaks"
	case Gradients:
		return "Gradients"
	}
	return string(k)
}

// Description summarizes what the scene draws.
func (k Kind) Description() string {
	switch k {
	case HueWheel:
		return "concentric rings of primary to quaternary hues"
	case ColorPeaks:
		return "24 tiles of hue, tint, shade and tone triangles"
	case Gradients:
		return "gradient swatches from black and around the hue wheel"
	}
	return ""
}
