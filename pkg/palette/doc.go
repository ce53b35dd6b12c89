// Package palette provides the color values the layout engine works with.
//
// A [Color] is an immutable value stored in cylindrical HCL (hue in
// degrees, chroma, luminance) plus alpha, built on
// github.com/lucasb-eyer/go-colorful. Conversions to display (gamma
// encoded) and linear-light RGB, and their 8-bit encodings, are exposed as
// methods. [Gradient] interpolates between two colors in HCL.
//
// A [Hierarchy] groups colors into ordered stages. The three built-in
// hierarchies drive the three scenes:
//
//   - [HueWheelHierarchy]: white, then the primary, secondary, tertiary
//     and quaternary hue sets, one stage each.
//   - [PeaksHierarchy]: one stage per quaternary hue holding the hue and
//     its tint, shade and tone.
//   - [GradientHierarchy]: four start/end pairs for gradient swatches.
package palette
