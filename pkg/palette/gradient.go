package palette

// Gradient returns n colors evenly spaced from start to end, both
// included. Hue, chroma, luminance and alpha are interpolated linearly.
// Hue does not wrap around: a gradient from 0° to 359° sweeps the whole
// wheel. An achromatic endpoint borrows the other endpoint's hue so that
// black-to-red stays red instead of sweeping through unrelated hues.
//
// n == 1 yields start alone; n <= 0 yields nil.
func Gradient(start, end Color, n int) []Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Color{start}
	}

	out := make([]Color, n)
	last := float64(n - 1)
	for i := range out {
		out[i] = Mix(start, end, float64(i)/last)
	}
	out[0], out[n-1] = start, end
	return out
}

// Mix returns the color a fraction t of the way from a to b, following
// the same rules as Gradient.
func Mix(a, b Color, t float64) Color {
	h0, h1 := a.h, b.h
	switch {
	case a.IsAchromatic() && !b.IsAchromatic():
		h0 = h1
	case b.IsAchromatic() && !a.IsAchromatic():
		h1 = h0
	}
	return Color{
		h: normHue(lerp(h0, h1, t)),
		c: lerp(a.c, b.c, t),
		l: lerp(a.l, b.l, t),
		a: lerp(a.a, b.a, t),
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
