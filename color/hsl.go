package color

import "math"

// HSLA is an sRGB color in hue, saturation and lightness form with straight
// alpha. S, L and A are in [0, 1].
type HSLA struct {
	H       Hue
	S, L, A float64
}

// Mix turns the hue along the shorter arc and interpolates the other
// components linearly.
func (c HSLA) Mix(other HSLA, factor float64) HSLA {
	factor = clamp01(factor)
	return HSLA{
		H: c.H.Mix(other.H, factor),
		S: lerp(c.S, other.S, factor),
		L: lerp(c.L, other.L, factor),
		A: lerp(c.A, other.A, factor),
	}
}

// SRGB converts the color to sRGB.
func (c HSLA) SRGB() SRGBA {
	h := c.H.PositiveDegrees() / 360
	s, l := c.S, c.L

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = chroma, x, 0
	case h < 2.0/6:
		r, g, b = x, chroma, 0
	case h < 3.0/6:
		r, g, b = 0, chroma, x
	case h < 4.0/6:
		r, g, b = 0, x, chroma
	case h < 5.0/6:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return SRGBA{R: r + m, G: g + m, B: b + m, A: c.A}
}

// RGBA implements the image/color.Color interface.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	return c.SRGB().RGBA()
}

// HSLA converts the color to hue, saturation and lightness. Greys get a
// hue of 0.
func (c SRGBA) HSLA() HSLA {
	hi := math.Max(c.R, math.Max(c.G, c.B))
	lo := math.Min(c.R, math.Min(c.G, c.B))
	l := (hi + lo) / 2

	if hi == lo {
		return HSLA{L: l, A: c.A}
	}

	d := hi - lo
	s := d / (1 - math.Abs(2*l-1))

	var h float64
	switch hi {
	case c.R:
		h = math.Mod((c.G-c.B)/d, 6)
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}

	return HSLA{H: Hue(h * 60), S: s, L: l, A: c.A}
}
