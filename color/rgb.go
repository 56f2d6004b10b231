package color

import (
	"fmt"
	stdcolor "image/color"
)

// LinRGBA is a color in linear-light RGB with straight alpha. Each
// component is nominally in [0, 1]; values outside that range are kept
// as they are.
//
// Mixing in linear light gives physically correct blends: the midpoint of
// black and white is a mid grey of 0.5 linear, about 0.735 sRGB.
type LinRGBA struct {
	R, G, B, A float64
}

// Mix interpolates component-wise towards other.
func (c LinRGBA) Mix(other LinRGBA, factor float64) LinRGBA {
	factor = clamp01(factor)
	return LinRGBA{
		R: lerp(c.R, other.R, factor),
		G: lerp(c.G, other.G, factor),
		B: lerp(c.B, other.B, factor),
		A: lerp(c.A, other.A, factor),
	}
}

// SRGB encodes the color to sRGB. Alpha stays linear.
func (c LinRGBA) SRGB() SRGBA {
	return SRGBA{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}

// Luma returns the relative luminance using Rec. 709 coefficients.
func (c LinRGBA) Luma() Luma {
	return Luma{Y: 0.2126*c.R + 0.7152*c.G + 0.0722*c.B}
}

// NRGBA converts the color to 8-bit non-premultiplied sRGB.
func (c LinRGBA) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: EncodeByte(c.R),
		G: EncodeByte(c.G),
		B: EncodeByte(c.B),
		A: toByte(c.A),
	}
}

// RGBA implements the image/color.Color interface.
func (c LinRGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// SRGBA is a gamma-encoded sRGB color with straight alpha, components in
// [0, 1]. Mixing happens on the encoded values, the way CSS and most
// design tools blend.
type SRGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque sRGB color.
func RGB(r, g, b float64) SRGBA {
	return SRGBA{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard image/color.Color to SRGBA.
func FromColor(c stdcolor.Color) SRGBA {
	n := stdcolor.NRGBA64Model.Convert(c).(stdcolor.NRGBA64)
	return SRGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// Mix interpolates component-wise towards other.
func (c SRGBA) Mix(other SRGBA, factor float64) SRGBA {
	factor = clamp01(factor)
	return SRGBA{
		R: lerp(c.R, other.R, factor),
		G: lerp(c.G, other.G, factor),
		B: lerp(c.B, other.B, factor),
		A: lerp(c.A, other.A, factor),
	}
}

// Linear decodes the color to linear light. Alpha stays linear.
func (c SRGBA) Linear() LinRGBA {
	return LinRGBA{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// NRGBA converts the color to 8-bit non-premultiplied sRGB.
func (c SRGBA) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: toByte(c.A)}
}

// RGBA implements the image/color.Color interface.
func (c SRGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when it is not
// fully opaque.
func (c SRGBA) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = SRGBA{}
)
