package color

import (
	stdcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab is an opaque color mixed in CIE L*a*b* (D65). Blends in Lab are
// perceptually more even than in sRGB.
//
// Lab, Luv and HCL share the same sRGB storage; they differ in the space
// Mix works in. Mixed colors may fall outside the sRGB gamut; conversions
// to 8-bit clamp them.
type Lab colorful.Color

// Luv is an opaque color mixed in CIE L*u*v* (D65).
type Luv colorful.Color

// HCL is an opaque color mixed in polar L*a*b* (hue, chroma, lightness),
// turning the hue along the shorter arc.
type HCL colorful.Color

// LabFrom creates a color from CIE L*a*b* components.
func LabFrom(l, a, b float64) Lab {
	return Lab(colorful.Lab(l, a, b))
}

// HCLFrom creates a color from hue (degrees), chroma and lightness.
func HCLFrom(h, c, l float64) HCL {
	return HCL(colorful.Hcl(h, c, l))
}

// Lab converts to a color mixed in L*a*b*. Alpha is dropped.
func (c SRGBA) Lab() Lab { return Lab(c.toColorful()) }

// Luv converts to a color mixed in L*u*v*. Alpha is dropped.
func (c SRGBA) Luv() Luv { return Luv(c.toColorful()) }

// HCL converts to a color mixed in HCL. Alpha is dropped.
func (c SRGBA) HCL() HCL { return HCL(c.toColorful()) }

func (c SRGBA) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color) SRGBA {
	return RGB(c.R, c.G, c.B)
}

func nrgbaFromColorful(c colorful.Color) stdcolor.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return stdcolor.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Mix interpolates in L*a*b*.
func (c Lab) Mix(other Lab, factor float64) Lab {
	return Lab(colorful.Color(c).BlendLab(colorful.Color(other), clamp01(factor)))
}

// Components returns the L*, a* and b* components.
func (c Lab) Components() (l, a, b float64) { return colorful.Color(c).Lab() }

// SRGB converts the color to sRGB.
func (c Lab) SRGB() SRGBA { return fromColorful(colorful.Color(c)) }

// RGBA implements the image/color.Color interface.
func (c Lab) RGBA() (r, g, b, a uint32) { return nrgbaFromColorful(colorful.Color(c)).RGBA() }

// Mix interpolates in L*u*v*.
func (c Luv) Mix(other Luv, factor float64) Luv {
	return Luv(colorful.Color(c).BlendLuv(colorful.Color(other), clamp01(factor)))
}

// SRGB converts the color to sRGB.
func (c Luv) SRGB() SRGBA { return fromColorful(colorful.Color(c)) }

// RGBA implements the image/color.Color interface.
func (c Luv) RGBA() (r, g, b, a uint32) { return nrgbaFromColorful(colorful.Color(c)).RGBA() }

// Mix interpolates in HCL.
func (c HCL) Mix(other HCL, factor float64) HCL {
	return HCL(colorful.Color(c).BlendHcl(colorful.Color(other), clamp01(factor)))
}

// Components returns hue (degrees), chroma and lightness.
func (c HCL) Components() (h, chroma, l float64) { return colorful.Color(c).Hcl() }

// SRGB converts the color to sRGB.
func (c HCL) SRGB() SRGBA { return fromColorful(colorful.Color(c)) }

// RGBA implements the image/color.Color interface.
func (c HCL) RGBA() (r, g, b, a uint32) { return nrgbaFromColorful(colorful.Color(c)).RGBA() }
