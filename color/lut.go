package color

import "math"

// srgb8ToLinear decodes an 8-bit sRGB component to linear light.
var srgb8ToLinear [256]float64

// linearToSRGB8 encodes linear light to an 8-bit sRGB component.
// 4096 entries give 12-bit precision, more than 8-bit output needs.
var linearToSRGB8 [4096]uint8

func init() {
	for i := range srgb8ToLinear {
		srgb8ToLinear[i] = SRGBToLinear(float64(i) / 255)
	}
	for i := range linearToSRGB8 {
		s := LinearToSRGB(float64(i) / 4095)
		linearToSRGB8[i] = uint8(math.Max(0, math.Min(255, s*255+0.5)))
	}
}

// DecodeByte converts an 8-bit sRGB component to linear light using a
// lookup table.
//
//	DecodeByte(128) // ~0.2159, not 0.5
func DecodeByte(s uint8) float64 {
	return srgb8ToLinear[s]
}

// EncodeByte converts a linear-light component to 8-bit sRGB using a
// lookup table. The input is clamped to [0, 1].
//
//	EncodeByte(0.5) // 188, not 128
func EncodeByte(l float64) uint8 {
	index := int(clamp01(l)*4095 + 0.5)
	switch {
	case index < 0: // NaN
		index = 0
	case index > 4095:
		index = 4095
	}
	return linearToSRGB8[index]
}
