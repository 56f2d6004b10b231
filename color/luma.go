package color

// Luma is a linear-light luminance, 0 for black and 1 for white.
type Luma struct {
	Y float64
}

// Mix interpolates towards other.
func (l Luma) Mix(other Luma, factor float64) Luma {
	return Luma{Y: lerp(l.Y, other.Y, clamp01(factor))}
}

// Linear returns the opaque grey with this luminance.
func (l Luma) Linear() LinRGBA {
	return LinRGBA{R: l.Y, G: l.Y, B: l.Y, A: 1}
}

// RGBA implements the image/color.Color interface.
func (l Luma) RGBA() (r, g, b, a uint32) {
	return l.Linear().RGBA()
}

// WCAG 2.1 contrast thresholds.
const (
	minContrast      = 4.5 // SC 1.4.3, level AA
	minContrastLarge = 3.0 // SC 1.4.3, large text
	enhancedContrast = 7.0 // SC 1.4.6, level AAA
)

// ContrastRatio returns the WCAG 2.1 contrast ratio between two
// luminances, from 1 (no contrast) to 21 (black on white):
// (L1 + 0.05) / (L2 + 0.05) where L1 is the brighter one.
func (l Luma) ContrastRatio(other Luma) float64 {
	hi, lo := l.Y, other.Y
	if lo > hi {
		hi, lo = lo, hi
	}
	return (hi + 0.05) / (lo + 0.05)
}

// IsMinContrast reports whether the contrast is at least 4.5:1.
func (l Luma) IsMinContrast(other Luma) bool {
	return l.ContrastRatio(other) >= minContrast
}

// IsMinContrastLarge reports whether the contrast is at least 3:1, the
// minimum for large text.
func (l Luma) IsMinContrastLarge(other Luma) bool {
	return l.ContrastRatio(other) >= minContrastLarge
}

// IsEnhancedContrast reports whether the contrast is at least 7:1.
func (l Luma) IsEnhancedContrast(other Luma) bool {
	return l.ContrastRatio(other) >= enhancedContrast
}

// IsEnhancedContrastLarge reports whether the contrast is at least 4.5:1,
// the enhanced level for large text.
func (l Luma) IsEnhancedContrastLarge(other Luma) bool {
	return l.IsMinContrast(other)
}
