package color

import "math"

// Hue is an angle on the RGB color wheel, in degrees. 0 and 360 are the
// same hue. The raw value is kept as given; Degrees and PositiveDegrees
// normalize it.
type Hue float64

// HueFromRadians creates a hue from an angle in radians.
func HueFromRadians(rad float64) Hue {
	return Hue(rad * 180 / math.Pi)
}

// Degrees returns the hue normalized to (-180, 180].
func (h Hue) Degrees() float64 {
	d := float64(h)
	return d - math.Ceil((d+180)/360-1)*360
}

// PositiveDegrees returns the hue normalized to [0, 360).
func (h Hue) PositiveDegrees() float64 {
	d := float64(h)
	return d - math.Floor(d/360)*360
}

// Radians returns the hue normalized to (-π, π].
func (h Hue) Radians() float64 {
	return h.Degrees() * math.Pi / 180
}

// Equal reports whether two hues denote the same angle.
func (h Hue) Equal(other Hue) bool {
	return h.Degrees() == other.Degrees()
}

// Mix turns towards other along the shorter arc. Mixing 350° with 10°
// passes through 0°, not 180°.
func (h Hue) Mix(other Hue, factor float64) Hue {
	diff := (other - h).Degrees()
	return h + Hue(clamp01(factor)*diff)
}
