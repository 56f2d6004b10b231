package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHue_Degrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-900, 180},
		{-541, 179},
		{-540, 180},
		{-180, 180},
		{-179, -179},
		{0, 0},
		{180, 180},
		{181, -179},
		{359, -1},
		{360, 0},
		{540, 180},
		{900, 180},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Hue(tt.in).Degrees(), 1e-9, "Hue(%v)", tt.in)
	}
}

func TestHue_PositiveDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-900, 180},
		{-361, 359},
		{-360, 0},
		{-1, 359},
		{0, 0},
		{359, 359},
		{360, 0},
		{721, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Hue(tt.in).PositiveDegrees(), 1e-9, "Hue(%v)", tt.in)
	}
}

func TestHue_Radians(t *testing.T) {
	assert.InDelta(t, math.Pi, Hue(180).Radians(), 1e-12)
	assert.InDelta(t, -math.Pi/2, Hue(270).Radians(), 1e-12)
	assert.InDelta(t, 90, HueFromRadians(math.Pi/2).Degrees(), 1e-12)
}

func TestHue_Equal(t *testing.T) {
	assert.True(t, Hue(10).Equal(370))
	assert.True(t, Hue(-90).Equal(270))
	assert.False(t, Hue(10).Equal(11))
}

func TestHue_MixShortestArc(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Hue
		factor     float64
		wantDegree float64
	}{
		{"across zero", 350, 10, 0.5, 0},
		{"across zero backwards", 10, 350, 0.5, 0},
		{"plain", 30, 90, 0.5, 60},
		{"start", 30, 90, 0, 30},
		{"end", 30, 90, 1, 90},
		{"clamped", 30, 90, 2, 90},
		{"large raw values", 720 + 350, -350, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantDegree, tt.a.Mix(tt.b, tt.factor).Degrees(), 1e-9)
		})
	}
}

func TestHSLA_RoundTrip(t *testing.T) {
	colors := []SRGBA{
		Red, Green, Blue, White, Black,
		RGB(0.2, 0.4, 0.6),
		RGB(0.9, 0.1, 0.5),
		{R: 0.3, G: 0.3, B: 0.1, A: 0.25},
	}
	for _, c := range colors {
		back := c.HSLA().SRGB()
		assert.InDelta(t, c.R, back.R, 1e-9, "%v", c)
		assert.InDelta(t, c.G, back.G, 1e-9, "%v", c)
		assert.InDelta(t, c.B, back.B, 1e-9, "%v", c)
		assert.Equal(t, c.A, back.A)
	}
}

func TestHSLA_Mix(t *testing.T) {
	a := HSLA{H: 340, S: 1, L: 0.5, A: 1}
	b := HSLA{H: 20, S: 0, L: 0.3, A: 0}
	m := a.Mix(b, 0.5)
	assert.InDelta(t, 0, m.H.Degrees(), 1e-9)
	assert.InDelta(t, 0.5, m.S, 1e-12)
	assert.InDelta(t, 0.4, m.L, 1e-12)
	assert.InDelta(t, 0.5, m.A, 1e-12)
}
