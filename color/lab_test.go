package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLab_MixEndpoints(t *testing.T) {
	a, b := MustParse("gold").Lab(), MustParse("royalblue").Lab()
	assert.Equal(t, a.SRGB().Hex(), a.Mix(b, 0).SRGB().Hex())
	assert.Equal(t, b.SRGB().Hex(), a.Mix(b, 1).SRGB().Hex())
	assert.Equal(t, b.SRGB().Hex(), a.Mix(b, 5).SRGB().Hex(), "factor is clamped")
}

func TestLab_MidpointLightness(t *testing.T) {
	a, b := Black.Lab(), White.Lab()
	l, _, _ := a.Mix(b, 0.5).Components()
	assert.InDelta(t, 0.5, l, 0.01)
}

func TestLabFrom(t *testing.T) {
	l, a, b := LabFrom(0.5, 0.1, -0.1).Components()
	assert.InDelta(t, 0.5, l, 1e-6)
	assert.InDelta(t, 0.1, a, 1e-6)
	assert.InDelta(t, -0.1, b, 1e-6)
}

func TestLuv_MixEndpoints(t *testing.T) {
	a, b := Red.Luv(), Blue.Luv()
	assert.Equal(t, "#ff0000", a.Mix(b, 0).SRGB().Hex())
	assert.Equal(t, "#0000ff", a.Mix(b, 1).SRGB().Hex())
}

func TestHCL_MixKeepsHueOnShortArc(t *testing.T) {
	a := HCLFrom(350, 0.5, 0.6)
	b := HCLFrom(10, 0.5, 0.6)
	h, _, _ := a.Mix(b, 0.5).Components()
	assert.True(t, h < 10 || h > 350, "hue %v should pass through 0", h)
}
