package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "#ff0000"},
		{"Red", "#ff0000"},
		{"  RoyalBlue ", "#4169e1"},
		{"gold", "#ffd700"},
		{"transparent", "#00000000"},
		{"#f00", "#ff0000"},
		{"#F00", "#ff0000"},
		{"#0f08", "#00ff0088"},
		{"#123456", "#123456"},
		{"#12345678", "#12345678"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Hex())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "notacolor", "#", "#12", "#12345", "#gggggg", "#123456zz"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, Red, MustParse("red"))
	assert.Panics(t, func() { MustParse("nope") })
}
