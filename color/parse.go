package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrInvalidColor is returned by Parse for unrecognized color strings.
var ErrInvalidColor = errors.New("color: invalid color")

// Parse parses a color string. Supported formats:
//   - SVG 1.1 color names, case-insensitive: "gold", "RoyalBlue"
//   - "transparent"
//   - Hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
func Parse(s string) (SRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SRGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	name := cases.Fold().String(s)
	if name == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}
	return SRGBA{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, s)
}

// MustParse is like Parse but panics on error. Use it only for known-good
// literals.
func MustParse(s string) SRGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex parses "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa".
func parseHex(s string) (SRGBA, error) {
	rgb, alpha := s, ""
	switch len(s) {
	case 4, 7:
	case 5:
		rgb, alpha = s[:4], s[4:]+s[4:]
	case 9:
		rgb, alpha = s[:7], s[7:]
	default:
		return SRGBA{}, fmt.Errorf("%w: %q: bad hex length", ErrInvalidColor, s)
	}

	c, err := colorful.Hex(rgb)
	if err != nil {
		return SRGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}

	out := RGB(c.R, c.G, c.B)
	if alpha != "" {
		a, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return SRGBA{}, fmt.Errorf("%w: %q: alpha: %w", ErrInvalidColor, s, err)
		}
		out.A = float64(a) / 255
	}
	return out, nil
}
