package gradient

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an optionally bounded interval of gradient positions. It is
// used to restrict the domain of a gradient, see [Gradient.Slice].
//
// Both bounds are inclusive. The zero Range is unbounded on both sides.
// No ordering is enforced between the bounds; an inverted range degenerates
// under Clamp and Constrain instead of being rejected.
type Range[S Float] struct {
	from, to       S
	hasFrom, hasTo bool
}

// Between returns the range a..b.
func Between[S Float](a, b S) Range[S] {
	return Range[S]{from: a, to: b, hasFrom: true, hasTo: true}
}

// Closed returns the range a..=b. Gradient ranges have inclusive upper
// bounds, so Closed maps to the same bounds as Between.
func Closed[S Float](a, b S) Range[S] {
	return Between(a, b)
}

// From returns the range a.., bounded below only.
func From[S Float](a S) Range[S] {
	return Range[S]{from: a, hasFrom: true}
}

// To returns the range ..b, bounded above only.
func To[S Float](b S) Range[S] {
	return Range[S]{to: b, hasTo: true}
}

// ToInclusive returns the range ..=b. The bound is b itself, not its
// successor.
func ToInclusive[S Float](b S) Range[S] {
	return To(b)
}

// Full returns the unbounded range.
func Full[S Float]() Range[S] {
	return Range[S]{}
}

// From returns the lower bound and whether it is present.
func (r Range[S]) From() (S, bool) {
	return r.from, r.hasFrom
}

// To returns the upper bound and whether it is present.
func (r Range[S]) To() (S, bool) {
	return r.to, r.hasTo
}

// Clamp bounds x into the range: first from below, then from above.
// If from > to the result is to.
func (r Range[S]) Clamp(x S) S {
	if r.hasFrom && r.from > x {
		x = r.from
	}
	if r.hasTo && r.to < x {
		x = r.to
	}
	return x
}

// Constrain intersects r with other.
//
// When other lies entirely at or above r's upper bound the result is the
// zero-width range at r's upper bound; when it lies entirely at or below
// r's lower bound the result is the zero-width range at r's lower bound.
// Otherwise each side takes the tighter of the present bounds.
func (r Range[S]) Constrain(other Range[S]) Range[S] {
	if other.hasFrom && r.hasTo && other.from >= r.to {
		return Range[S]{from: r.to, to: r.to, hasFrom: true, hasTo: true}
	}
	if other.hasTo && r.hasFrom && other.to <= r.from {
		return Range[S]{from: r.from, to: r.from, hasFrom: true, hasTo: true}
	}

	out := r
	if other.hasFrom {
		if !out.hasFrom || other.from > out.from {
			out.from = other.from
		}
		out.hasFrom = true
	}
	if other.hasTo {
		if !out.hasTo || other.to < out.to {
			out.to = other.to
		}
		out.hasTo = true
	}
	return out
}

// String formats the range in interval notation, e.g. "[0, 0.5]" or
// "(-∞, 1]".
func (r Range[S]) String() string {
	var b strings.Builder
	if r.hasFrom {
		b.WriteByte('[')
		b.WriteString(formatScalar(r.from))
	} else {
		b.WriteString("(-∞")
	}
	b.WriteString(", ")
	if r.hasTo {
		b.WriteString(formatScalar(r.to))
		b.WriteByte(']')
	} else {
		b.WriteString("+∞)")
	}
	return b.String()
}

func formatScalar[S Float](x S) string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// ParseRange parses range notation: "a..b", "a..=b", "a..", "..b",
// "..=b" and "..". Surrounding whitespace is ignored.
func ParseRange[S Float](s string) (Range[S], error) {
	s = strings.TrimSpace(s)
	lo, hi, ok := strings.Cut(s, "..")
	if !ok {
		return Range[S]{}, fmt.Errorf("%w: %q: missing \"..\"", ErrInvalidRange, s)
	}
	hi = strings.TrimPrefix(hi, "=")

	var r Range[S]
	if lo = strings.TrimSpace(lo); lo != "" {
		v, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return Range[S]{}, fmt.Errorf("%w: %q: lower bound: %w", ErrInvalidRange, s, err)
		}
		r.from, r.hasFrom = S(v), true
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		v, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return Range[S]{}, fmt.Errorf("%w: %q: upper bound: %w", ErrInvalidRange, s, err)
		}
		r.to, r.hasTo = S(v), true
	}
	return r, nil
}
