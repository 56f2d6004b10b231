package gradient

// Slice is a read-only view of a Gradient restricted to a Range. It holds
// a reference to the gradient and never copies its control points, so it
// is cheap to create and pass by value.
type Slice[S Float, V Mixer[V, S]] struct {
	gradient *Gradient[S, V]
	rng      Range[S]
}

// Get returns the value at position x. Positions outside the slice's
// range take the value at the nearest range bound.
func (s Slice[S, V]) Get(x S) V {
	return s.gradient.Get(s.rng.Clamp(x))
}

// Domain returns the limits of the slice. Bounds missing from the range
// fall back to the gradient's domain.
func (s Slice[S, V]) Domain() (lo, hi S) {
	if s.rng.hasFrom && s.rng.hasTo {
		return s.rng.from, s.rng.to
	}
	lo, hi = s.gradient.Domain()
	if s.rng.hasFrom {
		lo = s.rng.from
	}
	if s.rng.hasTo {
		hi = s.rng.to
	}
	return lo, hi
}

// Range returns the range the slice is restricted to.
func (s Slice[S, V]) Range() Range[S] {
	return s.rng
}

// Gradient returns the underlying gradient.
func (s Slice[S, V]) Gradient() *Gradient[S, V] {
	return s.gradient
}

// Slice restricts the slice further. Parts of r outside the current range
// are clamped to its nearest bound. The result refers to the same gradient
// directly, however many times slices are chained.
func (s Slice[S, V]) Slice(r Range[S]) Slice[S, V] {
	return Slice[S, V]{gradient: s.gradient, rng: s.rng.Constrain(r)}
}

// Take returns a sequence of n evenly spaced values spanning the slice's
// domain, both ends included.
func (s Slice[S, V]) Take(n int) *Take[S, V] {
	lo, hi := s.Domain()
	return newTake(source[S, V]{slice: s, sliced: true}, lo, hi, n)
}
