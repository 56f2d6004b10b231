package gradient

import "iter"

// source is the value source of a Take: either a whole gradient or a
// slice of one.
type source[S Float, V Mixer[V, S]] struct {
	gradient *Gradient[S, V]
	slice    Slice[S, V]
	sliced   bool
}

func (s source[S, V]) get(x S) V {
	if s.sliced {
		return s.slice.Get(x)
	}
	return s.gradient.Get(x)
}

// Take is a lazy sequence of n evenly spaced samples of a gradient or a
// slice. It can be consumed from both ends; samples read from the back are
// bit-for-bit equal to the same samples read from the front.
//
// A Take is not safe for concurrent use. Use Clone to hand out independent
// copies.
type Take[S Float, V Mixer[V, S]] struct {
	src  source[S, V]
	from S // position of the first sample
	span S // distance between the first and the last sample
	n    int
	head int // samples consumed from the front
	tail int // samples consumed from the back
}

func newTake[S Float, V Mixer[V, S]](src source[S, V], lo, hi S, n int) *Take[S, V] {
	return &Take[S, V]{
		src:  src,
		from: lo,
		span: hi - lo,
		n:    max(n, 0),
	}
}

// at returns the i-th sample.
func (t *Take[S, V]) at(i int) V {
	if t.n == 1 {
		return t.src.get(t.from)
	}
	return t.src.get(t.from + (t.span/S(t.n-1))*S(i))
}

// Next returns the next sample from the front. It returns false once
// every sample has been consumed from either end.
func (t *Take[S, V]) Next() (V, bool) {
	if t.head+t.tail >= t.n {
		var zero V
		return zero, false
	}
	v := t.at(t.head)
	t.head++
	return v, true
}

// NextBack returns the next sample from the back.
func (t *Take[S, V]) NextBack() (V, bool) {
	if t.head+t.tail >= t.n {
		var zero V
		return zero, false
	}
	v := t.at(t.n - t.tail - 1)
	t.tail++
	return v, true
}

// Len returns the exact number of samples left.
func (t *Take[S, V]) Len() int {
	return t.n - t.head - t.tail
}

// Clone returns an independent copy of the sequence in its current state.
func (t *Take[S, V]) Clone() *Take[S, V] {
	c := *t
	return &c
}

// All returns an iterator consuming the remaining samples front to back.
func (t *Take[S, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := t.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator consuming the remaining samples back to
// front.
func (t *Take[S, V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := t.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect consumes the remaining samples front to back.
func (t *Take[S, V]) Collect() []V {
	out := make([]V, 0, t.Len())
	for v := range t.All() {
		out = append(out, v)
	}
	return out
}

// CollectBackward consumes the remaining samples back to front.
func (t *Take[S, V]) CollectBackward() []V {
	out := make([]V, 0, t.Len())
	for v := range t.Backward() {
		out = append(out, v)
	}
	return out
}
