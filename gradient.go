package gradient

import (
	"context"
	"iter"
	"log/slog"
)

// Stop is a control point: a value anchored at a position of the gradient.
type Stop[S Float, V any] struct {
	Offset S // Position in the gradient domain
	Value  V // Value at this position
}

// Gradient is a continuous interpolation between a series of values.
//
// The values are either evenly spaced over [0, 1] (see [New]) or placed at
// caller-supplied offsets (see [WithDomain]). Any position outside the
// domain takes the value of the nearest control point. A Gradient is
// immutable and safe for concurrent use, provided V.Mix is.
//
// Example:
//
//	g := gradient.New[float64]([]color.LinRGBA{
//	    {R: 1, A: 1},
//	    {B: 1, A: 1},
//	})
//	mid := g.Get(0.5)
//	for c := range g.Take(5).All() {
//	    fmt.Println(c)
//	}
type Gradient[S Float, V Mixer[V, S]] struct {
	stops []Stop[S, V]
}

// New creates a gradient of evenly spaced values over the domain [0, 1].
// A single value is placed at 0. New panics with [ErrNoStops] if values is
// empty.
func New[S Float, V Mixer[V, S]](values []V) *Gradient[S, V] {
	if len(values) == 0 {
		panic(ErrNoStops)
	}

	step := 1 / S(max(len(values)-1, 1))
	stops := make([]Stop[S, V], len(values))
	for i, v := range values {
		stops[i] = Stop[S, V]{Offset: S(i) * step, Value: v}
	}

	g := &Gradient[S, V]{stops: stops}
	g.logCreated()
	return g
}

// WithDomain creates a gradient from stops with custom offsets. The stops
// are copied as given: they must already be sorted by ascending offset,
// and are neither sorted nor deduplicated. WithDomain panics with
// [ErrNoStops] if stops is empty.
func WithDomain[S Float, V Mixer[V, S]](stops []Stop[S, V]) *Gradient[S, V] {
	if len(stops) == 0 {
		panic(ErrNoStops)
	}

	g := &Gradient[S, V]{stops: make([]Stop[S, V], len(stops))}
	copy(g.stops, stops)

	if log := Logger(); log.Enabled(context.Background(), slog.LevelWarn) {
		if i := unsortedAt(g.stops); i > 0 {
			log.Warn("gradient: stops are not sorted by offset",
				"index", i,
				"offset", float64(g.stops[i].Offset),
				"previous", float64(g.stops[i-1].Offset))
		}
	}
	g.logCreated()
	return g
}

// unsortedAt returns the first index whose offset is smaller than its
// predecessor's, or 0 if the stops are sorted.
func unsortedAt[S Float, V any](stops []Stop[S, V]) int {
	for i := 1; i < len(stops); i++ {
		if stops[i].Offset < stops[i-1].Offset {
			return i
		}
	}
	return 0
}

func (g *Gradient[S, V]) logCreated() {
	log := Logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	lo, hi := g.Domain()
	log.Debug("gradient: created",
		"stops", len(g.stops),
		"min", float64(lo),
		"max", float64(hi))
}

// Get returns the value at position x. Positions at or beyond either end
// of the domain return the value of that end's control point unchanged.
func (g *Gradient[S, V]) Get(x S) V {
	lo, hi := 0, len(g.stops)-1

	first := g.stops[lo]
	if x <= first.Offset {
		return first.Value
	}
	last := g.stops[hi]
	if x >= last.Offset {
		return last.Value
	}

	// Invariant: stops[lo].Offset < x <= stops[hi].Offset and lo < hi.
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if x <= g.stops[mid].Offset {
			hi = mid
		} else {
			lo = mid
		}
	}

	a, b := g.stops[lo], g.stops[hi]
	factor := clamp01((x - a.Offset) / (b.Offset - a.Offset))
	return a.Value.Mix(b.Value, factor)
}

// Domain returns the offsets of the first and last control points.
func (g *Gradient[S, V]) Domain() (lo, hi S) {
	return g.stops[0].Offset, g.stops[len(g.stops)-1].Offset
}

// Len returns the number of control points.
func (g *Gradient[S, V]) Len() int {
	return len(g.stops)
}

// Stop returns the i-th control point. It panics if i is out of range.
func (g *Gradient[S, V]) Stop(i int) Stop[S, V] {
	return g.stops[i]
}

// Stops iterates over the control points in order.
func (g *Gradient[S, V]) Stops() iter.Seq2[int, Stop[S, V]] {
	return func(yield func(int, Stop[S, V]) bool) {
		for i, s := range g.stops {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Slice restricts the domain of the gradient to r. The slice shares the
// gradient's control points.
func (g *Gradient[S, V]) Slice(r Range[S]) Slice[S, V] {
	return Slice[S, V]{gradient: g, rng: r}
}

// Take returns a sequence of n evenly spaced values spanning the whole
// domain, both ends included. Take(1) yields the value at the lower end.
//
// For example, Take(5) over the domain [0, 1] samples the positions 0,
// 0.25, 0.5, 0.75 and 1.
func (g *Gradient[S, V]) Take(n int) *Take[S, V] {
	lo, hi := g.Domain()
	return newTake(source[S, V]{gradient: g}, lo, hi, n)
}
