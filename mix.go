package gradient

import "golang.org/x/exp/constraints"

// Float is the scalar type of gradient positions and mix factors.
type Float interface {
	constraints.Float
}

// Mixer is implemented by values that can be interpolated.
//
// Mix returns the value at factor between the receiver (factor 0) and
// other (factor 1). The gradient always passes a factor in [0, 1].
// Component-wise types typically return a + factor*(b-a); cyclic types
// such as hues may take the shortest arc instead.
type Mixer[V any, S Float] interface {
	Mix(other V, factor S) V
}

// clamp01 clamps a factor to [0, 1].
func clamp01[S Float](x S) S {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
