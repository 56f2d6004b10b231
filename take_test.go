package gradient_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gradient"
)

func TestTake_Empty(t *testing.T) {
	g := gradient.New[float64]([]num{1, 2})
	for _, n := range []int{0, -3} {
		take := g.Take(n)
		assert.Equal(t, 0, take.Len())
		_, ok := take.Next()
		assert.False(t, ok)
		_, ok = take.NextBack()
		assert.False(t, ok)
		assert.Empty(t, take.Collect())
	}
}

func TestTake_SingleYieldsLowerBound(t *testing.T) {
	g := gradient.New[float64]([]num{3, 9})

	front, ok := g.Take(1).Next()
	require.True(t, ok)
	back, ok := g.Take(1).NextBack()
	require.True(t, ok)

	assert.Equal(t, num(3), front)
	assert.Equal(t, front, back)
	assert.False(t, math.IsNaN(float64(back)))

	take := g.Take(1)
	take.Next()
	_, ok = take.NextBack()
	assert.False(t, ok, "a single sample is consumed once from either end")
}

func TestTake_IncludesBothEnds(t *testing.T) {
	g := gradient.WithDomain(stops(-1, 5, 3, 7))
	got := g.Take(5).Collect()
	require.Len(t, got, 5)
	assert.Equal(t, num(5), got[0])
	assert.Equal(t, num(7), got[4])
}

func TestTake_ReverseEqualsBackward(t *testing.T) {
	g := gradient.New[float64]([]num{1, -2, 0.3, 7})
	for n := range 40 {
		forward := g.Take(n).Collect()
		slices.Reverse(forward)
		backward := g.Take(n).CollectBackward()
		require.Equal(t, forward, backward, "n=%d", n)
	}
}

func TestTake_ReverseEqualsBackwardOnSlice(t *testing.T) {
	s := gradient.New[float64]([]num{0, 1, 0}).Slice(gradient.Between(0.1, 0.7))
	for n := range 25 {
		forward := s.Take(n).Collect()
		slices.Reverse(forward)
		require.Equal(t, forward, s.Take(n).CollectBackward(), "n=%d", n)
	}
}

func TestTake_LenIsExact(t *testing.T) {
	g := gradient.New[float64]([]num{0, 1})
	take := g.Take(7)
	want := 7
	for i := 0; take.Len() > 0; i++ {
		require.Equal(t, want, take.Len())
		if i%2 == 0 {
			take.Next()
		} else {
			take.NextBack()
		}
		want--
	}
	assert.Equal(t, 0, want)
	_, ok := take.Next()
	assert.False(t, ok)
}

func TestTake_Interleaved(t *testing.T) {
	g := gradient.New[float64]([]num{0, 4})
	all := g.Take(5).Collect()

	take := g.Take(5)
	var front, back []num
	for {
		v, ok := take.Next()
		if !ok {
			break
		}
		front = append(front, v)
		v, ok = take.NextBack()
		if !ok {
			break
		}
		back = append(back, v)
	}
	slices.Reverse(back)
	assert.Equal(t, all, append(front, back...))
}

func TestTake_Clone(t *testing.T) {
	g := gradient.New[float64]([]num{0, 1})
	take := g.Take(4)
	take.Next()

	c := take.Clone()
	assert.Equal(t, take.Collect(), c.Collect())
	assert.Equal(t, 0, take.Len())
	assert.Equal(t, 0, c.Len())
}

func TestTake_EarlyBreak(t *testing.T) {
	g := gradient.New[float64]([]num{0, 1})
	take := g.Take(6)

	for range take.All() {
		break
	}
	assert.Equal(t, 5, take.Len(), "a stopped iteration consumes only what it yielded")

	n := 0
	for range take.Backward() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 3, take.Len())
}

func TestTake_TwoStopsScenario(t *testing.T) {
	a, b := num(1), num(0)
	g := gradient.New[float64]([]num{a, b})
	assert.Equal(t,
		[]num{a, a.Mix(b, 0.25), a.Mix(b, 0.5), a.Mix(b, 0.75), b},
		g.Take(5).Collect())
}
