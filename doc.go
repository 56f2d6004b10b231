// Package gradient provides continuous interpolation over a series of
// control points.
//
// # Overview
//
// A [Gradient] maps positions to values by blending the two control points
// around a position. It is generic over the value type, which only needs
// to know how to mix with another value ([Mixer]), and over the scalar
// type of positions ([Float]). The package has no notion of color; the
// color sub-package provides ready-made value types.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gradient"
//	    "github.com/gogpu/gradient/color"
//	)
//
//	// Evenly spaced over [0, 1]
//	g := gradient.New[float64]([]color.LinRGBA{
//	    color.MustParse("gold").Linear(),
//	    color.MustParse("#4169e1").Linear(),
//	})
//
//	// Lookup; positions outside [0, 1] are clamped
//	c := g.Get(0.3)
//
//	// Five samples including both ends
//	for c := range g.Take(5).All() {
//	    fmt.Println(c.SRGB().Hex())
//	}
//
//	// The first half only
//	half := g.Slice(gradient.ToInclusive(0.5))
//
// # Custom domains
//
// [WithDomain] places control points at arbitrary offsets. They must be
// sorted by offset; the gradient never sorts them.
//
//	g := gradient.WithDomain([]gradient.Stop[float64, color.Luma]{
//	    {Offset: -10, Value: color.Luma{Y: 0}},
//	    {Offset: 30, Value: color.Luma{Y: 1}},
//	})
//
// # Sequences
//
// [Gradient.Take] and [Slice.Take] return a [Take], a lazy sequence that
// can be consumed from the front ([Take.Next], [Take.All]) and from the
// back ([Take.NextBack], [Take.Backward]). [Take.Len] is always exact.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package gradient
