package main

import (
	"fmt"
	stdcolor "image/color"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/color"
)

// value is a color that can be interpolated and drawn.
type value[V any] interface {
	gradient.Mixer[V, float64]
	stdcolor.Color
}

type request struct {
	colors  []color.SRGBA
	offsets []float64
	rng     gradient.Range[float64]
	sliced  bool
	samples int
	reverse bool
}

func sampleIn[V value[V]](req request, convert func(color.SRGBA) V) []stdcolor.Color {
	var g *gradient.Gradient[float64, V]
	if req.offsets == nil {
		values := make([]V, len(req.colors))
		for i, c := range req.colors {
			values[i] = convert(c)
		}
		g = gradient.New[float64](values)
	} else {
		stops := make([]gradient.Stop[float64, V], len(req.colors))
		for i, c := range req.colors {
			stops[i] = gradient.Stop[float64, V]{Offset: req.offsets[i], Value: convert(c)}
		}
		g = gradient.WithDomain(stops)
	}

	var take *gradient.Take[float64, V]
	if req.sliced {
		take = g.Slice(req.rng).Take(req.samples)
	} else {
		take = g.Take(req.samples)
	}
	var got []V
	if req.reverse {
		got = take.CollectBackward()
	} else {
		got = take.Collect()
	}

	out := make([]stdcolor.Color, len(got))
	for i, v := range got {
		out[i] = v
	}
	return out
}

func identity(c color.SRGBA) color.SRGBA { return c }

// sample interpolates the request in the named color space.
func sample(space string, req request) ([]stdcolor.Color, error) {
	switch space {
	case "linear", "":
		return sampleIn(req, color.SRGBA.Linear), nil
	case "srgb":
		return sampleIn(req, identity), nil
	case "lab":
		return sampleIn(req, color.SRGBA.Lab), nil
	case "luv":
		return sampleIn(req, color.SRGBA.Luv), nil
	case "hcl":
		return sampleIn(req, color.SRGBA.HCL), nil
	case "hsl":
		return sampleIn(req, color.SRGBA.HSLA), nil
	default:
		return nil, fmt.Errorf("unknown color space %q", space)
	}
}
