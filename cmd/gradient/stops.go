package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gradient/color"
)

var (
	errNoStops      = errors.New("at least one color stop is required")
	errMixedOffsets = errors.New("either every stop has an @offset or none does")
)

// parseStops reads COLOR or COLOR@OFFSET arguments. offsets is nil when
// no argument carries an offset.
func parseStops(args []string) (colors []color.SRGBA, offsets []float64, err error) {
	if len(args) == 0 {
		return nil, nil, errNoStops
	}
	colors = make([]color.SRGBA, 0, len(args))
	withOffset := 0
	for _, arg := range args {
		name, off, found := strings.Cut(arg, "@")
		c, err := color.Parse(name)
		if err != nil {
			return nil, nil, err
		}
		colors = append(colors, c)
		if !found {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(off), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("stop %q: invalid offset: %w", arg, err)
		}
		offsets = append(offsets, x)
		withOffset++
	}
	if withOffset != 0 && withOffset != len(args) {
		return nil, nil, errMixedOffsets
	}
	return colors, offsets, nil
}
