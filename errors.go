package gradient

import "errors"

var (
	// ErrNoStops is the panic value of New and WithDomain when called
	// without any control point.
	ErrNoStops = errors.New("gradient: at least one control point is required")

	// ErrInvalidRange is returned by ParseRange for malformed range notation.
	ErrInvalidRange = errors.New("gradient: invalid range")
)
