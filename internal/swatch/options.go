package swatch

// Option configures swatch rendering.
//
// Example:
//
//	img := swatch.Image(colors, swatch.WithSize(640, 64), swatch.WithLabels(true))
type Option func(*options)

type options struct {
	width  int // 0 means cellWidth per sample
	height int
	labels bool
}

const (
	cellWidth     = 32
	defaultHeight = 48
)

func defaultOptions() options {
	return options{height: defaultHeight}
}

// WithSize sets the output image size in pixels.
// Non-positive values keep the default for that dimension.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithLabels draws the sample index inside each cell that is wide enough
// to hold it.
func WithLabels(on bool) Option {
	return func(o *options) {
		o.labels = on
	}
}
