// Package swatch renders sampled colors as a strip image, hex list or
// truecolor terminal line.
package swatch

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/color"
)

// Image renders one equal-width column per color.
// An empty input yields a fully transparent image.
func Image(colors []stdcolor.Color, opts ...Option) *image.NRGBA {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	width := o.width
	if width == 0 {
		width = max(len(colors), 1) * cellWidth
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, o.height))
	if len(colors) == 0 {
		return dst
	}

	strip := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for i, c := range colors {
		strip.Set(i, 0, c)
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), strip, strip.Bounds(), draw.Src, nil)

	if o.labels {
		drawLabels(dst, colors)
	}

	gradient.Logger().Debug("swatch: rendered image",
		"samples", len(colors), "width", width, "height", o.height, "labels", o.labels)
	return dst
}

func drawLabels(dst *image.NRGBA, colors []stdcolor.Color) {
	face := basicfont.Face7x13
	b := dst.Bounds()
	cell := float64(b.Dx()) / float64(len(colors))
	baseline := (b.Dy() + face.Ascent - face.Descent) / 2

	for i, c := range colors {
		label := strconv.Itoa(i)
		w := font.MeasureString(face, label).Ceil()
		if float64(w+2) > cell || face.Height > b.Dy() {
			continue
		}
		x := int(float64(i)*cell + (cell-float64(w))/2)
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(labelColor(c)),
			Face: face,
			Dot:  fixed.P(x, baseline),
		}
		d.DrawString(label)
	}
}

// labelColor picks black or white, whichever contrasts more with bg.
func labelColor(bg stdcolor.Color) stdcolor.Color {
	l := color.FromColor(bg).Linear().Luma()
	if l.ContrastRatio(color.Luma{Y: 0}) >= l.ContrastRatio(color.Luma{Y: 1}) {
		return stdcolor.Black
	}
	return stdcolor.White
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("swatch: encode png: %w", err)
	}
	return nil
}

// Hex formats each color as "#rrggbb", or "#rrggbbaa" when translucent.
func Hex(colors []stdcolor.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = color.FromColor(c).Hex()
	}
	return out
}

// ANSI renders the colors as two-space blocks with 24-bit background
// escapes, followed by a reset. Alpha is ignored.
func ANSI(colors []stdcolor.Color) string {
	if len(colors) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range colors {
		n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
		fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm  ", n.R, n.G, n.B)
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}
