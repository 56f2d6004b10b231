// Command gradient samples a color gradient and prints the result as hex
// codes, a truecolor terminal strip or a PNG swatch.
//
// Usage:
//
//	gradient -n 5 --space lab gold royalblue
//	gradient --format png -o out.png "#000@0" "#f00@0.8" "#fff@1"
//	gradient --slice 0.25..0.75 --reverse red lime blue
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/internal/swatch"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "gradient:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, rest, err := loadConfig(args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		gradient.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	colors, offsets, err := parseStops(rest)
	if err != nil {
		return err
	}
	req := request{
		colors:  colors,
		offsets: offsets,
		samples: cfg.Samples,
		reverse: cfg.Reverse,
	}
	if cfg.Slice != "" {
		req.rng, err = gradient.ParseRange[float64](cfg.Slice)
		if err != nil {
			return err
		}
		req.sliced = true
	}

	out, err := sample(cfg.Space, req)
	if err != nil {
		return err
	}

	w := stdout
	if cfg.Output != "" && cfg.Output != "-" {
		f, err := os.Create(cfg.Output) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		w = f
	}

	switch cfg.Format {
	case "hex":
		for _, h := range swatch.Hex(out) {
			if _, err = fmt.Fprintln(w, h); err != nil {
				break
			}
		}
	case "ansi":
		_, err = fmt.Fprintln(w, swatch.ANSI(out))
	case "png":
		img := swatch.Image(out, swatch.WithSize(cfg.Width, cfg.Height), swatch.WithLabels(cfg.Labels))
		err = swatch.WritePNG(w, img)
	default:
		err = fmt.Errorf("unknown format %q", cfg.Format)
	}
	return err
}
