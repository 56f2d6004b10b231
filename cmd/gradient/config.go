package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config holds the resolved settings. Precedence is flag, then
// GRADIENT_* environment variable, then config file, then default.
type config struct {
	Samples int
	Space   string
	Slice   string
	Reverse bool
	Format  string
	Output  string
	Width   int
	Height  int
	Labels  bool
	Verbose bool
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)
	fs.IntP("samples", "n", 10, "number of evenly spaced samples")
	fs.String("space", "linear", "interpolation space: linear, srgb, lab, luv, hcl or hsl")
	fs.String("slice", "", `restrict sampling to a range such as "0.2..0.8", "..=0.5" or "0.5.."`)
	fs.Bool("reverse", false, "emit samples from the end of the range")
	fs.String("format", "hex", "output format: hex, ansi or png")
	fs.StringP("output", "o", "", "output file (default stdout)")
	fs.Int("width", 0, "png width in pixels (default 32 per sample)")
	fs.Int("height", 48, "png height in pixels")
	fs.Bool("labels", false, "draw sample indices on the png")
	fs.StringP("config", "c", "", "config file (json, toml or yaml)")
	fs.BoolP("verbose", "v", false, "log gradient construction to stderr")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gradient [flags] COLOR[@OFFSET]...\n\n")
		fs.PrintDefaults()
	}
	return fs
}

// loadConfig parses args and merges environment and config file values.
// It returns the positional arguments left after flag parsing.
func loadConfig(args []string) (config, []string, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return config{}, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("GRADIENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, nil, fmt.Errorf("bind flags: %w", err)
	}

	if file, _ := fs.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return config{}, nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := config{
		Samples: v.GetInt("samples"),
		Space:   strings.ToLower(v.GetString("space")),
		Slice:   v.GetString("slice"),
		Reverse: v.GetBool("reverse"),
		Format:  strings.ToLower(v.GetString("format")),
		Output:  v.GetString("output"),
		Width:   v.GetInt("width"),
		Height:  v.GetInt("height"),
		Labels:  v.GetBool("labels"),
		Verbose: v.GetBool("verbose"),
	}
	if cfg.Samples < 0 {
		return config{}, nil, fmt.Errorf("samples must not be negative, got %d", cfg.Samples)
	}
	return cfg, fs.Args(), nil
}
