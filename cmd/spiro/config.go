package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gogpu/spiro"
)

// errUsage marks command-line errors; main reports them with exit status 2.
var errUsage = errors.New("usage error")

// argError reports a malformed positional argument.
type argError struct {
	name  string
	value string
	err   error
}

func (e *argError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.name, e.value, e.err)
}

func (e *argError) Unwrap() []error { return []error{errUsage, e.err} }

// Config holds the command-line configuration.
type Config struct {
	Width, Height int
	Count         int
	Interval      time.Duration
	FrameInterval time.Duration
	Step          int
	Seed          uint64

	OutDir  string
	Output  string
	Caption bool
	Sound   bool

	LogFile string
	Verbose bool

	// Color is the stroke color of the single curve.
	Color spiro.Color

	// Single holds the parameters given as positional arguments. Nil selects
	// the multi-curve animation.
	Single *spiro.Params
}

func defaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		Count:         4,
		Interval:      spiro.DefaultInterval,
		FrameInterval: 33 * time.Millisecond,
		Step:          spiro.DefaultStep,
		OutDir:        ".",
		Color:         spiro.Black,
	}
}

const usageText = `Usage: spiro [flags] [R r l]

Draws spirographs. With no arguments, animates random curves in the
terminal. With R r l, draws the single curve with outer radius R, inner
radius r and pen offset l.

Keys: s save, t toggle cursors, space restart, q quit.

Flags:
`

// parseConfig parses args (without the program name).
func parseConfig(args []string, stderr io.Writer) (*Config, error) {
	cfg := defaultConfig()
	color := cfg.Color.Hex8()

	fs := flag.NewFlagSet("spiro", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.Width, "width", cfg.Width, "canvas width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "canvas height in pixels")
	fs.IntVar(&cfg.Count, "n", cfg.Count, "number of animated curves")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "animation tick interval")
	fs.DurationVar(&cfg.FrameInterval, "frame", cfg.FrameInterval, "terminal redraw interval")
	fs.IntVar(&cfg.Step, "step", cfg.Step, "angle step in degrees")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.StringVar(&cfg.OutDir, "dir", cfg.OutDir, "directory for saved drawings")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "single curve: write this PNG and exit without a terminal")
	fs.BoolVar(&cfg.Caption, "caption", cfg.Caption, "print curve parameters on saved PNGs")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "chime when the curves restart")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write logs to this file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	fs.StringVar(&color, "color", color, "single curve color as #rrggbb")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	c, err := spiro.ParseHex(color)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	cfg.Color = c

	switch fs.NArg() {
	case 0:
	case 3:
		p, err := parseParams(fs.Args())
		if err != nil {
			return nil, err
		}
		cfg.Single = &p
	default:
		return nil, fmt.Errorf("%w: want 0 or 3 positional arguments (R r l), got %d", errUsage, fs.NArg())
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseParams(args []string) (spiro.Params, error) {
	names := [3]string{"R", "r", "l"}
	var v [3]float64
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return spiro.Params{}, &argError{name: names[i], value: s, err: err}
		}
		v[i] = f
	}
	p, err := spiro.ParamsFromFloat(v[0], v[1], v[2])
	if err != nil {
		return spiro.Params{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	return p, nil
}

func (c *Config) validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: canvas size %dx%d", errUsage, c.Width, c.Height)
	case c.Count < 1:
		return fmt.Errorf("%w: -n must be positive", errUsage)
	case c.Interval <= 0 || c.FrameInterval <= 0:
		return fmt.Errorf("%w: intervals must be positive", errUsage)
	case c.Step < 1:
		return fmt.Errorf("%w: -step must be at least 1", errUsage)
	case c.Output != "" && c.Single == nil:
		return fmt.Errorf("%w: -o needs R r l", errUsage)
	}
	if c.Single == nil {
		ext := spiro.Extent{HalfWidth: c.Width / 2, HalfHeight: c.Height / 2}
		if err := ext.Validate(); err != nil {
			return fmt.Errorf("%w: canvas %dx%d: %w", errUsage, c.Width, c.Height, err)
		}
	}
	return nil
}
