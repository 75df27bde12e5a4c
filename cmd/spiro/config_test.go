package main

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/gogpu/spiro"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Count != 4 {
		t.Errorf("Count = %d, want 4", cfg.Count)
	}
	if cfg.Interval != spiro.DefaultInterval {
		t.Errorf("Interval = %v, want %v", cfg.Interval, spiro.DefaultInterval)
	}
	if cfg.Step != spiro.DefaultStep {
		t.Errorf("Step = %d, want %d", cfg.Step, spiro.DefaultStep)
	}
	if cfg.Color != spiro.Black {
		t.Errorf("Color = %v, want black", cfg.Color)
	}
	if cfg.Single != nil {
		t.Errorf("Single = %+v, want nil", *cfg.Single)
	}
}

func TestParseConfigSingle(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want spiro.Params
	}{
		{"integers", []string{"100", "30", "0.5"}, spiro.Params{R: 100, Rs: 30, L: 0.5}},
		{"truncated radii", []string{"100.9", "30.2", "0.75"}, spiro.Params{R: 100, Rs: 30, L: 0.75}},
		{"with flags", []string{"-color", "#ff0000", "-o", "x.png", "120", "40", "0.3"}, spiro.Params{R: 120, Rs: 40, L: 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfig(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("parseConfig(%q): %v", tt.args, err)
			}
			if cfg.Single == nil {
				t.Fatal("Single = nil, want params")
			}
			if *cfg.Single != tt.want {
				t.Errorf("Single = %+v, want %+v", *cfg.Single, tt.want)
			}
		})
	}
}

func TestParseConfigColor(t *testing.T) {
	cfg, err := parseConfig([]string{"-color", "#ff0000", "100", "30", "0.5"}, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if want := spiro.RGB(1, 0, 0); cfg.Color != want {
		t.Errorf("Color = %v, want %v", cfg.Color, want)
	}
}

func TestParseConfigUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"malformed R", []string{"abc", "30", "0.5"}},
		{"malformed l", []string{"100", "30", "half"}},
		{"two args", []string{"100", "30"}},
		{"four args", []string{"100", "30", "0.5", "1"}},
		{"r greater than R", []string{"30", "100", "0.5"}},
		{"zero r", []string{"100", "0", "0.5"}},
		{"unknown flag", []string{"-bogus"}},
		{"bad color", []string{"-color", "blue", "100", "30", "0.5"}},
		{"zero count", []string{"-n", "0"}},
		{"zero step", []string{"-step", "0"}},
		{"negative interval", []string{"-interval", "-1ms"}},
		{"output without curve", []string{"-o", "x.png"}},
		{"canvas too small", []string{"-width", "90", "-height", "90"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args, io.Discard)
			if !errors.Is(err, errUsage) {
				t.Errorf("parseConfig(%q) error = %v, want usage error", tt.args, err)
			}
		})
	}
}

func TestParseConfigArgumentError(t *testing.T) {
	_, err := parseConfig([]string{"100", "x", "0.5"}, io.Discard)
	var ae *argError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *argError", err)
	}
	if ae.name != "r" || ae.value != "x" {
		t.Errorf("argError = {%s %q}, want {r \"x\"}", ae.name, ae.value)
	}
}

func TestParseConfigSmallCanvasSingle(t *testing.T) {
	// One curve does not need room for random radii.
	cfg, err := parseConfig([]string{"-width", "90", "-height", "90", "40", "10", "0.5"}, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Width != 90 {
		t.Errorf("Width = %d, want 90", cfg.Width)
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := parseConfig([]string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
}

func TestParseConfigDurations(t *testing.T) {
	cfg, err := parseConfig([]string{"-interval", "20ms", "-frame", "50ms", "-seed", "7"}, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Interval != 20*time.Millisecond || cfg.FrameInterval != 50*time.Millisecond {
		t.Errorf("intervals = %v/%v, want 20ms/50ms", cfg.Interval, cfg.FrameInterval)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
}
