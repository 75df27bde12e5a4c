// Command spiro draws and animates spirograph curves in the terminal.
//
// Usage:
//
//	spiro [flags]          animate random curves
//	spiro [flags] R r l    draw one curve
//	spiro -o out.png R r l render one curve to a file and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/canvas"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "spiro: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "spiro: %v\n", err)
		return 1
	}
	defer closeLog()

	fmt.Fprintln(stdout, "generating spirograph...")

	if cfg.Output != "" {
		err = renderFile(cfg)
	} else {
		err = interactive(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "spiro: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging routes library logs to cfg.LogFile. The terminal belongs to
// the animation, so without a file logs are discarded.
func setupLogging(cfg *Config) (func(), error) {
	if cfg.LogFile == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	spiro.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() {
		spiro.SetLogger(nil)
		_ = f.Close()
	}, nil
}

// renderFile draws the single curve and writes it as PNG to cfg.Output.
func renderFile(cfg *Config) error {
	cv := canvas.New(cfg.Width, cfg.Height)
	if _, err := newSingleScene(cv, cfg.Color, *cfg.Single, spiro.WithStep(cfg.Step)); err != nil {
		return err
	}
	if err := cv.SavePNG(cfg.Output); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}
	spiro.Logger().Info("spiro: curve written", "file", cfg.Output)
	return nil
}

func interactive(cfg *Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	a, err := newApp(cfg, screen)
	if err != nil {
		return err
	}
	if cfg.Sound {
		a.enableSound()
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return a.run(ctx)
}
