package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/canvas"
	"github.com/gogpu/spiro/internal/chime"
	"github.com/gogpu/spiro/internal/termview"
)

// scene is what the host drives: the animator, or one fully drawn curve.
type scene interface {
	Tick() bool
	RestartAll() error
	ToggleCursors()
	HideCursors() (restore func())
	Cycle() int
	Spiros() []*spiro.Spiro
}

// singleScene shows one curve drawn in a single pass.
type singleScene struct {
	sp *spiro.Spiro
}

func newSingleScene(s spiro.Surface, c spiro.Color, p spiro.Params, opts ...spiro.Option) (*singleScene, error) {
	sp, err := spiro.New(s, 0, spiro.Point{}, c, p, opts...)
	if err != nil {
		return nil, err
	}
	sp.DrawFull()
	return &singleScene{sp: sp}, nil
}

func (s *singleScene) Tick() bool { return false }

func (s *singleScene) RestartAll() error {
	s.sp.Clear()
	s.sp.Restart()
	s.sp.DrawFull()
	return nil
}

func (s *singleScene) ToggleCursors() { s.sp.ToggleCursor() }

func (s *singleScene) HideCursors() (restore func()) {
	was := s.sp.CursorVisible()
	s.sp.SetCursorVisible(false)
	return func() { s.sp.SetCursorVisible(was) }
}

func (s *singleScene) Cycle() int { return 0 }

func (s *singleScene) Spiros() []*spiro.Spiro { return []*spiro.Spiro{s.sp} }

// app is the interactive terminal host. It owns the timers; everything runs
// on the goroutine that calls run.
type app struct {
	cfg    *Config
	screen tcell.Screen
	view   *termview.View
	canvas *canvas.Canvas
	scene  scene
	chime  *chime.Chime

	exporter canvas.Exporter
	now      func() time.Time
	message  string
}

func newApp(cfg *Config, screen tcell.Screen) (*app, error) {
	a := &app{
		cfg:      cfg,
		screen:   screen,
		view:     termview.New(screen),
		canvas:   canvas.New(cfg.Width, cfg.Height),
		exporter: canvas.Exporter{Dir: cfg.OutDir},
		now:      time.Now,
	}
	if err := a.setup(); err != nil {
		return nil, err
	}
	return a, nil
}

// setup builds the scene for cfg on a.canvas.
func (a *app) setup() error {
	spiroOpts := []spiro.Option{spiro.WithStep(a.cfg.Step)}

	if a.cfg.Single != nil {
		sc, err := newSingleScene(a.canvas, a.cfg.Color, *a.cfg.Single, spiroOpts...)
		if err != nil {
			return err
		}
		a.scene = sc
		return nil
	}

	opts := []spiro.AnimatorOption{
		spiro.WithInterval(a.cfg.Interval),
		spiro.WithSpiroOptions(spiroOpts...),
		spiro.WithRestartHook(a.onRestart),
	}
	if a.cfg.Seed != 0 {
		opts = append(opts, spiro.WithSeed(a.cfg.Seed))
	}
	anim, err := spiro.NewAnimator(a.canvas, a.cfg.Count, a.canvas.Extent(), opts...)
	if err != nil {
		return fmt.Errorf("create animator: %w", err)
	}
	a.scene = anim
	return nil
}

// enableSound opens the audio device for restart chimes. A missing device
// only costs the sound.
func (a *app) enableSound() {
	c := &chime.Chime{}
	if err := c.Init(); err != nil {
		spiro.Logger().Warn("spiro: sound disabled", "err", err)
		return
	}
	a.chime = c
}

func (a *app) onRestart(cycle int) {
	if a.chime == nil {
		return
	}
	if err := a.chime.Play(cycle); err != nil {
		spiro.Logger().Warn("spiro: chime failed", "err", err)
	}
}

func (a *app) close() {
	if a.chime != nil {
		a.chime.Close()
	}
}

// run drives the animation until the user quits or ctx is done.
func (a *app) run(ctx context.Context) error {
	tick := time.NewTicker(a.cfg.Interval)
	defer tick.Stop()
	frame := time.NewTicker(a.cfg.FrameInterval)
	defer frame.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	if err := a.draw(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.handleInput(ev) {
				return nil
			}
			if err := a.draw(); err != nil {
				return err
			}
		case <-tick.C:
			a.scene.Tick()
		case <-frame.C:
			if err := a.draw(); err != nil {
				return err
			}
		}
	}
}

// handleInput applies one terminal event and reports whether to keep going.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 's', 'S':
				a.save()
			case 't', 'T':
				a.scene.ToggleCursors()
			case ' ':
				if err := a.scene.RestartAll(); err != nil {
					spiro.Logger().Error("spiro: restart failed", "err", err)
				}
				a.message = "restarted"
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// save writes a snapshot with cursors hidden and reports it on the status line.
func (a *app) save() {
	e := a.exporter
	if a.cfg.Caption {
		e.Caption = caption(a.scene.Spiros())
	}
	paths, err := e.Export(a.canvas, a.scene, a.now())
	if err != nil {
		spiro.Logger().Error("spiro: save failed", "err", err)
		a.message = "save failed: " + err.Error()
		return
	}
	a.message = "saved " + strings.Join(paths, ", ")
}

func (a *app) draw() error {
	return a.view.Draw(a.canvas, a.status())
}

func (a *app) status() string {
	var b strings.Builder
	if a.cfg.Single != nil {
		p := *a.cfg.Single
		fmt.Fprintf(&b, " R=%d r=%d l=%g", p.R, p.Rs, p.L)
	} else {
		fmt.Fprintf(&b, " %d curves  cycle %d", len(a.scene.Spiros()), a.scene.Cycle())
	}
	b.WriteString("  [s]ave [t]urtles [space] restart [q]uit")
	if a.message != "" {
		b.WriteString("  ")
		b.WriteString(a.message)
	}
	return b.String()
}

// caption describes the curves on screen, one "R=.. r=.. l=.." group each.
func caption(spiros []*spiro.Spiro) string {
	parts := make([]string, len(spiros))
	for i, sp := range spiros {
		p := sp.Params()
		parts[i] = fmt.Sprintf("R=%d r=%d l=%.2f", p.R, p.Rs, p.L)
	}
	return strings.Join(parts, "  ")
}
