package spiro

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Animator drives a fixed set of randomly parameterized curves.
//
// Each Tick advances every curve by one step. When a tick finds every curve
// complete, all of them are cleared and restarted with new random
// parameters, together: a curve that finishes early waits for the rest.
//
// Animator does not schedule itself. The host calls Tick every Interval.
// Animator is not safe for concurrent use.
type Animator struct {
	surface Surface
	extent  Extent
	rng     *rand.Rand

	spiros   []*Spiro
	interval time.Duration
	cycle    int

	onRestart func(cycle int)

	// generate draws the parameters for each (re)start.
	generate func(rng *rand.Rand, ext Extent) Curve
}

// NewAnimator creates count curves on s with parameters drawn from the
// randomization policy for ext (see RandomCurve). Instance ids are 0..count-1
// in construction order.
func NewAnimator(s Surface, count int, ext Extent, opts ...AnimatorOption) (*Animator, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if err := ext.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %+v", err, ext)
	}

	o := defaultAnimatorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	a := &Animator{
		surface:   s,
		extent:    ext,
		rng:       o.rng,
		spiros:    make([]*Spiro, 0, count),
		interval:  o.interval,
		onRestart: o.onRestart,
		generate:  RandomCurve,
	}

	for i := 0; i < count; i++ {
		c := a.generate(a.rng, ext)
		sp, err := New(s, InstanceID(i), c.Center, c.Color, c.Params, o.spiroOpts...)
		if err != nil {
			return nil, fmt.Errorf("spiro: instance %d: %w", i, err)
		}
		logCurve(sp)
		a.spiros = append(a.spiros, sp)
	}

	Logger().Info("spiro: animator created",
		"count", count, "half_width", ext.HalfWidth, "half_height", ext.HalfHeight,
		"interval", a.interval)
	return a, nil
}

// Tick advances every curve by one step, in construction order. If every
// curve is complete after the step, all curves restart together and Tick
// reports true. A partially complete set never restarts.
func (a *Animator) Tick() bool {
	for _, sp := range a.spiros {
		sp.Step()
	}

	if !a.AllComplete() {
		return false
	}

	if err := a.RestartAll(); err != nil {
		Logger().Error("spiro: restart failed", "err", err)
	}
	a.cycle++
	Logger().Info("spiro: all curves complete, restarted", "cycle", a.cycle)
	if a.onRestart != nil {
		a.onRestart(a.cycle)
	}
	return true
}

// AllComplete reports whether every curve has closed. This is the barrier
// Tick checks before restarting.
func (a *Animator) AllComplete() bool {
	for _, sp := range a.spiros {
		if !sp.Complete() {
			return false
		}
	}
	return true
}

// RestartAll clears every curve, gives it new random parameters and
// restarts it, whatever its state. A curve that fails keeps its previous
// parameters and restarts with them; the failures are returned joined.
func (a *Animator) RestartAll() error {
	var errs []error
	for _, sp := range a.spiros {
		sp.Clear()
		c := a.generate(a.rng, a.extent)
		if err := sp.SetParams(c.Center, c.Color, c.Params); err != nil {
			errs = append(errs, fmt.Errorf("instance %d: %w", sp.ID(), err))
			sp.Restart()
			continue
		}
		logCurve(sp)
	}
	return errors.Join(errs...)
}

// ToggleCursors flips the cursor visibility of every curve.
func (a *Animator) ToggleCursors() {
	for _, sp := range a.spiros {
		sp.ToggleCursor()
	}
}

// HideCursors hides every cursor and returns a function that restores the
// visibility each curve had before the call.
//
//	restore := a.HideCursors()
//	defer restore()
//	_ = cv.SavePNG(path)
func (a *Animator) HideCursors() (restore func()) {
	visible := make([]bool, len(a.spiros))
	for i, sp := range a.spiros {
		visible[i] = sp.CursorVisible()
		sp.SetCursorVisible(false)
	}
	return func() {
		for i, sp := range a.spiros {
			sp.SetCursorVisible(visible[i])
		}
	}
}

// Spiros returns the curves in construction order. The slice is a copy;
// the curves are shared.
func (a *Animator) Spiros() []*Spiro {
	out := make([]*Spiro, len(a.spiros))
	copy(out, a.spiros)
	return out
}

// Len returns the number of curves.
func (a *Animator) Len() int { return len(a.spiros) }

// Cycle returns the number of collective restarts triggered by Tick.
func (a *Animator) Cycle() int { return a.cycle }

// Interval returns the tick interval the host should use.
func (a *Animator) Interval() time.Duration { return a.interval }

// Extent returns the randomization extent.
func (a *Animator) Extent() Extent { return a.extent }

func logCurve(sp *Spiro) {
	p := sp.Params()
	Logger().Debug("spiro: curve parameters",
		"id", sp.ID(), "R", p.R, "r", p.Rs, "l", p.L,
		"rotations", p.RotationCount(), "center", sp.Center(), "color", sp.Color().Hex8())
}
