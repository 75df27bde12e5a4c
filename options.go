package spiro

import (
	"math/rand/v2"
	"time"
)

// Defaults used when no option overrides them.
const (
	// DefaultStep is the angle, in degrees, a Spiro advances per step.
	DefaultStep = 5

	// DefaultInterval is the tick interval an animator host should use.
	DefaultInterval = 10 * time.Millisecond
)

// Option configures a Spiro during creation.
//
// Example:
//
//	s, err := spiro.New(cv, 0, spiro.Pt(0, 0), spiro.Black, p,
//	    spiro.WithStep(2),
//	    spiro.WithCursorShape(spiro.CursorArrow))
type Option func(*options)

// options holds optional configuration for Spiro creation.
type options struct {
	step  int
	shape CursorShape
}

// defaultOptions returns the default Spiro options.
func defaultOptions() options {
	return options{
		step:  DefaultStep,
		shape: CursorTurtle,
	}
}

// WithStep sets the angle increment in degrees. Values below 1 are ignored.
func WithStep(deg int) Option {
	return func(o *options) {
		if deg >= 1 {
			o.step = deg
		}
	}
}

// WithCursorShape sets the cursor marker shown while the curve is drawn.
func WithCursorShape(shape CursorShape) Option {
	return func(o *options) {
		if shape != "" {
			o.shape = shape
		}
	}
}

// AnimatorOption configures an Animator during creation.
//
// Example:
//
//	a, err := spiro.NewAnimator(cv, 4, cv.Extent(),
//	    spiro.WithSeed(42),
//	    spiro.WithRestartHook(func(cycle int) { log.Println("cycle", cycle) }))
type AnimatorOption func(*animatorOptions)

// animatorOptions holds optional configuration for Animator creation.
type animatorOptions struct {
	rng       *rand.Rand
	interval  time.Duration
	spiroOpts []Option
	onRestart func(cycle int)
}

// defaultAnimatorOptions returns the default Animator options.
func defaultAnimatorOptions() animatorOptions {
	return animatorOptions{
		rng:      nil, // Will be seeded from the runtime if nil
		interval: DefaultInterval,
	}
}

// WithRand sets the random source used for parameter generation.
// Use this to make an animation reproducible.
func WithRand(rng *rand.Rand) AnimatorOption {
	return func(o *animatorOptions) {
		o.rng = rng
	}
}

// WithSeed seeds a PCG random source for parameter generation.
func WithSeed(seed uint64) AnimatorOption {
	return func(o *animatorOptions) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithInterval sets the tick interval reported by Animator.Interval.
// Non-positive values are ignored.
func WithInterval(d time.Duration) AnimatorOption {
	return func(o *animatorOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithSpiroOptions applies opts to every Spiro the animator creates.
func WithSpiroOptions(opts ...Option) AnimatorOption {
	return func(o *animatorOptions) {
		o.spiroOpts = append(o.spiroOpts, opts...)
	}
}

// WithRestartHook registers fn to run after every collective restart.
// cycle counts completed restarts starting at 1. Explicit RestartAll calls
// do not fire the hook.
func WithRestartHook(fn func(cycle int)) AnimatorOption {
	return func(o *animatorOptions) {
		o.onRestart = fn
	}
}
