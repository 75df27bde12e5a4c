// Package spiro generates and animates spirograph curves.
//
// # Overview
//
// A spirograph curve is traced by a point on a circle of radius r rolling
// inside a fixed circle of radius R, offset from the rolling circle's center
// by the fraction l of r. The curve closes after [RotationCount] full turns
// of the generating angle.
//
// The package has three layers:
//   - Curve math: [Params], [PointAt], [RotationCount]
//   - One curve instance: [Spiro], advanced one angular step at a time
//     (or drawn in one pass) against a shared [Surface]
//   - Many instances: [Animator], which randomizes parameters, advances all
//     curves on every [Animator.Tick] and restarts them together once every
//     curve has closed
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/spiro"
//	    "github.com/gogpu/spiro/canvas"
//	)
//
//	cv := canvas.New(800, 600)
//	a, err := spiro.NewAnimator(cv, 4, cv.Extent())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for range 1000 {
//	    a.Tick()
//	}
//	_ = cv.SavePNG("spiro.png")
//
// # Coordinate System
//
// Curve coordinates follow the turtle convention:
//   - Origin (0,0) at the center of the drawing
//   - X increases right
//   - Y increases up
//   - Angles in degrees for the step accumulator, radians for [PointAt]
//
// # Timing
//
// The package never starts timers. The host owns a repeating timer with
// [Animator.Interval] and calls [Animator.Tick]; see cmd/spiro.
package spiro

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
