package spiro

import (
	"math/rand/v2"
)

// Randomization bounds for generated curves.
const (
	// MinRadius is the smallest generated outer radius.
	MinRadius = 50

	// MinInnerRadius is the smallest generated inner radius.
	MinInnerRadius = 10

	// MinOffset and MaxOffset bound the generated pen offset, keeping clear
	// of the degenerate circle (l=0) and line (l=1) cases.
	MinOffset = 0.1
	MaxOffset = 0.9
)

// Extent is the half-size of the drawing area in curve coordinates.
// Curve centers are placed in [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight].
type Extent struct {
	HalfWidth  int
	HalfHeight int
}

// maxRadius returns the largest generated outer radius, min(W, H)/2.
func (e Extent) maxRadius() int {
	return min(e.HalfWidth, e.HalfHeight) / 2
}

// Validate reports whether the extent leaves room for the randomization policy.
func (e Extent) Validate() error {
	if e.maxRadius() < MinRadius {
		return ErrInvalidExtent
	}
	return nil
}

// Curve is a complete set of parameters for one curve instance.
type Curve struct {
	Center Point
	Color  Color
	Params Params
}

// RandomCurve draws curve parameters from rng:
//   - R uniform integer in [MinRadius, min(W, H)/2]
//   - r uniform integer in [MinInnerRadius, 9R/10]
//   - l uniform real in [MinOffset, MaxOffset]
//   - center uniform integer in [-W, W] x [-H, H]
//   - color three independent uniform reals in [0, 1]
//
// ext must satisfy Extent.Validate.
func RandomCurve(rng *rand.Rand, ext Extent) Curve {
	R := intBetween(rng, MinRadius, ext.maxRadius())
	r := intBetween(rng, MinInnerRadius, 9*R/10)
	l := MinOffset + rng.Float64()*(MaxOffset-MinOffset)

	xc := intBetween(rng, -ext.HalfWidth, ext.HalfWidth)
	yc := intBetween(rng, -ext.HalfHeight, ext.HalfHeight)

	return Curve{
		Center: Pt(float64(xc), float64(yc)),
		Color:  RGB(rng.Float64(), rng.Float64(), rng.Float64()),
		Params: Params{R: R, Rs: r, L: l},
	}
}

// intBetween returns a uniform integer in [lo, hi]. hi must be >= lo.
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
