package spiro

import (
	"math"
)

// Params holds the parameters of one spirograph curve.
//
// R is the radius of the fixed circle, Rs the radius of the rolling circle
// and L the offset of the pen from the rolling circle's center as a fraction
// of Rs. Radii are integers so that the rotation count is exact.
type Params struct {
	R  int
	Rs int
	L  float64
}

// MaxInputRadius bounds the radii ParamsFromFloat accepts.
const MaxInputRadius = math.MaxInt32

// maxRotationCount keeps 360*RotationCount within an int.
const maxRotationCount = math.MaxInt / 360

// Validate reports whether the parameters describe a closed curve.
// L is not range-checked; values outside (0, 1) still produce a curve.
func (p Params) Validate() error {
	switch {
	case p.R < 1:
		return &ParamsError{Field: "R", Value: float64(p.R), Reason: "outer radius must be at least 1"}
	case p.Rs < 1:
		return &ParamsError{Field: "r", Value: float64(p.Rs), Reason: "inner radius must be at least 1"}
	case p.Rs > p.R:
		return &ParamsError{Field: "r", Value: float64(p.Rs), Reason: "inner radius must not exceed outer radius"}
	case !isFinite(p.L):
		return &ParamsError{Field: "l", Value: p.L, Reason: "offset must be finite"}
	case p.RotationCount() > maxRotationCount:
		return &ParamsError{Field: "r", Value: float64(p.Rs), Reason: "curve period overflows"}
	}
	return nil
}

// K returns the radius ratio r/R.
func (p Params) K() float64 {
	return float64(p.Rs) / float64(p.R)
}

// RotationCount returns the number of full turns after which the curve closes.
func (p Params) RotationCount() int {
	return RotationCount(p.Rs, p.R)
}

// Period returns the generating angle, in degrees, after which the curve closes.
func (p Params) Period() int {
	return 360 * p.RotationCount()
}

// ParamsFromFloat builds Params from real-valued radii. Fractional radii are
// truncated toward zero; a truncation that drops a fraction is logged.
// Radii beyond MaxInputRadius in magnitude are rejected.
func ParamsFromFloat(R, r, l float64) (Params, error) {
	if err := checkRadius("R", R); err != nil {
		return Params{}, err
	}
	if err := checkRadius("r", r); err != nil {
		return Params{}, err
	}
	p := Params{R: int(R), Rs: int(r), L: l}
	if float64(p.R) != R || float64(p.Rs) != r {
		Logger().Warn("spiro: fractional radius truncated",
			"R", R, "r", r, "truncated_R", p.R, "truncated_r", p.Rs)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// RotationCount returns r / gcd(r, R), the number of full turns of the
// generating angle before the curve with radii R and r closes.
// r must be at least 1.
func RotationCount(r, R int) int {
	return r / gcd(r, R)
}

// PointAt returns the curve point, relative to the curve center, at
// generating angle a in radians. p.R must be positive.
func PointAt(p Params, a float64) Point {
	R := float64(p.R)
	k := p.K()
	l := p.L
	b := (1 - k) * a / k
	return Point{
		X: R * ((1-k)*math.Cos(a) + l*k*math.Cos(b)),
		Y: R * ((1-k)*math.Sin(a) + l*k*math.Sin(b)),
	}
}

// PointAtDegrees is PointAt with the angle given in whole degrees.
func PointAtDegrees(p Params, deg int) Point {
	return PointAt(p, float64(deg)*math.Pi/180)
}

func checkRadius(field string, v float64) error {
	switch {
	case !isFinite(v):
		return &ParamsError{Field: field, Value: v, Reason: "radius must be finite"}
	case math.Abs(v) > MaxInputRadius:
		return &ParamsError{Field: field, Value: v, Reason: "radius out of range"}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
