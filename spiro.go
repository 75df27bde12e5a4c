package spiro

// Spiro is one spirograph curve being drawn on a shared Surface.
//
// A Spiro is either in progress or complete. Step advances an in-progress
// curve by one angular step and draws the segment to the new point; once the
// accumulated angle reaches the curve's period the instance is complete and
// further steps do nothing. Restart and SetParams return it to the start.
//
// Spiro is not safe for concurrent use.
type Spiro struct {
	id      InstanceID
	surface Surface

	center Point
	color  Color
	params Params

	step     int
	angle    int
	complete bool
	cursor   bool
}

// New creates a curve instance drawing on s under the given id and anchors
// its pen at the curve's starting point. No stroke is drawn for the jump.
func New(s Surface, id InstanceID, center Point, c Color, p Params, opts ...Option) (*Spiro, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sp := &Spiro{
		id:      id,
		surface: s,
		step:    o.step,
	}
	s.SetCursorShape(id, o.shape)
	sp.apply(center, c, p)
	sp.Restart()
	return sp, nil
}

// SetParams replaces the curve's center, color and parameters and restarts
// it. Strokes already drawn stay on the surface; call Clear first for a
// fresh canvas. Invalid parameters leave the instance unchanged.
func (s *Spiro) SetParams(center Point, c Color, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.apply(center, c, p)
	s.Restart()
	return nil
}

func (s *Spiro) apply(center Point, c Color, p Params) {
	s.center = center
	s.color = c
	s.params = p
	s.surface.SetColor(s.id, c)
}

// Restart resets the angle, clears the completion flag, shows the cursor
// and moves the pen, lifted, back to the starting point.
func (s *Spiro) Restart() {
	s.angle = 0
	s.complete = false
	s.SetCursorVisible(true)
	s.surface.MoveTo(s.id, s.pointAt(0), false)
}

// Step advances the curve by one angular step, drawing a segment to the new
// point. It reports whether the curve advanced; a complete curve does not.
// The step that reaches the period completes the curve and hides its cursor.
func (s *Spiro) Step() bool {
	if s.complete {
		return false
	}

	s.angle += s.step
	s.surface.MoveTo(s.id, s.pointAt(s.angle), true)

	if s.angle >= s.params.Period() {
		s.complete = true
		s.SetCursorVisible(false)
	}
	return true
}

// DrawFull draws the whole curve in one pass, from angle 0 to the period
// inclusive, and leaves the instance complete with its cursor hidden.
func (s *Spiro) DrawFull() {
	period := s.params.Period()
	last := 0
	for deg := 0; deg <= period; deg += s.step {
		s.surface.MoveTo(s.id, s.pointAt(deg), true)
		last = deg
	}
	if last < period {
		// The step does not divide the period; close the curve exactly.
		s.surface.MoveTo(s.id, s.pointAt(period), true)
	}
	s.angle = period
	s.complete = true
	s.SetCursorVisible(false)
}

// Clear erases every stroke this instance has drawn, whatever its state.
func (s *Spiro) Clear() {
	s.surface.ClearStrokes(s.id)
}

// SetCursorVisible shows or hides the cursor marker.
func (s *Spiro) SetCursorVisible(visible bool) {
	s.cursor = visible
	s.surface.SetCursorVisible(s.id, visible)
}

// ToggleCursor flips cursor visibility. Strokes and progress are unaffected.
func (s *Spiro) ToggleCursor() {
	s.SetCursorVisible(!s.cursor)
}

// pointAt returns the surface position of the pen at deg degrees.
func (s *Spiro) pointAt(deg int) Point {
	return s.center.Add(PointAtDegrees(s.params, deg))
}

// ID returns the instance id used on the surface.
func (s *Spiro) ID() InstanceID { return s.id }

// Center returns the curve center.
func (s *Spiro) Center() Point { return s.center }

// Color returns the stroke color.
func (s *Spiro) Color() Color { return s.color }

// Params returns the curve parameters.
func (s *Spiro) Params() Params { return s.params }

// Angle returns the accumulated generating angle in degrees.
func (s *Spiro) Angle() int { return s.angle }

// StepSize returns the angle increment in degrees.
func (s *Spiro) StepSize() int { return s.step }

// Complete reports whether the curve has closed.
func (s *Spiro) Complete() bool { return s.complete }

// CursorVisible reports whether the cursor marker is shown.
func (s *Spiro) CursorVisible() bool { return s.cursor }
