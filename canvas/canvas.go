// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"slices"
	"sync"

	"github.com/gogpu/spiro"
)

// Stroke is one continuous polyline drawn by an instance.
type Stroke struct {
	Color  spiro.Color
	Points []spiro.Point
}

// Cursor is the state of an instance's cursor marker.
type Cursor struct {
	Pos     spiro.Point
	Heading float64 // radians, direction of the last move
	Visible bool
	Shape   spiro.CursorShape
	Color   spiro.Color
}

// pen is the per-instance drawing state.
type pen struct {
	color   spiro.Color
	pos     spiro.Point
	placed  bool
	heading float64
	strokes []Stroke

	// open reports whether the last stroke continues from pos.
	open bool

	cursorVisible bool
	shape         spiro.CursorShape
}

// Canvas is a vector drawing surface implementing spiro.Surface.
//
// Example:
//
//	cv := canvas.New(800, 600, canvas.WithBackground(spiro.White))
//	s, _ := spiro.New(cv, 0, spiro.Pt(0, 0), spiro.Black, params)
//	s.DrawFull()
//	_ = cv.SavePNG("curve.png")
type Canvas struct {
	mu     sync.Mutex
	width  int
	height int

	background spiro.Color
	lineWidth  float64
	cursorSize float64

	pens  map[spiro.InstanceID]*pen
	order []spiro.InstanceID
}

// Compile-time check.
var _ spiro.Surface = (*Canvas)(nil)

// New creates a canvas with the given logical size in pixels.
// Sizes below 1 are raised to 1.
func New(width, height int, opts ...Option) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Canvas{
		width:      width,
		height:     height,
		background: o.background,
		lineWidth:  o.lineWidth,
		cursorSize: o.cursorSize,
		pens:       make(map[spiro.InstanceID]*pen),
	}
}

// Size returns the logical canvas size.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Extent returns the half-size of the canvas, the randomization extent
// for spiro.NewAnimator.
func (c *Canvas) Extent() spiro.Extent {
	return spiro.Extent{HalfWidth: c.width / 2, HalfHeight: c.height / 2}
}

// pen returns the pen of id, creating it on first use. c.mu must be held.
func (c *Canvas) pen(id spiro.InstanceID) *pen {
	p, ok := c.pens[id]
	if !ok {
		p = &pen{color: spiro.Black, shape: spiro.CursorTurtle}
		c.pens[id] = p
		c.order = append(c.order, id)
	}
	return p
}

// MoveTo moves the instance's pen, drawing a segment when penDown is set
// and the pen has been placed before.
func (c *Canvas) MoveTo(id spiro.InstanceID, p spiro.Point, penDown bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pn := c.pen(id)
	if penDown && pn.placed {
		if !pn.open {
			pn.strokes = append(pn.strokes, Stroke{
				Color:  pn.color,
				Points: []spiro.Point{pn.pos},
			})
			pn.open = true
		}
		last := &pn.strokes[len(pn.strokes)-1]
		last.Points = append(last.Points, p)
	} else {
		pn.open = false
	}

	if pn.placed {
		if d := p.Sub(pn.pos); d.Length() > 0 {
			pn.heading = d.Angle()
		}
	}
	pn.pos = p
	pn.placed = true
}

// SetColor sets the color of the instance's following strokes.
func (c *Canvas) SetColor(id spiro.InstanceID, col spiro.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pn := c.pen(id)
	if pn.color != col {
		pn.color = col
		pn.open = false
	}
}

// ClearStrokes erases the instance's strokes. The pen keeps its position.
func (c *Canvas) ClearStrokes(id spiro.InstanceID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pn := c.pen(id)
	pn.strokes = nil
	pn.open = false
}

// SetCursorVisible shows or hides the instance's cursor marker.
func (c *Canvas) SetCursorVisible(id spiro.InstanceID, visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pen(id).cursorVisible = visible
}

// SetCursorShape selects the instance's cursor marker. Unknown shapes are
// drawn as arrows.
func (c *Canvas) SetCursorShape(id spiro.InstanceID, shape spiro.CursorShape) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pen(id).shape = shape
}

// Reset removes every instance, stroke and cursor.
func (c *Canvas) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pens = make(map[spiro.InstanceID]*pen)
	c.order = nil
}

// Instances returns the ids that have used the canvas, in first-use order.
func (c *Canvas) Instances() []spiro.InstanceID {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.order)
}

// Strokes returns a copy of the instance's strokes.
func (c *Canvas) Strokes(id spiro.InstanceID) []Stroke {
	c.mu.Lock()
	defer c.mu.Unlock()

	pn, ok := c.pens[id]
	if !ok {
		return nil
	}
	out := make([]Stroke, len(pn.strokes))
	for i, s := range pn.strokes {
		out[i] = Stroke{Color: s.Color, Points: slices.Clone(s.Points)}
	}
	return out
}

// Cursor returns the instance's cursor state.
func (c *Canvas) Cursor(id spiro.InstanceID) (Cursor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pn, ok := c.pens[id]
	if !ok {
		return Cursor{}, false
	}
	return pn.cursor(), true
}

func (pn *pen) cursor() Cursor {
	return Cursor{
		Pos:     pn.pos,
		Heading: pn.heading,
		Visible: pn.cursorVisible,
		Shape:   pn.shape,
		Color:   pn.color,
	}
}

// SegmentCount returns the number of line segments drawn on the canvas.
func (c *Canvas) SegmentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, pn := range c.pens {
		for _, s := range pn.strokes {
			n += len(s.Points) - 1
		}
	}
	return n
}
