// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/spiro"
)

// transform maps logical canvas coordinates (origin at center, Y up) to
// device pixels (origin top-left, Y down).
type transform struct {
	scale  float64
	ox, oy float64
}

// fit returns the transform that scales the canvas uniformly into a
// w x h device and centers it.
func (c *Canvas) fit(w, h int) transform {
	sx := float64(w) / float64(c.width)
	sy := float64(h) / float64(c.height)
	return transform{
		scale: math.Min(sx, sy),
		ox:    float64(w) / 2,
		oy:    float64(h) / 2,
	}
}

func (t transform) apply(p spiro.Point) (x, y float64) {
	return t.ox + p.X*t.scale, t.oy - p.Y*t.scale
}

// Render draws the background, every stroke and every visible cursor into
// dc, scaled to fit the context.
func (c *Canvas) Render(dc *gg.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.fit(dc.Width(), dc.Height())

	dc.ClearWithColor(ggColor(c.background))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineWidth(math.Max(1, c.lineWidth*t.scale))

	for _, id := range c.order {
		for _, s := range c.pens[id].strokes {
			if err := strokePolyline(dc, t, s); err != nil {
				return fmt.Errorf("canvas: stroke instance %d: %w", id, err)
			}
		}
	}

	size := math.Max(2, c.cursorSize*t.scale)
	for _, id := range c.order {
		cur := c.pens[id].cursor()
		if !cur.Visible {
			continue
		}
		if err := drawCursor(dc, t, cur, size); err != nil {
			return fmt.Errorf("canvas: cursor instance %d: %w", id, err)
		}
	}
	return nil
}

func strokePolyline(dc *gg.Context, t transform, s Stroke) error {
	if len(s.Points) < 2 {
		return nil
	}
	dc.SetColor(s.Color.NRGBA())
	x, y := t.apply(s.Points[0])
	dc.MoveTo(x, y)
	for _, p := range s.Points[1:] {
		x, y = t.apply(p)
		dc.LineTo(x, y)
	}
	return dc.Stroke()
}

// drawCursor draws a filled marker of the given device size at the cursor.
func drawCursor(dc *gg.Context, t transform, cur Cursor, size float64) error {
	x, y := t.apply(cur.Pos)
	// Device Y points down, so the heading flips sign.
	h := -cur.Heading
	dc.SetColor(cur.Color.NRGBA())

	switch cur.Shape {
	case spiro.CursorCircle:
		dc.DrawCircle(x, y, size/2)
	case spiro.CursorTurtle:
		r := size * 0.4
		dc.DrawCircle(x, y, r)
		if err := dc.Fill(); err != nil {
			return err
		}
		// Head ahead of the shell, four legs at the diagonals.
		dc.DrawCircle(x+math.Cos(h)*r*1.4, y+math.Sin(h)*r*1.4, r*0.45)
		if err := dc.Fill(); err != nil {
			return err
		}
		for _, a := range []float64{math.Pi / 4, 3 * math.Pi / 4, 5 * math.Pi / 4, 7 * math.Pi / 4} {
			dc.DrawCircle(x+math.Cos(h+a)*r, y+math.Sin(h+a)*r, r*0.35)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
		return nil
	default:
		tip := size * 0.6
		back := size * 0.4
		dc.MoveTo(x+math.Cos(h)*tip, y+math.Sin(h)*tip)
		dc.LineTo(x+math.Cos(h+2.5)*back, y+math.Sin(h+2.5)*back)
		dc.LineTo(x+math.Cos(h-2.5)*back, y+math.Sin(h-2.5)*back)
		dc.ClosePath()
	}
	return dc.Fill()
}

func ggColor(c spiro.Color) gg.RGBA {
	return gg.RGB(c.R, c.G, c.B)
}

// Context renders the canvas into a new gg.Context of its logical size.
func (c *Canvas) Context() (*gg.Context, error) {
	dc := gg.NewContext(c.width, c.height)
	if err := c.Render(dc); err != nil {
		return nil, err
	}
	return dc, nil
}

// Image renders the canvas at its logical size.
func (c *Canvas) Image() (image.Image, error) {
	dc, err := c.Context()
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG renders the canvas at its logical size and writes it as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	dc, err := c.Context()
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders the canvas at its logical size to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	dc, err := c.Context()
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}
