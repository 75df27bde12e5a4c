// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const strokeStyle = "fill:none;stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round"

// svgUnits is the number of SVG user units per canvas pixel. svgo takes
// integer coordinates, so vertices are kept to a tenth of a pixel.
const svgUnits = 10

// EncodeSVG writes the canvas strokes as an SVG document of the logical
// canvas size. The viewBox is svgUnits times finer than the pixel grid and
// vertices are rounded to it. Cursor markers are not part of the vector
// output.
func (c *Canvas) EncodeSVG(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ew := &errWriter{w: w}
	t := c.fit(c.width, c.height)

	doc := svg.New(ew)
	vw, vh := c.width*svgUnits, c.height*svgUnits
	doc.Startview(c.width, c.height, 0, 0, vw, vh)
	doc.Title("spiro")
	doc.Rect(0, 0, vw, vh, "fill:"+c.background.Hex8())

	for _, id := range c.order {
		doc.Gid(fmt.Sprintf("spiro-%d", id))
		for _, s := range c.pens[id].strokes {
			if len(s.Points) < 2 {
				continue
			}
			xs := make([]int, len(s.Points))
			ys := make([]int, len(s.Points))
			for i, p := range s.Points {
				x, y := t.apply(p)
				xs[i], ys[i] = int(math.Round(x*svgUnits)), int(math.Round(y*svgUnits))
			}
			doc.Polyline(xs, ys, fmt.Sprintf(strokeStyle, s.Color.Hex8(), c.lineWidth*svgUnits))
		}
		doc.Gend()
	}
	doc.End()

	return ew.err
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
