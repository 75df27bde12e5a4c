// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/spiro"
)

func TestEncodeSVG(t *testing.T) {
	cv := New(400, 300)
	cv.SetColor(0, spiro.RGB(1, 0, 0))
	cv.MoveTo(0, spiro.Pt(-100, 0), false)
	cv.MoveTo(0, spiro.Pt(100, 0), true)
	cv.MoveTo(0, spiro.Pt(100, 50), true)
	cv.SetColor(1, spiro.RGB(0, 0, 1))
	cv.MoveTo(1, spiro.Pt(0, 0), false)

	var buf bytes.Buffer
	if err := cv.EncodeSVG(&buf); err != nil {
		t.Fatalf("EncodeSVG: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`width="400"`,
		`height="300"`,
		`id="spiro-0"`,
		`id="spiro-1"`,
		`viewBox="0 0 4000 3000"`,
		"1000,1500 3000,1500",
		"3000,1000",
		"stroke-width:10;",
		"stroke:#ff0000",
		"fill:#ffffff",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "#0000ff") {
		t.Error("instance without strokes produced a polyline")
	}
}

func TestEncodeSVG_SubpixelVertices(t *testing.T) {
	cv := New(400, 300)
	cv.MoveTo(0, spiro.Pt(0.34, 0), false)
	cv.MoveTo(0, spiro.Pt(10.26, -0.47), true)

	var buf bytes.Buffer
	if err := cv.EncodeSVG(&buf); err != nil {
		t.Fatalf("EncodeSVG: %v", err)
	}
	// (200.34, 150) and (210.26, 150.47) on the pixel grid.
	if want := "2003,1500 2103,1505"; !strings.Contains(buf.String(), want) {
		t.Errorf("SVG output missing %q:\n%s", want, buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeSVG_WriteError(t *testing.T) {
	cv := New(10, 10)
	if err := cv.EncodeSVG(failingWriter{}); err == nil {
		t.Error("EncodeSVG() = nil, want the writer's error")
	}
}
