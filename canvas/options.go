// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import "github.com/gogpu/spiro"

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	background spiro.Color
	lineWidth  float64
	cursorSize float64
}

func defaultOptions() options {
	return options{
		background: spiro.White,
		lineWidth:  1,
		cursorSize: 12,
	}
}

// WithBackground sets the background color. The default is white.
func WithBackground(c spiro.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLineWidth sets the stroke width in logical pixels. Rendering never
// draws strokes thinner than one device pixel. Non-positive values are ignored.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithCursorSize sets the cursor marker size in logical pixels.
// Non-positive values are ignored.
func WithCursorSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.cursorSize = size
		}
	}
}
