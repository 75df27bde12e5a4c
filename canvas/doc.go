// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas provides the drawing surface for spirograph curves.
//
// Canvas implements spiro.Surface as a vector stroke store: every instance
// keeps its own pen, color, cursor and list of polylines. Keeping strokes
// per instance lets ClearStrokes erase one curve without a global undo log,
// and lets the same drawing be rendered at any resolution.
//
// # Rendering
//
// Render draws the canvas into a gg.Context of any size, scaled to fit and
// centered. The logical coordinate system is the turtle one: origin at the
// center, Y up.
//
//	cv := canvas.New(800, 600)
//	// ... draw with spiro.Spiro or spiro.Animator ...
//	dc := gg.NewContext(1600, 1200)
//	if err := cv.Render(dc); err != nil {
//	    return err
//	}
//	_ = dc.SavePNG("spiro.png")
//
// # Export
//
// Exporter writes timestamped PNG (rasterized with gg) and SVG (written with
// svgo) snapshots, hiding cursor markers while the snapshot is taken.
//
// # Thread Safety
//
// Canvas serializes all calls with a mutex, so rendering from one goroutine
// while another advances the curves is safe. Strokes are still applied in
// call order; callers that need per-tick consistency must serialize ticks
// and renders themselves.
package canvas
