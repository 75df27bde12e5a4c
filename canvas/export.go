// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/spiro"
	"golang.org/x/image/font/gofont/goregular"
)

// Format is an export file format.
type Format string

// Supported export formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ErrUnknownFormat is returned for export formats other than PNG and SVG.
var ErrUnknownFormat = errors.New("canvas: unknown export format")

// TimestampLayout is the time layout used in export file names,
// for example "19Oct2026-142501".
const TimestampLayout = "02Jan2006-150405"

// CursorHider hides cursor markers for the duration of a snapshot.
// spiro.Animator implements it.
type CursorHider interface {
	HideCursors() (restore func())
}

// Exporter writes snapshots of a canvas to files.
//
// Example:
//
//	e := canvas.Exporter{Dir: "out"}
//	paths, err := e.Export(cv, animator, time.Now())
type Exporter struct {
	// Dir is the output directory, created if missing. Empty means the
	// working directory.
	Dir string

	// Prefix starts every file name. Empty means "spiro".
	Prefix string

	// Formats lists the files to write. Empty means PNG and SVG.
	Formats []Format

	// Caption, when set, is drawn in the bottom-left corner of raster output.
	Caption string

	// CaptionSize is the caption font size in pixels. Zero means 12.
	CaptionSize float64
}

// BaseName returns the file name without extension for a snapshot at now.
func (e Exporter) BaseName(now time.Time) string {
	prefix := e.Prefix
	if prefix == "" {
		prefix = "spiro"
	}
	return prefix + "-" + now.Format(TimestampLayout)
}

// Export writes one file per format and returns their paths. If hider is
// not nil, cursors are hidden before the snapshot and restored afterwards.
func (e Exporter) Export(cv *Canvas, hider CursorHider, now time.Time) ([]string, error) {
	if hider != nil {
		restore := hider.HideCursors()
		defer restore()
	}

	formats := e.Formats
	if len(formats) == 0 {
		formats = []Format{FormatPNG, FormatSVG}
	}

	if e.Dir != "" {
		if err := os.MkdirAll(e.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("canvas: create export dir: %w", err)
		}
	}

	base := filepath.Join(e.Dir, e.BaseName(now))
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := base + "." + string(f)
		var err error
		switch f {
		case FormatPNG:
			err = e.writePNG(cv, path)
		case FormatSVG:
			err = writeFile(path, cv.EncodeSVG)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	spiro.Logger().Info("canvas: drawing exported", "files", paths)
	return paths, nil
}

func (e Exporter) writePNG(cv *Canvas, path string) error {
	dc, err := cv.Context()
	if err != nil {
		return err
	}
	if e.Caption != "" {
		if err := drawCaption(dc, e.Caption, e.CaptionSize); err != nil {
			// A missing caption does not spoil the drawing.
			spiro.Logger().Warn("canvas: caption skipped", "err", err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}

func writeFile(path string, encode func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("canvas: close %s: %w", path, cerr)
		}
	}()
	if err := encode(f); err != nil {
		return fmt.Errorf("canvas: encode %s: %w", path, err)
	}
	return nil
}

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// captionFont returns the Go Regular font, parsed once.
func captionFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

func drawCaption(dc *gg.Context, caption string, size float64) error {
	if size <= 0 {
		size = 12
	}
	src, err := captionFont()
	if err != nil {
		return fmt.Errorf("canvas: caption font: %w", err)
	}
	dc.SetFont(src.Face(size))
	dc.SetRGBA(0.3, 0.3, 0.3, 1)
	dc.DrawString(caption, size*0.75, float64(dc.Height())-size*0.75)
	return nil
}
