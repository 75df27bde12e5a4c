// Package termview draws a canvas into a terminal screen.
//
// Every terminal cell shows two vertically stacked pixels with the upper
// half block rune: the foreground color is the top pixel, the background
// color the bottom one. Terminal cells are about twice as tall as wide, so
// the pixels come out roughly square.
package termview

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
)

const halfBlock = '▀'

// Renderer draws into a gg.Context of any size. canvas.Canvas implements it.
type Renderer interface {
	Render(dc *gg.Context) error
}

// View renders into a tcell screen, keeping the last row for a status line.
type View struct {
	screen tcell.Screen
	dc     *gg.Context

	statusStyle tcell.Style
}

// New creates a view on an initialized screen.
func New(s tcell.Screen) *View {
	return &View{
		screen:      s,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// PixelSize returns the pixel resolution of a cols x rows terminal,
// leaving one row for the status line.
func PixelSize(cols, rows int) (w, h int) {
	if cols < 1 || rows < 2 {
		return 0, 0
	}
	return cols, (rows - 1) * 2
}

// Draw renders r at the terminal's resolution, writes status on the last
// row and shows the result.
func (v *View) Draw(r Renderer, status string) error {
	cols, rows := v.screen.Size()
	w, h := PixelSize(cols, rows)
	if w == 0 || h == 0 {
		return nil
	}

	if v.dc == nil || v.dc.Width() != w || v.dc.Height() != h {
		v.dc = gg.NewContext(w, h)
	}
	if err := r.Render(v.dc); err != nil {
		return err
	}

	Blit(v.screen, v.dc.Image())
	v.drawStatus(status, cols, rows-1)
	v.screen.Show()
	return nil
}

// Blit writes img to the screen from the top-left corner, two pixel rows
// per cell row. Pixels outside the screen are dropped.
func Blit(s tcell.Screen, img image.Image) {
	cols, rows := s.Size()
	b := img.Bounds()
	for cy := 0; cy < rows; cy++ {
		top := b.Min.Y + cy*2
		if top >= b.Max.Y {
			break
		}
		for cx := 0; cx < cols && b.Min.X+cx < b.Max.X; cx++ {
			x := b.Min.X + cx
			fg := cellColor(img, x, top)
			bg := fg
			if top+1 < b.Max.Y {
				bg = cellColor(img, x, top+1)
			}
			s.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

func cellColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// drawStatus fills row with status text, truncated to the screen width.
func (v *View) drawStatus(status string, cols, row int) {
	x := 0
	for _, r := range status {
		if x >= cols {
			break
		}
		v.screen.SetContent(x, row, r, nil, v.statusStyle)
		x++
	}
	for ; x < cols; x++ {
		v.screen.SetContent(x, row, ' ', nil, v.statusStyle)
	}
}
