package raster

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer adapts a Target to drivers.Displayer so tinyfont can draw on it.
type Displayer struct {
	T Target
}

var _ drivers.Displayer = (*Displayer)(nil)

func (d *Displayer) Size() (x, y int16) {
	if d.T == nil {
		return 0, 0
	}
	w, h := d.T.Size()
	return int16(w), int16(h)
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.T == nil {
		return
	}
	d.T.SetPixel(int(x), int(y), c)
}

func (d *Displayer) Display() error { return nil }

// DrawText writes s with its baseline at y.
func DrawText(t Target, f tinyfont.Fonter, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(&Displayer{T: t}, f, int16(x), int16(y), s, c)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(f tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(f, s)
	return int(w)
}
