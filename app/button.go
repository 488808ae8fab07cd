package app

import (
	"image/color"

	"discube/hal"
	"discube/logo/raster"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	buttonMargin = 8
	buttonPadX   = 6
	buttonPadY   = 4
)

var buttonFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// button is an on-canvas push button. It fires once per press that starts inside it.
type button struct {
	label      string
	x, y, w, h int

	hover bool
	down  bool // pointer was pressed last frame
}

// newSaveButton places the button in the bottom-right corner of a w×h canvas.
func newSaveButton(w, h int) button {
	b := button{label: "SAVE"}
	b.w = raster.TextWidth(buttonFont, b.label) + 2*buttonPadX
	b.h = int(buttonFont.GetYAdvance()) + 2*buttonPadY
	b.x = w - b.w - buttonMargin
	b.y = h - b.h - buttonMargin
	return b
}

func (b *button) contains(x, y float64) bool {
	return x >= float64(b.x) && x < float64(b.x+b.w) &&
		y >= float64(b.y) && y < float64(b.y+b.h)
}

// update feeds one pointer sample and reports a click.
func (b *button) update(p hal.PointerState) bool {
	b.hover = b.contains(p.X, p.Y)
	clicked := b.hover && p.Pressed && !b.down
	b.down = p.Pressed
	return clicked
}

func (b *button) draw(t raster.Target, ink, paper color.RGBA) {
	fg, bg := ink, paper
	if b.hover {
		fg, bg = paper, ink
	}
	raster.FillRect(t, b.x, b.y, b.w, b.h, bg)
	raster.StrokeRect(t, b.x, b.y, b.w, b.h, ink)
	baseline := b.y + b.h - buttonPadY - 2
	raster.DrawText(t, buttonFont, b.x+buttonPadX, baseline, b.label, fg)
}
