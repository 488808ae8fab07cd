package raster

import (
	"image"
	"image/color"
)

// Target is a minimal pixel target.
//
// Implementations clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
	Clear(c color.RGBA)
}

// Transparent is the cleared canvas color.
var Transparent = color.RGBA{}

// RGBATarget renders into a premultiplied RGBA8888 buffer.
//
// Callers provide the backing buffer and layout (stride), typically straight from a framebuffer.
type RGBATarget struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGBATarget allocates a w×h target.
func NewRGBATarget(w, h int) *RGBATarget {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGBATarget{Buf: make([]byte, w*h*4), Stride: w * 4, W: w, H: h}
}

func (t *RGBATarget) Size() (w, h int) { return t.W, t.H }

func (t *RGBATarget) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGBATarget) Clear(c color.RGBA) {
	if !t.valid() {
		return
	}
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*4
			if off < 0 || off+3 >= len(t.Buf) {
				continue
			}
			t.Buf[off+0] = c.R
			t.Buf[off+1] = c.G
			t.Buf[off+2] = c.B
			t.Buf[off+3] = c.A
		}
	}
}

func (t *RGBATarget) SetPixel(x, y int, c color.RGBA) {
	if !t.valid() {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return
	}
	t.Buf[off+0] = c.R
	t.Buf[off+1] = c.G
	t.Buf[off+2] = c.B
	t.Buf[off+3] = c.A
}

// At returns the pixel at (x, y), or Transparent when out of bounds.
func (t *RGBATarget) At(x, y int) color.RGBA {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return Transparent
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return Transparent
	}
	return color.RGBA{R: t.Buf[off], G: t.Buf[off+1], B: t.Buf[off+2], A: t.Buf[off+3]}
}

// Image exposes the buffer as an *image.RGBA without copying.
func (t *RGBATarget) Image() *image.RGBA {
	return &image.RGBA{Pix: t.Buf, Stride: t.Stride, Rect: image.Rect(0, 0, t.W, t.H)}
}

// Snapshot returns a copy of the buffer as an *image.RGBA.
func (t *RGBATarget) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.W, t.H))
	for y := 0; y < t.H; y++ {
		copy(img.Pix[y*img.Stride:(y+1)*img.Stride], t.Buf[y*t.Stride:y*t.Stride+t.W*4])
	}
	return img
}
