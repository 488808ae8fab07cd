package hal

import "github.com/lucasb-eyer/go-colorful"

// over composites a premultiplied RGBA pixel onto an opaque background.
func over(r, g, b, a uint8, bg colorful.Color) colorful.Color {
	if a == 0 {
		return bg
	}
	fa := float64(a) / 255
	src := colorful.Color{R: float64(r) / 255 / fa, G: float64(g) / 255 / fa, B: float64(b) / 255 / fa}
	return bg.BlendRgb(src, fa).Clamped()
}
