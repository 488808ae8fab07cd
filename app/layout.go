package app

import "discube/logo/geom"

const (
	narrowWidth  = 450
	narrowRadius = 150
	wideRadius   = 200
)

// Layout places the logo on a canvas.
type Layout struct {
	Width, Height int
	Center        geom.Vec2
	Radius        float64
}

// RadiusFor returns the hexagon radius for a canvas width.
func RadiusFor(width int) float64 {
	if width < narrowWidth {
		return narrowRadius
	}
	return wideRadius
}

// NewLayout centers the logo on a w×h canvas. A positive radius overrides the width breakpoint.
func NewLayout(w, h int, radius float64) Layout {
	if radius <= 0 {
		radius = RadiusFor(w)
	}
	return Layout{
		Width:  w,
		Height: h,
		Center: geom.V2(float64(w)/2, float64(h)/2),
		Radius: radius,
	}
}
