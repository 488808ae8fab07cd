package raster

import (
	"image/color"
	"math"

	"discube/logo/geom"
)

// DrawLine draws a 1px line between integer endpoints (Bresenham).
func DrawLine(t Target, x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeSegment draws a segment of the given width with round caps. Widths of 1 or less fall
// back to DrawLine. Non-finite endpoints draw nothing.
func StrokeSegment(t Target, a, b geom.Vec2, width float64, c color.RGBA) {
	if !a.Finite() || !b.Finite() {
		return
	}
	if width <= 1 {
		DrawLine(t, roundInt(a.X), roundInt(a.Y), roundInt(b.X), roundInt(b.Y), c)
		return
	}
	w, h := t.Size()
	r := width / 2

	minX := clampInt(int(math.Floor(math.Min(a.X, b.X)-r)), 0, w)
	maxX := clampInt(int(math.Ceil(math.Max(a.X, b.X)+r)), 0, w)
	minY := clampInt(int(math.Floor(math.Min(a.Y, b.Y)-r)), 0, h)
	maxY := clampInt(int(math.Ceil(math.Max(a.Y, b.Y)+r)), 0, h)
	if minX >= maxX || minY >= maxY {
		return
	}

	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	r2 := r * r
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := geom.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if segmentDist2(p, a, ab, l2) <= r2 {
				t.SetPixel(x, y, c)
			}
		}
	}
}

// segmentDist2 is the squared distance from p to the segment a→a+ab.
func segmentDist2(p, a, ab geom.Vec2, l2 float64) float64 {
	ap := p.Sub(a)
	u := 0.0
	if l2 > 0 {
		u = (ap.X*ab.X + ap.Y*ab.Y) / l2
		if u < 0 {
			u = 0
		} else if u > 1 {
			u = 1
		}
	}
	d := ap.Sub(ab.Mul(u))
	return d.X*d.X + d.Y*d.Y
}

// StrokePolygon strokes the closed outline through pts.
func StrokePolygon(t Target, pts []geom.Vec2, width float64, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		StrokeSegment(t, pts[i], pts[(i+1)%len(pts)], width, c)
	}
}

// FillRect fills [x, x+w)×[y, y+h).
func FillRect(t Target, x, y, w, h int, c color.RGBA) {
	tw, th := t.Size()
	x0 := clampInt(x, 0, tw)
	y0 := clampInt(y, 0, th)
	x1 := clampInt(x+w, 0, tw)
	y1 := clampInt(y+h, 0, th)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			t.SetPixel(px, py, c)
		}
	}
}

// StrokeRect draws a 1px rectangle border.
func StrokeRect(t Target, x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	DrawLine(t, x, y, x+w-1, y, c)
	DrawLine(t, x, y+h-1, x+w-1, y+h-1, c)
	DrawLine(t, x, y, x, y+h-1, c)
	DrawLine(t, x+w-1, y, x+w-1, y+h-1, c)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt(v float64) int { return int(math.Floor(v + 0.5)) }
