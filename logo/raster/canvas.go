package raster

import (
	"image/color"

	"discube/logo/geom"
)

// Canvas strokes logo geometry onto a Target with a fixed pen.
type Canvas struct {
	T      Target
	Stroke color.RGBA
	Width  float64
}

func (c *Canvas) Clear()                  { c.T.Clear(Transparent) }
func (c *Canvas) Line(from, to geom.Vec2) { StrokeSegment(c.T, from, to, c.Width, c.Stroke) }
func (c *Canvas) Polygon(pts []geom.Vec2) { StrokePolygon(c.T, pts, c.Width, c.Stroke) }
