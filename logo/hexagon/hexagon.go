// Package hexagon lays out the logo's hexagon: its six outline vertices and the three
// alternating vertices the tentacles are pinned to.
package hexagon

import (
	"math"

	"discube/logo/geom"
)

// Step is the angle between neighbouring vertices.
const Step = 2 * math.Pi / 6

// Hexagon is a pure function of its center and radius; angles are measured from the
// downward vertical (θ=0 is straight below the center in screen space).
type Hexagon struct {
	Center geom.Vec2
	Radius float64
}

func New(center geom.Vec2, radius float64) Hexagon {
	return Hexagon{Center: center, Radius: radius}
}

// Vertex returns the point at k·Step.
func (h Hexagon) Vertex(k int) geom.Vec2 {
	return h.at(float64(k) * Step)
}

func (h Hexagon) at(theta float64) geom.Vec2 {
	return geom.Vec2{
		X: h.Center.X + math.Sin(theta)*h.Radius,
		Y: h.Center.Y + math.Cos(theta)*h.Radius,
	}
}

// Anchors returns the chase anchors at 0, 2·Step and 4·Step.
func (h Hexagon) Anchors() [3]geom.Vec2 {
	return [3]geom.Vec2{h.Vertex(0), h.Vertex(2), h.Vertex(4)}
}

// Outline returns the six vertices in drawing order.
func (h Hexagon) Outline() [6]geom.Vec2 {
	var out [6]geom.Vec2
	for k := range out {
		out[k] = h.Vertex(k)
	}
	return out
}
