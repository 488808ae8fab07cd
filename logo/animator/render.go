package animator

import "discube/logo/geom"

// Surface receives the logo's strokes. Stroke color and width are the surface's concern.
type Surface interface {
	Line(from, to geom.Vec2)
	Polygon(pts []geom.Vec2)
}

// Render draws the hexagon outline followed by every tentacle segment, each as its own stroke
// from the joint along the joint's heading.
func (a *Animator) Render(s Surface) {
	outline := a.hex.Outline()
	s.Polygon(outline[:])

	for _, c := range a.chains {
		l := c.SegmentLength()
		for i := 0; i < c.Len(); i++ {
			j := c.Joint(i)
			s.Line(j.Pos, j.End(l))
		}
	}
}
