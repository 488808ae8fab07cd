// Package chain animates a tentacle: a run of equal-length rigid segments whose tail is pinned
// to an anchor while its head chases a target.
//
// Each Update is one reach-then-constrain pass. The reach pass walks from the target toward the
// joints of the previous frame and records one heading per segment; the position pass rebuilds
// the joints from the anchor along those headings. A single pass never pulls the chain taut, so
// a moving target leaves a kinked trail that relaxes over the following frames.
package chain

import (
	"math"

	"discube/logo/geom"
)

const (
	// DefaultSegments is the number of links used by the logo.
	DefaultSegments = 100

	// Epsilon is added to every segment length so a target sitting on the anchor still yields a
	// non-degenerate chain.
	Epsilon = 0.05
)

// Joint is one segment boundary plus the heading of the segment that starts there.
type Joint struct {
	Pos   geom.Vec2
	Angle float64
}

// End returns the far end of the segment starting at j.
func (j Joint) End(length float64) geom.Vec2 {
	return j.Pos.Add(geom.FromAngle(j.Angle, length))
}

// Chain is a single tentacle. The zero value is not usable; create it with New.
type Chain struct {
	length float64
	anchor geom.Vec2
	target geom.Vec2

	angles []float64
	pos    []geom.Vec2
}

// New returns a chain of n segments pinned to anchor. n < 1 is treated as 1.
//
// All joints except the last start at the origin, so the first Update sweeps in from there.
func New(n int, anchor geom.Vec2) *Chain {
	if n < 1 {
		n = 1
	}
	c := &Chain{
		anchor: anchor,
		target: anchor,
		angles: make([]float64, n),
		pos:    make([]geom.Vec2, n),
	}
	c.pos[n-1] = anchor
	return c
}

// Len returns the number of segments.
func (c *Chain) Len() int { return len(c.pos) }

func (c *Chain) Anchor() geom.Vec2 { return c.anchor }
func (c *Chain) Target() geom.Vec2 { return c.target }

// SegmentLength is the length of every segment as of the last Update.
func (c *Chain) SegmentLength() float64 { return c.length }

// SetAnchor pins the tail to a. Non-finite values are ignored.
func (c *Chain) SetAnchor(a geom.Vec2) {
	if !a.Finite() {
		return
	}
	c.anchor = a
	c.pos[len(c.pos)-1] = a
}

// SetTarget sets the point the head chases. Non-finite values fall back to the anchor.
func (c *Chain) SetTarget(t geom.Vec2) {
	if !t.Finite() {
		t = c.anchor
	}
	c.target = t
}

// Update runs one reach-then-constrain pass for the current anchor and target.
func (c *Chain) Update() {
	c.stretch()
	c.reach()
	c.place()
}

func (c *Chain) stretch() {
	c.length = geom.Dist(c.anchor, c.target)/float64(len(c.pos)) + Epsilon
}

func (c *Chain) reach() {
	cursor := c.target
	for i := range c.pos {
		a := cursor.Sub(c.pos[i]).Angle()
		c.angles[i] = a
		cursor = cursor.Sub(geom.FromAngle(a, c.length))
	}
}

func (c *Chain) place() {
	last := len(c.pos) - 1
	c.pos[last] = c.anchor
	for i := last; i >= 1; i-- {
		c.pos[i-1] = c.pos[i].Add(geom.FromAngle(c.angles[i], c.length))
	}
}

// Joint returns joint i; index 0 is nearest the target and Len()-1 sits on the anchor.
func (c *Chain) Joint(i int) Joint {
	return Joint{Pos: c.pos[i], Angle: c.angles[i]}
}

// Joints appends all joints to dst and returns the extended slice.
func (c *Chain) Joints(dst []Joint) []Joint {
	for i := range c.pos {
		dst = append(dst, Joint{Pos: c.pos[i], Angle: c.angles[i]})
	}
	return dst
}

// Finite reports whether every joint and heading is a finite number.
func (c *Chain) Finite() bool {
	if math.IsNaN(c.length) || math.IsInf(c.length, 0) {
		return false
	}
	for i := range c.pos {
		if !c.pos[i].Finite() || math.IsNaN(c.angles[i]) {
			return false
		}
	}
	return true
}
