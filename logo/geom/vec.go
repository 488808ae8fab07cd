// Package geom provides the 2D value types shared by the logo packages.
package geom

import "math"

// Vec2 is an immutable 2D point or vector.
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 { return b.Sub(a).Len() }

// Angle returns the heading of v in radians, in (-π, π]. The zero vector has angle 0.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle returns a vector of length l pointing along rad.
func FromAngle(rad, l float64) Vec2 {
	return Vec2{X: math.Cos(rad) * l, Y: math.Sin(rad) * l}
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Near reports whether a and b differ by at most eps on both axes.
func Near(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// Rect is an axis-aligned rectangle; Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Vec2
}

// Square returns the square of half-width h centered at c.
func Square(c Vec2, h float64) Rect {
	return Rect{Min: Vec2{c.X - h, c.Y - h}, Max: Vec2{c.X + h, c.Y + h}}
}

// ContainsOpen reports whether p lies strictly inside r.
func (r Rect) ContainsOpen(p Vec2) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// Outside reports whether p lies strictly outside r on at least one axis.
func (r Rect) Outside(p Vec2) bool {
	return p.X < r.Min.X || p.X > r.Max.X || p.Y < r.Min.Y || p.Y > r.Max.Y
}
