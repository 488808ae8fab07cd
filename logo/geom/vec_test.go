package geom

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -4)
	if got := a.Add(b); got != V2(4, -2) {
		t.Fatalf("Add=%v", got)
	}
	if got := a.Sub(b); got != V2(-2, 6) {
		t.Fatalf("Sub=%v", got)
	}
	if got := b.Mul(2); got != V2(6, -8) {
		t.Fatalf("Mul=%v", got)
	}
	if a != V2(1, 2) {
		t.Fatalf("receiver mutated: %v", a)
	}
	if d := Dist(V2(0, 0), V2(3, 4)); d != 5 {
		t.Fatalf("Dist=%v", d)
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	v := FromAngle(math.Pi/3, 2)
	if math.Abs(v.Len()-2) > 1e-12 {
		t.Fatalf("len=%v", v.Len())
	}
	if math.Abs(v.Angle()-math.Pi/3) > 1e-12 {
		t.Fatalf("angle=%v", v.Angle())
	}
	if (Vec2{}).Angle() != 0 {
		t.Fatal("zero vector angle != 0")
	}
}

func TestSquareBounds(t *testing.T) {
	r := Square(V2(250, 250), 200)
	if !r.ContainsOpen(V2(250, 250)) {
		t.Fatal("center not inside")
	}
	if r.ContainsOpen(V2(50, 250)) {
		t.Fatal("edge counted as inside")
	}
	if r.Outside(V2(50, 250)) {
		t.Fatal("edge counted as outside")
	}
	if !r.Outside(V2(1000, 250)) {
		t.Fatal("far point not outside")
	}
	if V2(math.Inf(1), 0).Finite() || V2(0, math.NaN()).Finite() {
		t.Fatal("non-finite reported finite")
	}
	if !V2(1, 1).Finite() {
		t.Fatal("finite reported non-finite")
	}
}
