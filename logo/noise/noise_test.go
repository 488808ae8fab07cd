package noise

import (
	"math"
	"math/rand"
	"testing"

	"discube/logo/geom"
)

func TestPerlinRangeAndDeterminism(t *testing.T) {
	a := NewPerlin(7)
	b := NewPerlin(7)
	for x := 0.0; x < 50; x += 0.037 {
		va := a.At(x)
		if va < 0 || va > 1 {
			t.Fatalf("At(%v)=%v out of [0,1]", x, va)
		}
		if vb := b.At(x); va != vb {
			t.Fatalf("At(%v) differs for equal seeds: %v vs %v", x, va, vb)
		}
	}
}

func TestPerlinIsSmooth(t *testing.T) {
	p := NewPerlin(1)
	prev := p.At(100)
	for x := 100.0; x < 110; x += 0.002 {
		v := p.At(x)
		if math.Abs(v-prev) > 0.05 {
			t.Fatalf("jump of %v at x=%v", math.Abs(v-prev), x)
		}
		prev = v
	}
}

func TestMap(t *testing.T) {
	if got := Map(0.5, 0, 1, 50, 450); got != 250 {
		t.Fatalf("Map=%v", got)
	}
	if got := Map(0, 0, 1, 50, 450); got != 50 {
		t.Fatalf("Map=%v", got)
	}
	if got := Map(3, 2, 2, 7, 9); got != 7 {
		t.Fatalf("Map on empty range=%v", got)
	}
}

type constSource float64

func (c constSource) At(float64) float64 { return float64(c) }

func TestDriftTargetStaysInRange(t *testing.T) {
	center := geom.V2(250, 250)
	d := Drift{}
	if got := d.Target(constSource(0), center, 200); got != geom.V2(50, 50) {
		t.Fatalf("low corner=%v", got)
	}
	if got := d.Target(constSource(1), center, 200); got != geom.V2(450, 450) {
		t.Fatalf("high corner=%v", got)
	}

	src := NewPerlin(3)
	d = NewDrift(rand.New(rand.NewSource(3)), 0.001, 0.002)
	for i := 0; i < 5000; i++ {
		p := d.Target(src, center, 200)
		if p.X < 50 || p.X > 450 || p.Y < 50 || p.Y > 450 {
			t.Fatalf("frame %d: target %v outside range", i, p)
		}
		d.Advance()
	}
}

func TestNewDrift(t *testing.T) {
	d := NewDrift(rand.New(rand.NewSource(42)), 0.002, 0.001)
	if d.Offset.X < 0 || d.Offset.X >= 1000 || d.Offset.Y < 0 || d.Offset.Y >= 1000 {
		t.Fatalf("offset=%v", d.Offset)
	}
	for _, v := range []float64{d.Velocity.X, d.Velocity.Y} {
		if v < 0.001 || v >= 0.002 {
			t.Fatalf("velocity=%v", d.Velocity)
		}
	}
	start := d.Offset
	d.Advance()
	if d.Offset != start.Add(d.Velocity) {
		t.Fatalf("Advance: %v → %v", start, d.Offset)
	}
}
