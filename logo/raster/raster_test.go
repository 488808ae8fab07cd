package raster

import (
	"image/color"
	"math"
	"testing"

	"discube/logo/geom"
)

var ink = color.RGBA{R: 0x15, G: 0x15, B: 0x15, A: 0xFF}

func count(t *RGBATarget, c color.RGBA) int {
	n := 0
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if t.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestClearAndSetPixelClip(t *testing.T) {
	tg := NewRGBATarget(4, 3)
	tg.Clear(ink)
	if n := count(tg, ink); n != 12 {
		t.Fatalf("cleared pixels=%d", n)
	}
	tg.Clear(Transparent)
	tg.SetPixel(-1, 0, ink)
	tg.SetPixel(4, 0, ink)
	tg.SetPixel(0, 3, ink)
	if n := count(tg, ink); n != 0 {
		t.Fatalf("out-of-bounds writes landed: %d", n)
	}
	tg.SetPixel(3, 2, ink)
	if tg.At(3, 2) != ink {
		t.Fatal("SetPixel lost")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	tg := NewRGBATarget(10, 10)
	DrawLine(tg, 1, 1, 8, 5, ink)
	if tg.At(1, 1) != ink || tg.At(8, 5) != ink {
		t.Fatal("endpoints not drawn")
	}
	if n := count(tg, ink); n != 8 {
		t.Fatalf("pixels=%d want 8", n)
	}
}

func TestStrokeSegmentWidth(t *testing.T) {
	tg := NewRGBATarget(40, 40)
	StrokeSegment(tg, geom.V2(10, 20), geom.V2(30, 20), 8, ink)

	for y := 0; y < 40; y++ {
		got := tg.At(20, y) == ink
		want := y >= 16 && y < 24
		if got != want {
			t.Fatalf("column 20, row %d: inked=%v want %v", y, got, want)
		}
	}
	if tg.At(5, 20) == ink || tg.At(35, 20) == ink {
		t.Fatal("caps extend too far")
	}
	if tg.At(7, 20) != ink || tg.At(32, 20) != ink {
		t.Fatal("round caps missing")
	}
}

func TestStrokeSegmentDegenerate(t *testing.T) {
	tg := NewRGBATarget(20, 20)
	StrokeSegment(tg, geom.V2(10, 10), geom.V2(10, 10), 4, ink)
	if tg.At(10, 10) != ink {
		t.Fatal("zero-length stroke should leave a dot")
	}
	before := count(tg, ink)
	StrokeSegment(tg, geom.V2(0, 0), geom.V2(math.Inf(1), 5), 4, ink)
	if count(tg, ink) != before {
		t.Fatal("non-finite stroke drew pixels")
	}
}

func TestCanvasPolygonClosed(t *testing.T) {
	tg := NewRGBATarget(30, 30)
	c := &Canvas{T: tg, Stroke: ink, Width: 2}
	c.Polygon([]geom.Vec2{{X: 5, Y: 5}, {X: 25, Y: 5}, {X: 25, Y: 25}, {X: 5, Y: 25}})
	if tg.At(5, 15) != ink {
		t.Fatal("closing edge missing")
	}
	if tg.At(15, 15) == ink {
		t.Fatal("polygon was filled")
	}
	c.Clear()
	if count(tg, ink) != 0 {
		t.Fatal("Clear left ink")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	tg := NewRGBATarget(3, 3)
	tg.SetPixel(1, 1, ink)
	img := tg.Snapshot()
	tg.Clear(Transparent)
	if img.RGBAAt(1, 1) != ink {
		t.Fatal("snapshot shares the buffer")
	}
	if tg.Image().RGBAAt(1, 1) != Transparent {
		t.Fatal("Image does not share the buffer")
	}
}

func TestFillRectClips(t *testing.T) {
	tg := NewRGBATarget(10, 10)
	FillRect(tg, -5, -5, 8, 8, ink)
	if n := count(tg, ink); n != 9 {
		t.Fatalf("filled=%d want 9", n)
	}
	StrokeRect(tg, 4, 4, 6, 6, ink)
	if tg.At(9, 9) != ink || tg.At(6, 6) == ink {
		t.Fatal("StrokeRect border wrong")
	}
}
