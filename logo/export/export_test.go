package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(1, 2, color.RGBA{R: 0x15, G: 0x15, B: 0x15, A: 0xFF})
	return img
}

func TestEncodeKeepsTransparency(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("background alpha=%d want 0", a)
	}
	if r, _, _, a := img.At(1, 2).RGBA(); a != 0xFFFF || r>>8 != 0x15 {
		t.Fatalf("ink pixel r=%x a=%x", r, a)
	}
}

func TestEncodeRejectsEmpty(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestSaveDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", DefaultName)

	first, err := Save(path, testImage())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first != path {
		t.Fatalf("first save at %q", first)
	}
	second, err := Save(path, testImage())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "out", "discube-logo (1).png"); second != want {
		t.Fatalf("second save at %q want %q", second, want)
	}
	for _, p := range []string{first, second} {
		if st, err := os.Stat(p); err != nil || st.Size() == 0 {
			t.Fatalf("stat %s: %v", p, err)
		}
	}
}
