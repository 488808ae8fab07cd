package main

import (
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"discube/internal/config"
)

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Seed = 200, 160, 3
	cfg.SaveButton = false

	n, err := run(context.Background(), options{cfg: cfg, out: dir, frames: 4, every: 2, orbit: 30, log: io.Discard})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 2 {
		t.Fatalf("written=%d want 2", n)
	}

	for _, name := range []string{"frame-00002.png", "frame-00004.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 160 {
			t.Fatalf("%s bounds=%v", name, b)
		}
	}
}

func TestRunRejectsZeroFrames(t *testing.T) {
	if _, err := run(context.Background(), options{cfg: config.Default(), out: t.TempDir(), log: io.Discard}); err == nil {
		t.Fatal("expected error")
	}
}
