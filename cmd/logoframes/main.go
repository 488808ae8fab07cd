// Command logoframes renders the logo without a window and writes frames as PNG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"discube/app"
	"discube/hal"
	"discube/internal/config"
	"discube/logo/export"
	"discube/logo/raster"
)

type options struct {
	cfg    config.Config
	out    string
	frames uint64
	every  uint64
	orbit  float64 // pointer orbit period in frames; 0 leaves the logo drifting
	log    io.Writer
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file.")
		outDir     = flag.String("out", "frames", "Output directory.")
		frames     = flag.Uint64("frames", 120, "Frames to simulate.")
		every      = flag.Uint64("every", 1, "Write every Nth frame.")
		orbit      = flag.Float64("orbit", 0, "Move the pointer around the logo once every N frames (0 = drift).")
		width      = flag.Int("width", 500, "Canvas width.")
		height     = flag.Int("height", 500, "Canvas height.")
		seed       = flag.Int64("seed", 1, "Drift seed.")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = c
	}
	cfg.Width, cfg.Height, cfg.Seed = *width, *height, *seed
	cfg.SaveButton = false
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	opts := options{cfg: cfg, out: *outDir, frames: *frames, every: *every, orbit: *orbit, log: os.Stderr}
	n, err := run(context.Background(), opts)
	if err != nil {
		fatalf("logoframes: %v", err)
	}
	fmt.Printf("wrote %d frames to %s\n", n, *outDir)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func run(ctx context.Context, o options) (int, error) {
	if o.frames == 0 {
		return 0, fmt.Errorf("no frames requested")
	}
	if o.every == 0 {
		o.every = 1
	}
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return 0, err
	}

	var written int
	var frame uint64
	newApp := func(h hal.HAL) func() error {
		s := app.NewSketch(h, o.cfg, app.Options{Rand: rand.New(rand.NewSource(o.cfg.Seed))})
		return func() error {
			if err := s.Step(); err != nil {
				return err
			}
			frame++
			if frame%o.every != 0 {
				return nil
			}
			fb := h.Display().Framebuffer()
			t := raster.RGBATarget{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
			path := filepath.Join(o.out, fmt.Sprintf("frame-%05d.png", frame))
			if err := export.SavePNG(path, t.Snapshot()); err != nil {
				return err
			}
			written++
			return nil
		}
	}

	cfg := hal.HeadlessConfig{
		Enabled: true,
		Ticks:   o.frames,
		Width:   o.cfg.Width,
		Height:  o.cfg.Height,
		Log:     o.log,
	}
	if o.orbit > 0 {
		l := app.NewLayout(o.cfg.Width, o.cfg.Height, o.cfg.Radius)
		cfg.Pointer = func(tick uint64) hal.PointerState {
			a := 2 * math.Pi * float64(tick) / o.orbit
			return hal.PointerState{
				X: l.Center.X + math.Cos(a)*l.Radius*0.8,
				Y: l.Center.Y + math.Sin(a)*l.Radius*0.8,
			}
		}
	}
	err := hal.RunHeadless(ctx, newApp, cfg)
	return written, err
}
