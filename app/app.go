// Package app wires the logo to a host: it reads the pointer and keys from the HAL, steps the
// animator, and renders into the host framebuffer.
package app

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"discube/hal"
	"discube/internal/config"
	"discube/logo/animator"
	"discube/logo/export"
	"discube/logo/geom"
	"discube/logo/noise"
	"discube/logo/raster"
)

// Options overrides the sketch's sources of randomness and its save action.
type Options struct {
	Rand  *rand.Rand
	Noise noise.Source

	// Save writes an exported frame and returns the path used. Defaults to export.Save.
	Save func(name string, img image.Image) (string, error)
}

// Sketch is the per-frame logo program.
type Sketch struct {
	h    hal.HAL
	log  hal.Logger
	cfg  config.Config
	opts Options

	anim   *animator.Animator
	layout Layout
	mode   animator.Mode

	target raster.RGBATarget
	canvas raster.Canvas
	button button
	paper  color.RGBA
	saved  int
}

// New starts the logo with default settings.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, config.Default())
}

// NewWithConfig returns the host step function for cfg.
func NewWithConfig(h hal.HAL, cfg config.Config) func() error {
	s := NewSketch(h, cfg, Options{})
	return guard(h, s.Step)
}

// NewSketch builds a sketch sized to the host framebuffer.
func NewSketch(h hal.HAL, cfg config.Config, opts Options) *Sketch {
	if opts.Rand == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	if opts.Save == nil {
		opts.Save = export.Save
	}
	if cfg.SaveName == "" {
		cfg.SaveName = export.DefaultName
	}

	s := &Sketch{
		h:     h,
		log:   h.Logger(),
		cfg:   cfg,
		opts:  opts,
		paper: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	s.canvas = raster.Canvas{T: &s.target, Stroke: cfg.StrokeColor(), Width: cfg.StrokeWidth}

	w, ht := cfg.Width, cfg.Height
	if fb := s.framebuffer(); fb != nil {
		w, ht = fb.Width(), fb.Height()
	}
	s.layout = NewLayout(w, ht, cfg.Radius)
	s.anim = animator.New(s.layout.Center, s.layout.Radius, animator.Config{
		Segments: cfg.Segments,
		MinSpeed: cfg.Drift.MinSpeed,
		MaxSpeed: cfg.Drift.MaxSpeed,
		Noise:    opts.Noise,
		Rand:     opts.Rand,
	})
	s.mode = s.anim.Mode()
	s.button = newSaveButton(w, ht)
	s.logf("app: start %dx%d radius=%g segments=%d", w, ht, s.layout.Radius, cfg.Segments)
	return s
}

func (s *Sketch) Animator() *animator.Animator { return s.anim }
func (s *Sketch) Layout() Layout               { return s.layout }

// Saved reports how many frames were exported.
func (s *Sketch) Saved() int { return s.saved }

func (s *Sketch) framebuffer() hal.Framebuffer {
	d := s.h.Display()
	if d == nil {
		return nil
	}
	return d.Framebuffer()
}

func (s *Sketch) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Step runs one frame: layout, input, animation, render, present.
func (s *Sketch) Step() error {
	fb := s.framebuffer()
	if fb == nil {
		return hal.ErrNotImplemented
	}
	if f := fb.Format(); f != hal.PixelFormatRGBA8888 {
		return fmt.Errorf("app: unsupported pixel format %d", f)
	}

	w, h := fb.Width(), fb.Height()
	if w != s.layout.Width || h != s.layout.Height {
		s.resize(w, h)
	}
	s.target = raster.RGBATarget{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: w, H: h}

	save, err := s.pollKeys()
	if err != nil {
		return err
	}

	var ps hal.PointerState
	if in := s.h.Input(); in != nil && in.Pointer() != nil {
		ps = in.Pointer().State()
	}
	if s.cfg.SaveButton && s.button.update(ps) {
		save = true
	}

	s.anim.Step(animator.Pointer{Pos: geom.V2(ps.X, ps.Y), Held: ps.Pressed})
	if m := s.anim.Mode(); m != s.mode {
		s.logf("app: mode %s -> %s", s.mode, m)
		s.mode = m
	}

	s.canvas.Clear()
	s.anim.Render(&s.canvas)

	if save {
		s.save()
	}
	if s.cfg.SaveButton {
		s.button.draw(&s.target, s.canvas.Stroke, s.paper)
	}
	return fb.Present()
}

func (s *Sketch) resize(w, h int) {
	s.layout = NewLayout(w, h, s.cfg.Radius)
	s.anim.Reset(s.layout.Center, s.layout.Radius)
	s.mode = s.anim.Mode()
	s.button = newSaveButton(w, h)
	s.logf("app: resize %dx%d radius=%g", w, h, s.layout.Radius)
}

func (s *Sketch) pollKeys() (save bool, err error) {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return false, nil
	}
	events := in.Keyboard().Events()
	for {
		select {
		case ev := <-events:
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape:
				return save, hal.ErrQuit
			case ev.Rune == 's' || ev.Rune == 'S':
				save = true
			}
		default:
			return save, nil
		}
	}
}

// save exports the logo as currently rendered, before any overlay is drawn.
func (s *Sketch) save() {
	path, err := s.opts.Save(s.cfg.SaveName, s.target.Snapshot())
	if err != nil {
		s.logf("export: %v", err)
		return
	}
	s.saved++
	s.logf("export: saved %s", path)
}
