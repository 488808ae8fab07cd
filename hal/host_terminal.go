package hal

import (
	"context"
	"errors"
	"image/color"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	TPS        int
	Ticks      uint64 // stop after N frames (0 = run until quit)
	Background color.RGBA

	// MinSide is the smallest framebuffer side; each cell covers a block of pixels big
	// enough to reach it.
	MinSide int

	// Log receives log lines; nil discards them so the screen stays clean.
	Log io.Writer

	// Screen overrides the terminal screen (tests use a simulation screen).
	Screen tcell.Screen
}

// RunTerminal renders the framebuffer into the terminal with half-block cells and feeds tcell
// mouse and key events to the pointer and keyboard. It blocks until the context ends, the
// step returns an error, or Escape / Ctrl-C is pressed.
func RunTerminal(ctx context.Context, cfg TerminalConfig, newApp func(HAL) func() error) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 30
	}
	if cfg.MinSide <= 0 {
		cfg.MinSide = 460
	}

	screen := cfg.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	term := &hostTerminal{screen: screen, bg: colorful.Color{
		R: float64(cfg.Background.R) / 255,
		G: float64(cfg.Background.G) / 255,
		B: float64(cfg.Background.B) / 255,
	}, minSide: cfg.MinSide}
	cols, rows := screen.Size()
	term.layout(cols, rows)

	h := newHost(term.fbW, term.fbH, cfg.Log)
	term.h = h
	step := newApp(h)

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !term.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.fb.resize(term.fbW, term.fbH)
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			term.draw()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

type hostTerminal struct {
	screen  tcell.Screen
	h       *hostHAL
	bg      colorful.Color
	minSide int

	cols, rows int
	scale      int // framebuffer pixels per cell column; a cell row covers 2·scale pixels
	fbW, fbH   int
}

func (t *hostTerminal) layout(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	t.cols, t.rows = cols, rows
	side := cols
	if rows*2 < side {
		side = rows * 2
	}
	t.scale = (t.minSide + side - 1) / side
	if t.scale < 1 {
		t.scale = 1
	}
	t.fbW = cols * t.scale
	t.fbH = rows * 2 * t.scale
}

func (t *hostTerminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyEnter:
			t.h.kbd.emit(KeyEvent{Code: KeyEnter, Press: true})
		case ev.Key() == tcell.KeyRune:
			t.h.kbd.emit(KeyEvent{Press: true, Rune: ev.Rune()})
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.h.ptr.set(PointerState{
			X:       float64(x*t.scale) + float64(t.scale)/2,
			Y:       float64(y*2*t.scale) + float64(t.scale),
			Pressed: ev.Buttons()&tcell.ButtonPrimary != 0,
		})
	case *tcell.EventResize:
		t.layout(ev.Size())
		t.screen.Sync()
	}
	return true
}

// draw maps every cell to two stacked pixel blocks: the upper block becomes the foreground of
// '▀' and the lower block its background.
func (t *hostTerminal) draw() {
	fb := t.h.fb
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for cy := 0; cy < t.rows; cy++ {
		for cx := 0; cx < t.cols; cx++ {
			top := t.block(fb, cx*t.scale, cy*2*t.scale)
			bot := t.block(fb, cx*t.scale, cy*2*t.scale+t.scale)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bot))
			t.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	t.screen.Show()
}

// block averages a scale×scale block of premultiplied pixels and composites it over the
// background.
func (t *hostTerminal) block(fb *hostFramebuffer, x0, y0 int) colorful.Color {
	var r, g, b, a, n int
	for y := y0; y < y0+t.scale && y < fb.height; y++ {
		row := y * fb.stride
		for x := x0; x < x0+t.scale && x < fb.width; x++ {
			off := row + x*4
			if off+3 >= len(fb.buf) {
				continue
			}
			r += int(fb.buf[off])
			g += int(fb.buf[off+1])
			b += int(fb.buf[off+2])
			a += int(fb.buf[off+3])
			n++
		}
	}
	if n == 0 {
		return t.bg
	}
	return over(uint8(r/n), uint8(g/n), uint8(b/n), uint8(a/n), t.bg)
}

func cellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
