//go:build cgo

package hal

import (
	"errors"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	Fixed      bool // keep Width×Height instead of following the window size
	TPS        int
	Background color.RGBA
}

// RunWindow starts a resizable desktop window that displays the framebuffer and forwards
// pointer and keyboard input. It blocks until the window closes or the step returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	h := New(cfg.Width, cfg.Height).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step, cfg: cfg, wantW: cfg.Width, wantH: cfg.Height}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if !cfg.Fixed {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	cfg   WindowConfig
	fbImg *ebiten.Image
	step  func() error

	mu           sync.Mutex
	wantW, wantH int
}

func (g *hostGame) Update() error {
	g.mu.Lock()
	w, hh := g.wantW, g.wantH
	g.mu.Unlock()
	g.h.fb.resize(w, hh)

	g.pollPointer()
	g.pollKeyboard()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) pollPointer() {
	x, y := ebiten.CursorPosition()
	st := PointerState{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		st = PointerState{X: float64(tx), Y: float64(ty), Pressed: true}
	}
	g.h.ptr.set(st)
}

func (g *hostGame) pollKeyboard() {
	for _, r := range ebiten.AppendInputChars(nil) {
		g.h.kbd.emit(KeyEvent{Press: true, Rune: r})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.h.kbd.emit(KeyEvent{Code: KeyEscape, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		g.h.kbd.emit(KeyEvent{Code: KeyEscape, Press: false})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.h.kbd.emit(KeyEvent{Code: KeyEnter, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEnter) {
		g.h.kbd.emit(KeyEvent{Code: KeyEnter, Press: false})
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.width || g.fbImg.Bounds().Dy() != fb.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.mu.Lock()
	g.fbImg.WritePixels(fb.buf)
	fb.mu.Unlock()

	screen.Fill(g.cfg.Background)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Fixed {
		return g.cfg.Width, g.cfg.Height
	}
	g.mu.Lock()
	g.wantW, g.wantH = outsideWidth, outsideHeight
	g.mu.Unlock()
	return outsideWidth, outsideHeight
}
