package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int

	// Pointer scripts the pointer per tick; nil leaves it off-canvas and released.
	Pointer func(tick uint64) PointerState

	// Size scripts surface resizes per tick; nil keeps Width×Height.
	Size func(tick uint64) (w, h int)

	// Log receives log lines; nil means stdout.
	Log io.Writer
}

// RunHeadless runs the logo without opening a window. Hz <= 0 runs ticks back to back.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}
	h := newHost(cfg.Width, cfg.Height, cfg.Log)
	step := newApp(h)

	var tc <-chan time.Time
	if cfg.Hz > 0 {
		d := time.Second / time.Duration(cfg.Hz)
		if d <= 0 {
			return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
		}
		t := time.NewTicker(d)
		defer t.Stop()
		tc = t.C
	}

	var tick uint64
	for {
		if tc != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tc:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if cfg.Size != nil {
			h.fb.resize(cfg.Size(tick))
		}
		if cfg.Pointer != nil {
			h.ptr.set(cfg.Pointer(tick))
		}
		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
