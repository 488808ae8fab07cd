//go:build !cgo

package hal

import (
	"errors"
	"image/color"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	Fixed      bool
	TPS        int
	Background color.RGBA
}

func RunWindow(_ WindowConfig, _ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
