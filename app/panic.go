package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"discube/hal"
	"discube/logo/raster"
)

// guard turns a panic inside step into an error. The panic and its stack are logged and drawn
// onto the framebuffer.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			stack := debug.Stack()
			showPanic(h, r, stack)
			err = fmt.Errorf("app: panic: %v", r)
		}()
		return step()
	}
}

func showPanic(h hal.HAL, value any, stack []byte) {
	var trace []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		trace = append(trace, line)
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("app: panic: %v", value))
		for _, line := range trace {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	fb.ClearRGBA(255, 255, 255, 255)

	fontHeight := int(buttonFont.GetYAdvance())
	fontWidth := raster.TextWidth(buttonFont, "0")
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = fb.Present()
		return
	}

	t := &raster.RGBATarget{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	fg := color.RGBA{A: 255}

	lines := []string{"discube panic:", fmt.Sprintf("panic: %v", value)}
	if len(trace) > 0 {
		lines = append(lines, "stack:")
		lines = append(lines, trace...)
	} else {
		lines = append(lines, "stack: unavailable")
	}

	cols := fb.Width() / fontWidth
	if cols <= 0 {
		cols = 1
	}
	y := fontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			raster.DrawText(t, buttonFont, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
