package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
}

// New returns a host HAL logging to stdout with a w×h framebuffer.
func New(w, h int) HAL {
	return newHost(w, h, os.Stdout)
}

func newHost(w, h int, log io.Writer) *hostHAL {
	if log == nil {
		log = io.Discard
	}
	return &hostHAL{
		logger: &hostLogger{w: log},
		fb:     newHostFramebuffer(w, h),
		kbd:    newHostKeyboard(),
		ptr:    &hostPointer{st: PointerState{X: -1, Y: -1}},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostPointer struct {
	mu sync.Mutex
	st PointerState
}

func (p *hostPointer) State() PointerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.st
}

func (p *hostPointer) set(st PointerState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st = st
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}
