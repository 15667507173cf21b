package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig sizes the host framebuffer.
type HostConfig struct {
	Width  int
	Height int
	Format PixelFormat

	// Log receives log lines. Nil means stderr.
	Log io.Writer
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = 700
	}
	if c.Height <= 0 {
		c.Height = 700
	}
	if c.Format.BytesPerPixel() == 0 {
		c.Format = PixelFormatRGB888
	}
	if c.Log == nil {
		c.Log = os.Stderr
	}
	return c
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		logger: &hostLogger{w: cfg.Log},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height, cfg.Format),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

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
