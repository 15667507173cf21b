// Package hal is the boundary between the renderer and the host: a framebuffer to
// present into, keyboard events, a millisecond tick stream and a line logger.
package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatRGB888 is 24bpp, bytes in R, G, B order.
	PixelFormatRGB888
)

// BytesPerPixel returns the pixel size, or 0 for an unknown format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	case PixelFormatRGB888:
		return 3
	}
	return 0
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatRGB888:
		return "rgb888"
	}
	return "unknown"
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyHome
	KeySpace
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyTab:
		return "tab"
	case KeyHome:
		return "home"
	case KeySpace:
		return "space"
	}
	return "unknown"
}

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown and a
// non-zero Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream. One tick is one millisecond of host time.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
