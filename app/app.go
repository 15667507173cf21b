// Package app wires a scene, the rasterizer and a HAL into a per-frame step.
package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"softrast/hal"
	"softrast/rast"
	"softrast/scene"
)

// ErrQuit is returned by Step when the user asks to exit.
var ErrQuit = errors.New("quit")

type Config struct {
	Scene scene.Scene

	// Spin rotates the model by this many degrees every frame.
	Spin float32

	// HideHUD disables the text overlay.
	HideHUD bool

	// Log receives structured records. Nil logs at info level to the HAL logger.
	Log *slog.Logger
}

// App renders Config.Scene into the HAL framebuffer once per Step.
type App struct {
	fb    hal.Framebuffer
	keys  <-chan hal.KeyEvent
	ticks <-chan uint64
	log   *slog.Logger

	scene  scene.Scene
	orbit  *scene.OrbitController
	r      *rast.Rasterizer
	tris   []rast.Triangle
	target rast.Target
	hud    *hud

	spin   float32
	paused bool
	dirty  bool

	frames uint64
	stats  rast.DrawStats

	now       uint64 // last tick seen
	fpsTick   uint64
	fpsFrames uint64
}

// New validates the scene and binds the app to h's framebuffer.
func New(h hal.HAL, cfg Config) (*App, error) {
	if err := cfg.Scene.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Log
	if log == nil {
		log = NewLogger(h.Logger(), slog.LevelInfo)
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, fmt.Errorf("app: no framebuffer: %w", hal.ErrNotImplemented)
	}
	target, err := targetFor(fb)
	if err != nil {
		return nil, err
	}

	a := &App{
		fb:     fb,
		log:    log,
		scene:  cfg.Scene,
		orbit:  scene.NewOrbitController(cfg.Scene),
		r:      rast.New(cfg.Scene.Width, cfg.Scene.Height),
		tris:   cfg.Scene.RastTriangles(),
		target: target,
		spin:   cfg.Spin,
		dirty:  true,
	}
	if in := h.Input(); in != nil && in.Keyboard() != nil {
		a.keys = in.Keyboard().Events()
	}
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}
	if !cfg.HideHUD {
		a.hud = newHUD(target)
	}

	if axis, normalized := cfg.Scene.Axis(); normalized {
		log.Warn("rotation axis normalized", "axis", cfg.Scene.Model.Axis, "unit", axis)
	}
	if fb.Width() != a.scene.Width || fb.Height() != a.scene.Height {
		log.Warn("scene size differs from framebuffer; output is clipped",
			"scene", fmt.Sprintf("%dx%d", a.scene.Width, a.scene.Height),
			"framebuffer", fmt.Sprintf("%dx%d", fb.Width(), fb.Height()))
	}
	log.Info("scene loaded", "name", a.scene.Name, "triangles", len(a.tris),
		"mode", a.scene.RenderMode(), "format", fb.Format())
	return a, nil
}

func targetFor(fb hal.Framebuffer) (rast.Target, error) {
	switch fb.Format() {
	case hal.PixelFormatRGB565:
		return &rast.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}, nil
	case hal.PixelFormatRGB888:
		return &rast.RGB888Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}, nil
	}
	return nil, fmt.Errorf("app: pixel format %v: %w", fb.Format(), hal.ErrNotImplemented)
}

// Step handles pending input, advances the spin and re-renders if anything changed.
func (a *App) Step() error {
	if err := a.drainKeys(); err != nil {
		return err
	}
	a.drainTicks()

	if a.spin != 0 && !a.paused {
		a.orbit.Rotate(a.spin)
		a.dirty = true
	}
	if !a.dirty {
		return nil
	}
	a.dirty = false
	return a.render()
}

func (a *App) drainKeys() error {
	for {
		select {
		case ev, ok := <-a.keys:
			if !ok {
				a.keys = nil
				return nil
			}
			if err := a.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (a *App) drainTicks() {
	for {
		select {
		case seq, ok := <-a.ticks:
			if !ok {
				a.ticks = nil
				return
			}
			a.now = seq
		default:
			return
		}
	}
}

func (a *App) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	code := ev.Code
	switch ev.Rune {
	case 'a':
		code = hal.KeyLeft
	case 'd':
		code = hal.KeyRight
	case 'w':
		code = hal.KeyTab
	case 'r':
		code = hal.KeyHome
	case 'q':
		code = hal.KeyEscape
	case 'h':
		if a.hud != nil {
			a.hud.hidden = !a.hud.hidden
			a.dirty = true
		}
		return nil
	}

	switch code {
	case hal.KeyEscape:
		return ErrQuit
	case hal.KeyLeft:
		a.orbit.Rotate(-scene.RotateStep)
	case hal.KeyRight:
		a.orbit.Rotate(scene.RotateStep)
	case hal.KeyUp:
		a.orbit.Zoom(-scene.ZoomStep)
	case hal.KeyDown:
		a.orbit.Zoom(scene.ZoomStep)
	case hal.KeyTab:
		a.toggleMode()
	case hal.KeyHome:
		a.orbit.Reset()
	case hal.KeySpace:
		a.paused = !a.paused
	default:
		return nil
	}
	a.log.Debug("key", "code", code, "angle", a.orbit.Angle, "distance", a.orbit.Distance)
	a.dirty = true
	return nil
}

func (a *App) toggleMode() {
	if a.scene.RenderMode() == rast.ModeWireframe {
		a.scene.Mode = rast.ModeFill.String()
	} else {
		a.scene.Mode = rast.ModeWireframe.String()
	}
}

func (a *App) render() error {
	a.orbit.Apply(&a.scene)
	a.r.Clear()
	a.scene.Apply(a.r)
	a.stats = a.r.Draw(a.tris)

	a.fb.ClearRGB(0, 0, 0)
	a.r.Blit(a.target)
	if a.hud != nil {
		a.hud.draw(a.hudLines())
	}
	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	a.frames++
	a.fpsFrames++

	a.log.Debug("frame", "n", a.frames, "triangles", a.stats.Triangles, "drawn", a.stats.Drawn,
		"skipped", a.stats.Skipped, "fragments", a.stats.Fragments)
	if a.stats.Skipped > 0 && a.frames == 1 {
		a.log.Warn("degenerate triangles skipped", "count", a.stats.Skipped)
	}
	if a.now-a.fpsTick >= 1000 {
		if a.fpsTick != 0 {
			a.log.Debug("fps", "frames", a.fpsFrames, "ms", a.now-a.fpsTick)
		}
		a.fpsTick, a.fpsFrames = a.now, 0
	}
	return nil
}

func (a *App) hudLines() []string {
	return []string{
		fmt.Sprintf("%s  %s  angle %.0f  eye %.1f", a.scene.Name, a.scene.RenderMode(), a.orbit.Angle, a.orbit.Distance),
		fmt.Sprintf("tris %d/%d  frags %d", a.stats.Drawn, a.stats.Triangles, a.stats.Fragments),
	}
}

// Image returns the last rendered frame without the HUD.
func (a *App) Image() *image.RGBA { return a.r.Image() }

// Stats returns the statistics of the last rendered frame.
func (a *App) Stats() rast.DrawStats { return a.stats }

// Frames returns how many frames have been rendered.
func (a *App) Frames() uint64 { return a.frames }

// Scene returns the scene as last rendered, including orbit changes.
func (a *App) Scene() scene.Scene { return a.scene }
