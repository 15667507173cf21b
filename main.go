package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"softrast/app"
	"softrast/hal"
	"softrast/internal/buildinfo"
	"softrast/internal/imageout"
	"softrast/scene"
)

type options struct {
	headless bool
	hz       int
	ticks    uint64
	scene    string
	preset   string
	mode     string
	width    int
	height   int
	rgb565   bool
	spin     float64
	out      string
	verbose  bool
}

func main() {
	var o options
	flag.BoolVar(&o.headless, "headless", false, "Run without a window.")
	flag.IntVar(&o.hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&o.ticks, "ticks", 1, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.StringVar(&o.scene, "scene", "", "Scene .toml file (overrides -preset).")
	flag.StringVar(&o.preset, "preset", "pair", "Built-in scene when -scene is not set.")
	flag.StringVar(&o.mode, "mode", "", "Override draw mode: fill|wireframe.")
	flag.IntVar(&o.width, "width", 0, "Override image width.")
	flag.IntVar(&o.height, "height", 0, "Override image height.")
	flag.BoolVar(&o.rgb565, "rgb565", false, "Use a 16bpp framebuffer.")
	flag.Float64Var(&o.spin, "spin", 0, "Rotate the model by this many degrees per frame.")
	flag.StringVar(&o.out, "out", "", "Write the last headless frame to this image (.png, .jpg, .gif, .bmp, .tiff).")
	flag.BoolVar(&o.verbose, "v", false, "Log per-frame statistics.")
	flag.Parse()

	s, err := loadScene(o)
	if err != nil {
		fatalf("%v", err)
	}

	host := hal.HostConfig{Width: s.Width, Height: s.Height, Format: hal.PixelFormatRGB888}
	if o.rgb565 {
		host.Format = hal.PixelFormatRGB565
	}
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}

	var (
		a   *app.App
		log *slog.Logger
	)
	newApp := func(h hal.HAL) (func() error, error) {
		log = app.NewLogger(h.Logger(), level)
		log.Info("softrast starting", "build", buildinfo.String(), "headless", o.headless)
		var err error
		a, err = app.New(h, app.Config{Scene: s, Spin: float32(o.spin), HideHUD: o.headless, Log: log})
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}

	if o.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, hal.HeadlessConfig{Host: host, Hz: o.hz, Ticks: o.ticks}, newApp)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, app.ErrQuit) {
			fatalf("%v", err)
		}
		if o.out != "" && a != nil {
			if err := imageout.Save(o.out, a.Image()); err != nil {
				fatalf("snapshot: %v", err)
			}
			log.Info("snapshot written", "path", o.out, "frames", a.Frames())
		}
		return
	}

	err = hal.RunWindow(hal.WindowConfig{Host: host, Title: buildinfo.Title(s.Name)}, newApp)
	if err != nil && !errors.Is(err, app.ErrQuit) {
		fatalf("%v", err)
	}
}

// loadScene reads -scene or the named preset and applies the command-line overrides.
func loadScene(o options) (scene.Scene, error) {
	var (
		s   scene.Scene
		err error
	)
	if o.scene != "" {
		s, err = scene.Load(o.scene)
	} else {
		s, err = scene.Preset(o.preset)
	}
	if err != nil {
		return scene.Scene{}, err
	}
	if o.mode != "" {
		s.Mode = o.mode
	}
	if o.width > 0 {
		s.Width = o.width
	}
	if o.height > 0 {
		s.Height = o.height
	}
	if err := s.Validate(); err != nil {
		return scene.Scene{}, err
	}
	return s, nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
