package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host  HostConfig
	Hz    int
	Ticks uint64 // 0 runs until ctx is done or a step fails
}

// NewAppFunc builds the per-frame step for a HAL.
type NewAppFunc func(HAL) (step func() error, err error)

// RunHeadless drives the app from a ticker without opening a window. It returns nil
// after cfg.Ticks steps, ctx.Err() on cancellation, or the first step error.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp NewAppFunc) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Host)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
