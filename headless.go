package fractal

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// HeadlessConfig controls RunHeadless.
type HeadlessConfig struct {
	// Hz is the frame rate. Zero or negative uses 60.
	Hz int

	// Frames stops the loop after that many frames. Zero runs until ctx
	// is canceled.
	Frames uint64
}

// RunHeadless drives r without a window: on every tick it polls src and
// renders one frame with dt = 1/Hz. It returns nil after cfg.Frames frames,
// ctx.Err() on cancellation, or the first frame error.
func RunHeadless(ctx context.Context, r *Renderer, src InputSource, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("fractal: invalid headless hz: %d", cfg.Hz)
	}
	dt := d.Seconds()

	t := time.NewTicker(d)
	defer t.Stop()

	Logger().Info("fractal: headless loop started",
		slog.Int("hz", cfg.Hz),
		slog.Uint64("frames", cfg.Frames))

	var frames uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := r.Frame(src.Poll(), dt); err != nil {
				return err
			}
			frames++
			if cfg.Frames > 0 && frames >= cfg.Frames {
				return nil
			}
		}
	}
}
