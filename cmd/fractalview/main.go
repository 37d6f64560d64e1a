// Command fractalview shows an interactive Mandelbrot view.
//
// With -headless it renders without a window, holding the zoom-in key for
// the whole run, and can save the last frame with -output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/integration/ebitenview"
	"github.com/gogpu/fractal/shader"
	"github.com/gogpu/fractal/surface"
)

func main() {
	var (
		width       = flag.Int("width", fractal.DefaultWidth, "field width in pixels")
		height      = flag.Int("height", fractal.DefaultHeight, "field height in pixels")
		iter        = flag.Int("iter", fractal.DefaultMaxIterations, "iteration cap")
		lanes       = flag.Int("lanes", fractal.DefaultLanes, "kernel batch width (4 or 8)")
		workers     = flag.Int("workers", 0, "kernel workers (0 = GOMAXPROCS)")
		zoomRate    = flag.Float64("zoom-rate", fractal.DefaultZoomRate, "zoom rate per second")
		cx          = flag.Float64("cx", fractal.DefaultCenterX, "initial center, real part")
		cy          = flag.Float64("cy", fractal.DefaultCenterY, "initial center, imaginary part")
		preset      = flag.String("preset", "", "start on a landmark: "+strings.Join(fractal.PresetNames(), ", "))
		scale       = flag.Float64("scale", 1, "window size relative to the field")
		hideHUD     = flag.Bool("no-hud", false, "start with the status overlay hidden")
		headless    = flag.Bool("headless", false, "run without a window")
		frames      = flag.Uint64("frames", 0, "stop after N frames in headless mode (0 = run until interrupted)")
		hz          = flag.Int("hz", 60, "frame rate in headless mode")
		output      = flag.String("output", "", "save the last headless frame as PNG")
		verbose     = flag.Bool("v", false, "log every frame")
		checkShader = flag.Bool("check-shader", false, "compile the display shader and exit")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *checkShader {
		words, err := shader.Compile()
		if err != nil {
			fail(err)
		}
		fmt.Printf("display shader: %d SPIR-V words\n", len(words))
		return
	}

	opts := []fractal.Option{
		fractal.WithSize(*width, *height),
		fractal.WithMaxIterations(*iter),
		fractal.WithLanes(*lanes),
		fractal.WithWorkers(*workers),
		fractal.WithZoomRate(*zoomRate),
		fractal.WithCenter(*cx, *cy),
	}
	if *preset != "" {
		p, ok := fractal.LookupPreset(*preset)
		if !ok {
			fail(fmt.Errorf("unknown preset %q (have %s)", *preset, strings.Join(fractal.PresetNames(), ", ")))
		}
		opts = append(opts, fractal.WithPreset(p))
	}

	if *headless {
		if err := runHeadless(opts, fractal.HeadlessConfig{Hz: *hz, Frames: *frames}, *output); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fail(err)
		}
		return
	}

	if err := ebitenview.Run(ebitenview.Config{
		Title:   "fractalview",
		Scale:   *scale,
		HideHUD: *hideHUD,
	}, opts...); err != nil {
		fail(err)
	}
}

func runHeadless(opts []fractal.Option, cfg fractal.HeadlessConfig, output string) error {
	s := surface.NewImageSurface()
	defer s.Close()

	r, err := fractal.NewRenderer(s, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = fractal.RunHeadless(ctx, r, fractal.NewScriptedInput(fractal.Input{ZoomIn: true}), cfg)
	if output != "" && s.Frames() > 0 {
		if serr := savePNG(output, s); serr != nil {
			return serr
		}
		fractal.Logger().Info("fractalview: saved frame", slog.String("path", output), slog.Uint64("frames", s.Frames()))
	}
	return err
}

func savePNG(path string, s *surface.ImageSurface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Snapshot()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "fractalview:", err)
	os.Exit(1)
}
