// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/text/language"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/hud"
	"github.com/gogpu/fractal/shader"
)

// Config controls the window.
type Config struct {
	// Title is the window title.
	Title string

	// Scale multiplies the field size to get the initial window size.
	// Zero or negative uses 1.
	Scale float64

	// HideHUD starts with the status overlay hidden.
	HideHUD bool

	// TPS is the tick rate. Zero or negative uses 60.
	TPS int
}

// view implements ebiten.Game, fractal.Surface and fractal.InputSource.
type view struct {
	r       *fractal.Renderer
	overlay *hud.Overlay
	showHUD bool

	img  *image.RGBA
	tex  *ebiten.Image
	last time.Time
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(cfg Config, opts ...fractal.Option) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "fractal"
	}

	v := &view{
		overlay: hud.New(language.English),
		showHUD: !cfg.HideHUD,
	}
	r, err := fractal.NewRenderer(v, opts...)
	if err != nil {
		return err
	}
	defer r.Close()
	v.r = r

	logger := fractal.Logger()
	if words, err := shader.Compile(); err != nil {
		logger.Warn("ebitenview: display shader", slog.Any("err", err))
	} else {
		logger.Info("ebitenview: display shader compiled", slog.Int("words", len(words)))
	}

	f := r.Field()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(f.Width())*cfg.Scale), int(float64(f.Height())*cfg.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	logger.Info("ebitenview: window opened",
		slog.Int("width", f.Width()),
		slog.Int("height", f.Height()),
		slog.Int("tps", cfg.TPS))

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenview: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (v *view) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.showHUD = !v.showHUD
	}

	now := time.Now()
	var dt float64
	if !v.last.IsZero() {
		dt = now.Sub(v.last).Seconds()
	}
	v.last = now

	return v.r.Frame(v.Poll(), dt)
}

// Poll implements fractal.InputSource from the ebiten input state.
func (v *view) Poll() fractal.Input {
	x, y := ebiten.CursorPosition()
	return fractal.Input{
		PointerDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pointer:     fractal.PointerFromTopLeft(float64(x), float64(y), v.r.Field().Height()),
		ZoomIn:      ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyNumpadAdd),
		ZoomOut:     ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract),
		Reset:       inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// Format implements fractal.FormatSurface: the window texture is 8-bit RGBA.
func (v *view) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Present implements fractal.Surface. It runs inside Update, where
// r.Stats already describes the frame being presented; the texture upload
// happens in Draw.
func (v *view) Present(f *fractal.Field) error {
	v.img = f.ToRGBA(v.img)
	if v.showHUD {
		vp := v.r.Viewport()
		v.overlay.Draw(v.img, hud.Stats{
			CenterX:       vp.CenterX,
			CenterY:       vp.CenterY,
			Zoom:          vp.Zoom,
			MaxIterations: v.r.MaxIterations(),
			Workers:       v.r.Workers(),
			Frame:         v.r.Stats().Frame,
			FrameTime:     v.r.Stats().Total,
		})
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *view) Draw(screen *ebiten.Image) {
	if v.img == nil {
		return
	}
	if v.tex == nil {
		v.tex = ebiten.NewImage(v.img.Rect.Dx(), v.img.Rect.Dy())
	}
	v.tex.WritePixels(v.img.Pix)
	screen.DrawImage(v.tex, nil)
}

// Layout implements ebiten.Game. The logical screen is the field; ebiten
// scales it to the window.
func (v *view) Layout(_, _ int) (int, int) {
	f := v.r.Field()
	return f.Width(), f.Height()
}
