// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/fractal"
)

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("surface: closed")

// ImageSurface keeps the latest frame as an 8-bit *image.RGBA with row 0 at
// the top.
//
// Present runs on the render goroutine; Snapshot and Frames may be called
// from any goroutine.
type ImageSurface struct {
	mu     sync.Mutex
	img    *image.RGBA
	frames uint64
	closed bool
}

// NewImageSurface creates an empty image surface. The image is allocated on
// the first Present at the field's size.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{}
}

// Present implements fractal.Surface.
func (s *ImageSurface) Present(f *fractal.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.img = f.ToRGBA(s.img)
	s.frames++
	return nil
}

// Format reports the pixel format of the stored image. The renderer checks
// it against the formats a field can be converted to.
func (s *ImageSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Frames returns the number of frames presented so far.
func (s *ImageSurface) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Snapshot returns a copy of the latest frame, or nil before the first
// Present.
func (s *ImageSurface) Snapshot() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.img == nil {
		return nil
	}
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// Close releases the stored image. Close is idempotent.
func (s *ImageSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.img = nil
	return nil
}

// Discard is a surface that drops every frame.
var Discard fractal.Surface = fractal.SurfaceFunc(func(*fractal.Field) error { return nil })
