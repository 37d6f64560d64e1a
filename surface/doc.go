// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides render surfaces that live in memory.
//
// A surface receives the finished fractal.Field of every frame. The window
// surface lives in integration/ebitenview; the surfaces here keep frames in
// memory for the headless loop, benchmarks and tests:
//
//   - ImageSurface: converts every frame to an 8-bit *image.RGBA
//   - Discard: drops frames
//
// # Usage
//
//	s := surface.NewImageSurface()
//	r, err := fractal.NewRenderer(s, fractal.WithSize(640, 480))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	if err := r.Render(); err != nil {
//	    return err
//	}
//	img := s.Snapshot()
package surface
