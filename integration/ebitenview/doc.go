// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenview shows a fractal.Renderer in a desktop window.
//
// The window is the render surface and the input source of the renderer.
// Every tick it polls the mouse and keyboard, runs one frame, converts the
// RGBA32F field to an 8-bit texture (flipping rows, since the field's row 0
// is the bottom of the window) and draws it scaled to the window.
//
// # Controls
//
//   - Left mouse drag: pan
//   - = or keypad +: zoom in while held
//   - - or keypad -: zoom out while held
//   - R: reset the view
//   - H: toggle the status overlay
//   - Escape: quit
//
// # Usage
//
//	err := ebitenview.Run(ebitenview.Config{Title: "fractal"},
//	    fractal.WithSize(1200, 1200))
package ebitenview
