// Package fractal renders an interactive escape-time view of the Mandelbrot
// set.
//
// # Overview
//
// Every frame recomputes the whole field: the Viewport turns the polled
// input into a window of the complex plane, the escape-time kernel iterates
// z <- z² + c for every pixel of that window in parallel row bands and
// 4- or 8-lane batches, MapColor turns each normalized escape value into a
// color, and the resulting Field is handed to a Surface for display.
//
//	s := surface.NewImageSurface()
//	r, err := fractal.NewRenderer(s, fractal.WithSize(800, 800))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	// One frame with the zoom-in key held for 16ms.
//	err = r.Frame(fractal.Input{ZoomIn: true}, 0.016)
//
// # Coordinate System
//
// Field rows follow the texture upload convention: row 0 is the bottom of
// the window and corresponds to the lowest imaginary part. Pointer positions
// in Input use the same origin. Field.At and Field.ToRGBA flip rows for
// top-left image consumers.
//
// # Interaction
//
// Holding zoom-in multiplies the zoom by 1+k*dt per frame; zoom-out divides
// by it. Dragging with the pointer down translates the view opposite to the
// pointer motion, so the field appears grabbed. Pointer state is polled each
// frame as a level, never as toggled edge events.
//
// # Packages
//
//   - surface: in-memory Surface used by the headless loop and tests
//   - integration/ebitenview: desktop window, input polling and texture upload
//   - shader: WGSL display pass compiled to SPIR-V
//   - cmd/fractalview: command-line viewer
package fractal

// Version is the current version of the module.
const Version = "0.1.0"
