// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package escape computes escape-time values of the Mandelbrot recurrence
// z <- z² + c over a rectangular pixel grid.
//
// # Lanes
//
// Pixels of a row are iterated in batches of 4 or 8 lanes. A batch keeps one
// complex value per lane in fixed-size arrays and advances all lanes in
// lockstep. A lane's counter is incremented only while its orbit is still
// bounded, and the batch stops when every lane has escaped or the iteration
// cap is reached. A lane that escapes early keeps iterating with its
// batch-mates; its counter no longer moves, so the result is the same as a
// per-pixel loop.
//
// # Values
//
// Each pixel yields a normalized value (k+1)/maxIterations clamped to 1,
// where k starts at 1 and counts bounded iterations. 1 means the point did
// not escape. Values are in (0, 1].
//
// # Precision
//
// All arithmetic is float64. Pixel spacing reaches the float64 resolution
// of the center coordinate near a window width of about 1e-13, where
// banding appears.
package escape

import (
	"github.com/gogpu/fractal/internal/parallel"
)

// Bailout is the squared magnitude at which an orbit counts as escaped.
const Bailout = 4.0

// Params describes one field computation.
type Params struct {
	XStart, XEnd  float64
	YStart, YEnd  float64
	Width, Height int
	MaxIterations int

	// Lanes is the batch width, 4 or 8. Other values use 8.
	Lanes int
}

// normalized clamps dimensions and the iteration cap to at least 1.
func (p Params) normalized() Params {
	p.Width = max(p.Width, 1)
	p.Height = max(p.Height, 1)
	p.MaxIterations = max(p.MaxIterations, 1)
	if p.Lanes != 4 {
		p.Lanes = 8
	}
	return p
}

// Executor runs a set of work items and returns when all have finished.
type Executor interface {
	ExecuteAll(work []func())
}

// Compute fills dst (row-major, Width*Height values, row 0 at YStart) with
// normalized escape values. Each span in bands is one work item; the spans
// must be disjoint. dst must hold at least Width*Height values.
func Compute(dst []float64, p Params, bands []parallel.RowSpan, ex Executor) {
	p = p.normalized()
	if len(dst) < p.Width*p.Height {
		panic("escape: destination buffer too small")
	}

	work := make([]func(), len(bands))
	for i, span := range bands {
		work[i] = func() {
			Rows(dst, p, span.Y0, span.Y1)
		}
	}
	ex.ExecuteAll(work)
}

// Rows computes rows [y0, y1) into dst.
func Rows(dst []float64, p Params, y0, y1 int) {
	p = p.normalized()
	y0 = max(y0, 0)
	y1 = min(y1, p.Height)
	for y := y0; y < y1; y++ {
		Row(dst[y*p.Width:(y+1)*p.Width], p, y)
	}
}

// Row computes row y into dst, which holds Width values.
//
// The last batch of a row whose width is not a multiple of the lane count
// is padded with copies of the last pixel.
func Row(dst []float64, p Params, y int) {
	p = p.normalized()
	ci := p.YStart + float64(y)*(p.YEnd-p.YStart)/float64(p.Height)
	xSpan := p.XEnd - p.XStart
	w := float64(p.Width)

	switch p.Lanes {
	case 4:
		var cr, cis [4]float64
		for i := range cis {
			cis[i] = ci
		}
		for x0 := 0; x0 < p.Width; x0 += 4 {
			for j := range cr {
				x := min(x0+j, p.Width-1)
				cr[j] = p.XStart + float64(x)*xSpan/w
			}
			k := iterate4(&cr, &cis, p.MaxIterations)
			for j := 0; j < 4 && x0+j < p.Width; j++ {
				dst[x0+j] = normalize(k[j], p.MaxIterations)
			}
		}
	default:
		var cr, cis [8]float64
		for i := range cis {
			cis[i] = ci
		}
		for x0 := 0; x0 < p.Width; x0 += 8 {
			for j := range cr {
				x := min(x0+j, p.Width-1)
				cr[j] = p.XStart + float64(x)*xSpan/w
			}
			k := iterate8(&cr, &cis, p.MaxIterations)
			for j := 0; j < 8 && x0+j < p.Width; j++ {
				dst[x0+j] = normalize(k[j], p.MaxIterations)
			}
		}
	}
}

// Point iterates a single c one lane at a time. It produces the same value
// as the batched loops and serves as their reference.
func Point(cr, ci float64, maxIterations int) float64 {
	maxIterations = max(maxIterations, 1)
	zr, zi := cr, ci
	k := 1
	for range maxIterations {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if !(zr*zr+zi*zi < Bailout) {
			break
		}
		k++
	}
	return normalize(k, maxIterations)
}

// normalize maps a lane counter to (0, 1].
func normalize(k, maxIterations int) float64 {
	v := float64(k+1) / float64(maxIterations)
	if v > 1 {
		return 1
	}
	return v
}
