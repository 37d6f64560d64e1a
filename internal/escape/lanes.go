// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package escape

// The batch loops below are written out per width so that every lane loop
// has a constant trip count and indexes fixed-size arrays without bounds
// checks. Within one iteration the order is fixed: advance z, test the
// bound, bump the counters of bounded lanes, then exit if no lane was
// bounded. Reordering changes which iteration the exit test observes.

// iterate4 runs a 4-lane batch and returns the per-lane counters.
func iterate4(cr, ci *[4]float64, maxIterations int) [4]int {
	zr, zi := *cr, *ci
	k := [4]int{1, 1, 1, 1}

	for range maxIterations {
		bounded := false
		for j := range 4 {
			r, i := zr[j], zi[j]
			r, i = r*r-i*i+cr[j], 2*r*i+ci[j]
			zr[j], zi[j] = r, i
			if r*r+i*i < Bailout {
				k[j]++
				bounded = true
			}
		}
		if !bounded {
			break
		}
	}
	return k
}

// iterate8 runs an 8-lane batch and returns the per-lane counters.
func iterate8(cr, ci *[8]float64, maxIterations int) [8]int {
	zr, zi := *cr, *ci
	k := [8]int{1, 1, 1, 1, 1, 1, 1, 1}

	for range maxIterations {
		bounded := false
		for j := range 8 {
			r, i := zr[j], zi[j]
			r, i = r*r-i*i+cr[j], 2*r*i+ci[j]
			zr[j], zi[j] = r, i
			if r*r+i*i < Bailout {
				k[j]++
				bounded = true
			}
		}
		if !bounded {
			break
		}
	}
	return k
}
