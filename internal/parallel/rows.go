// Package parallel provides the row-parallel fan-out used to compute a frame.
//
// A frame is split into disjoint bands of whole rows. Each band is one work
// item; a work item writes only the rows of its band, so the bands share the
// output buffer without locks. The WorkerPool runs the items and returns once
// every band is done.
package parallel

// BandsPerWorker is the number of row bands created per worker. Rows near
// the set boundary iterate much longer than rows far outside it; several
// bands per worker give the work-stealing queues something to balance.
const BandsPerWorker = 4

// RowSpan is the half-open row range [Y0, Y1).
type RowSpan struct {
	Y0, Y1 int
}

// Len returns the number of rows in the span.
func (s RowSpan) Len() int {
	return s.Y1 - s.Y0
}

// SplitRows partitions height rows into at most parts contiguous spans
// whose lengths differ by at most one. The spans cover [0, height) in order.
// It returns nil when height is not positive.
func SplitRows(height, parts int) []RowSpan {
	if height <= 0 {
		return nil
	}
	parts = min(max(parts, 1), height)

	spans := make([]RowSpan, parts)
	base, extra := height/parts, height%parts
	y := 0
	for i := range spans {
		n := base
		if i < extra {
			n++
		}
		spans[i] = RowSpan{Y0: y, Y1: y + n}
		y += n
	}
	return spans
}

// Bands returns the row spans for a pool of the given size.
func Bands(height, workers int) []RowSpan {
	return SplitRows(height, max(workers, 1)*BandsPerWorker)
}
