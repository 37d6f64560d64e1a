package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	if pool.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("IsRunning() = false after creation, want true")
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -2} {
		pool := NewWorkerPool(n)
		want := runtime.GOMAXPROCS(0)
		if pool.Workers() != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d", n, pool.Workers(), want)
		}
		pool.Close()
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var count atomic.Int64
	work := make([]func(), 64)
	for i := range work {
		work[i] = func() { count.Add(1) }
	}
	pool.ExecuteAll(work)

	if got := count.Load(); got != int64(len(work)) {
		t.Errorf("ran %d items, want %d", got, len(work))
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_DisjointBands(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const height, width = 97, 13
	buf := make([]int, height*width)
	bands := Bands(height, pool.Workers())
	work := make([]func(), len(bands))
	for i, span := range bands {
		work[i] = func() {
			for y := span.Y0; y < span.Y1; y++ {
				for x := range width {
					buf[y*width+x] += y + 1
				}
			}
		}
	}
	pool.ExecuteAll(work)

	for y := range height {
		for x := range width {
			if got := buf[y*width+x]; got != y+1 {
				t.Fatalf("buf[%d,%d] = %d, want %d", x, y, got, y+1)
			}
		}
	}
}

func TestWorkerPool_ExecuteAll_UnevenWork(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var count atomic.Int64
	work := make([]func(), 16)
	for i := range work {
		work[i] = func() {
			if i%4 == 0 {
				time.Sleep(5 * time.Millisecond)
			}
			count.Add(1)
		}
	}
	pool.ExecuteAll(work)

	if count.Load() != 16 {
		t.Errorf("ran %d items, want 16", count.Load())
	}
}

func TestWorkerPool_ExecuteAll_Repeated(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var count atomic.Int64
	work := []func(){
		func() { count.Add(1) },
		func() { count.Add(1) },
		func() { count.Add(1) },
	}
	for range 100 {
		pool.ExecuteAll(work)
	}
	if count.Load() != 300 {
		t.Errorf("ran %d items, want 300", count.Load())
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("IsRunning() = true after Close, want false")
	}
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	ran := 0
	pool.ExecuteAll([]func(){
		func() { ran++ },
		func() { ran++ },
	})
	if ran != 2 {
		t.Errorf("ran %d items after Close, want 2", ran)
	}
}

func TestWorkerPool_ConcurrentCallers(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var count atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), 10)
			for i := range work {
				work[i] = func() { count.Add(1) }
			}
			pool.ExecuteAll(work)
		}()
	}
	wg.Wait()

	if count.Load() != 80 {
		t.Errorf("ran %d items, want 80", count.Load())
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	work := make([]func(), pool.Workers()*BandsPerWorker)
	for i := range work {
		work[i] = func() {}
	}
	b.ReportAllocs()
	for b.Loop() {
		pool.ExecuteAll(work)
	}
}
