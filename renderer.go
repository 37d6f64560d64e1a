package fractal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/fractal/internal/escape"
	"github.com/gogpu/fractal/internal/parallel"
)

// Surface receives the finished field of every frame.
//
// The field is borrowed for the duration of Present only; implementations
// that need the pixels later must copy them.
type Surface interface {
	Present(f *Field) error
}

// FormatSurface is a Surface that declares the texture format it consumes.
// NewRenderer rejects formats for which CanPresentAs is false.
type FormatSurface interface {
	Surface
	Format() gputypes.TextureFormat
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(f *Field) error

// Present calls fn.
func (fn SurfaceFunc) Present(f *Field) error { return fn(f) }

// FrameStats describes the most recently completed frame.
type FrameStats struct {
	Frame   uint64
	Window  Window
	Kernel  time.Duration
	Color   time.Duration
	Present time.Duration
	Total   time.Duration
}

// Renderer drives frames: input updates the viewport, the kernel computes
// the whole field for the resulting window, every sample is colored into
// the field, and the field is handed to the surface.
//
// Nothing computed is kept between frames except the viewport.
// A Renderer must be driven from a single goroutine.
type Renderer struct {
	opts    options
	surface Surface

	viewport Viewport
	initial  Viewport

	field   *Field
	samples []float64

	pool      *parallel.WorkerPool
	bands     []parallel.RowSpan
	colorWork []func()

	stats  FrameStats
	closed bool
}

// NewRenderer validates the configuration, allocates the field at its
// final size and starts the worker pool.
func NewRenderer(s Surface, opts ...Option) (*Renderer, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if fs, ok := s.(FormatSurface); ok && !CanPresentAs(fs.Format()) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, fs.Format())
	}

	vp := NewViewport(o.centerX, o.centerY, o.extentX, o.extentY)
	vp.ZoomRate = o.zoomRate

	r := &Renderer{
		opts:     o,
		surface:  s,
		viewport: vp,
		initial:  vp,
		field:    NewField(o.width, o.height),
		samples:  make([]float64, o.width*o.height),
		pool:     parallel.NewWorkerPool(o.workers),
	}
	r.bands = parallel.Bands(o.height, r.pool.Workers())
	r.colorWork = make([]func(), len(r.bands))
	for i, span := range r.bands {
		r.colorWork[i] = func() { r.colorRows(span.Y0, span.Y1) }
	}

	Logger().Info("fractal: renderer created",
		slog.Int("width", o.width),
		slog.Int("height", o.height),
		slog.Int("iterations", o.maxIterations),
		slog.Int("lanes", o.lanes),
		slog.Int("workers", r.pool.Workers()),
		slog.Int("bands", len(r.bands)))
	return r, nil
}

// Frame applies one frame of input and renders. dt is the time since the
// previous frame in seconds; it scales zoom input only.
func (r *Renderer) Frame(in Input, dt float64) error {
	if r.closed {
		return ErrClosed
	}
	if in.Reset {
		r.viewport = r.initial
	}
	r.viewport.ApplyZoomInput(in.ZoomKey(), dt)
	r.viewport.ApplyPointerInput(in.PointerDown, in.Pointer,
		float64(r.field.width), float64(r.field.height))
	return r.Render()
}

// Render computes and presents the field for the current viewport without
// applying input.
func (r *Renderer) Render() error {
	if r.closed {
		return ErrClosed
	}
	start := time.Now()
	win := r.viewport.Window()

	escape.Compute(r.samples, escape.Params{
		XStart:        win.XStart,
		XEnd:          win.XEnd,
		YStart:        win.YStart,
		YEnd:          win.YEnd,
		Width:         r.field.width,
		Height:        r.field.height,
		MaxIterations: r.opts.maxIterations,
		Lanes:         r.opts.lanes,
	}, r.bands, r.pool)
	kernelDone := time.Now()

	r.pool.ExecuteAll(r.colorWork)
	colorDone := time.Now()

	prev := r.stats
	r.stats = FrameStats{
		Frame:  prev.Frame + 1,
		Window: win,
		Kernel: kernelDone.Sub(start),
		Color:  colorDone.Sub(kernelDone),
		Total:  colorDone.Sub(start),
	}
	if err := r.surface.Present(r.field); err != nil {
		r.stats = prev
		return fmt.Errorf("fractal: present frame %d: %w", prev.Frame+1, err)
	}
	end := time.Now()
	r.stats.Present = end.Sub(colorDone)
	r.stats.Total = end.Sub(start)
	Logger().Debug("fractal: frame",
		slog.Uint64("frame", r.stats.Frame),
		slog.Float64("cx", r.viewport.CenterX),
		slog.Float64("cy", r.viewport.CenterY),
		slog.Float64("zoom", r.viewport.Zoom),
		slog.Duration("kernel", r.stats.Kernel),
		slog.Duration("color", r.stats.Color),
		slog.Duration("total", r.stats.Total))
	return nil
}

// colorRows maps the samples of rows [y0, y1) into the field.
func (r *Renderer) colorRows(y0, y1 int) {
	w := r.field.width
	data := r.field.data
	for i := y0 * w; i < y1*w; i++ {
		c := MapColor(r.samples[i])
		j := i * Channels
		data[j+0] = float32(c.R)
		data[j+1] = float32(c.G)
		data[j+2] = float32(c.B)
		data[j+3] = float32(c.A)
	}
}

// Viewport returns the current viewport.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// SetViewport replaces the current viewport. Invalid extents, zoom or zoom
// rate are ignored.
func (r *Renderer) SetViewport(v Viewport) {
	if !finitePositive(v.ExtentX) || !finitePositive(v.ExtentY) ||
		!finitePositive(v.Zoom) || !finitePositive(v.ZoomRate) ||
		!finite(v.CenterX) || !finite(v.CenterY) {
		Logger().Warn("fractal: viewport rejected",
			slog.Float64("zoom", v.Zoom),
			slog.Float64("zoomRate", v.ZoomRate),
			slog.Float64("extentX", v.ExtentX),
			slog.Float64("extentY", v.ExtentY))
		return
	}
	r.viewport = v
}

// Field returns the pixel field. It is overwritten by every frame.
func (r *Renderer) Field() *Field {
	return r.field
}

// Stats returns the statistics of the last completed frame. Called from
// Surface.Present it describes the frame being presented; Present is zero
// and Total stops at the end of color mapping.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// MaxIterations returns the configured iteration cap.
func (r *Renderer) MaxIterations() int {
	return r.opts.maxIterations
}

// Workers returns the number of kernel workers.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Close stops the worker pool. Frame and Render return ErrClosed afterwards.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.pool.Close()
	return nil
}
