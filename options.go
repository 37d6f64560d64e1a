package fractal

// Default renderer configuration.
const (
	DefaultWidth         = 1200
	DefaultHeight        = 1200
	DefaultMaxIterations = 90
	DefaultLanes         = 8
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := fractal.NewRenderer(s,
//	    fractal.WithSize(800, 600),
//	    fractal.WithMaxIterations(256),
//	    fractal.WithLanes(4))
type Option func(*options)

type options struct {
	width, height    int
	maxIterations    int
	centerX, centerY float64
	extentX, extentY float64
	zoomRate         float64
	lanes            int
	workers          int
}

func defaultOptions() options {
	return options{
		width:         DefaultWidth,
		height:        DefaultHeight,
		maxIterations: DefaultMaxIterations,
		centerX:       DefaultCenterX,
		centerY:       DefaultCenterY,
		extentX:       DefaultExtent,
		extentY:       DefaultExtent,
		zoomRate:      DefaultZoomRate,
		lanes:         DefaultLanes,
		workers:       0, // GOMAXPROCS
	}
}

// WithSize sets the field dimensions in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithMaxIterations sets the iteration cap of the kernel.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithCenter sets the startup center of the viewport.
func WithCenter(x, y float64) Option {
	return func(o *options) {
		o.centerX = x
		o.centerY = y
	}
}

// WithBaseExtent sets the plane extent visible at zoom 1.
func WithBaseExtent(x, y float64) Option {
	return func(o *options) {
		o.extentX = x
		o.extentY = y
	}
}

// WithPreset starts the viewport on a named landmark.
func WithPreset(p Preset) Option {
	return func(o *options) {
		o.centerX, o.centerY = p.CenterX, p.CenterY
		o.extentX, o.extentY = p.ExtentX, p.ExtentY
	}
}

// WithZoomRate sets the zoom rate constant k: zoom changes by a factor of
// 1+k*dt per frame while a zoom key is held.
func WithZoomRate(k float64) Option {
	return func(o *options) {
		o.zoomRate = k
	}
}

// WithLanes sets the kernel batch width, 4 or 8.
func WithLanes(n int) Option {
	return func(o *options) {
		o.lanes = n
	}
}

// WithWorkers sets the number of kernel workers.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func (o *options) validate() error {
	switch {
	case o.width < 1 || o.height < 1:
		return ErrInvalidSize
	case o.maxIterations < 1:
		return ErrInvalidIterations
	case !finite(o.centerX) || !finite(o.centerY):
		return ErrInvalidCenter
	case !finitePositive(o.extentX) || !finitePositive(o.extentY):
		return ErrInvalidExtent
	case !finitePositive(o.zoomRate):
		return ErrInvalidZoomRate
	case o.lanes != 4 && o.lanes != 8:
		return ErrInvalidLanes
	}
	return nil
}
