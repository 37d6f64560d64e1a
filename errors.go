package fractal

import "errors"

// Configuration errors returned by NewRenderer.
var (
	ErrInvalidSize       = errors.New("fractal: field width and height must be positive")
	ErrInvalidIterations = errors.New("fractal: max iterations must be positive")
	ErrInvalidExtent     = errors.New("fractal: plane extent must be positive and finite")
	ErrInvalidCenter     = errors.New("fractal: plane center must be finite")
	ErrInvalidZoomRate   = errors.New("fractal: zoom rate must be positive and finite")
	ErrInvalidLanes      = errors.New("fractal: lane width must be 4 or 8")
	ErrNilSurface        = errors.New("fractal: nil surface")

	// ErrUnsupportedFormat is returned when a surface declares a texture
	// format the field cannot be converted to.
	ErrUnsupportedFormat = errors.New("fractal: unsupported surface format")
)

// ErrClosed is returned by Renderer.Frame after Close.
var ErrClosed = errors.New("fractal: renderer closed")
