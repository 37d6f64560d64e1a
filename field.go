package fractal

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Channels is the number of float32 components stored per pixel.
const Channels = 4

// Field is a row-major RGBA buffer with one float32 per channel.
//
// Row 0 is the bottom row of the visible window, following the texture
// upload convention of the render surface. The image.Image view (At, Bounds)
// flips rows so that y grows downward like any other Go image.
//
// The dimensions are fixed for the lifetime of the field. The renderer
// overwrites the buffer in place every frame.
type Field struct {
	width  int
	height int
	data   []float32
}

// NewField creates a field with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewField(width, height int) *Field {
	width = max(width, 1)
	height = max(height, 1)
	return &Field{
		width:  width,
		height: height,
		data:   make([]float32, width*height*Channels),
	}
}

// Width returns the width of the field.
func (f *Field) Width() int {
	return f.width
}

// Height returns the height of the field.
func (f *Field) Height() int {
	return f.height
}

// Data returns the raw RGBA32F data, width*height*4 floats long.
func (f *Field) Data() []float32 {
	return f.data
}

// Row returns the channels of row y (0 = bottom).
func (f *Field) Row(y int) []float32 {
	stride := f.width * Channels
	return f.data[y*stride : (y+1)*stride]
}

// Format reports the GPU texture format matching the buffer layout.
func (f *Field) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA32Float
}

// CanPresentAs reports whether the field can be delivered in format:
// either the raw RGBA32F buffer, or 8-bit RGBA through ToRGBA.
func CanPresentAs(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatRGBA32Float, gputypes.TextureFormatRGBA8Unorm:
		return true
	}
	return false
}

// BytesPerRow returns the upload stride in bytes.
func (f *Field) BytesPerRow() int {
	return f.width * Channels * 4
}

// Set stores c at column x of row y (0 = bottom). Out-of-range
// coordinates are ignored.
func (f *Field) Set(x, y int, c RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * Channels
	f.data[i+0] = float32(c.R)
	f.data[i+1] = float32(c.G)
	f.data[i+2] = float32(c.B)
	f.data[i+3] = float32(c.A)
}

// Get returns the color at column x of row y (0 = bottom).
func (f *Field) Get(x, y int) RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return RGBA{}
	}
	i := (y*f.width + x) * Channels
	return RGBA{
		R: float64(f.data[i+0]),
		G: float64(f.data[i+1]),
		B: float64(f.data[i+2]),
		A: float64(f.data[i+3]),
	}
}

// ToRGBA converts the field to an 8-bit image with row 0 at the top.
// dst is reused when its bounds match the field; otherwise a new image is
// allocated. The returned image is the one written to.
func (f *Field) ToRGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Rect.Dx() != f.width || dst.Rect.Dy() != f.height {
		dst = image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	}
	for y := 0; y < f.height; y++ {
		src := f.Row(f.height - 1 - y)
		out := dst.Pix[y*dst.Stride : y*dst.Stride+f.width*4]
		for i := 0; i < len(src); i += Channels {
			a := clamp01(float64(src[i+3]))
			out[i+0] = uint8(clamp01(float64(src[i+0]))*a*255 + 0.5)
			out[i+1] = uint8(clamp01(float64(src[i+1]))*a*255 + 0.5)
			out[i+2] = uint8(clamp01(float64(src[i+2]))*a*255 + 0.5)
			out[i+3] = uint8(a*255 + 0.5)
		}
	}
	return dst
}

// At implements the image.Image interface. y grows downward.
func (f *Field) At(x, y int) color.Color {
	return f.Get(x, f.height-1-y)
}

// Bounds implements the image.Image interface.
func (f *Field) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Field) ColorModel() color.Model {
	return color.RGBA64Model
}
