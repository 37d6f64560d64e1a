package fractal

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewField(t *testing.T) {
	f := NewField(7, 3)
	if f.Width() != 7 || f.Height() != 3 {
		t.Errorf("size = %dx%d, want 7x3", f.Width(), f.Height())
	}
	if got, want := len(f.Data()), 7*3*Channels; got != want {
		t.Errorf("len(Data()) = %d, want %d", got, want)
	}
	if got := f.Bounds(); got != image.Rect(0, 0, 7, 3) {
		t.Errorf("Bounds() = %v, want (0,0)-(7,3)", got)
	}
}

func TestNewField_ClampsSize(t *testing.T) {
	f := NewField(0, -4)
	if f.Width() != 1 || f.Height() != 1 {
		t.Errorf("NewField(0, -4) size = %dx%d, want 1x1", f.Width(), f.Height())
	}
}

func TestField_Format(t *testing.T) {
	f := NewField(10, 2)
	if f.Format() != gputypes.TextureFormatRGBA32Float {
		t.Errorf("Format() = %v, want RGBA32Float", f.Format())
	}
	if got := f.BytesPerRow(); got != 10*16 {
		t.Errorf("BytesPerRow() = %d, want 160", got)
	}
}

func TestCanPresentAs(t *testing.T) {
	tests := []struct {
		format gputypes.TextureFormat
		want   bool
	}{
		{gputypes.TextureFormatRGBA32Float, true},
		{gputypes.TextureFormatRGBA8Unorm, true},
		{gputypes.TextureFormatBGRA8Unorm, false},
		{gputypes.TextureFormatUndefined, false},
	}
	for _, tt := range tests {
		if got := CanPresentAs(tt.format); got != tt.want {
			t.Errorf("CanPresentAs(%v) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestField_SetGet(t *testing.T) {
	f := NewField(4, 4)
	c := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	f.Set(2, 1, c)

	if got := f.Get(2, 1); got != c {
		t.Errorf("Get(2, 1) = %+v, want %+v", got, c)
	}
	row := f.Row(1)
	if row[2*Channels+1] != 0.5 {
		t.Errorf("Row(1) green = %v, want 0.5", row[2*Channels+1])
	}

	// Out of range is ignored.
	f.Set(-1, 0, White)
	f.Set(0, 4, White)
	if got := f.Get(9, 9); got != (RGBA{}) {
		t.Errorf("Get(9, 9) = %+v, want zero", got)
	}
}

func TestField_RowsFlipForImages(t *testing.T) {
	f := NewField(3, 2)
	f.Set(0, 0, RGB(1, 0, 0)) // bottom-left
	f.Set(0, 1, RGB(0, 0, 1)) // top-left

	if got := color.RGBAModel.Convert(f.At(0, 0)).(color.RGBA); got.B != 255 || got.R != 0 {
		t.Errorf("At(0, 0) = %v, want blue (top row)", got)
	}
	if got := color.RGBAModel.Convert(f.At(0, 1)).(color.RGBA); got.R != 255 || got.B != 0 {
		t.Errorf("At(0, 1) = %v, want red (bottom row)", got)
	}

	img := f.ToRGBA(nil)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("ToRGBA (0,0) = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("ToRGBA (0,1) = %v, want red", got)
	}
}

func TestField_ToRGBA_Reuse(t *testing.T) {
	f := NewField(5, 5)
	dst := image.NewRGBA(image.Rect(0, 0, 5, 5))
	if got := f.ToRGBA(dst); got != dst {
		t.Error("ToRGBA did not reuse a matching destination")
	}
	small := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if got := f.ToRGBA(small); got == small || got.Rect.Dx() != 5 {
		t.Error("ToRGBA reused a destination of the wrong size")
	}
}

func TestField_ToRGBA_Premultiplies(t *testing.T) {
	f := NewField(1, 1)
	f.Set(0, 0, RGBA{R: 1, G: 1, B: 1, A: 0.5})
	got := f.ToRGBA(nil).RGBAAt(0, 0)
	if got.A != 128 || got.R != 128 {
		t.Errorf("ToRGBA = %v, want premultiplied {128 128 128 128}", got)
	}
}
