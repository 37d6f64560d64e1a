package hud

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func testStats() Stats {
	return Stats{
		CenterX:       -0.75,
		CenterY:       0.1,
		Zoom:          2.5,
		MaxIterations: 90,
		Workers:       8,
		Frame:         12345,
		FrameTime:     16500 * time.Microsecond,
	}
}

func TestLines(t *testing.T) {
	lines := New(language.English).Lines(testStats())
	if len(lines) != 4 {
		t.Fatalf("len(Lines()) = %d, want 4", len(lines))
	}
	want := []string{
		"center -0.750000000000 +0.100000000000",
		"zoom 2.50x",
		"iterations 90  workers 8",
		"frame 12,345  16.5 ms",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLines_Localized(t *testing.T) {
	lines := New(language.German).Lines(testStats())
	if !strings.Contains(lines[3], "12.345") {
		t.Errorf("German frame line = %q, want grouping 12.345", lines[3])
	}
}

func TestDraw(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 400, 100))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{0, 0, 80, 255}), image.Point{}, draw.Src)

	New(language.English).Draw(dst, testStats())

	white, dark := 0, 0
	for y := 0; y < dst.Rect.Dy(); y++ {
		for x := 0; x < dst.Rect.Dx(); x++ {
			switch dst.RGBAAt(x, y) {
			case color.RGBA{255, 255, 255, 255}:
				white++
			case color.RGBA{0, 0, 0, 255}:
				dark++
			}
		}
	}
	if white == 0 {
		t.Error("Draw() wrote no text pixels")
	}
	if dark == 0 {
		t.Error("Draw() wrote no shadow pixels")
	}

	// Text stays in the top-left area.
	for x := 0; x < dst.Rect.Dx(); x++ {
		if got := dst.RGBAAt(x, 99); got != (color.RGBA{0, 0, 80, 255}) {
			t.Fatalf("pixel (%d, 99) = %v, want background", x, got)
		}
	}
}
