// Package hud draws the status overlay of the viewer: center, zoom,
// iteration cap and frame time in a fixed bitmap font.
package hud

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats is the state shown by the overlay.
type Stats struct {
	CenterX, CenterY float64
	Zoom             float64
	MaxIterations    int
	Workers          int
	Frame            uint64
	FrameTime        time.Duration
}

// Overlay renders Stats as text into an image.
type Overlay struct {
	printer *message.Printer
	face    font.Face
	fg      image.Image
	shadow  image.Image
	margin  int
}

// New returns an overlay that formats numbers for the given language.
func New(tag language.Tag) *Overlay {
	return &Overlay{
		printer: message.NewPrinter(tag),
		face:    basicfont.Face7x13,
		fg:      image.NewUniform(color.White),
		shadow:  image.NewUniform(color.Black),
		margin:  6,
	}
}

// Lines formats s, one string per overlay line.
func (o *Overlay) Lines(s Stats) []string {
	ms := float64(s.FrameTime) / float64(time.Millisecond)
	return []string{
		o.printer.Sprintf("center %.12f %+.12f", s.CenterX, s.CenterY),
		o.printer.Sprintf("zoom %.2fx", s.Zoom),
		o.printer.Sprintf("iterations %d  workers %d", s.MaxIterations, s.Workers),
		o.printer.Sprintf("frame %d  %.1f ms", s.Frame, ms),
	}
}

// Draw writes the overlay into the top-left corner of dst.
func (o *Overlay) Draw(dst draw.Image, s Stats) {
	m := o.face.Metrics()
	lineHeight := m.Height.Ceil()
	x := dst.Bounds().Min.X + o.margin
	y := dst.Bounds().Min.Y + o.margin + m.Ascent.Ceil()

	for _, line := range o.Lines(s) {
		o.drawString(dst, o.shadow, x+1, y+1, line)
		o.drawString(dst, o.fg, x, y, line)
		y += lineHeight
	}
}

func (o *Overlay) drawString(dst draw.Image, src image.Image, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: o.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
