package fractal

import "math"

// Default viewport and controller constants.
const (
	DefaultCenterX  = -0.5
	DefaultCenterY  = 0.0
	DefaultExtent   = 2.5
	DefaultZoomRate = 1.5
)

// Point is a coordinate pair, either in screen pixels or plane units.
type Point struct {
	X, Y float64
}

// Window is a rectangle of the complex plane mapped onto the field.
type Window struct {
	XStart, XEnd float64
	YStart, YEnd float64
}

// Center returns the midpoint of the window.
func (w Window) Center() Point {
	return Point{X: (w.XStart + w.XEnd) / 2, Y: (w.YStart + w.YEnd) / 2}
}

// Extent returns the plane-unit width and height of the window.
func (w Window) Extent() (float64, float64) {
	return w.XEnd - w.XStart, w.YEnd - w.YStart
}

// ZoomKey is the zoom key held during a frame.
type ZoomKey uint8

const (
	ZoomNone ZoomKey = iota
	ZoomIn
	ZoomOut
)

func (k ZoomKey) String() string {
	switch k {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	default:
		return "none"
	}
}

// Viewport is the pan/zoom state that persists between frames.
//
// ExtentX and ExtentY are the base extents at zoom 1. The visible window
// spans ExtentX/Zoom by ExtentY/Zoom plane units around the center.
//
// A Viewport is Idle or Dragging. Dragging starts when the pointer goes
// down and ends when it is released; while dragging, the center follows the
// pointer relative to the anchors captured at drag start.
type Viewport struct {
	CenterX, CenterY float64
	ExtentX, ExtentY float64
	Zoom             float64
	ZoomRate         float64

	dragging     bool
	anchorScreen Point
	anchorCenter Point
}

// NewViewport returns an idle viewport at zoom 1.
func NewViewport(centerX, centerY, extentX, extentY float64) Viewport {
	return Viewport{
		CenterX:  centerX,
		CenterY:  centerY,
		ExtentX:  extentX,
		ExtentY:  extentY,
		Zoom:     1,
		ZoomRate: DefaultZoomRate,
	}
}

// EffectiveExtent returns the visible plane extent after zoom.
func (v Viewport) EffectiveExtent() (float64, float64) {
	return v.ExtentX / v.Zoom, v.ExtentY / v.Zoom
}

// Window returns the plane rectangle centered on the viewport center.
func (v Viewport) Window() Window {
	ex, ey := v.EffectiveExtent()
	return Window{
		XStart: v.CenterX - ex/2,
		XEnd:   v.CenterX + ex/2,
		YStart: v.CenterY - ey/2,
		YEnd:   v.CenterY + ey/2,
	}
}

// Dragging reports whether a drag gesture is active.
func (v Viewport) Dragging() bool {
	return v.dragging
}

// DragAnchor returns the screen and plane anchors of the active drag.
// ok is false while idle.
func (v Viewport) DragAnchor() (screen, center Point, ok bool) {
	return v.anchorScreen, v.anchorCenter, v.dragging
}

// ApplyZoomInput scales Zoom by 1+ZoomRate*dt while a zoom key is held:
// multiplied for ZoomIn, divided for ZoomOut. Repeated per frame this is
// exponential growth independent of frame rate.
//
// Non-positive or non-finite dt or ZoomRate, and any step that would make Zoom
// non-positive or non-finite, leave the viewport unchanged.
func (v *Viewport) ApplyZoomInput(key ZoomKey, dt float64) {
	if key == ZoomNone || !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	if !finitePositive(v.ZoomRate) {
		Logger().Warn("fractal: zoom step dropped", "rate", v.ZoomRate, "dt", dt)
		return
	}
	factor := 1 + v.ZoomRate*dt
	if !finitePositive(factor) {
		Logger().Warn("fractal: zoom step dropped", "rate", v.ZoomRate, "dt", dt)
		return
	}

	zoom := v.Zoom
	switch key {
	case ZoomIn:
		zoom *= factor
	case ZoomOut:
		zoom /= factor
	}
	if !finitePositive(zoom) {
		Logger().Warn("fractal: zoom out of range", "zoom", zoom)
		return
	}
	v.Zoom = zoom
}

// ApplyPointerInput advances the drag state machine with the pointer state
// polled this frame. pos is in screen pixels with the origin at the bottom
// left of the field; screenW and screenH are the field dimensions.
//
//	Idle, down      -> Dragging (anchors captured, center unchanged)
//	Dragging, down  -> Dragging (center = anchor center - scaled delta)
//	Dragging, up    -> Idle (center unchanged)
//	Idle, up        -> Idle
func (v *Viewport) ApplyPointerInput(down bool, pos Point, screenW, screenH float64) {
	if !down {
		v.dragging = false
		return
	}
	if !finite(pos.X) || !finite(pos.Y) {
		return
	}
	if !v.dragging {
		v.dragging = true
		v.anchorScreen = pos
		v.anchorCenter = Point{X: v.CenterX, Y: v.CenterY}
		return
	}
	if !finitePositive(screenW) || !finitePositive(screenH) {
		return
	}

	ex, ey := v.EffectiveExtent()
	cx := v.anchorCenter.X - (pos.X-v.anchorScreen.X)/screenW*ex
	cy := v.anchorCenter.Y - (pos.Y-v.anchorScreen.Y)/screenH*ey
	if !finite(cx) || !finite(cy) {
		return
	}
	v.CenterX, v.CenterY = cx, cy
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
