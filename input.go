package fractal

// Input is the user input polled once per frame.
//
// Values are levels, not edges: PointerDown is true for every frame the
// button is held. The pointer position uses the field's screen convention,
// origin at the bottom-left pixel.
type Input struct {
	PointerDown bool
	Pointer     Point
	ZoomIn      bool
	ZoomOut     bool

	// Reset restores the startup viewport before other input is applied.
	Reset bool
}

// ZoomKey folds the two zoom keys into one. Holding both is ZoomNone.
func (in Input) ZoomKey() ZoomKey {
	switch {
	case in.ZoomIn && !in.ZoomOut:
		return ZoomIn
	case in.ZoomOut && !in.ZoomIn:
		return ZoomOut
	default:
		return ZoomNone
	}
}

// InputSource supplies the input for the next frame.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

// Poll calls f.
func (f InputFunc) Poll() Input { return f() }

// ScriptedInput replays a fixed sequence of inputs, one per Poll, and then
// keeps returning the last one. An empty script returns the zero Input.
type ScriptedInput struct {
	frames []Input
	next   int
}

// NewScriptedInput returns a source replaying frames in order.
func NewScriptedInput(frames ...Input) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

// Poll returns the next scripted input.
func (s *ScriptedInput) Poll() Input {
	if len(s.frames) == 0 {
		return Input{}
	}
	in := s.frames[min(s.next, len(s.frames)-1)]
	if s.next < len(s.frames) {
		s.next++
	}
	return in
}

// Repeat returns n copies of in, for building scripts.
func Repeat(in Input, n int) []Input {
	out := make([]Input, max(n, 0))
	for i := range out {
		out[i] = in
	}
	return out
}

// PointerFromTopLeft converts a cursor position measured from the top-left
// corner, as window systems report it, to the field convention with row 0
// at the bottom of a field height pixels tall.
func PointerFromTopLeft(x, y float64, height int) Point {
	return Point{X: x, Y: float64(height-1) - y}
}
