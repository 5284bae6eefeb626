package camera

// DragMode selects which orbit accumulator a pointer drag feeds.
type DragMode int

const (
	// DragRotate feeds the 2D rotation angles. Initial state.
	DragRotate DragMode = iota
	// DragTranslate feeds the x/y pan of the translation vector.
	DragTranslate
	// DragScale feeds the z (distance) component of the translation vector.
	DragScale
)

func (d DragMode) String() string {
	switch d {
	case DragRotate:
		return "rotate"
	case DragTranslate:
		return "translate"
	case DragScale:
		return "scale"
	default:
		return "unknown"
	}
}

// DragModeFor maps the modifier keys held at press time to a drag mode.
// Shift wins over ctrl and alt; ctrl or alt alone select scaling; no modifier rotates.
//
// Parameters:
//   - shift, ctrl, alt: modifier key states at the time of the press
//
// Returns:
//   - DragMode: the selected drag mode
func DragModeFor(shift, ctrl, alt bool) DragMode {
	switch {
	case shift:
		return DragTranslate
	case ctrl, alt:
		return DragScale
	default:
		return DragRotate
	}
}
