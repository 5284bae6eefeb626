package camera

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode or depth range name cannot be parsed.
var ErrUnknownMode = errors.New("unknown mode")

// Mode tags which of the camera's two state groups drives the active view.
type Mode int

const (
	// ModeOrbit uses the rotation/translation accumulators driven by mouse drags.
	ModeOrbit Mode = iota
	// ModeFreeLook uses the position/yaw/pitch state driven by mouse look and keys.
	ModeFreeLook
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFreeLook:
		return "free_look"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name ("orbit", "free_look") into a Mode.
// Matching ignores case, and "freelook" / "free-look" are accepted.
//
// Parameters:
//   - s: the mode name
//
// Returns:
//   - Mode: the parsed mode
//   - error: wraps ErrUnknownMode if the name is not recognised
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orbit":
		return ModeOrbit, nil
	case "free_look", "freelook", "free-look":
		return ModeFreeLook, nil
	default:
		return ModeOrbit, fmt.Errorf("camera: parse mode %q: %w", s, ErrUnknownMode)
	}
}

// DepthRange selects the clip-space depth convention of the projection matrix.
type DepthRange int

const (
	// DepthRangeNegOneToOne maps near/far to -1/1 (OpenGL).
	DepthRangeNegOneToOne DepthRange = iota
	// DepthRangeZeroToOne maps near/far to 0/1 (WebGPU, Vulkan, Metal).
	DepthRangeZeroToOne
)

func (d DepthRange) String() string {
	switch d {
	case DepthRangeNegOneToOne:
		return "neg_one_to_one"
	case DepthRangeZeroToOne:
		return "zero_to_one"
	default:
		return "unknown"
	}
}

// ParseDepthRange converts a depth range name ("neg_one_to_one", "zero_to_one") into a DepthRange.
//
// Parameters:
//   - s: the depth range name
//
// Returns:
//   - DepthRange: the parsed depth range
//   - error: wraps ErrUnknownMode if the name is not recognised
func ParseDepthRange(s string) (DepthRange, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "neg_one_to_one", "opengl", "gl":
		return DepthRangeNegOneToOne, nil
	case "zero_to_one", "webgpu", "vulkan":
		return DepthRangeZeroToOne, nil
	default:
		return DepthRangeNegOneToOne, fmt.Errorf("camera: parse depth range %q: %w", s, ErrUnknownMode)
	}
}
