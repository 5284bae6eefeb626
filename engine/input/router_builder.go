package input

import "github.com/Carmen-Shannon/oxy-cam/engine/camera"

// RouterBuilderOption is a functional option for configuring a Router.
type RouterBuilderOption func(*router)

// WithZoomStep sets the per-notch zoom factor. One scroll notch multiplies the
// field of view by step; values outside (0, 1) are ignored.
//
// Parameters:
//   - step: zoom factor per scroll notch (default 0.9)
//
// Returns:
//   - RouterBuilderOption: option function to apply
func WithZoomStep(step float32) RouterBuilderOption {
	return func(r *router) {
		if step > 0 && step < 1 {
			r.zoomStep = step
		}
	}
}

// WithSeedOnToggle controls whether entering free-look copies the orbit eye
// and view direction into the free-look pose.
//
// Parameters:
//   - seed: true to seed on toggle (default true)
//
// Returns:
//   - RouterBuilderOption: option function to apply
func WithSeedOnToggle(seed bool) RouterBuilderOption {
	return func(r *router) {
		r.seedOnToggle = seed
	}
}

// WithModeChangeCallback registers a function called after every mode toggle.
// The viewer uses it to capture the cursor in free-look.
//
// Parameters:
//   - callback: function receiving the new mode
//
// Returns:
//   - RouterBuilderOption: option function to apply
func WithModeChangeCallback(callback func(mode camera.Mode)) RouterBuilderOption {
	return func(r *router) {
		r.onModeChange = callback
	}
}
