package input

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
)

// movementKeys are the keys forwarded to Camera.KeyInput while held, in the
// order they are applied each tick.
var movementKeys = []common.Key{
	common.KeyW,
	common.KeyS,
	common.KeyA,
	common.KeyD,
	common.KeyE,
	common.KeySpace,
	common.KeyQ,
	common.KeyLeftShift,
}

// Router translates window events into camera operations.
// It owns the per-frame input state (held keys, drag state, last pointer
// position) so the camera itself stays free of platform concerns.
type Router interface {
	// OnMouseButton handles a pointer button press or release.
	// In orbit mode a left press starts a drag whose kind follows the modifiers;
	// a middle press always pans and a right press always dollies.
	//
	// Parameters:
	//   - button: the button that changed
	//   - pressed: true on press, false on release
	//   - x, y: cursor position in pixels
	//   - mods: modifier keys held at the time of the event
	OnMouseButton(button common.MouseButton, pressed bool, x, y float32, mods common.Modifiers)

	// OnMouseMove handles a cursor position update.
	// Orbit mode forwards the position to MouseMoved while a drag is active;
	// free-look mode turns the camera by the delta from the previous position.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	OnMouseMove(x, y float32)

	// OnScroll zooms the camera by zoomStep^delta.
	//
	// Parameters:
	//   - delta: scroll amount (positive = zoom in)
	OnScroll(delta float32)

	// OnKeyDown records a held key. Tab toggles the camera mode.
	//
	// Parameters:
	//   - key: the key pressed
	OnKeyDown(key common.Key)

	// OnKeyUp releases a held key.
	//
	// Parameters:
	//   - key: the key released
	OnKeyUp(key common.Key)

	// OnResize updates the camera aspect ratio. Zero-height sizes are ignored.
	//
	// Parameters:
	//   - width, height: new framebuffer size in pixels
	OnResize(width, height int)

	// Tick applies held movement keys for one frame while in free-look mode.
	//
	// Parameters:
	//   - deltaTime: elapsed frame time in seconds
	Tick(deltaTime float32)

	// ToggleMode switches between orbit and free-look.
	// Entering free-look seeds the free-look pose from the orbit eye when
	// seeding is enabled. The mode-change callback receives the new mode.
	ToggleMode()

	// IsHeld reports whether a key is currently held.
	//
	// Parameters:
	//   - key: the key to check
	//
	// Returns:
	//   - bool: true if the key is held
	IsHeld(key common.Key) bool
}

type router struct {
	camera camera.Camera

	held     map[common.Key]bool
	dragging bool

	lastX, lastY float32
	hasLast      bool

	zoomStep     float32
	seedOnToggle bool
	onModeChange func(mode camera.Mode)
}

var _ Router = &router{}

// NewRouter creates a Router driving the given camera.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the router
//
// Returns:
//   - Router: the newly created router
func NewRouter(cam camera.Camera, options ...RouterBuilderOption) Router {
	r := &router{
		camera:       cam,
		held:         make(map[common.Key]bool),
		zoomStep:     0.9,
		seedOnToggle: true,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *router) OnMouseButton(button common.MouseButton, pressed bool, x, y float32, mods common.Modifiers) {
	if r.camera.Mode() != camera.ModeOrbit {
		return
	}
	if !pressed {
		r.dragging = false
		return
	}

	switch button {
	case common.MouseButtonLeft:
		r.camera.MouseClicked(x, y, mods.Shift, mods.Ctrl, mods.Alt)
	case common.MouseButtonMiddle:
		r.camera.MouseClicked(x, y, true, false, false)
	case common.MouseButtonRight:
		r.camera.MouseClicked(x, y, false, true, false)
	default:
		return
	}
	r.dragging = true
}

func (r *router) OnMouseMove(x, y float32) {
	defer func() {
		r.lastX, r.lastY = x, y
		r.hasLast = true
	}()

	switch r.camera.Mode() {
	case camera.ModeOrbit:
		if r.dragging {
			r.camera.MouseMoved(x, y)
		}
	case camera.ModeFreeLook:
		if r.hasLast {
			r.camera.MouseMoveFreeLook(x-r.lastX, y-r.lastY)
		}
	}
}

func (r *router) OnScroll(delta float32) {
	if delta == 0 {
		return
	}
	r.camera.Zoom(float32(math.Pow(float64(r.zoomStep), float64(delta))))
}

func (r *router) OnKeyDown(key common.Key) {
	if key == common.KeyTab {
		if !r.held[key] {
			r.ToggleMode()
		}
	}
	r.held[key] = true
}

func (r *router) OnKeyUp(key common.Key) {
	delete(r.held, key)
}

func (r *router) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.camera.SetAspect(float32(width) / float32(height))
}

func (r *router) Tick(deltaTime float32) {
	if r.camera.Mode() != camera.ModeFreeLook {
		return
	}
	for _, key := range movementKeys {
		if r.held[key] {
			r.camera.KeyInput(key, deltaTime)
		}
	}
}

func (r *router) ToggleMode() {
	next := camera.ModeFreeLook
	if r.camera.Mode() == camera.ModeFreeLook {
		next = camera.ModeOrbit
	}

	if next == camera.ModeFreeLook && r.seedOnToggle {
		r.camera.SeedFreeLookFromOrbit()
	}
	r.camera.SetMode(next)

	// Captured cursors jump on capture; the next move only re-anchors.
	r.dragging = false
	r.hasLast = false

	if r.onModeChange != nil {
		r.onModeChange(next)
	}
}

func (r *router) IsHeld(key common.Key) bool {
	return r.held[key]
}
