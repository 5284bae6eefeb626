package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-cam/engine/watcher"
	"github.com/go-gl/mathgl/mgl32"
)

// maxFrameDelta caps the per-frame delta so a stalled frame (window drag,
// debugger pause) does not teleport a free-look camera.
const maxFrameDelta = 0.25

// engine implements the Engine interface.
// Everything runs on the thread that calls Run.
type engine struct {
	window Window
	camera camera.Camera
	router input.Router
	logger *log.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	configPath  string
	watchConfig bool
	watcher     *watcher.ConfigWatcher

	frameCallback func(deltaTime float32, uniform []byte)
	uniformBuf    []byte

	now       func() time.Time
	lastFrame time.Time

	quit   bool
	closed bool
}

// Engine drives a camera from window input.
// It owns the frame loop: input routing, held-key movement, optional config
// hot reload and optional profiling.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - Window: the window instance
	Window() Window

	// Camera returns the driven camera.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// Router returns the input router feeding the camera.
	//
	// Returns:
	//   - input.Router: the router instance
	Router() input.Router

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers the function called once per frame after input
	// has been applied to the camera. The uniform argument holds the packed
	// camera.GPUCameraUniform for this frame, ready for a buffer write; it is
	// reused between frames and must not be retained.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds and the packed uniform
	SetFrameCallback(callback func(deltaTime float32, uniform []byte))

	// ReloadConfig loads the camera config file and applies its settings.
	// The camera pose is left untouched and the aspect ratio keeps following
	// the window.
	//
	// Returns:
	//   - error: error if no config path is set or the file cannot be loaded
	ReloadConfig() error

	// Run starts the frame loop (blocks until the window closes) and releases
	// the window and watcher on exit.
	//
	// Returns:
	//   - error: error if the window fails to close cleanly
	Run() error

	// Quit closes the window at the start of the next frame.
	// Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine with the provided options.
// A window is required; a default camera is created when none is supplied.
// When a config path is set its settings and start pose are applied to the
// camera and, if watching is enabled, the settings are reloaded whenever the
// file changes. The aspect ratio always follows the window.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: error if no window is set or the config cannot be loaded or watched
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		logger:     log.Default(),
		now:        time.Now,
		uniformBuf: make([]byte, camera.UniformSize),
	}
	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		return nil, fmt.Errorf("engine: %w", ErrNoWindow)
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.configPath != "" {
		cfg, err := camera.LoadConfig(e.configPath)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		e.camera.ApplyConfig(cfg)
		e.camera.ApplyStartPose(cfg)
	}
	e.syncAspect()

	e.router = input.NewRouter(e.camera, input.WithModeChangeCallback(func(mode camera.Mode) {
		e.window.SetCursorCaptured(mode == camera.ModeFreeLook)
		e.logger.Printf("[Engine] camera mode: %s", mode)
	}))
	e.window.SetCursorCaptured(e.camera.Mode() == camera.ModeFreeLook)

	e.window.SetResizeCallback(e.router.OnResize)
	e.window.SetScrollCallback(e.router.OnScroll)
	e.window.SetKeyDownCallback(e.router.OnKeyDown)
	e.window.SetKeyUpCallback(e.router.OnKeyUp)
	e.window.SetMouseButtonCallback(e.router.OnMouseButton)
	e.window.SetMouseMoveCallback(e.router.OnMouseMove)

	e.profiler = profiler.NewProfiler(
		profiler.WithLogger(e.logger),
		profiler.WithStatus(e.status),
	)

	if e.watchConfig && e.configPath != "" {
		w, err := watcher.NewConfigWatcher(e.configPath)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		e.watcher = w
	}

	return e, nil
}

func (e *engine) Window() Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Router() input.Router {
	return e.router
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32, uniform []byte)) {
	e.frameCallback = callback
}

func (e *engine) ReloadConfig() error {
	if e.configPath == "" {
		return fmt.Errorf("engine: reload: %w", ErrNoConfigPath)
	}
	cfg, err := camera.LoadConfig(e.configPath)
	if err != nil {
		return fmt.Errorf("engine: reload: %w", err)
	}
	e.camera.ApplyConfig(cfg)
	e.syncAspect()
	return nil
}

func (e *engine) Run() error {
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()

	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			e.logger.Printf("[Engine] close config watcher: %v", err)
		}
	}
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.window.Close(); err != nil {
		return fmt.Errorf("engine: close window: %w", err)
	}
	return nil
}

func (e *engine) Quit() {
	e.quit = true
}

// frame runs one iteration of the loop. Called by the window after it has
// dispatched pending input events.
func (e *engine) frame() {
	if e.quit && !e.closed {
		e.closed = true
		if err := e.window.Close(); err != nil {
			e.logger.Printf("[Engine] close window: %v", err)
		}
		return
	}

	now := e.now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now
	dt = min(dt, maxFrameDelta)

	e.pollConfig()
	e.router.Tick(dt)

	if e.frameCallback != nil {
		u := e.camera.Uniform()
		if err := u.MarshalInto(e.uniformBuf); err != nil {
			e.logger.Printf("[Engine] %v", err)
			return
		}
		e.frameCallback(dt, e.uniformBuf)
	}
	if e.profilingEnabled {
		e.profiler.Tick()
	}
}

// pollConfig applies pending config file changes without blocking the frame.
func (e *engine) pollConfig() {
	if e.watcher == nil {
		return
	}
	select {
	case err, ok := <-e.watcher.Errors:
		if ok {
			e.logger.Printf("[Engine] config watcher: %v", err)
		}
	default:
	}

	changed := false
	for {
		if _, ok := e.watcher.Poll(); !ok {
			break
		}
		changed = true
	}
	if !changed {
		return
	}
	if err := e.ReloadConfig(); err != nil {
		e.logger.Printf("[Engine] %v", err)
		return
	}
	e.logger.Printf("[Engine] reloaded camera config from %s", e.configPath)
}

// syncAspect sets the camera aspect from the window framebuffer size.
func (e *engine) syncAspect() {
	if h := e.window.Height(); h > 0 {
		e.camera.SetAspect(float32(e.window.Width()) / float32(h))
	}
}

// status describes the camera pose for the profiler output.
func (e *engine) status() string {
	eye := e.camera.EyePosition()
	return fmt.Sprintf("Camera: mode=%s eye=(%.2f, %.2f, %.2f) fovy=%.1f°",
		e.camera.Mode(), eye.X(), eye.Y(), eye.Z(), mgl32.RadToDeg(e.camera.Fovy()))
}
