package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine reads input from. Required.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithCamera sets the camera driven by the engine.
// When a config path is also set, the file is applied on top of this camera.
//
// Parameters:
//   - c: the camera to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithConfigPath sets a YAML camera config file to build the camera from.
//
// Parameters:
//   - path: path to the config file
//   - watch: if true, settings are reloaded whenever the file changes
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfigPath(path string, watch bool) EngineBuilderOption {
	return func(e *engine) {
		e.configPath = path
		e.watchConfig = watch
	}
}

// WithLogger sets the logger used for engine and profiler output.
// Defaults to log.Default().
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(l *log.Logger) EngineBuilderOption {
	return func(e *engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// withClock replaces time.Now for frame timing; used by tests.
func withClock(now func() time.Time) EngineBuilderOption {
	return func(e *engine) {
		e.now = now
	}
}
