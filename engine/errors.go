package engine

import "errors"

var (
	// ErrNoWindow is returned by NewEngine when no window is configured.
	ErrNoWindow = errors.New("no window configured")
	// ErrNoConfigPath is returned by ReloadConfig when the engine has no config file.
	ErrNoConfigPath = errors.New("no config path configured")
)
