package engine

import "github.com/Carmen-Shannon/oxy-cam/common"

// Window is the part of window.Window the engine drives. window.NewWindow
// returns a value satisfying it; tests supply their own.
type Window interface {
	SetUpdateCallback(callback func())
	SetResizeCallback(callback func(width, height int))
	SetScrollCallback(callback func(delta float32))
	SetKeyDownCallback(callback func(key common.Key))
	SetKeyUpCallback(callback func(key common.Key))
	SetMouseButtonCallback(callback func(button common.MouseButton, pressed bool, x, y float32, mods common.Modifiers))
	SetMouseMoveCallback(callback func(x, y float32))
	SetCursorCaptured(captured bool)
	ProcessMessages()
	Close() error
	Width() int
	Height() int
}
