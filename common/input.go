package common

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers holds the modifier keys held during a pointer press.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}
