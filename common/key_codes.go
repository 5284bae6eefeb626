package common

// Key is a virtual key code. Values match GLFW key codes, which use ASCII
// values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key uint32

const (
	KeyW     Key = 87 // W key (ASCII)
	KeyA     Key = 65 // A key (ASCII)
	KeyS     Key = 83 // S key (ASCII)
	KeyD     Key = 68 // D key (ASCII)
	KeyQ     Key = 81 // Q key (ASCII)
	KeyE     Key = 69 // E key (ASCII)
	KeyR     Key = 82 // R key (ASCII)
	KeySpace Key = 32 // Spacebar (ASCII)

	KeyEsc Key = 256 // Escape key (GLFW)
	KeyTab Key = 258 // Tab key (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  Key = 340 // Left Shift (GLFW)
	KeyRightShift Key = 344 // Right Shift (GLFW)
)

// KeyFromRune maps a printable character to its key code. Lowercase letters
// map to the same code as uppercase ones. Unknown runes map to 0.
func KeyFromRune(r rune) Key {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' {
		return Key(r)
	}
	return 0
}
