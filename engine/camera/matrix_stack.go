package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MatrixStack is the transform stack the camera writes into.
// The camera only multiplies onto the current top; push/pop scoping is the caller's job.
// *matstack.MatStack from github.com/go-gl/mathgl/mgl32/matstack satisfies this interface.
type MatrixStack interface {
	// RightMul replaces the current top T with T * m.
	//
	// Parameters:
	//   - m: the matrix to multiply onto the top of the stack
	RightMul(m mgl32.Mat4)
}
