package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// orbitCamera defines the mouse-drag driven orbit/pan/dolly controls.
// The view is T(translation) * Rx(rotation.y) * Ry(rotation.x): the scene is
// spun around the pivot and pushed away by the (negative) z distance.
type orbitCamera interface {
	// MouseClicked starts a drag at (x, y) and selects the drag mode from the modifiers
	// (see DragModeFor).
	//
	// Parameters:
	//   - x, y: pointer position
	//   - shift, ctrl, alt: modifier key states
	MouseClicked(x, y float32, shift, ctrl, alt bool)

	// MouseMoved applies the delta from the previous pointer position to the
	// accumulator selected by the active drag mode, then stores (x, y).
	//
	// Parameters:
	//   - x, y: pointer position
	MouseMoved(x, y float32)

	// SetPreviousMouse overrides the stored pointer position without changing the drag mode.
	//
	// Parameters:
	//   - x, y: pointer position
	SetPreviousMouse(x, y float32)

	// DragMode returns the active drag mode.
	//
	// Returns:
	//   - DragMode: the drag mode selected by the last MouseClicked
	DragMode() DragMode

	// Rotation returns the accumulated orbit angles (x: yaw, y: pitch) in radians.
	//
	// Returns:
	//   - mgl32.Vec2: the rotation accumulator
	Rotation() mgl32.Vec2

	// Translation returns the accumulated pan (x, y) and distance (z).
	//
	// Returns:
	//   - mgl32.Vec3: the translation accumulator
	Translation() mgl32.Vec3

	// SetInitDistance sets the dolly distance. The sign of z is ignored; the
	// camera is always placed behind the pivot, at least minDollyDistance away.
	//
	// Parameters:
	//   - z: distance from the pivot
	SetInitDistance(z float32)

	// RotationFactor returns the radians of rotation per pointer unit.
	//
	// Returns:
	//   - float32: rotation factor
	RotationFactor() float32

	// SetRotationFactor sets the radians of rotation per pointer unit.
	//
	// Parameters:
	//   - f: rotation factor
	SetRotationFactor(f float32)

	// TranslationFactor returns the pan distance per pointer unit.
	//
	// Returns:
	//   - float32: translation factor
	TranslationFactor() float32

	// SetTranslationFactor sets the pan distance per pointer unit.
	//
	// Parameters:
	//   - f: translation factor
	SetTranslationFactor(f float32)

	// ScaleFactor returns the dolly distance per vertical pointer unit.
	//
	// Returns:
	//   - float32: scale factor
	ScaleFactor() float32

	// SetScaleFactor sets the dolly distance per vertical pointer unit.
	// Non-finite values are ignored, as for the other factors.
	//
	// Parameters:
	//   - f: scale factor
	SetScaleFactor(f float32)

	// ViewMatrix returns the orbit view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the orbit view matrix
	ViewMatrix() mgl32.Mat4

	// ApplyViewMatrix multiplies the stack's top by ViewMatrix().
	//
	// Parameters:
	//   - stack: the modelview stack
	ApplyViewMatrix(stack MatrixStack)
}

func (c *cameraImpl) MouseClicked(x, y float32, shift, ctrl, alt bool) {
	c.orbit.mousePrev = mgl32.Vec2{x, y}
	c.orbit.dragMode = DragModeFor(shift, ctrl, alt)
}

func (c *cameraImpl) MouseMoved(x, y float32) {
	curr := mgl32.Vec2{x, y}
	dv := curr.Sub(c.orbit.mousePrev)
	c.orbit.mousePrev = curr

	switch c.orbit.dragMode {
	case DragRotate:
		c.orbit.rotation = c.orbit.rotation.Add(dv.Mul(c.orbit.rfactor))
	case DragTranslate:
		// Screen y grows downward; dragging down pans the scene down.
		c.orbit.translation[0] += c.orbit.tfactor * dv.X()
		c.orbit.translation[1] -= c.orbit.tfactor * dv.Y()
	case DragScale:
		c.orbit.translation[2] = min(c.orbit.translation[2]+c.orbit.sfactor*dv.Y(), -minDollyDistance)
	}
}

func (c *cameraImpl) SetPreviousMouse(x, y float32) {
	c.orbit.mousePrev = mgl32.Vec2{x, y}
}

func (c *cameraImpl) DragMode() DragMode {
	return c.orbit.dragMode
}

func (c *cameraImpl) Rotation() mgl32.Vec2 {
	return c.orbit.rotation
}

func (c *cameraImpl) Translation() mgl32.Vec3 {
	return c.orbit.translation
}

func (c *cameraImpl) SetInitDistance(z float32) {
	if !common.IsFinite(z) {
		return
	}
	c.orbit.translation[2] = -max(float32(math.Abs(float64(z))), minDollyDistance)
}

func (c *cameraImpl) RotationFactor() float32 {
	return c.orbit.rfactor
}

func (c *cameraImpl) SetRotationFactor(f float32) {
	if !common.IsFinite(f) {
		return
	}
	c.orbit.rfactor = f
}

func (c *cameraImpl) TranslationFactor() float32 {
	return c.orbit.tfactor
}

func (c *cameraImpl) SetTranslationFactor(f float32) {
	if !common.IsFinite(f) {
		return
	}
	c.orbit.tfactor = f
}

func (c *cameraImpl) ScaleFactor() float32 {
	return c.orbit.sfactor
}

func (c *cameraImpl) SetScaleFactor(f float32) {
	if !common.IsFinite(f) {
		return
	}
	c.orbit.sfactor = f
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	t := c.orbit.translation
	r := c.orbit.rotation
	return mgl32.Translate3D(t.X(), t.Y(), t.Z()).
		Mul4(mgl32.HomogRotate3DX(r.Y())).
		Mul4(mgl32.HomogRotate3DY(r.X()))
}

func (c *cameraImpl) ApplyViewMatrix(stack MatrixStack) {
	stack.RightMul(c.ViewMatrix())
}

// orbitEye returns the world-space eye of the orbit view (inverse view applied to the origin).
func (c *cameraImpl) orbitEye() mgl32.Vec3 {
	return c.ViewMatrix().Inv().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

// orbitForward returns the world-space viewing direction of the orbit view.
func (c *cameraImpl) orbitForward() mgl32.Vec3 {
	return c.ViewMatrix().Inv().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
}
