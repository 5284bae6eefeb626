package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// freeLookCamera defines first-person controls: yaw/pitch mouse look and
// frame-rate independent key movement relative to the view direction.
type freeLookCamera interface {
	// ProcessMouseMovement turns the camera by a pointer delta.
	// Yaw follows dx, pitch follows -dy (screen y grows downward) and is
	// clamped to ±89°.
	//
	// Parameters:
	//   - dx, dy: pointer delta
	ProcessMouseMovement(dx, dy float32)

	// MouseMoveFreeLook is an alias of ProcessMouseMovement.
	//
	// Parameters:
	//   - dx, dy: pointer delta
	MouseMoveFreeLook(dx, dy float32)

	// KeyInput moves the camera for one held key over deltaTime seconds.
	// W/S move along the view direction, A/D strafe, E/Space and Q/LeftShift
	// move along world up. Other keys are ignored.
	//
	// Parameters:
	//   - key: the held key
	//   - deltaTime: elapsed frame time in seconds
	KeyInput(key common.Key, deltaTime float32)

	// ViewMatrixFreeLook returns the look-at view matrix of the free-look pose.
	// The matrix is cached and rebuilt only after the pose changes.
	//
	// Returns:
	//   - mgl32.Mat4: the free-look view matrix
	ViewMatrixFreeLook() mgl32.Mat4

	// ApplyViewMatrixFreeLook multiplies the stack's top by ViewMatrixFreeLook().
	//
	// Parameters:
	//   - stack: the modelview stack
	ApplyViewMatrixFreeLook(stack MatrixStack)

	// Position returns the free-look eye position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition places the free-look eye.
	//
	// Parameters:
	//   - pos: world-space position
	SetPosition(pos mgl32.Vec3)

	// Forward returns the unit viewing direction of the free-look pose.
	//
	// Returns:
	//   - mgl32.Vec3: the forward vector
	Forward() mgl32.Vec3

	// Yaw returns the free-look yaw in radians, wrapped to [-π, π).
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// Pitch returns the free-look pitch in radians.
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// SetYawPitch sets the free-look orientation. Pitch is clamped to ±89°.
	//
	// Parameters:
	//   - yaw: horizontal angle in radians (-π/2 looks down -Z)
	//   - pitch: vertical angle in radians
	SetYawPitch(yaw, pitch float32)

	// MoveSpeed returns the key movement speed in units per second.
	//
	// Returns:
	//   - float32: movement speed
	MoveSpeed() float32

	// SetMoveSpeed sets the key movement speed in units per second.
	// Non-finite values are ignored.
	//
	// Parameters:
	//   - speed: movement speed
	SetMoveSpeed(speed float32)

	// LookSensitivity returns the radians turned per pointer unit.
	//
	// Returns:
	//   - float32: look sensitivity
	LookSensitivity() float32

	// SetLookSensitivity sets the radians turned per pointer unit.
	// Non-finite values are ignored.
	//
	// Parameters:
	//   - s: look sensitivity
	SetLookSensitivity(s float32)

	// SeedFreeLookFromOrbit places the free-look eye at the orbit eye, looking
	// the same way. Orbit state is not modified.
	SeedFreeLookFromOrbit()
}

func (c *cameraImpl) ProcessMouseMovement(dx, dy float32) {
	if !common.IsFinite(dx) || !common.IsFinite(dy) {
		return
	}
	c.freeLook.yaw = wrapAngle(c.freeLook.yaw + dx*c.freeLook.lookSensitivity)
	c.freeLook.pitch = common.Clamp(c.freeLook.pitch-dy*c.freeLook.lookSensitivity, -pitchLimit, pitchLimit)
	c.updateForward()
}

func (c *cameraImpl) MouseMoveFreeLook(dx, dy float32) {
	c.ProcessMouseMovement(dx, dy)
}

func (c *cameraImpl) KeyInput(key common.Key, deltaTime float32) {
	if deltaTime <= 0 || !common.IsFinite(deltaTime) {
		return
	}

	fl := &c.freeLook
	var dir mgl32.Vec3
	switch key {
	case common.KeyW:
		dir = fl.forward
	case common.KeyS:
		dir = fl.forward.Mul(-1)
	case common.KeyD:
		dir = fl.forward.Cross(c.up).Normalize()
	case common.KeyA:
		dir = c.up.Cross(fl.forward).Normalize()
	case common.KeyE, common.KeySpace:
		dir = c.up
	case common.KeyQ, common.KeyLeftShift:
		dir = c.up.Mul(-1)
	default:
		return
	}

	fl.position = fl.position.Add(dir.Mul(fl.moveSpeed * deltaTime))
	fl.dirty = true
}

func (c *cameraImpl) ViewMatrixFreeLook() mgl32.Mat4 {
	fl := &c.freeLook
	if fl.dirty {
		fl.view = mgl32.LookAtV(fl.position, fl.position.Add(fl.forward), c.up)
		fl.dirty = false
	}
	return fl.view
}

func (c *cameraImpl) ApplyViewMatrixFreeLook(stack MatrixStack) {
	stack.RightMul(c.ViewMatrixFreeLook())
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.freeLook.position
}

func (c *cameraImpl) SetPosition(pos mgl32.Vec3) {
	if !common.IsFinite(pos.X()) || !common.IsFinite(pos.Y()) || !common.IsFinite(pos.Z()) {
		return
	}
	c.freeLook.position = pos
	c.freeLook.dirty = true
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	return c.freeLook.forward
}

func (c *cameraImpl) Yaw() float32 {
	return c.freeLook.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.freeLook.pitch
}

func (c *cameraImpl) SetYawPitch(yaw, pitch float32) {
	if !common.IsFinite(yaw) || !common.IsFinite(pitch) {
		return
	}
	c.freeLook.yaw = wrapAngle(yaw)
	c.freeLook.pitch = common.Clamp(pitch, -pitchLimit, pitchLimit)
	c.updateForward()
}

func (c *cameraImpl) MoveSpeed() float32 {
	return c.freeLook.moveSpeed
}

func (c *cameraImpl) SetMoveSpeed(speed float32) {
	if !common.IsFinite(speed) {
		return
	}
	c.freeLook.moveSpeed = speed
}

func (c *cameraImpl) LookSensitivity() float32 {
	return c.freeLook.lookSensitivity
}

func (c *cameraImpl) SetLookSensitivity(s float32) {
	if !common.IsFinite(s) {
		return
	}
	c.freeLook.lookSensitivity = s
}

func (c *cameraImpl) SeedFreeLookFromOrbit() {
	dir := c.orbitForward()
	if dir.Len() == 0 {
		return
	}
	yaw, pitch := common.YawPitchFromDirection(dir)
	c.freeLook.position = c.orbitEye()
	c.SetYawPitch(yaw, pitch)
}

// updateForward recomputes forward from yaw/pitch and marks the view cache stale.
func (c *cameraImpl) updateForward() {
	c.freeLook.forward = common.DirectionFromYawPitch(c.freeLook.yaw, c.freeLook.pitch)
	c.freeLook.dirty = true
}

// wrapAngle maps a in radians to [-π, π).
func wrapAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	w := math.Mod(float64(a)+math.Pi, twoPi)
	if w < 0 {
		w += twoPi
	}
	return float32(w - math.Pi)
}
