package camera

import (
	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// projectionCamera defines the projection settings and the projection matrix output.
// All setters clamp their input so the projection matrix never degenerates.
type projectionCamera interface {
	// Fovy returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fovy() float32

	// SetFovy sets the vertical field of view, clamped to [1°, 120°].
	// Non-finite values are ignored.
	//
	// Parameters:
	//   - fovy: field of view in radians
	SetFovy(fovy float32)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio (width / height).
	// Values below a small positive minimum are raised to it; non-finite values are ignored.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetClipPlanes sets the near and far plane distances.
	// near is raised to a small positive minimum and far is kept beyond near.
	//
	// Parameters:
	//   - near: near plane distance
	//   - far: far plane distance
	SetClipPlanes(near, far float32)

	// DepthRange returns the clip-space depth convention of the projection matrix.
	//
	// Returns:
	//   - DepthRange: the depth convention
	DepthRange() DepthRange

	// SetDepthRange selects the clip-space depth convention of the projection matrix.
	//
	// Parameters:
	//   - depthRange: the depth convention
	SetDepthRange(depthRange DepthRange)

	// ProjectionMatrix returns the perspective projection for the current settings.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// ApplyProjectionMatrix multiplies the stack's top by ProjectionMatrix().
	// Camera state is not modified.
	//
	// Parameters:
	//   - stack: the projection stack
	ApplyProjectionMatrix(stack MatrixStack)

	// Zoom scales the field of view by factor (<1 zooms in), clamped to [1°, 120°].
	// Non-positive and non-finite factors are ignored.
	//
	// Parameters:
	//   - factor: multiplicative fov change
	Zoom(factor float32)
}

func (c *cameraImpl) Fovy() float32 {
	return c.fovy
}

func (c *cameraImpl) SetFovy(fovy float32) {
	if !common.IsFinite(fovy) {
		return
	}
	c.fovy = common.Clamp(fovy, minFovy, maxFovy)
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if !common.IsFinite(aspect) {
		return
	}
	c.aspect = max(aspect, minAspect)
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) SetClipPlanes(near, far float32) {
	if !common.IsFinite(near) || !common.IsFinite(far) {
		return
	}
	c.near = max(near, minNear)
	c.far = max(far, c.near+minDepthSpan)
}

func (c *cameraImpl) DepthRange() DepthRange {
	return c.depthRange
}

func (c *cameraImpl) SetDepthRange(depthRange DepthRange) {
	c.depthRange = depthRange
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	if c.depthRange == DepthRangeZeroToOne {
		return common.PerspectiveZO(c.fovy, c.aspect, c.near, c.far)
	}
	return mgl32.Perspective(c.fovy, c.aspect, c.near, c.far)
}

func (c *cameraImpl) ApplyProjectionMatrix(stack MatrixStack) {
	stack.RightMul(c.ProjectionMatrix())
}

func (c *cameraImpl) Zoom(factor float32) {
	if factor <= 0 || !common.IsFinite(factor) {
		return
	}
	c.fovy = common.Clamp(c.fovy*factor, minFovy, maxFovy)
}
