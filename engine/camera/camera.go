package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultFovy   = float32(45.0 * math.Pi / 180.0)
	defaultAspect = 1.0
	defaultNear   = 0.1
	defaultFar    = 1000.0

	defaultInitDistance      = 5.0
	defaultRotationFactor    = 0.01
	defaultTranslationFactor = 0.001
	defaultScaleFactor       = 0.005

	defaultYaw             = float32(-math.Pi / 2)
	defaultMoveSpeed       = 2.5
	defaultLookSensitivity = 0.005

	minFovy      = float32(1.0 * math.Pi / 180.0)
	maxFovy      = float32(120.0 * math.Pi / 180.0)
	minAspect    = 1e-4
	minNear      = 1e-4
	minDepthSpan = 1e-3

	// minDollyDistance keeps the orbit camera in front of the pivot plane.
	minDollyDistance = 1e-2

	// pitchLimit keeps pitch strictly inside (-π/2, π/2) so forward never aligns with up.
	pitchLimit = float32(89.0 * math.Pi / 180.0)
)

// orbitState holds the accumulators driven by pointer drags.
type orbitState struct {
	rotation    mgl32.Vec2 // x: yaw about Y, y: pitch about X
	translation mgl32.Vec3 // z is the dolly distance and starts negative

	rfactor float32
	tfactor float32
	sfactor float32

	dragMode  DragMode
	mousePrev mgl32.Vec2
}

// freeLookState holds the first-person pose. The view matrix is cached and
// rebuilt on read when dirty is set.
type freeLookState struct {
	position mgl32.Vec3
	forward  mgl32.Vec3
	yaw      float32
	pitch    float32

	moveSpeed       float32
	lookSensitivity float32

	view  mgl32.Mat4
	dirty bool
}

type cameraImpl struct {
	up mgl32.Vec3

	fovy       float32
	aspect     float32
	near       float32
	far        float32
	depthRange DepthRange

	mode     Mode
	orbit    orbitState
	freeLook freeLookState
}

// Camera is the camera-state controller of the viewer. It holds projection
// settings and two independent pose representations (orbit and free-look),
// and produces the matrices the rendering pipeline consumes.
// A Camera is not safe for concurrent use; drive it from the thread that
// handles input and rendering.
type Camera interface {
	projectionCamera
	orbitCamera
	freeLookCamera

	// Up returns the world up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the world up vector
	Up() mgl32.Vec3

	// Mode returns which state group drives ActiveViewMatrix.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// SetMode selects which state group drives ActiveViewMatrix.
	// Neither state group is modified; use SeedFreeLookFromOrbit to carry the pose over.
	//
	// Parameters:
	//   - mode: the mode to activate
	SetMode(mode Mode)

	// ActiveViewMatrix returns the view matrix of the active mode.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ActiveViewMatrix() mgl32.Mat4

	// ApplyActiveViewMatrix multiplies the stack's top by the view matrix of the active mode.
	//
	// Parameters:
	//   - stack: the modelview stack
	ApplyActiveViewMatrix(stack MatrixStack)

	// ViewProjectionMatrix returns Projection * ActiveView.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// EyePosition returns the world-space eye position of the active mode.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	EyePosition() mgl32.Vec3

	// Frustum returns the six planes of the active view-projection volume.
	//
	// Returns:
	//   - common.Frustum: the normalized frustum planes
	Frustum() common.Frustum

	// ViewDirection returns the unit world-space viewing direction of the active mode.
	//
	// Returns:
	//   - mgl32.Vec3: the view direction
	ViewDirection() mgl32.Vec3

	// Uniform packs the active view-projection, eye, view direction, fovy and
	// mode for GPU upload.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block contents
	Uniform() GPUCameraUniform

	// ApplyConfig applies the settings part of cfg (projection, sensitivities, speeds).
	// The pose of either mode is left untouched. Zero fields keep the current value.
	//
	// Parameters:
	//   - cfg: the settings to apply
	ApplyConfig(cfg Config)

	// ApplyStartPose applies the pose part of cfg: start mode, orbit distance and
	// the free-look position and angles. Absent fields keep the current pose.
	//
	// Parameters:
	//   - cfg: the pose to apply
	ApplyStartPose(cfg Config)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default settings: 45° vertical fov,
// aspect 1, clip planes 0.1/1000, orbit distance 5, and a free-look eye at
// (0, 0, 5) looking down -Z. The initial mode is ModeOrbit.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		up:         mgl32.Vec3{0, 1, 0},
		fovy:       defaultFovy,
		aspect:     defaultAspect,
		near:       defaultNear,
		far:        defaultFar,
		depthRange: DepthRangeNegOneToOne,
		mode:       ModeOrbit,
		orbit: orbitState{
			translation: mgl32.Vec3{0, 0, -defaultInitDistance},
			rfactor:     defaultRotationFactor,
			tfactor:     defaultTranslationFactor,
			sfactor:     defaultScaleFactor,
			dragMode:    DragRotate,
		},
		freeLook: freeLookState{
			position:        mgl32.Vec3{0, 0, defaultInitDistance},
			yaw:             defaultYaw,
			moveSpeed:       defaultMoveSpeed,
			lookSensitivity: defaultLookSensitivity,
		},
	}
	for _, option := range options {
		option(c)
	}
	c.updateForward()
	return c
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) Mode() Mode {
	return c.mode
}

func (c *cameraImpl) SetMode(mode Mode) {
	c.mode = mode
}

func (c *cameraImpl) ActiveViewMatrix() mgl32.Mat4 {
	switch c.mode {
	case ModeFreeLook:
		return c.ViewMatrixFreeLook()
	default:
		return c.ViewMatrix()
	}
}

func (c *cameraImpl) ApplyActiveViewMatrix(stack MatrixStack) {
	stack.RightMul(c.ActiveViewMatrix())
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ActiveViewMatrix())
}

func (c *cameraImpl) EyePosition() mgl32.Vec3 {
	switch c.mode {
	case ModeFreeLook:
		return c.freeLook.position
	default:
		return c.orbitEye()
	}
}

func (c *cameraImpl) Frustum() common.Frustum {
	return common.ExtractFrustumFromMatrix(c.ViewProjectionMatrix(), c.depthRange == DepthRangeZeroToOne)
}

func (c *cameraImpl) ViewDirection() mgl32.Vec3 {
	switch c.mode {
	case ModeFreeLook:
		return c.freeLook.forward
	default:
		return c.orbitForward().Normalize()
	}
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj: [16]float32(c.ViewProjectionMatrix()),
		Eye:      [3]float32(c.EyePosition()),
		Fovy:     c.fovy,
		Forward:  [3]float32(c.ViewDirection()),
		Mode:     uint32(c.mode),
	}
}
