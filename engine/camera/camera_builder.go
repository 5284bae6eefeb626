package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithUp sets the world up vector used by free-look movement and the look-at matrix.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		up := mgl32.Vec3{x, y, z}
		if up.Len() > 0 {
			c.up = up.Normalize()
		}
	}
}

// WithFovy sets the vertical field of view in radians, clamped to [1°, 120°].
//
// Parameters:
//   - fovy: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the field of view
func WithFovy(fovy float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetFovy(fovy)
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetAspect(aspect)
	}
}

// WithClipPlanes sets the near and far plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clip planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetClipPlanes(near, far)
	}
}

// WithDepthRange selects the clip-space depth convention.
//
// Parameters:
//   - depthRange: the depth convention
//
// Returns:
//   - CameraBuilderOption: a function that sets the depth range
func WithDepthRange(depthRange DepthRange) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.depthRange = depthRange
	}
}

// WithMode sets the initially active mode.
//
// Parameters:
//   - mode: the mode to activate
//
// Returns:
//   - CameraBuilderOption: a function that sets the mode
func WithMode(mode Mode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mode = mode
	}
}

// WithInitDistance sets the orbit distance from the pivot.
//
// Parameters:
//   - z: distance (sign ignored)
//
// Returns:
//   - CameraBuilderOption: a function that sets the orbit distance
func WithInitDistance(z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetInitDistance(z)
	}
}

// WithRotationFactor sets the orbit rotation per pointer unit.
//
// Parameters:
//   - f: radians per pointer unit
//
// Returns:
//   - CameraBuilderOption: a function that sets the rotation factor
func WithRotationFactor(f float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetRotationFactor(f)
	}
}

// WithTranslationFactor sets the orbit pan per pointer unit.
//
// Parameters:
//   - f: distance per pointer unit
//
// Returns:
//   - CameraBuilderOption: a function that sets the translation factor
func WithTranslationFactor(f float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetTranslationFactor(f)
	}
}

// WithScaleFactor sets the orbit dolly per vertical pointer unit.
//
// Parameters:
//   - f: distance per pointer unit
//
// Returns:
//   - CameraBuilderOption: a function that sets the scale factor
func WithScaleFactor(f float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetScaleFactor(f)
	}
}

// WithPosition sets the free-look eye position.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - CameraBuilderOption: a function that sets the free-look position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetPosition(mgl32.Vec3{x, y, z})
	}
}

// WithYawPitch sets the free-look orientation in radians.
//
// Parameters:
//   - yaw: horizontal angle (-π/2 looks down -Z)
//   - pitch: vertical angle, clamped to ±89°
//
// Returns:
//   - CameraBuilderOption: a function that sets the free-look orientation
func WithYawPitch(yaw, pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetYawPitch(yaw, pitch)
	}
}

// WithMoveSpeed sets the free-look key movement speed.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - CameraBuilderOption: a function that sets the movement speed
func WithMoveSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetMoveSpeed(speed)
	}
}

// WithLookSensitivity sets the free-look turn rate.
//
// Parameters:
//   - s: radians per pointer unit
//
// Returns:
//   - CameraBuilderOption: a function that sets the look sensitivity
func WithLookSensitivity(s float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetLookSensitivity(s)
	}
}

// WithConfig applies a loaded Config: its settings (as ApplyConfig) plus the
// starting pose and mode. Later options override it.
//
// Parameters:
//   - cfg: the configuration to apply
//
// Returns:
//   - CameraBuilderOption: a function that applies the configuration
func WithConfig(cfg Config) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.ApplyConfig(cfg)
		c.ApplyStartPose(cfg)
	}
}
