package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound (must be >= lo)
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// DirectionFromYawPitch converts yaw/pitch angles into a unit direction vector.
// Yaw rotates around the world Y axis starting at +X, pitch lifts toward +Y.
// A yaw of -π/2 with zero pitch points down -Z.
//
// Parameters:
//   - yaw: horizontal angle in radians
//   - pitch: vertical angle in radians
//
// Returns:
//   - mgl32.Vec3: the normalized direction
func DirectionFromYawPitch(yaw, pitch float32) mgl32.Vec3 {
	cp := float32(math.Cos(float64(pitch)))
	sp := float32(math.Sin(float64(pitch)))
	cy := float32(math.Cos(float64(yaw)))
	sy := float32(math.Sin(float64(yaw)))
	return mgl32.Vec3{cp * cy, sp, cp * sy}.Normalize()
}

// YawPitchFromDirection is the inverse of DirectionFromYawPitch.
// The direction does not need to be normalized but must be non-zero.
//
// Parameters:
//   - dir: the direction vector
//
// Returns:
//   - yaw, pitch: angles in radians
func YawPitchFromDirection(dir mgl32.Vec3) (yaw, pitch float32) {
	d := dir.Normalize()
	pitch = float32(math.Asin(float64(Clamp(d.Y(), -1, 1))))
	yaw = float32(math.Atan2(float64(d.Z()), float64(d.X())))
	return yaw, pitch
}

// PerspectiveZO builds a right-handed perspective projection mapping view depth
// to the [0, 1] clip range used by WebGPU, Vulkan and Metal.
// mgl32.Perspective covers the OpenGL [-1, 1] range.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func PerspectiveZO(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	var out mgl32.Mat4

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}
