package camera

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// UniformSize is the byte size of a packed GPUCameraUniform.
const UniformSize = 96

// CameraUniformWGSL declares the CameraUniform struct that Marshal fills.
// Shaders prepend it and bind a uniform buffer of UniformSize bytes.
//
//go:embed assets/camera_uniform.wgsl
var CameraUniformWGSL string

// GPUCameraUniform is the per-frame camera block, as produced by Camera.Uniform.
// Field offsets follow WGSL uniform layout: each vec3 shares its 16-byte slot
// with the scalar after it.
type GPUCameraUniform struct {
	ViewProj [16]float32 // offset  0: active projection * view
	Eye      [3]float32  // offset 64: world-space eye position
	Fovy     float32     // offset 76: vertical field of view in radians
	Forward  [3]float32  // offset 80: unit view direction
	Mode     uint32      // offset 92: 0 orbit, 1 free-look
}

// Marshal packs the uniform little-endian into a new buffer.
//
// Returns:
//   - []byte: UniformSize bytes ready for a buffer write
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, UniformSize)
	_ = g.MarshalInto(buf)
	return buf
}

// MarshalInto packs the uniform into buf without allocating, so a frame loop
// can reuse one staging buffer.
//
// Parameters:
//   - buf: destination, at least UniformSize bytes
//
// Returns:
//   - error: io.ErrShortBuffer (wrapped) if buf is too small
func (g *GPUCameraUniform) MarshalInto(buf []byte) error {
	if len(buf) < UniformSize {
		return fmt.Errorf("camera: marshal uniform into %d bytes: %w", len(buf), io.ErrShortBuffer)
	}
	le := binary.LittleEndian
	for i, v := range g.ViewProj {
		le.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	for i, v := range g.Eye {
		le.PutUint32(buf[64+i*4:], math.Float32bits(v))
	}
	le.PutUint32(buf[76:], math.Float32bits(g.Fovy))
	for i, v := range g.Forward {
		le.PutUint32(buf[80+i*4:], math.Float32bits(v))
	}
	le.PutUint32(buf[92:], g.Mode)
	return nil
}
