package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(5, -1, 1))
	assert.Equal(t, float32(-1), Clamp(-5, -1, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, -1, 1))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(3))
	assert.False(t, IsFinite(float32(math.NaN())))
	assert.False(t, IsFinite(float32(math.Inf(-1))))
}

func TestDirectionFromYawPitch(t *testing.T) {
	d := DirectionFromYawPitch(-math.Pi/2, 0)
	assert.InDelta(t, 0, d.X(), 1e-6)
	assert.InDelta(t, 0, d.Y(), 1e-6)
	assert.InDelta(t, -1, d.Z(), 1e-6)

	up := DirectionFromYawPitch(0, mgl32.DegToRad(89))
	assert.InDelta(t, 1, up.Len(), 1e-6)
	assert.Greater(t, up.Y(), float32(0.99))
}

func TestYawPitchRoundTrip(t *testing.T) {
	for _, yaw := range []float32{-3, -1.2, 0, 0.4, 2.9} {
		for _, pitch := range []float32{-1.4, -0.3, 0, 0.8, 1.5} {
			gy, gp := YawPitchFromDirection(DirectionFromYawPitch(yaw, pitch))
			assert.InDelta(t, yaw, gy, 1e-4, "yaw=%v pitch=%v", yaw, pitch)
			assert.InDelta(t, pitch, gp, 1e-4, "yaw=%v pitch=%v", yaw, pitch)
		}
	}
}

func TestPerspectiveZOMatchesGLInXY(t *testing.T) {
	zo := PerspectiveZO(1, 1.6, 0.1, 10)
	gl := mgl32.Perspective(1, 1.6, 0.1, 10)

	assert.Equal(t, gl[0], zo[0])
	assert.Equal(t, gl[5], zo[5])
	assert.Equal(t, gl[11], zo[11])
	assert.Equal(t, float32(0), zo[15])
}

func TestKeyFromRune(t *testing.T) {
	assert.Equal(t, KeyW, KeyFromRune('w'))
	assert.Equal(t, KeyW, KeyFromRune('W'))
	assert.Equal(t, KeySpace, KeyFromRune(' '))
	assert.Equal(t, Key(0), KeyFromRune('#'))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, float32(2), Coalesce(float32(0), 2, 3))
	assert.Equal(t, "a", Coalesce("a", "b"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
