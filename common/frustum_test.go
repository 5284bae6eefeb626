package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestExtractFrustumFromMatrix(t *testing.T) {
	proj := mgl32.Perspective(mgl32.DegToRad(90), 1, 1, 10)
	f := ExtractFrustumFromMatrix(proj, false)

	for i, p := range f.Planes {
		assert.InDelta(t, 1, p.Normal.Len(), 1e-5, "plane %d", i)
	}

	assert.InDelta(t, 0, f.Planes[FrustumNear].SignedDistance(mgl32.Vec3{0, 0, -1}), 1e-4)
	assert.InDelta(t, 0, f.Planes[FrustumFar].SignedDistance(mgl32.Vec3{0, 0, -10}), 1e-4)

	assert.True(t, f.ContainsPoint(mgl32.Vec3{0, 0, -5}))
	assert.True(t, f.ContainsPoint(mgl32.Vec3{4.9, 0, -5}))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{5.1, 0, -5}))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, -0.5}))
	assert.True(t, f.IntersectsSphere(mgl32.Vec3{0, 0, -0.5}, 1))
}

func TestExtractFrustumZeroToOne(t *testing.T) {
	f := ExtractFrustumFromMatrix(PerspectiveZO(mgl32.DegToRad(90), 1, 1, 10), true)

	assert.InDelta(t, 0, f.Planes[FrustumNear].SignedDistance(mgl32.Vec3{0, 0, -1}), 1e-4)
	assert.InDelta(t, 0, f.Planes[FrustumFar].SignedDistance(mgl32.Vec3{0, 0, -10}), 1e-4)
	assert.True(t, f.ContainsPoint(mgl32.Vec3{0, 0, -2}))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, -11}))
}
