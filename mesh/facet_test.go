package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/asteroid-thermal/vec3"
)

func TestNewFacetCachesGeometry(t *testing.T) {
	A := vec3.Vec3{0, 0, 0}
	B := vec3.Vec3{1, 0, 0}
	C := vec3.Vec3{0, 1, 0}

	f := NewFacet(A, B, C)

	assert.InDelta(t, 0.5, f.Area, 1e-12)
	assert.InDelta(t, 1.0, f.Normal.Norm(), 1e-12)
	assert.Equal(t, vec3.Vec3{1.0 / 3, 1.0 / 3, 0}, f.Center)
	assert.True(t, f.IsAboveHorizon())
	assert.Empty(t, f.VisibleFaces)
}

func TestSignedVolume(t *testing.T) {
	A := vec3.Vec3{1, 0, 0}
	B := vec3.Vec3{0, 1, 0}
	C := vec3.Vec3{0, 0, 1}
	f := NewFacet(A, B, C)

	// ((A x B) . C) / 6 for the standard simplex corner.
	assert.InDelta(t, 1.0/6, f.SignedVolume(), 1e-12)
}
