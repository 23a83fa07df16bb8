package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/asteroid-thermal/vec3"
)

// unitCube returns the 8 corners of [0,1]^3 and 12 outward-wound
// triangular faces.
func unitCube() ([]vec3.Vec3, []Face) {
	nodes := []vec3.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, // bottom z=0
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}, // top z=1
	}

	faces := []Face{
		// bottom (z=0), outward normal -z
		{0, 3, 2}, {0, 2, 1},
		// top (z=1), outward normal +z
		{4, 5, 6}, {4, 6, 7},
		// front (y=0), outward normal -y
		{0, 1, 5}, {0, 5, 4},
		// back (y=1), outward normal +y
		{3, 7, 6}, {3, 6, 2},
		// left (x=0), outward normal -x
		{0, 4, 7}, {0, 7, 3},
		// right (x=1), outward normal +x
		{1, 2, 6}, {1, 6, 5},
	}

	return nodes, faces
}

func TestUnitCubeTotals(t *testing.T) {
	nodes, faces := unitCube()
	s, err := BuildShape(nodes, faces, BuildOptions{})
	assert.NoError(t, err)

	assert.InDelta(t, 6.0, s.Area, 1e-9)
	assert.InDelta(t, 1.0, s.Volume, 1e-9)
	assert.InDelta(t, 0.5, s.COF[0], 1e-9)
	assert.InDelta(t, 0.5, s.COF[1], 1e-9)
	assert.InDelta(t, 0.5, s.COF[2], 1e-9)
}

func TestUnitCubeEachFaceAboveHorizon(t *testing.T) {
	nodes, faces := unitCube()
	s, err := BuildShape(nodes, faces, BuildOptions{FindVisibleFaces: true})
	assert.NoError(t, err)

	for i, f := range s.Facets {
		assert.Truef(t, f.IsAboveHorizon(), "facet %d should see no others", i)
		assert.Empty(t, f.VisibleFaces)
	}
}

func TestBuildShapeRejectsBadIndex(t *testing.T) {
	nodes, _ := unitCube()
	faces := []Face{{0, 1, 99}}

	_, err := BuildShape(nodes, faces, BuildOptions{})
	assert.Error(t, err)
}

func TestInertiaDeterminantPositiveForCube(t *testing.T) {
	nodes, faces := unitCube()
	s, err := BuildShape(nodes, faces, BuildOptions{})
	assert.NoError(t, err)

	assert.True(t, s.InertiaDeterminant() > 0.0)
}
