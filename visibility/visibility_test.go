package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/asteroid-thermal/mesh"
	"github.com/phil-mansfield/asteroid-thermal/vec3"
)

func TestViewFactorPositivityAndUnitDirection(t *testing.T) {
	facets := threeFacetLine(t)
	FindVisibleFaces(facets)

	for _, f := range facets {
		for _, vf := range f.VisibleFaces {
			assert.True(t, vf.F > 0.0)
			assert.InDelta(t, 1.0, vf.Dir.Norm(), 1e-9)
		}
	}
}

// threeFacetLine builds three triangles stacked along z, used for the
// positivity and reciprocity tests.
func threeFacetLine(t *testing.T) []*mesh.Facet {
	t.Helper()
	// Triangle k lies in the plane z=k. Triangles 0 and 2 face +z and
	// triangle 1 faces -z, so 0 and 1 see each other, while 2 faces away
	// from both and neither sees nor is seen by them.
	tri := func(z float64, up bool) *mesh.Facet {
		A := vec3.Vec3{-1, -1, z}
		B := vec3.Vec3{1, -1, z}
		C := vec3.Vec3{0, 1, z}
		if !up {
			A, B = B, A
		}
		return mesh.NewFacet(A, B, C)
	}

	f0 := tri(0, true)
	f1 := tri(1, false)
	f2 := tri(2, true)
	return []*mesh.Facet{f0, f1, f2}
}

func TestOcclusionKeepsCloserDropsFarther(t *testing.T) {
	// A sees toward C through B, which lies on the segment and blocks it.
	A := mesh.NewFacet(vec3.Vec3{-1, -1, 0}, vec3.Vec3{1, -1, 0}, vec3.Vec3{0, 1, 0})
	B := mesh.NewFacet(vec3.Vec3{1, -1, 1}, vec3.Vec3{-1, -1, 1}, vec3.Vec3{0, 1, 1})
	C := mesh.NewFacet(vec3.Vec3{1, -1, 2}, vec3.Vec3{-1, -1, 2}, vec3.Vec3{0, 1, 2})

	facets := []*mesh.Facet{A, B, C}
	FindVisibleFaces(facets)

	ids := map[int]bool{}
	for _, vf := range A.VisibleFaces {
		ids[vf.ID] = true
	}
	assert.True(t, ids[1], "A should see B")
	assert.False(t, ids[2], "A should not see C through B")
}

func TestViewFactorReciprocity(t *testing.T) {
	facets := threeFacetLine(t)
	FindVisibleFaces(facets)

	fij := findFactor(facets[0], 1)
	fji := findFactor(facets[1], 0)
	if fij == 0 || fji == 0 {
		t.Skip("facets not mutually visible in this configuration")
	}

	lhs := fij * facets[0].Area
	rhs := fji * facets[1].Area
	assert.InDelta(t, lhs, rhs, 1e-9*lhs)
}

func findFactor(f *mesh.Facet, id int) float64 {
	for _, vf := range f.VisibleFaces {
		if vf.ID == id {
			return vf.F
		}
	}
	return 0
}

func TestIsAboveHorizonEmptyList(t *testing.T) {
	f := mesh.NewFacet(vec3.Vec3{0, 0, 0}, vec3.Vec3{1, 0, 0}, vec3.Vec3{0, 1, 0})
	assert.True(t, IsAboveHorizon(f))
}

func TestIsIlluminatedFacingAway(t *testing.T) {
	f := mesh.NewFacet(vec3.Vec3{0, 0, 0}, vec3.Vec3{1, 0, 0}, vec3.Vec3{0, 1, 0})
	sunDir := f.Normal.Scale(-1)
	assert.False(t, IsIlluminated(f, sunDir, []*mesh.Facet{f}))
}

func TestIsIlluminatedUnobstructed(t *testing.T) {
	f := mesh.NewFacet(vec3.Vec3{0, 0, 0}, vec3.Vec3{1, 0, 0}, vec3.Vec3{0, 1, 0})
	sunDir := f.Normal
	facets := []*mesh.Facet{f}
	FindVisibleFaces(facets)
	assert.True(t, IsIlluminated(f, sunDir, facets))
}

// gridSquare decomposes the unit square [0,1]x[0,1] at height z, facing
// direction +z if up else -z, into n*n cells of 2 triangles each.
func gridSquare(n int, z float64, up bool) []*mesh.Facet {
	facets := make([]*mesh.Facet, 0, 2*n*n)
	step := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x0, x1 := float64(i)*step, float64(i+1)*step
			y0, y1 := float64(j)*step, float64(j+1)*step

			p00 := vec3.Vec3{x0, y0, z}
			p10 := vec3.Vec3{x1, y0, z}
			p11 := vec3.Vec3{x1, y1, z}
			p01 := vec3.Vec3{x0, y1, z}

			if up {
				facets = append(facets,
					mesh.NewFacet(p00, p10, p11),
					mesh.NewFacet(p00, p11, p01),
				)
			} else {
				facets = append(facets,
					mesh.NewFacet(p00, p11, p10),
					mesh.NewFacet(p00, p01, p11),
				)
			}
		}
	}
	return facets
}

func TestParallelPlateViewFactorApproximatesAnalytic(t *testing.T) {
	n := 4
	lower := gridSquare(n, 0, true)
	upper := gridSquare(n, 1, false)

	all := append(append([]*mesh.Facet{}, lower...), upper...)
	FindVisibleFaces(all)

	lowerIdx := map[*mesh.Facet]bool{}
	for _, f := range lower {
		lowerIdx[f] = true
	}

	var area, weighted float64
	for _, f := range lower {
		area += f.Area
		for _, vf := range f.VisibleFaces {
			tar := all[vf.ID]
			if !lowerIdx[tar] { // only count hits on the upper square
				weighted += vf.F * f.Area
			}
		}
	}

	got := weighted / area
	// Analytic value for two directly-opposed unit squares separated by
	// unit distance is ~0.1998. A 4x4-per-square centroid quadrature is
	// coarse, so this only checks the right order of magnitude and sign.
	assert.InDelta(t, 0.1998, got, 0.1998*0.5)
}
