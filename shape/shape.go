/*Package shape builds and owns the polyhedral shape model: the node and
face-index arrays supplied by the (external) mesh loader, the derived
Facet sequence, and the bulk scalars AREA, VOLUME, COF, and the inertia
tensor.
*/
package shape

import (
	"fmt"

	"github.com/phil-mansfield/asteroid-thermal/mesh"
	"github.com/phil-mansfield/asteroid-thermal/vec3"
	"github.com/phil-mansfield/asteroid-thermal/visibility"
)

// Face is a triple of node indices describing one triangle's winding.
type Face [3]int

// Shape owns the node array, the face-index array, the derived facet
// sequence, and the shape's bulk scalars. Nodes and Faces are read-only
// after BuildShape returns; each Facet's Tz and VisibleFaces are mutated
// only by the thermal and visibility packages, respectively.
type Shape struct {
	Nodes []vec3.Vec3
	Faces []Face
	Facets []*mesh.Facet

	Area    float64
	Volume  float64
	COF     vec3.Vec3
	Inertia [3][3]float64

	// TzNext is a scratch column for the thermal step. BuildShape leaves
	// it nil, and neither thermal.Step nor thermal.StepAll reads it: Step
	// takes its scratch column as an argument.
	TzNext []float64
}

// BuildOptions controls optional work BuildShape performs beyond
// constructing the bare facet sequence.
type BuildOptions struct {
	// FindVisibleFaces runs the O(N^2)-O(N^3) visibility and view-factor
	// computation of the visibility package over the resulting facets.
	// This is the dominant cost for large meshes and is skipped unless
	// requested.
	FindVisibleFaces bool
}

// BuildShape constructs a Shape from an indexed triangular mesh. nodes
// gives vertex positions; faces gives, for each triangle, the indices into
// nodes for its three vertices in outward-winding order. BuildShape does
// not validate winding consistency or reject degenerate triangles: that is
// the mesh loader's responsibility.
func BuildShape(nodes []vec3.Vec3, faces []Face, opts BuildOptions) (*Shape, error) {
	s := &Shape{
		Nodes: nodes,
		Faces: faces,
	}

	s.Facets = make([]*mesh.Facet, len(faces))
	for i, face := range faces {
		if face[0] < 0 || face[0] >= len(nodes) ||
			face[1] < 0 || face[1] >= len(nodes) ||
			face[2] < 0 || face[2] >= len(nodes) {
			return nil, fmt.Errorf(
				"shape: face %d references a node index out of range [0, %d)",
				i, len(nodes),
			)
		}
		A, B, C := nodes[face[0]], nodes[face[1]], nodes[face[2]]
		s.Facets[i] = mesh.NewFacet(A, B, C)
	}

	if opts.FindVisibleFaces {
		visibility.FindVisibleFaces(s.Facets)
	}

	s.computeBulkScalars()
	s.Inertia = inertiaTensor(s.Facets)

	return s, nil
}

// computeBulkScalars fills in Area, Volume, and COF from the facet
// sequence's cached geometry.
func (s *Shape) computeBulkScalars() {
	var area, volume float64
	var weighted vec3.Vec3

	for _, f := range s.Facets {
		area += f.Area

		v := f.SignedVolume()
		volume += v

		// Tetrahedron centroid with apex at the origin: (A+B+C)/4.
		c := f.A.Add(f.B).Add(f.C).Scale(0.25)
		weighted = weighted.Add(c.Scale(v))
	}

	s.Area = area
	s.Volume = volume
	if volume != 0 {
		s.COF = weighted.Scale(1 / volume)
	}
}
