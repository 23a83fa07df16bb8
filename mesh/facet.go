/*Package mesh defines the Facet record: the triangle that is the unit of
work for both the visibility/view-factor computation and the per-facet
heat conduction solver.
*/
package mesh

import (
	"github.com/phil-mansfield/asteroid-thermal/geom"
	"github.com/phil-mansfield/asteroid-thermal/vec3"
)

// Flux is the absorbed-power bundle that the (external) illumination
// collaborator writes between simulation ticks and the thermal solver
// reads during a tick. All three components are in W/m^2.
type Flux struct {
	Sun, Scat, Rad float64
}

// VisibleFace is one entry in a facet's visibility list: the index of
// another facet that this facet can see, the Lambertian point-to-area
// view factor to it, and the unit direction from this facet's center to
// that facet's center.
type VisibleFace struct {
	ID  int
	F   float64
	Dir vec3.Vec3
}

// Facet is one triangle of the polyhedral shape. Its geometric quantities
// are computed once at construction and cached; VisibleFaces, Flux, and Tz
// are mutated by the visibility and thermal collaborators over the life of
// the simulation.
type Facet struct {
	A, B, C vec3.Vec3

	Center vec3.Vec3
	Normal vec3.Vec3
	Area   float64

	VisibleFaces []VisibleFace

	Flux Flux

	// Tz holds the temperature (Kelvin) at depths 0, Dz, 2*Dz, ... NewFacet
	// leaves it nil; the caller running the simulation sizes and seeds it
	// (cmd/asteroidtherm sizes it to Params.Nz).
	Tz []float64

	// DF is the photon-recoil accumulator. It is not touched by this
	// module's core; it exists so that a force-accumulating collaborator
	// has somewhere to write.
	DF vec3.Vec3
}

// NewFacet builds a Facet from three vertex positions, computing and
// caching its center, normal, and area. The winding of A, B, C determines
// the outward direction of Normal; NewFacet does not attempt to correct
// inconsistent winding.
func NewFacet(A, B, C vec3.Vec3) *Facet {
	return &Facet{
		A: A, B: B, C: C,
		Center: geom.Centroid(A, B, C),
		Normal: geom.Normal(A, B, C),
		Area:   geom.Area(A, B, C),
	}
}

// SignedVolume returns the signed volume of the tetrahedron formed by this
// facet and the origin, ((A x B) . C) / 6. It is signed consistently with
// outward winding and is the building block for Shape's VOLUME, COF, and
// inertia tensor.
func (f *Facet) SignedVolume() float64 {
	return f.A.Cross(f.B).Dot(f.C) / 6
}

// IsAboveHorizon reports whether this facet's visibility list is empty,
// i.e. no other facet on the shape is visible from it.
func (f *Facet) IsAboveHorizon() bool {
	return len(f.VisibleFaces) == 0
}
