package shape

import (
	"github.com/phil-mansfield/asteroid-thermal/mat"
	"github.com/phil-mansfield/asteroid-thermal/mesh"
)

// inertiaTensor computes the shape's moment of inertia tensor about the
// origin by summing the closed-form single-tetrahedron contribution of
// Tonon (2004), "Explicit Exact Formulas for the 3-D Tetrahedron Inertia
// Tensor in Terms of its Vertex Coordinates", specialized to a tetrahedron
// with one vertex at the origin (the apex shared by every facet's signed
// tetrahedron, per the same decomposition used for VOLUME and COF).
//
// I_ij = integral of (delta_ij |r|^2 - r_i r_j) dV over the solid, which
// for a single origin-apex tetrahedron with base vertices A, B, C and
// signed volume v reduces to the sums below.
func inertiaTensor(facets []*mesh.Facet) [3][3]float64 {
	var Ixx, Iyy, Izz, Ixy, Iyz, Ixz float64

	for _, f := range facets {
		v := f.SignedVolume()
		Ax, Ay, Az := f.A[0], f.A[1], f.A[2]
		Bx, By, Bz := f.B[0], f.B[1], f.B[2]
		Cx, Cy, Cz := f.C[0], f.C[1], f.C[2]

		sixV := 6 * v

		Ixx += sixV / 60 * (selfSum(Ay, By, Cy) + selfSum(Az, Bz, Cz))
		Iyy += sixV / 60 * (selfSum(Ax, Bx, Cx) + selfSum(Az, Bz, Cz))
		Izz += sixV / 60 * (selfSum(Ax, Bx, Cx) + selfSum(Ay, By, Cy))

		Ixy += sixV / 120 * crossSum(Ax, Bx, Cx, Ay, By, Cy)
		Iyz += sixV / 120 * crossSum(Ay, By, Cy, Az, Bz, Cz)
		Ixz += sixV / 120 * crossSum(Ax, Bx, Cx, Az, Bz, Cz)
	}

	return [3][3]float64{
		{Ixx, -Ixy, -Ixz},
		{-Ixy, Iyy, -Iyz},
		{-Ixz, -Iyz, Izz},
	}
}

// selfSum computes p1^2 + p1*p2 + p2^2 + p1*p3 + p2*p3 + p3^2, the
// diagonal building block of Tonon's tetrahedron inertia formula.
func selfSum(p1, p2, p3 float64) float64 {
	return p1*p1 + p1*p2 + p2*p2 + p1*p3 + p2*p3 + p3*p3
}

// crossSum computes the off-diagonal building block
// 2*(p1q1+p2q2+p3q3) + (p1q2+p2q1) + (p1q3+p3q1) + (p2q3+p3q2).
func crossSum(p1, p2, p3, q1, q2, q3 float64) float64 {
	return 2*(p1*q1+p2*q2+p3*q3) +
		(p1*q2 + p2*q1) +
		(p1*q3 + p3*q1) +
		(p2*q3 + p3*q2)
}

// InertiaMatrix returns the shape's inertia tensor as a *mat.Matrix, for
// callers that want to run further linear algebra on it (e.g. principal
// axes via an eigendecomposition the caller supplies, or a determinant
// sanity check via Determinant()).
func (s *Shape) InertiaMatrix() *mat.Matrix {
	vals := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			vals[i*3+j] = s.Inertia[i][j]
		}
	}
	return mat.NewMatrix(vals, 3, 3)
}

// InertiaDeterminant returns det(I), a basis-independent diagnostic of the
// inertia tensor's scale (it is the product of the three principal
// moments). A physically valid, non-degenerate shape has a strictly
// positive determinant.
func (s *Shape) InertiaDeterminant() float64 {
	return s.InertiaMatrix().Determinant()
}
