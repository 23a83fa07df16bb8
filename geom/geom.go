/*Package geom contains free-standing geometric routines used by the shape
and visibility packages: triangle derived quantities, the orientation and
facing predicates, Moller-Trumbore ray/triangle intersection, and the solid
angle of a triangle from an observer via L'Huilier's theorem.

The routines here are deliberately stateless and allocation free so that
they can be called once per candidate pair during visibility computation
without putting pressure on the garbage collector.
*/
package geom

import (
	"math"

	"github.com/phil-mansfield/asteroid-thermal/vec3"
)

// Centroid returns (A+B+C)/3.
func Centroid(A, B, C vec3.Vec3) vec3.Vec3 {
	return A.Add(B).Add(C).Scale(1.0 / 3.0)
}

// Normal returns the outward unit normal of the triangle (A,B,C), built
// from the winding normalize((B-A) x (C-B)). Outwardness is a property of
// the vertex winding supplied by the caller; Normal never flips it.
func Normal(A, B, C vec3.Vec3) vec3.Vec3 {
	e1 := B.Sub(A)
	e2 := C.Sub(B)
	return e1.Cross(e2).Normalize()
}

// Area returns the area of the triangle (A,B,C).
func Area(A, B, C vec3.Vec3) float64 {
	e1 := B.Sub(A)
	e2 := C.Sub(B)
	return e1.Cross(e2).Norm() / 2
}

// IsAbove returns true iff D lies on the side of the plane through A, B, C
// that the normal (B-A)x(C-B) points to, i.e. det[A-D; B-D; C-D] < 0. Points
// exactly coplanar with A, B, C return false.
func IsAbove(A, B, C, D vec3.Vec3) bool {
	a := A.Sub(D)
	b := B.Sub(D)
	c := C.Sub(D)
	det := a.Dot(b.Cross(c))
	return det < 0
}

// IsBelow is the strict opposite of IsAbove: points exactly coplanar with
// A, B, C return false from both.
func IsBelow(A, B, C, D vec3.Vec3) bool {
	a := A.Sub(D)
	b := B.Sub(D)
	c := C.Sub(D)
	det := a.Dot(b.Cross(c))
	return det > 0
}

// IsFace returns true iff the target's front side faces the observer point,
// i.e. (tarCenter - obs) . tarNormal < 0.
func IsFace(obs, tarCenter, tarNormal vec3.Vec3) bool {
	return tarCenter.Sub(obs).Dot(tarNormal) < 0
}

// Raycast tests the ray from the origin in direction R against the triangle
// (A, B, C) using the Moller-Trumbore algorithm. R need not be unit length;
// t is only sign-tested. ok is true iff the ray hits the triangle at a
// positive parameter.
func Raycast(A, B, C, R vec3.Vec3) (t float64, ok bool) {
	E1 := B.Sub(A)
	E2 := C.Sub(A)
	T := A.Scale(-1)
	P := R.Cross(E2)
	Q := T.Cross(E1)

	denom := P.Dot(E1)
	if denom == 0 {
		return 0, false
	}

	u := P.Dot(T) / denom
	if u < 0 || u > 1 {
		return 0, false
	}

	v := Q.Dot(R) / denom
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = Q.Dot(E2) / denom
	return t, t > 0
}

// RaycastFrom is Raycast for a ray cast from an arbitrary observer point
// rather than the origin: it translates A, B, C by -obs first.
func RaycastFrom(A, B, C, obs, R vec3.Vec3) (t float64, ok bool) {
	return Raycast(A.Sub(obs), B.Sub(obs), C.Sub(obs), R)
}

// Angle returns the angle in radians between v1 and v2. Callers must
// ensure both are nonzero.
func Angle(v1, v2 vec3.Vec3) float64 {
	c := v1.Normalize().Dot(v2.Normalize())
	// Guard against values that drift marginally outside [-1, 1] due to
	// floating point error; acos is otherwise undefined there.
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// SolidAngle returns the solid angle subtended by the triangle (A,B,C) as
// seen from obs, computed via L'Huilier's theorem.
func SolidAngle(A, B, C, obs vec3.Vec3) float64 {
	a := Angle(B.Sub(obs), C.Sub(obs))
	b := Angle(C.Sub(obs), A.Sub(obs))
	c := Angle(A.Sub(obs), B.Sub(obs))

	s := (a + b + c) / 2
	arg := math.Tan(s/2) * math.Tan((s-a)/2) * math.Tan((s-b)/2) * math.Tan((s-c)/2)
	if arg < 0 {
		// Clamp numerical noise near degenerate triangles back to zero.
		arg = 0
	}
	return 4 * math.Atan(math.Sqrt(arg))
}
