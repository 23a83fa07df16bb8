package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearExactOnKnots(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	vals := []float64{10, 20, 40, 70}
	lin := NewLinear(xs, vals)

	for i, x := range xs {
		assert.InDelta(t, vals[i], lin.Eval(x), 1e-12)
	}
}

func TestLinearInterpolatesBetweenKnots(t *testing.T) {
	lin := NewLinear([]float64{0, 1}, []float64{0, 10})
	assert.InDelta(t, 5.0, lin.Eval(0.5), 1e-12)
}

func TestUniformLinearMatchesExplicitTable(t *testing.T) {
	vals := []float64{0, 1, 4, 9, 16}
	explicit := NewLinear([]float64{0, 1, 2, 3, 4}, vals)
	uniform := NewUniformLinear(0, 1, vals)

	for _, x := range []float64{0, 0.5, 1.5, 2.25, 3.9} {
		assert.InDelta(t, explicit.Eval(x), uniform.Eval(x), 1e-9)
	}
}

func TestLinearEvalAllFillsOutputSlice(t *testing.T) {
	lin := NewUniformLinear(0, 1, []float64{0, 10, 20})
	xs := []float64{0, 0.5, 1, 1.5}
	got := lin.EvalAll(xs)
	want := []float64{0, 5, 10, 15}
	assert.InDeltaSlice(t, want, got, 1e-9)
}

func TestSplineExactOnKnotsForQuadratic(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = x * x
	}
	sp := NewSpline(xs, vals)

	for i, x := range xs {
		assert.InDelta(t, vals[i], sp.Eval(x), 1e-9)
	}
}

func TestSplineInterpolatesSmoothly(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	vals := []float64{0, 1, 0, 1}
	sp := NewSpline(xs, vals)

	mid := sp.Eval(1.5)
	assert.True(t, mid > 0 && mid < 1)
}

func TestSplineEvalAllFillsOutputSlice(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = x * x
	}
	sp := NewSpline(xs, vals)

	got := sp.EvalAll([]float64{0, 1, 2, 3, 4})
	assert.InDeltaSlice(t, vals, got, 1e-9)
}

func TestTriDiagAtSolvesIdentitySystem(t *testing.T) {
	as := []float64{0, 0, 0}
	bs := []float64{1, 1, 1}
	cs := []float64{0, 0, 0}
	rs := []float64{3, 5, 7}
	out := make([]float64, 3)

	TriDiagAt(as, bs, cs, rs, out)
	assert.InDeltaSlice(t, rs, out, 1e-12)
}
