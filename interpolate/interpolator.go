package interpolate

// Interpolator is a one-dimensional table lookup: given a table of (x,
// value) pairs, it evaluates the table's value at an arbitrary x within
// its range. cmd/asteroidtherm uses it to turn a rotation-phase flux
// table into a continuous insolation curve.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Linear{}
)
