package interpolate

// searcher locates the bracketing interval of a sorted x-coordinate table,
// with an O(1) fast path for uniformly-spaced tables (the common case for
// a phase-sampled flux curve) and an O(log n) binary search otherwise.
type searcher struct {
	xs       []float64
	uniform  bool
	x0, dx   float64
	n        int
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.n = len(xs)
	s.uniform = false
}

func (s *searcher) unifInit(x0, dx float64, n int) {
	s.x0, s.dx = x0, dx
	s.n = n
	s.uniform = true
}

// search returns i such that val(i) <= x <= val(i+1), clamped to
// [0, n-2] so that Eval can always read i and i+1.
func (s *searcher) search(x float64) int {
	if s.uniform {
		i := int((x - s.x0) / s.dx)
		return s.clamp(i)
	}

	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return s.clamp(lo)
}

func (s *searcher) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > s.n-2 {
		return s.n - 2
	}
	return i
}

func (s *searcher) val(i int) float64 {
	if s.uniform {
		return s.x0 + float64(i)*s.dx
	}
	return s.xs[i]
}

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing points xs, which take on the values given by vals.
//
// Lookups occur in O(log |xs|).
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic("Length of input slices are not equal.")
	}
	lin := &Linear{}
	lin.xs.init(xs)
	lin.vals = vals
	return lin
}

// NewUniformLinear creates a linear interpolator for a uniformly spaced
// sequence of x values starting at x0 and separated by dx, taking on the
// values given by vals.
//
// Lookups are O(1).
func NewUniformLinear(x0, dx float64, vals []float64) *Linear {
	lin := &Linear{}
	lin.xs.unifInit(x0, dx, len(vals))
	lin.vals = vals
	return lin
}

// Eval returns the interpolated value at x. x outside the table's range
// is not rejected: it is extrapolated linearly from the nearest end
// interval, and x exactly on the table's upper edge uses the last
// interval.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.val(i1), lin.xs.val(i2)
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an
// output array is given, the output is written to that array (the array
// is still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}
