package thermal

import (
	"math"

	"github.com/phil-mansfield/asteroid-thermal/mesh"
)

// maxNewtonIter bounds the surface-temperature Newton solve. Exhausting
// the budget is not an error: the best iterate is left in place and the
// caller can inspect Tz[0] if convergence proof is needed.
const maxNewtonIter = 20

// newtonAbsTol, newtonRelTol set the absolute+relative convergence test
// |Tnew-Tprev| < abs + rel*|Tnew|, used in place of the relative-only
// |1 - Tprev/Tnew| test, which misbehaves near Tnew = 0.
const (
	newtonAbsTol = 1e-6
	newtonRelTol = 1e-10
)

// AbsorbedFlux composes a facet's current flux bundle into the single
// absorbed flux F the surface boundary condition balances against.
func AbsorbedFlux(f *mesh.Facet, p *Params) float64 {
	return (1-p.AB)*(f.Flux.Sun+f.Flux.Scat) + (1-p.ATH)*f.Flux.Rad
}

// Step advances one facet's temperature column by one non-dimensional
// time step in place. scratch must have the same length as f.Tz; callers
// stepping many facets concurrently should give each goroutine its own
// scratch slice.
//
// The interior is updated by explicit FTCS, the surface (index 0) by
// Newton iteration against the nonlinear radiative balance, and the deep
// boundary (index Nz-1) by a zero-gradient (insulating) condition. The
// result is copied back into f.Tz.
func Step(f *mesh.Facet, p *Params, scratch []float64) {
	T := f.Tz
	Tp := scratch
	nz := len(T)

	for i := 1; i <= nz-2; i++ {
		Tp[i] = (1-2*p.Lambda)*T[i] + p.Lambda*(T[i+1]+T[i-1])
	}

	flux := AbsorbedFlux(f, p)
	Tp[0] = solveSurface(flux, T[0], Tp[1], p)

	Tp[nz-1] = Tp[nz-2]

	copy(f.Tz, Tp)
}

// solveSurface Newton-solves the nonlinear radiative balance
//
//	F + (Gamma/sqrt(4*pi*P)) * (T1 - T0) / Dz - eps*SigmaSB*T0^4 = 0
//
// for T0, starting from guess (the previous step's surface temperature).
func solveSurface(F, guess, T1 float64, p *Params) float64 {
	cond := p.Gamma / (math.Sqrt(4*math.Pi*p.P) * p.Dz)

	residual := func(T0 float64) float64 {
		return F + cond*(T1-T0) - p.Eps*SigmaSB*T0*T0*T0*T0
	}
	dresidual := func(T0 float64) float64 {
		return -cond - 4*p.Eps*SigmaSB*T0*T0*T0
	}

	T0 := guess
	for iter := 0; iter < maxNewtonIter; iter++ {
		d := dresidual(T0)
		if d == 0 {
			break
		}
		Tnew := T0 - residual(T0)/d
		if math.Abs(Tnew-T0) < newtonAbsTol+newtonRelTol*math.Abs(Tnew) {
			T0 = Tnew
			break
		}
		T0 = Tnew
	}
	return T0
}

// StepAll advances every facet in facets by one time step, distributing
// the (mutually-independent) per-facet work across a bounded worker pool.
// Each worker allocates one scratch column and reuses it for the facets
// it steps, reallocating only when a facet's Tz length differs.
func StepAll(facets []*mesh.Facet, p *Params, workers int) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(facets) {
		workers = len(facets)
	}

	jobs := make(chan int)
	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			var scratch []float64
			for idx := range jobs {
				f := facets[idx]
				if len(scratch) != len(f.Tz) {
					scratch = make([]float64, len(f.Tz))
				}
				Step(f, p, scratch)
			}
			done <- struct{}{}
		}()
	}
	for i := range facets {
		jobs <- i
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}
}
