package thermal

import (
	"log"
	"math"
)

// Params is the fully-derived, non-dimensionalized parameter set a Step
// needs to advance one facet's temperature column. It is built once per
// run by NewParams and then shared read-only across all facets and
// rotations.
type Params struct {
	AB, ATH float64
	Eps     float64

	K, Rho, Cp float64
	P          float64

	// L is the thermal skin depth, m.
	L float64
	// Gamma is the thermal inertia, J m^-2 K^-1 s^-1/2.
	Gamma float64

	// Dt, TBgn, TEnd are the non-dimensional (period-normalized) time
	// step, start, and end. Nt is the resulting number of time nodes.
	Dt, TBgn, TEnd float64
	Nt             int

	// Dz, ZMax are the non-dimensional (skin-depth-normalized) depth
	// step and maximum depth. Nz is the resulting number of depth nodes.
	Dz, ZMax float64
	Nz       int

	// Lambda is the FTCS stability parameter, (1/4pi)*(Dt/Dz^2). Values
	// at or above 0.5 make the explicit interior update unconditionally
	// unstable; NewParams logs a warning but does not refuse to build
	// Params, since a caller may be intentionally probing the boundary.
	Lambda float64
}

// NewParams validates cfg and derives the skin depth, thermal inertia,
// step counts, and stability parameter from it.
func NewParams(cfg Config) (*Params, error) {
	if err := cfg.CheckInit(); err != nil {
		return nil, err
	}

	l := math.Sqrt(4 * math.Pi * cfg.P * cfg.K / (cfg.Rho * cfg.Cp))
	gamma := math.Sqrt(cfg.K * cfg.Rho * cfg.Cp)

	// Nt and Nz are node counts for the closed sequences [TBgn, TEnd] and
	// [0, ZMax], not interval counts: a grid with k intervals has k+1
	// endpoints.
	nt := int(math.Round((cfg.TEnd-cfg.TBgn)/cfg.Dt)) + 1
	nz := int(math.Round(cfg.ZMax/cfg.Dz)) + 1

	lambda := (cfg.Dt / (cfg.Dz * cfg.Dz)) / (4 * math.Pi)

	p := &Params{
		AB:     cfg.AB,
		ATH:    cfg.ATH,
		Eps:    cfg.Eps,
		K:      cfg.K,
		Rho:    cfg.Rho,
		Cp:     cfg.Cp,
		P:      cfg.P,
		L:      l,
		Gamma:  gamma,
		Dt:     cfg.Dt,
		TBgn:   cfg.TBgn,
		TEnd:   cfg.TEnd,
		Nt:     nt,
		Dz:     cfg.Dz,
		ZMax:   cfg.ZMax,
		Nz:     nz,
		Lambda: lambda,
	}

	if lambda >= 0.5 {
		log.Printf("thermal: lambda = %g >= 0.5, explicit interior update is unstable at this Dt/Dz", lambda)
	}

	return p, nil
}
