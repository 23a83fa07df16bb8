package thermal

// Physical constants required by the thermal package, in SI units.
const (
	// SigmaSB is the Stefan-Boltzmann constant, W m^-2 K^-4.
	SigmaSB = 5.670374419e-8
	// H is the Planck constant, J s.
	H = 6.62607015e-34
	// KB is the Boltzmann constant, J K^-1.
	KB = 1.380649e-23
	// C0 is the speed of light in vacuum, m s^-1.
	C0 = 2.99792458e8
)
