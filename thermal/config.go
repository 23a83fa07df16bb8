package thermal

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// ExampleConfigFile documents the [Thermal] INI section consumed by
// ReadConfig, in the same annotated-example style as this codebase's other
// gcfg-backed config files.
const ExampleConfigFile = `[Thermal]

#######################
# Required Parameters #
#######################

# Bond albedo (fraction of sun+scattered flux reflected, not absorbed).
AB = 0.05
# Thermal (bolometric) albedo applied to the incoming re-radiation term.
ATH = 0.0
# Thermal conductivity, W/(m K).
K = 0.01
# Bulk density, kg/m^3.
Rho = 1500
# Specific heat capacity, J/(kg K).
Cp = 600
# Bolometric emissivity, dimensionless in [0, 1].
Eps = 0.9
# Rotation period, s.
P = 36000

#######################
# Optional Parameters #
#######################

# Non-dimensional (period-normalized) time step, start, and end.
# Dt = 0.001
# TBgn = 0
# TEnd = 1

# Non-dimensional (skin-depth-normalized) depth step and max depth.
# Dz = 0.05
# ZMax = 4`

// Config carries the physical inputs and step sizes needed to build a
// Params. ReadConfig seeds the optional fields with DefaultConfig's values
// before reading a file; NewParams does not fill in zero-valued fields, and
// CheckInit rejects a zero Dt, Dz, or ZMax.
type Config struct {
	AB, ATH    float64
	K, Rho, Cp float64
	Eps        float64
	P          float64

	Dt, TBgn, TEnd float64
	Dz, ZMax       float64
}

// ConfigWrapper is the gcfg section wrapper for Config, matching the
// Wrapper idiom used by this codebase's other INI-backed config types.
type ConfigWrapper struct {
	Thermal Config
}

// DefaultConfig returns a Config with the step-size defaults used when a
// config file omits the optional section.
func DefaultConfig() Config {
	return Config{
		Dt:   1e-3,
		TBgn: 0,
		TEnd: 1,
		Dz:   0.05,
		ZMax: 4,
	}
}

// ReadConfig reads a [Thermal] section from the named INI file, seeding
// optional fields with DefaultConfig before overlaying whatever the file
// specifies.
func ReadConfig(fname string) (Config, error) {
	wrap := ConfigWrapper{Thermal: DefaultConfig()}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return Config{}, fmt.Errorf("thermal: reading config %q: %w", fname, err)
	}
	return wrap.Thermal, nil
}

// CheckInit validates the required physical inputs, returning an error
// describing the first problem found. It does not check Lambda < 0.5; that
// is a non-fatal stability warning raised by NewParams, not a
// configuration error.
func (c *Config) CheckInit() error {
	if c.K <= 0 {
		return fmt.Errorf("thermal: K must be positive, got %g", c.K)
	}
	if c.Rho <= 0 {
		return fmt.Errorf("thermal: Rho must be positive, got %g", c.Rho)
	}
	if c.Cp <= 0 {
		return fmt.Errorf("thermal: Cp must be positive, got %g", c.Cp)
	}
	if c.P <= 0 {
		return fmt.Errorf("thermal: P must be positive, got %g", c.P)
	}
	if c.Eps < 0 || c.Eps > 1 {
		return fmt.Errorf("thermal: Eps must be in [0, 1], got %g", c.Eps)
	}
	if c.AB < 0 || c.AB > 1 {
		return fmt.Errorf("thermal: AB must be in [0, 1], got %g", c.AB)
	}
	if c.ATH < 0 || c.ATH > 1 {
		return fmt.Errorf("thermal: ATH must be in [0, 1], got %g", c.ATH)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("thermal: Dt must be positive, got %g", c.Dt)
	}
	if c.TEnd <= c.TBgn {
		return fmt.Errorf("thermal: TEnd (%g) must be greater than TBgn (%g)", c.TEnd, c.TBgn)
	}
	if c.Dz <= 0 {
		return fmt.Errorf("thermal: Dz must be positive, got %g", c.Dz)
	}
	if c.ZMax <= 0 {
		return fmt.Errorf("thermal: ZMax must be positive, got %g", c.ZMax)
	}
	return nil
}
