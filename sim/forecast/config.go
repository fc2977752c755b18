package forecast

import (
	"fmt"
	"math"

	"github.com/runway-sim/runway-sim/sim"
	"github.com/runway-sim/runway-sim/sim/workload"
)

// DefaultGrowth is the yearly traffic growth rate.
const DefaultGrowth = 0.05

// Config groups everything a Study needs.
type Config struct {
	Airport sim.Airport          // runway configuration
	Service workload.ServiceSpec // service-time table; zero value means the observed default
	Seed    int64                // master seed; every (year, day) stream derives from it
	Growth  float64              // yearly traffic growth; must be > -1
	Workers int                  // concurrent days; <= 1 runs sequentially
}

// DefaultConfig returns the observed airport with the given runway count.
func DefaultConfig(runways int) Config {
	return Config{
		Airport: sim.Airport{Runways: runways, Precedence: sim.PrecedenceFirstFree, Window: sim.DefaultOperatingWindow},
		Service: workload.DefaultServiceSpec(),
		Seed:    1,
		Growth:  DefaultGrowth,
		Workers: 1,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Airport.Validate(); err != nil {
		return err
	}
	if math.IsNaN(c.Growth) || math.IsInf(c.Growth, 0) || c.Growth <= -1 {
		return fmt.Errorf("growth must be a finite number > -1, got %v", c.Growth)
	}
	return nil
}

// IntensityForYear returns round(base × (1+growth)^year), recomputed from
// base for every year so rounding never compounds.
func IntensityForYear(base, growth float64, year int) int {
	return int(math.Round(base * math.Pow(1+growth, float64(year))))
}
