package properties

import (
	"fmt"

	"github.com/perrongu/thermaflow/internal/numeric"
	"github.com/perrongu/thermaflow/therr"
)

// AirProperties holds the dry-air properties the solver needs at a given
// temperature: density, dynamic viscosity, thermal conductivity, specific
// heat and Prandtl number. Units are SI: kg/m3, Pa*s, W/(m*K), J/(kg*K).
type AirProperties struct {
	Rho float64
	Mu  float64
	K   float64
	Cp  float64
	Pr  float64
}

func (a AirProperties) String() string {
	return fmt.Sprintf("air(rho=%.3f mu=%.3e k=%.4f cp=%.0f pr=%.3f)", a.Rho, a.Mu, a.K, a.Cp, a.Pr)
}

// airTGrid is the temperature axis of the 1-D air property table, in
// degrees Celsius.
var airTGrid = []float64{-40, -30, -20, -10, 0, 10, 20, 30, 40, 50}

// airNodes holds the 1-atm dry-air property values for each node of
// airTGrid (textbook values, e.g. Cengel "Heat and Mass Transfer" Table
// A-15).
var airNodes = []AirProperties{
	{Rho: 1.514, Mu: 1.434e-5, K: 0.02036, Cp: 1005, Pr: 0.728},
	{Rho: 1.452, Mu: 1.475e-5, K: 0.02112, Cp: 1005, Pr: 0.728},
	{Rho: 1.394, Mu: 1.516e-5, K: 0.02187, Cp: 1005, Pr: 0.727},
	{Rho: 1.341, Mu: 1.557e-5, K: 0.02260, Cp: 1005, Pr: 0.726},
	{Rho: 1.292, Mu: 1.729e-5, K: 0.02364, Cp: 1006, Pr: 0.715},
	{Rho: 1.246, Mu: 1.778e-5, K: 0.02444, Cp: 1006, Pr: 0.713},
	{Rho: 1.204, Mu: 1.825e-5, K: 0.02514, Cp: 1007, Pr: 0.710},
	{Rho: 1.164, Mu: 1.872e-5, K: 0.02588, Cp: 1007, Pr: 0.707},
	{Rho: 1.127, Mu: 1.918e-5, K: 0.02663, Cp: 1007, Pr: 0.705},
	{Rho: 1.092, Mu: 1.963e-5, K: 0.02735, Cp: 1007, Pr: 0.703},
}

// GetAirProperties returns the interpolated dry-air properties at
// temperature T [°C]. T must be in [-40,50]; otherwise ErrOutOfRange is
// returned. An exact grid node returns the stored value without
// interpolation.
func GetAirProperties(T float64) (AirProperties, error) {
	if !numeric.Finite(T) {
		return AirProperties{}, therr.InvalidInputf("air properties: T=%v must be finite", T)
	}

	lo, hi, exact, ok := numeric.Bracket(airTGrid, T)
	if !ok {
		return AirProperties{}, therr.OutOfRangef("air temperature %.4g C outside tabulated domain [%.4g,%.4g]", T, airTGrid[0], airTGrid[len(airTGrid)-1])
	}
	if exact {
		return airNodes[lo], nil
	}

	loN, hiN := airNodes[lo], airNodes[hi]
	return AirProperties{
		Rho: numeric.Lerp(T, airTGrid[lo], loN.Rho, airTGrid[hi], hiN.Rho),
		Mu:  numeric.Lerp(T, airTGrid[lo], loN.Mu, airTGrid[hi], hiN.Mu),
		K:   numeric.Lerp(T, airTGrid[lo], loN.K, airTGrid[hi], hiN.K),
		Cp:  numeric.Lerp(T, airTGrid[lo], loN.Cp, airTGrid[hi], hiN.Cp),
		Pr:  numeric.Lerp(T, airTGrid[lo], loN.Pr, airTGrid[hi], hiN.Pr),
	}, nil
}
