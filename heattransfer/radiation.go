package heattransfer

import (
	"github.com/perrongu/thermaflow/internal/numeric"
	"github.com/perrongu/thermaflow/therr"
)

// KelvinOffset converts a Celsius temperature to Kelvin by addition.
const KelvinOffset = 273.15

// StefanBoltzmann is the Stefan-Boltzmann constant [W/(m2*K4)].
const StefanBoltzmann = 5.67e-8

// LinearizedRadiationH returns the linearized radiative heat-transfer
// coefficient between a surface at tSurfC and surroundings at tAmbC,
// h_rad = emissivity*sigma*(Ts^2+Ta^2)*(Ts+Ta), with Ts and Ta in
// Kelvin. Linearizing lets radiation be summed in parallel with
// convection as an equivalent h without iterating on T^4 directly.
func LinearizedRadiationH(emissivity, tSurfC, tAmbC float64) (float64, error) {
	if !numeric.Finite(emissivity, tSurfC, tAmbC) {
		return 0, therr.InvalidInputf("radiation: inputs must be finite (emissivity=%v tSurf=%v tAmb=%v)", emissivity, tSurfC, tAmbC)
	}
	if emissivity < 0 || emissivity > 1 {
		return 0, therr.InvalidInputf("radiation: emissivity must be in [0,1] (emissivity=%v)", emissivity)
	}

	ts := tSurfC + KelvinOffset
	ta := tAmbC + KelvinOffset
	return emissivity * StefanBoltzmann * (ts*ts + ta*ta) * (ts + ta), nil
}
