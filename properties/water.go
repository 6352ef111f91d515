package properties

import (
	"fmt"

	"github.com/perrongu/thermaflow/internal/numeric"
	"github.com/perrongu/thermaflow/therr"
)

// WaterProperties holds the liquid-water properties the solver needs at a
// given (T, P) node: density, dynamic viscosity, thermal conductivity and
// specific heat. Units are SI: kg/m3, Pa*s, W/(m*K), J/(kg*K).
type WaterProperties struct {
	Rho float64
	Mu  float64
	K   float64
	Cp  float64
}

func (w WaterProperties) String() string {
	return fmt.Sprintf("water(rho=%.1f mu=%.3e k=%.3f cp=%.0f)", w.Rho, w.Mu, w.K, w.Cp)
}

// waterTGrid and waterPGrid are the axes of the 2-D water property table.
// Temperature in degrees Celsius, pressure in bar absolute.
var waterTGrid = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
var waterPGrid = []float64{1, 2, 4, 6, 8, 10}

// waterBase holds the saturated-liquid property values at 1 bar for each
// node of waterTGrid (textbook values, e.g. Cengel "Heat and Mass
// Transfer" Table A-9). Pressure dependence of liquid water over [1,10]
// bar is dominated by a small density increase from compressibility; mu,
// k and cp are treated as pressure-independent over this narrow range.
var waterBase = []WaterProperties{
	{Rho: 999.8, Mu: 1.787e-3, K: 0.561, Cp: 4217},
	{Rho: 999.7, Mu: 1.307e-3, K: 0.580, Cp: 4192},
	{Rho: 998.2, Mu: 1.002e-3, K: 0.598, Cp: 4182},
	{Rho: 995.6, Mu: 0.798e-3, K: 0.615, Cp: 4178},
	{Rho: 992.2, Mu: 0.653e-3, K: 0.630, Cp: 4179},
	{Rho: 988.0, Mu: 0.547e-3, K: 0.643, Cp: 4181},
	{Rho: 983.2, Mu: 0.467e-3, K: 0.654, Cp: 4185},
	{Rho: 977.7, Mu: 0.404e-3, K: 0.663, Cp: 4190},
	{Rho: 971.6, Mu: 0.355e-3, K: 0.670, Cp: 4196},
	{Rho: 965.3, Mu: 0.315e-3, K: 0.675, Cp: 4205},
	{Rho: 958.1, Mu: 0.282e-3, K: 0.679, Cp: 4216},
}

// waterCompressibilityPerBar is the fractional density increase per bar of
// gauge pressure above 1 bar, used to give the table's pressure axis a
// physically faithful (if small) effect.
const waterCompressibilityPerBar = 4.4e-5

func waterNodeAt(iT, iP int) WaterProperties {
	base := waterBase[iT]
	pBar := waterPGrid[iP]
	base.Rho = base.Rho * (1 + waterCompressibilityPerBar*(pBar-1))
	return base
}

// GetWaterProperties returns the interpolated liquid-water properties at
// temperature T [°C] and absolute pressure P [bar]. T must be in [0,100]
// and P in [1,10]; otherwise ErrOutOfRange is returned. Interpolation is
// linear in T then linear in P (bilinear); an exact grid node on both axes
// returns the stored value without interpolation.
func GetWaterProperties(T, P float64) (WaterProperties, error) {
	if !numeric.Finite(T, P) {
		return WaterProperties{}, therr.InvalidInputf("water properties: T=%v P=%v must be finite", T, P)
	}

	loT, hiT, exactT, okT := numeric.Bracket(waterTGrid, T)
	if !okT {
		return WaterProperties{}, therr.OutOfRangef("water temperature %.4g C outside tabulated domain [%.4g,%.4g]", T, waterTGrid[0], waterTGrid[len(waterTGrid)-1])
	}
	loP, hiP, exactP, okP := numeric.Bracket(waterPGrid, P)
	if !okP {
		return WaterProperties{}, therr.OutOfRangef("water pressure %.4g bar outside tabulated domain [%.4g,%.4g]", P, waterPGrid[0], waterPGrid[len(waterPGrid)-1])
	}

	if exactT && exactP {
		return waterNodeAt(loT, loP), nil
	}

	// Interpolate in T at each bounding pressure column, then in P.
	atLoP := interpolateWaterT(loT, hiT, exactT, T, loP)
	if exactP {
		return atLoP, nil
	}
	atHiP := interpolateWaterT(loT, hiT, exactT, T, hiP)

	return WaterProperties{
		Rho: numeric.Lerp(P, waterPGrid[loP], atLoP.Rho, waterPGrid[hiP], atHiP.Rho),
		Mu:  numeric.Lerp(P, waterPGrid[loP], atLoP.Mu, waterPGrid[hiP], atHiP.Mu),
		K:   numeric.Lerp(P, waterPGrid[loP], atLoP.K, waterPGrid[hiP], atHiP.K),
		Cp:  numeric.Lerp(P, waterPGrid[loP], atLoP.Cp, waterPGrid[hiP], atHiP.Cp),
	}, nil
}

func interpolateWaterT(loT, hiT int, exactT bool, T float64, iP int) WaterProperties {
	if exactT {
		return waterNodeAt(loT, iP)
	}
	lo := waterNodeAt(loT, iP)
	hi := waterNodeAt(hiT, iP)
	return WaterProperties{
		Rho: numeric.Lerp(T, waterTGrid[loT], lo.Rho, waterTGrid[hiT], hi.Rho),
		Mu:  numeric.Lerp(T, waterTGrid[loT], lo.Mu, waterTGrid[hiT], hi.Mu),
		K:   numeric.Lerp(T, waterTGrid[loT], lo.K, waterTGrid[hiT], hi.K),
		Cp:  numeric.Lerp(T, waterTGrid[loT], lo.Cp, waterTGrid[hiT], hi.Cp),
	}
}
