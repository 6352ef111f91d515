package heattransfer

import (
	"math"

	"github.com/perrongu/thermaflow/internal/numeric"
	"github.com/perrongu/thermaflow/therr"
)

// WindForcedThreshold is the wind speed above which external convection
// over the pipe is treated as forced rather than natural.
const WindForcedThreshold = 0.1

// GravityAccel is the standard gravitational acceleration used in the
// Rayleigh number.
const GravityAccel = 9.81

// ChurchillBernstein applies the Churchill-Bernstein correlation for
// forced convection from a horizontal cylinder in cross-flow:
//
//	Nu = 0.3 + (0.62*Re^0.5*Pr^(1/3)) / [1+(0.4/Pr)^(2/3)]^0.25 *
//	     [1 + (Re/282000)^(5/8)]^(4/5)
func ChurchillBernstein(re, pr float64) (float64, error) {
	if !numeric.Finite(re, pr) {
		return 0, therr.InvalidInputf("churchill-bernstein: inputs must be finite (re=%v pr=%v)", re, pr)
	}
	if re <= 0 || pr <= 0 {
		return 0, therr.InvalidInputf("churchill-bernstein: re and pr must be positive (re=%v pr=%v)", re, pr)
	}

	base := 1 + math.Pow(0.4/pr, 2.0/3)
	main := 0.62 * math.Sqrt(re) * math.Cbrt(pr) / math.Pow(base, 0.25)
	tail := math.Pow(1+math.Pow(re/282000, 5.0/8), 4.0/5)
	return 0.3 + main*tail, nil
}

// RayleighNumber computes Ra = g*beta*deltaT*D^3/(nu*alpha), with beta
// the volumetric thermal expansion coefficient [1/K] (1/T_film for an
// ideal gas), deltaT the absolute surface-to-ambient temperature
// difference [K], nu the kinematic viscosity [m2/s] and alpha the
// thermal diffusivity [m2/s].
func RayleighNumber(beta, deltaT, d, nu, alpha float64) (float64, error) {
	if !numeric.Finite(beta, deltaT, d, nu, alpha) {
		return 0, therr.InvalidInputf("rayleigh: inputs must be finite (beta=%v dT=%v d=%v nu=%v alpha=%v)", beta, deltaT, d, nu, alpha)
	}
	if beta <= 0 || d <= 0 || nu <= 0 || alpha <= 0 {
		return 0, therr.InvalidInputf("rayleigh: beta, d, nu and alpha must be positive (beta=%v d=%v nu=%v alpha=%v)", beta, d, nu, alpha)
	}
	if deltaT < 0 {
		return 0, therr.InvalidInputf("rayleigh: deltaT must be non-negative (dT=%v)", deltaT)
	}
	return GravityAccel * beta * deltaT * d * d * d / (nu * alpha), nil
}

// ChurchillChu applies the Churchill-Chu correlation for natural
// convection from a long horizontal cylinder:
//
//	Nu = (0.60 + 0.387*Ra^(1/6) / [1+(0.559/Pr)^(9/16)]^(8/27))^2
func ChurchillChu(ra, pr float64) (float64, error) {
	if !numeric.Finite(ra, pr) {
		return 0, therr.InvalidInputf("churchill-chu: inputs must be finite (ra=%v pr=%v)", ra, pr)
	}
	if ra < 0 || pr <= 0 {
		return 0, therr.InvalidInputf("churchill-chu: ra must be non-negative and pr positive (ra=%v pr=%v)", ra, pr)
	}

	denom := math.Pow(1+math.Pow(0.559/pr, 9.0/16), 8.0/27)
	inner := 0.60 + 0.387*math.Pow(ra, 1.0/6)/denom
	return inner * inner, nil
}

// ExternalConvection computes the external wall-to-air convective
// coefficient h_conv_ext [W/(m2*K)] over a horizontal cylinder of outer
// diameter d, dispatching on wind speed: forced convection
// (Churchill-Bernstein) above WindForcedThreshold, natural convection
// (Rayleigh/Churchill-Chu) at or below it.
func ExternalConvection(windSpeed, d, tSurfC, tAmbC, airRho, airMu, airK, airCp, airPr float64) (float64, error) {
	if !numeric.Finite(windSpeed, d, tSurfC, tAmbC, airRho, airMu, airK, airCp, airPr) {
		return 0, therr.InvalidInputf("external convection: inputs must be finite")
	}
	if windSpeed < 0 || d <= 0 || airRho <= 0 || airMu <= 0 || airK <= 0 || airCp <= 0 || airPr <= 0 {
		return 0, therr.InvalidInputf("external convection: windSpeed must be non-negative and d/airRho/airMu/airK/airCp/airPr must be positive")
	}

	if windSpeed > WindForcedThreshold {
		re, err := reynoldsAir(airRho, windSpeed, d, airMu)
		if err != nil {
			return 0, err
		}
		nu, err := ChurchillBernstein(re, airPr)
		if err != nil {
			return 0, err
		}
		return nu * airK / d, nil
	}

	tFilmK := (tSurfC+tAmbC)/2 + KelvinOffset
	beta := 1 / tFilmK
	deltaT := math.Abs(tSurfC - tAmbC)
	nu := airMu / airRho
	alpha := airK / (airRho * airCp)

	ra, err := RayleighNumber(beta, deltaT, d, nu, alpha)
	if err != nil {
		return 0, err
	}
	nuNum, err := ChurchillChu(ra, airPr)
	if err != nil {
		return 0, err
	}
	return nuNum * airK / d, nil
}

func reynoldsAir(rho, v, d, mu float64) (float64, error) {
	if rho <= 0 || d <= 0 || mu <= 0 {
		return 0, therr.InvalidInputf("external convection: invalid air properties (rho=%v d=%v mu=%v)", rho, d, mu)
	}
	return rho * v * d / mu, nil
}
