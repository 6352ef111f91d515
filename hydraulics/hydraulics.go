// Package hydraulics implements Reynolds/flow-regime classification and
// friction-factor correlations: laminar, Colebrook-White and Churchill,
// plus the Darcy-Weisbach pressure drop.
package hydraulics

import (
	"math"

	"github.com/perrongu/thermaflow/internal/numeric"
	"github.com/perrongu/thermaflow/observe"
	"github.com/perrongu/thermaflow/therr"
)

// Flow-regime thresholds. These are fixed constants shared by every
// caller; no other component may redefine them.
const (
	ReLaminarMax   = 2300.0
	ReTurbulentMin = 4000.0
)

// Regime tags the flow classification of a segment.
type Regime string

const (
	Laminar      Regime = "laminar"
	Transitional Regime = "transitional"
	Turbulent    Regime = "turbulent"
	Frozen       Regime = "frozen"
)

// ClassifyRegime returns the flow regime for a Reynolds number: laminar
// below ReLaminarMax, turbulent above ReTurbulentMin, transitional
// (inclusive) between the two.
func ClassifyRegime(re float64) Regime {
	switch {
	case re < ReLaminarMax:
		return Laminar
	case re > ReTurbulentMin:
		return Turbulent
	default:
		return Transitional
	}
}

// Reynolds computes the Reynolds number Re = rho*V*D/mu. V is accepted at
// zero (a stationary fluid); all other inputs must be positive.
func Reynolds(rho, v, d, mu float64) (float64, error) {
	if !numeric.Finite(rho, v, d, mu) {
		return 0, therr.InvalidInputf("reynolds: inputs must be finite (rho=%v v=%v d=%v mu=%v)", rho, v, d, mu)
	}
	if rho <= 0 || d <= 0 || mu <= 0 {
		return 0, therr.InvalidInputf("reynolds: rho, d and mu must be positive (rho=%v d=%v mu=%v)", rho, d, mu)
	}
	if v < 0 {
		return 0, therr.InvalidInputf("reynolds: v must be non-negative (v=%v)", v)
	}
	return rho * v * d / mu, nil
}

// VelocityFromMassFlow returns the mean flow velocity for a given mass
// flow rate through a circular pipe of diameter d: V = mdot/(rho*pi*D^2/4).
func VelocityFromMassFlow(mdot, rho, d float64) (float64, error) {
	if !numeric.Finite(mdot, rho, d) {
		return 0, therr.InvalidInputf("velocity: inputs must be finite (mdot=%v rho=%v d=%v)", mdot, rho, d)
	}
	if mdot <= 0 || rho <= 0 || d <= 0 {
		return 0, therr.InvalidInputf("velocity: mdot, rho and d must be positive (mdot=%v rho=%v d=%v)", mdot, rho, d)
	}
	area := math.Pi * d * d / 4
	return mdot / (rho * area), nil
}

// Method selects the turbulent friction-factor correlation.
type Method int

const (
	// Churchill is the default explicit turbulent correlation.
	Churchill Method = iota
	// ColebrookWhite is an iterative fixed-point alternative.
	ColebrookWhite
)

// frictionLaminar implements f = 64/Re for Re<ReLaminarMax.
func frictionLaminar(re float64) float64 {
	return 64.0 / re
}

// frictionChurchill implements the explicit Churchill (1977) correlation,
// valid across the full turbulent range without iteration.
func frictionChurchill(re, relRough float64) float64 {
	A := math.Pow(2.457*math.Log(1/(math.Pow(7/re, 0.9)+0.27*relRough)), 16)
	B := math.Pow(37530/re, 16)
	return 8 * math.Pow(math.Pow(8/re, 12)+1/math.Pow(A+B, 1.5), 1.0/12)
}

// colebrookIterations is the fixed iteration cap for Colebrook-White.
const colebrookIterations = 30

// colebrookTolerance is the fixed-point convergence tolerance.
const colebrookTolerance = 1e-6

// frictionColebrook solves the implicit Colebrook-White equation by
// fixed-point iteration, seeded from the Churchill estimate. If it fails
// to converge within colebrookIterations, it returns the last iterate
// with converged=false; the caller decides on the Churchill fallback.
func frictionColebrook(re, relRough float64) (f float64, converged bool) {
	f = frictionChurchill(re, relRough)
	for i := 0; i < colebrookIterations; i++ {
		rhs := -2.0 * math.Log10(relRough/3.7+2.51/(re*math.Sqrt(f)))
		next := 1 / (rhs * rhs)
		if math.Abs(next-f) < colebrookTolerance {
			return next, true
		}
		f = next
	}
	return f, false
}

// FrictionFactor computes the Darcy friction factor for the given
// Reynolds number and relative roughness (epsilon/D), dispatching on
// flow regime:
//   - laminar (Re<2300):      f = 64/Re
//   - transitional:           linear interpolation between f(2300) from
//     the laminar formula and f(4000) from the requested turbulent
//     method, emitting a warning on sink for the physical uncertainty
//   - turbulent (Re>4000):    Churchill by default, or Colebrook-White
//     (iterative) if method==ColebrookWhite; Colebrook non-convergence
//     falls back to Churchill and is reported on sink. Churchill is a
//     closed-form expression, so no ErrNumericFailure is returned.
func FrictionFactor(re, relRough float64, method Method, sink observe.Sink) (float64, error) {
	if !numeric.Finite(re, relRough) {
		return 0, therr.InvalidInputf("friction factor: inputs must be finite (re=%v relRough=%v)", re, relRough)
	}
	if re <= 0 {
		return 0, therr.InvalidInputf("friction factor: Re must be positive (re=%v)", re)
	}
	if relRough < 0 {
		return 0, therr.InvalidInputf("friction factor: epsilon/D must be non-negative (relRough=%v)", relRough)
	}
	if sink == nil {
		sink = observe.Discard
	}

	turbulentF := func(reT float64) float64 {
		if method == ColebrookWhite {
			f, converged := frictionColebrook(reT, relRough)
			if !converged {
				sink.Warnf("colebrook-white did not converge within %d iterations at Re=%.0f; falling back to churchill", colebrookIterations, reT)
				return frictionChurchill(reT, relRough)
			}
			return f
		}
		return frictionChurchill(reT, relRough)
	}

	regime := ClassifyRegime(re)
	switch regime {
	case Laminar:
		return frictionLaminar(re), nil
	case Turbulent:
		return turbulentF(re), nil
	default: // Transitional
		sink.Warnf("Re=%.0f is in the transitional zone [%.0f,%.0f]; friction factor is linearly interpolated and carries physical uncertainty", re, ReLaminarMax, ReTurbulentMin)
		fLo := frictionLaminar(ReLaminarMax)
		fHi := turbulentF(ReTurbulentMin)
		return numeric.Lerp(re, ReLaminarMax, fLo, ReTurbulentMin, fHi), nil
	}
}

// PressureDropDarcy computes the Darcy-Weisbach pressure drop
// dP = f*(L/D)*(rho*V^2/2) over a pipe run of length L and diameter D.
func PressureDropDarcy(f, length, d, rho, v float64) (float64, error) {
	if !numeric.Finite(f, length, d, rho, v) {
		return 0, therr.InvalidInputf("pressure drop: inputs must be finite (f=%v L=%v D=%v rho=%v v=%v)", f, length, d, rho, v)
	}
	if d <= 0 {
		return 0, therr.InvalidInputf("pressure drop: D must be positive (d=%v)", d)
	}
	if f < 0 || length < 0 || rho < 0 || v < 0 {
		return 0, therr.InvalidInputf("pressure drop: f, L, rho and V must be non-negative (f=%v L=%v rho=%v v=%v)", f, length, rho, v)
	}
	return f * (length / d) * (rho * v * v / 2), nil
}
