// Package heattransfer implements the Nusselt correlations, radiation
// linearization, cylindrical resistance composition and NTU-epsilon
// outlet model used to turn a flow regime and a set of fluid/surface
// properties into a heat-transfer coefficient. Every exported function
// takes plain floating-point arguments rather than domain types, so it
// has no dependency on properties and uses hydraulics only for regime
// classification; segment.Solve is what glues property lookups and
// correlation selection together.
package heattransfer

import (
	"math"

	"github.com/perrongu/thermaflow/hydraulics"
	"github.com/perrongu/thermaflow/internal/numeric"
	"github.com/perrongu/thermaflow/observe"
	"github.com/perrongu/thermaflow/therr"
)

// NusseltLaminarIsothermal is the fully-developed laminar Nusselt number
// for a constant wall-temperature boundary condition.
const NusseltLaminarIsothermal = 3.66

// NusseltLaminarUniformFlux is the fully-developed laminar Nusselt number
// for a uniform wall heat-flux boundary condition.
const NusseltLaminarUniformFlux = 4.36

// NusseltHausen applies the Hausen correlation for laminar flow with
// thermal entrance effects:
//
//	Nu = 3.66 + (0.0668*(D/L)*Re*Pr) / (1 + 0.04*[(D/L)*Re*Pr]^(2/3))
//
// Valid for Pr>=0.6; pr<0.6 still computes but emits a warning.
func NusseltHausen(re, pr, d, length float64, sink observe.Sink) (float64, error) {
	if !numeric.Finite(re, pr, d, length) {
		return 0, therr.InvalidInputf("hausen: inputs must be finite (re=%v pr=%v d=%v l=%v)", re, pr, d, length)
	}
	if re <= 0 || pr <= 0 || d <= 0 || length <= 0 {
		return 0, therr.InvalidInputf("hausen: re, pr, d and l must be positive (re=%v pr=%v d=%v l=%v)", re, pr, d, length)
	}
	sink = orDiscard(sink)
	if pr < 0.6 {
		sink.Warnf("hausen correlation used with Pr=%.3g below its validity floor of 0.6", pr)
	}

	x := (d / length) * re * pr
	return NusseltLaminarIsothermal + (0.0668*x)/(1+0.04*math.Pow(x, 2.0/3)), nil
}

// NusseltDittusBoelter applies the Dittus-Boelter correlation for
// turbulent flow: Nu = 0.023*Re^0.8*Pr^n, n=0.4 when the fluid is being
// heated, 0.3 when cooled. Valid for Re>10000 and 0.7<=Pr<=160; values
// outside that envelope still compute but emit a warning.
func NusseltDittusBoelter(re, pr float64, heating bool, sink observe.Sink) (float64, error) {
	if !numeric.Finite(re, pr) {
		return 0, therr.InvalidInputf("dittus-boelter: inputs must be finite (re=%v pr=%v)", re, pr)
	}
	if re <= 0 || pr <= 0 {
		return 0, therr.InvalidInputf("dittus-boelter: re and pr must be positive (re=%v pr=%v)", re, pr)
	}
	sink = orDiscard(sink)
	if re <= 10000 {
		sink.Warnf("dittus-boelter correlation used with Re=%.0f at or below its validity floor of 10000", re)
	}
	if pr < 0.7 || pr > 160 {
		sink.Warnf("dittus-boelter correlation used with Pr=%.3g outside its validity range [0.7,160]", pr)
	}

	n := 0.3
	if heating {
		n = 0.4
	}
	return 0.023 * math.Pow(re, 0.8) * math.Pow(pr, n), nil
}

// petukhovFriction returns the Petukhov smooth-pipe friction factor used
// as the Gnielinski fallback when no measured/computed f is supplied.
func petukhovFriction(re float64) float64 {
	d := 0.790*math.Log(re) - 1.64
	return 1 / (d * d)
}

// NusseltGnielinski applies the Gnielinski correlation for turbulent
// flow:
//
//	Nu = (f/8)(Re-1000)Pr / [1 + 12.7*(f/8)^0.5*(Pr^(2/3)-1)]
//
// Valid for 3000<Re<5e6 and 0.5<=Pr<=2000. f SHOULD be supplied by the
// caller (the Darcy friction factor already computed for the segment);
// if f is nil, the Petukhov smooth-pipe estimate is used instead and a
// warning is emitted, since the omission biases Nu low for rough pipes.
func NusseltGnielinski(re, pr float64, f *float64, sink observe.Sink) (float64, error) {
	if !numeric.Finite(re, pr) {
		return 0, therr.InvalidInputf("gnielinski: inputs must be finite (re=%v pr=%v)", re, pr)
	}
	if re <= 0 || pr <= 0 {
		return 0, therr.InvalidInputf("gnielinski: re and pr must be positive (re=%v pr=%v)", re, pr)
	}
	sink = orDiscard(sink)

	fVal := 0.0
	if f == nil {
		fVal = petukhovFriction(re)
		sink.Warnf("gnielinski correlation called without a friction factor at Re=%.0f; falling back to petukhov smooth-pipe estimate, which biases Nu low for rough pipes", re)
	} else {
		fVal = *f
		if fVal <= 0 || !numeric.Finite(fVal) {
			return 0, therr.InvalidInputf("gnielinski: supplied friction factor must be positive and finite (f=%v)", fVal)
		}
	}

	if re <= 3000 || re >= 5e6 {
		sink.Warnf("gnielinski correlation used with Re=%.0f outside its validity range (3000,5e6)", re)
	}
	if pr < 0.5 || pr > 2000 {
		sink.Warnf("gnielinski correlation used with Pr=%.3g outside its validity range [0.5,2000]", pr)
	}

	f8 := fVal / 8
	num := f8 * (re - 1000) * pr
	den := 1 + 12.7*math.Sqrt(f8)*(math.Pow(pr, 2.0/3)-1)
	return num / den, nil
}

// InternalNusseltAuto selects and evaluates the internal forced-
// convection correlation for a segment by flow regime: laminar uses
// Hausen (falling back implicitly to the isothermal constant when the
// entrance-effect term is degenerate), turbulent uses Gnielinski, and
// the transitional band linearly
// interpolates between the two boundary correlations, emitting a warning
// for the physical uncertainty (mirroring hydraulics.FrictionFactor's
// transitional handling).
func InternalNusseltAuto(re, pr, d, length float64, f *float64, heating bool, sink observe.Sink) (float64, error) {
	sink = orDiscard(sink)

	laminarAt := func(reL float64) (float64, error) {
		return NusseltHausen(reL, pr, d, length, sink)
	}
	turbulentAt := func(reT float64) (float64, error) {
		return NusseltGnielinski(reT, pr, f, sink)
	}

	switch hydraulics.ClassifyRegime(re) {
	case hydraulics.Laminar:
		return laminarAt(re)
	case hydraulics.Turbulent:
		return turbulentAt(re)
	default:
		sink.Warnf("Re=%.0f is in the transitional zone [%.0f,%.0f]; Nusselt number is linearly interpolated and carries physical uncertainty", re, hydraulics.ReLaminarMax, hydraulics.ReTurbulentMin)
		nuLo, err := laminarAt(hydraulics.ReLaminarMax)
		if err != nil {
			return 0, err
		}
		nuHi, err := turbulentAt(hydraulics.ReTurbulentMin)
		if err != nil {
			return 0, err
		}
		return numeric.Lerp(re, hydraulics.ReLaminarMax, nuLo, hydraulics.ReTurbulentMin, nuHi), nil
	}
}

func orDiscard(sink observe.Sink) observe.Sink {
	if sink == nil {
		return observe.Discard
	}
	return sink
}
