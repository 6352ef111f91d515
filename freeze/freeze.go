// Package freeze implements the minimum-temperature scan, interpolated
// freeze-position lookup and severity classification used to assess
// freeze risk along a solved temperature profile.
package freeze

import (
	"math"

	"github.com/perrongu/thermaflow/internal/numeric"
	"github.com/perrongu/thermaflow/therr"
)

// DefaultFreezeTempC is the freezing isotherm used when the caller
// does not supply one.
const DefaultFreezeTempC = 0.0

// SafetyMarginTempC is the temperature above which minTemp is
// considered safely clear of freezing.
const SafetyMarginTempC = 5.0

// Severity classifies how close the profile came to freezing.
type Severity string

const (
	SeverityOK       Severity = "ok"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Verdict is the headline freeze/no-freeze call.
type Verdict string

const (
	VerdictNoFreeze       Verdict = "NO_FREEZE"
	VerdictFreezeDetected Verdict = "FREEZE_DETECTED"
)

// Analysis is the outcome of analyzing a temperature profile.
type Analysis struct {
	FreezeDetected   bool
	FreezePosition   *float64
	MinTemp          float64
	MinTempPosition  float64
	MarginToFreeze   float64
	MarginToSafety   float64
	Severity         Severity
	Verdict          Verdict
}

// degenerateSlope is the per-interval temperature-delta floor below
// which the crossing interpolation is considered numerically
// degenerate and the interval's start position is used instead.
const degenerateSlope = 1e-10

// Analyze scans a longitudinal temperature profile T(x) and locates
// the crossing of freezeTempC by linear interpolation between the
// first bracketing pair of samples. T and x must be equal length and
// x strictly increasing.
func Analyze(t, x []float64, freezeTempC float64) (Analysis, error) {
	if len(t) != len(x) {
		return Analysis{}, therr.InvalidInputf("freeze: T and x must have equal length (len(T)=%d len(x)=%d)", len(t), len(x))
	}
	if len(t) == 0 {
		return Analysis{}, therr.InvalidInputf("freeze: T and x must be non-empty")
	}
	if !numeric.Finite(t...) || !numeric.Finite(x...) {
		return Analysis{}, therr.InvalidInputf("freeze: T and x must be finite")
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return Analysis{}, therr.InvalidInputf("freeze: x must be strictly increasing (x[%d]=%v x[%d]=%v)", i-1, x[i-1], i, x[i])
		}
	}

	minTemp := t[0]
	minIndex := 0
	for i, v := range t {
		if v < minTemp {
			minTemp = v
			minIndex = i
		}
	}
	minTempPosition := x[minIndex]

	freezeDetected := minTemp <= freezeTempC

	var freezePosition *float64
	if freezeDetected {
		pos := findCrossing(t, x, freezeTempC)
		if pos == nil {
			fallback := minTempPosition
			pos = &fallback
		}
		freezePosition = pos
	}

	marginToFreeze := minTemp - freezeTempC
	marginToSafety := minTemp - SafetyMarginTempC

	severity := SeverityOK
	switch {
	case minTemp <= freezeTempC:
		severity = SeverityCritical
	case minTemp < SafetyMarginTempC:
		severity = SeverityWarning
	}

	verdict := VerdictNoFreeze
	if freezeDetected {
		verdict = VerdictFreezeDetected
	}

	return Analysis{
		FreezeDetected:  freezeDetected,
		FreezePosition:  freezePosition,
		MinTemp:         minTemp,
		MinTempPosition: minTempPosition,
		MarginToFreeze:  marginToFreeze,
		MarginToSafety:  marginToSafety,
		Severity:        severity,
		Verdict:         verdict,
	}, nil
}

// findCrossing scans for the first interval [i,i+1] where T brackets
// freezeTempC (opposite signs, or an exact touch) and returns the
// linearly interpolated crossing position. Returns nil if no interval
// brackets the threshold.
func findCrossing(t, x []float64, freezeTempC float64) *float64 {
	for i := 0; i < len(t)-1; i++ {
		d0 := t[i] - freezeTempC
		d1 := t[i+1] - freezeTempC
		if d0 == 0 {
			pos := x[i]
			return &pos
		}
		if (d0 > 0) == (d1 > 0) {
			continue
		}
		if math.Abs(t[i+1]-t[i]) < degenerateSlope {
			pos := x[i]
			return &pos
		}
		pos := numeric.Lerp(freezeTempC, t[i], x[i], t[i+1], x[i+1])
		return &pos
	}
	return nil
}
