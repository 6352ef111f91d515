package unitconv

import (
	"math"
	"testing"
)

const relTolerance = 2e-4

func withinRel(a, b, tol float64) bool {
	if a == 0 && b == 0 {
		return true
	}
	return math.Abs(a-b)/math.Max(math.Abs(a), math.Abs(b)) <= tol
}

func TestFlowRoundTrip(t *testing.T) {
	tests := []float64{0.1, 1.0, 12.5, 100.0, 3600.0}

	for _, v := range tests {
		usgpm := CubicMetresPerHourToUSGPM(v)
		back := USGPMToCubicMetresPerHour(usgpm)
		if !withinRel(v, back, relTolerance) {
			t.Errorf("m3/h=%f: round trip got %f, want within %.4g%% of original", v, back, relTolerance*100)
		}
	}
}

func TestPressureRoundTrip(t *testing.T) {
	tests := []float64{0.5, 1.0, 101.325, 1000.0, 10000.0}

	for _, v := range tests {
		psi := KPaToPSI(v)
		back := PSIToKPa(psi)
		if !withinRel(v, back, relTolerance) {
			t.Errorf("kPa=%f: round trip got %f, want within %.4g%% of original", v, back, relTolerance*100)
		}
	}
}

func TestKnownConversions(t *testing.T) {
	// 1 bar = 100 kPa = 14.5037738 psi.
	got := KPaToPSI(100.0)
	want := 14.5037738
	if !withinRel(got, want, 1e-9) {
		t.Errorf("KPaToPSI(100) = %f, want %f", got, want)
	}
}
