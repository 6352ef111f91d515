package hydraulics

import (
	"errors"
	"math"
	"testing"

	"github.com/perrongu/thermaflow/observe"
	"github.com/perrongu/thermaflow/therr"
)

func TestClassifyRegimeThresholds(t *testing.T) {
	tests := []struct {
		re   float64
		want Regime
	}{
		{2299, Laminar},
		{2300, Transitional},
		{4000, Transitional},
		{4001, Turbulent},
	}

	for _, tt := range tests {
		if got := ClassifyRegime(tt.re); got != tt.want {
			t.Errorf("ClassifyRegime(%v) = %v; want %v", tt.re, got, tt.want)
		}
	}
}

func TestReynolds(t *testing.T) {
	re, err := Reynolds(1000, 1.5, 0.05, 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1000 * 1.5 * 0.05 / 1e-3
	if re != want {
		t.Errorf("want %f; got %f", want, re)
	}
}

func TestReynoldsRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name           string
		rho, v, d, mu  float64
	}{
		{"zero rho", 0, 1, 0.05, 1e-3},
		{"negative d", 1000, 1, -0.05, 1e-3},
		{"zero mu", 1000, 1, 0.05, 0},
		{"negative v", 1000, -1, 0.05, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reynolds(tt.rho, tt.v, tt.d, tt.mu)
			if !errors.Is(err, therr.ErrInvalidInput) {
				t.Errorf("want ErrInvalidInput; got %v", err)
			}
		})
	}
}

func TestVelocityFromMassFlow(t *testing.T) {
	v, err := VelocityFromMassFlow(2.0, 1000, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	area := math.Pi * 0.05 * 0.05 / 4
	want := 2.0 / (1000 * area)
	if math.Abs(v-want) > 1e-9 {
		t.Errorf("want %f; got %f", want, v)
	}
}

func TestFrictionFactorLaminar(t *testing.T) {
	f, err := FrictionFactor(1000, 0.001, Churchill, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 64.0 / 1000
	if f != want {
		t.Errorf("want %f; got %f", want, f)
	}
}

func TestFrictionFactorContinuityAtLaminarBoundary(t *testing.T) {
	f1, err := FrictionFactor(2299, 0.0001, Churchill, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f2, err := FrictionFactor(2301, 0.0001, Churchill, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	relDiff := math.Abs(f1-f2) / f1
	if relDiff >= 0.05 {
		t.Errorf("want relative discontinuity < 5%%; got %f%%", relDiff*100)
	}
}

func TestFrictionFactorContinuityAtTurbulentBoundary(t *testing.T) {
	f1, err := FrictionFactor(3999, 0.0001, Churchill, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f2, err := FrictionFactor(4001, 0.0001, Churchill, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	relDiff := math.Abs(f1-f2) / f1
	if relDiff >= 0.05 {
		t.Errorf("want relative discontinuity < 5%%; got %f%%", relDiff*100)
	}
}

func TestFrictionFactorTransitionalEmitsWarning(t *testing.T) {
	var warned bool
	sink := warnRecorder(func(string, ...any) { warned = true })

	_, err := FrictionFactor(3000, 0.0001, Churchill, sink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !warned {
		t.Error("want a warning to be emitted for the transitional zone")
	}
}

func TestFrictionFactorColebrookAgreesWithChurchill(t *testing.T) {
	fChurchill, err := FrictionFactor(100000, 0.0002, Churchill, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fColebrook, err := FrictionFactor(100000, 0.0002, ColebrookWhite, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	relDiff := math.Abs(fChurchill-fColebrook) / fChurchill
	if relDiff > 0.02 {
		t.Errorf("want Churchill and Colebrook-White within 2%% of each other; got %f%% (churchill=%f, colebrook=%f)", relDiff*100, fChurchill, fColebrook)
	}
}

func TestFrictionFactorRejectsInvalid(t *testing.T) {
	_, err := FrictionFactor(-1, 0.0001, Churchill, nil)
	if !errors.Is(err, therr.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput; got %v", err)
	}
}

func TestPressureDropDarcy(t *testing.T) {
	dp, err := PressureDropDarcy(0.02, 100, 0.05, 1000, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 0.02 * (100 / 0.05) * (1000 * 1.5 * 1.5 / 2)
	if dp != want {
		t.Errorf("want %f; got %f", want, dp)
	}
}

func TestPressureDropDarcyRejectsInvalid(t *testing.T) {
	_, err := PressureDropDarcy(0.02, 100, 0, 1000, 1.5)
	if !errors.Is(err, therr.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput for zero diameter; got %v", err)
	}
}

// warnRecorder adapts a plain func into an observe.Sink for tests.
type warnRecorder func(string, ...any)

func (w warnRecorder) Warnf(format string, args ...any) { w(format, args...) }

var _ observe.Sink = warnRecorder(nil)
