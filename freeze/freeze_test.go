package freeze

import (
	"errors"
	"math"
	"testing"

	"github.com/perrongu/thermaflow/therr"
)

func TestAnalyzeFreezeCase(t *testing.T) {
	temps := []float64{60, 40, 20, 10, 0, -5, -10}
	positions := []float64{0, 10, 20, 30, 40, 50, 60}

	a, err := Analyze(temps, positions, DefaultFreezeTempC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.FreezeDetected {
		t.Fatal("want freeze detected")
	}
	if a.FreezePosition == nil {
		t.Fatal("want a freeze position")
	}
	if *a.FreezePosition < 30 || *a.FreezePosition > 40 {
		t.Errorf("want freeze position in [30,40]; got %f", *a.FreezePosition)
	}
	if a.MinTemp != -10 {
		t.Errorf("want minTemp -10; got %f", a.MinTemp)
	}
	if a.Severity != SeverityCritical {
		t.Errorf("want critical severity; got %v", a.Severity)
	}
	if a.Verdict != VerdictFreezeDetected {
		t.Errorf("want FREEZE_DETECTED; got %v", a.Verdict)
	}
}

func TestAnalyzeLinearCrossing(t *testing.T) {
	temps := []float64{10, 5, 0, -5}
	positions := []float64{0, 50, 100, 150}

	a, err := Analyze(temps, positions, DefaultFreezeTempC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.FreezePosition == nil {
		t.Fatal("want a freeze position")
	}
	if math.Abs(*a.FreezePosition-100) > 1 {
		t.Errorf("want freeze position ~100; got %f", *a.FreezePosition)
	}
}

func TestAnalyzeNoFreeze(t *testing.T) {
	temps := []float64{60, 55, 50, 45}
	positions := []float64{0, 10, 20, 30}

	a, err := Analyze(temps, positions, DefaultFreezeTempC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.FreezeDetected {
		t.Error("want no freeze detected")
	}
	if a.FreezePosition != nil {
		t.Error("want nil freeze position when no freeze detected")
	}
	if a.Verdict != VerdictNoFreeze {
		t.Errorf("want NO_FREEZE; got %v", a.Verdict)
	}
}

func TestAnalyzeWarningSeverity(t *testing.T) {
	temps := []float64{60, 10, 3, 10}
	positions := []float64{0, 10, 20, 30}

	a, err := Analyze(temps, positions, DefaultFreezeTempC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Severity != SeverityWarning {
		t.Errorf("want warning severity; got %v", a.Severity)
	}
}

func TestAnalyzeRejectsMismatchedLengths(t *testing.T) {
	_, err := Analyze([]float64{1, 2}, []float64{0}, DefaultFreezeTempC)
	if !errors.Is(err, therr.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput; got %v", err)
	}
}

func TestAnalyzeRejectsNonIncreasingX(t *testing.T) {
	_, err := Analyze([]float64{1, 2}, []float64{5, 3}, DefaultFreezeTempC)
	if !errors.Is(err, therr.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput; got %v", err)
	}
}

func TestAnalyzeDegeneratePairUsesStart(t *testing.T) {
	temps := []float64{1e-11, -1e-11}
	positions := []float64{0, 10}

	a, err := Analyze(temps, positions, DefaultFreezeTempC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.FreezePosition == nil {
		t.Fatal("want a freeze position")
	}
	if *a.FreezePosition != 0 {
		t.Errorf("want degenerate interval to resolve to the interval start; got %f", *a.FreezePosition)
	}
}
