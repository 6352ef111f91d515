package heattransfer

import (
	"errors"
	"testing"

	"github.com/perrongu/thermaflow/therr"
)

func TestChurchillBernsteinPositive(t *testing.T) {
	nu, err := ChurchillBernstein(5000, 0.71)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nu <= 0.3 {
		t.Errorf("want Nu above the correlation floor 0.3; got %f", nu)
	}
}

func TestChurchillBernsteinRejectsInvalid(t *testing.T) {
	_, err := ChurchillBernstein(-1, 0.71)
	if !errors.Is(err, therr.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput; got %v", err)
	}
}

func TestRayleighNumberScalesWithDeltaT(t *testing.T) {
	raSmall, err := RayleighNumber(1.0/300, 5, 0.1, 1.5e-5, 2.1e-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raLarge, err := RayleighNumber(1.0/300, 50, 0.1, 1.5e-5, 2.1e-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raLarge <= raSmall {
		t.Errorf("want Ra to increase with deltaT; small=%f large=%f", raSmall, raLarge)
	}
}

func TestRayleighNumberRejectsInvalid(t *testing.T) {
	_, err := RayleighNumber(0, 5, 0.1, 1.5e-5, 2.1e-5)
	if !errors.Is(err, therr.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput for zero beta; got %v", err)
	}
}

func TestChurchillChuPositive(t *testing.T) {
	nu, err := ChurchillChu(1e6, 0.71)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nu <= 0.36 {
		t.Errorf("want Nu above the correlation floor 0.36; got %f", nu)
	}
}

func TestExternalConvectionForcedVsNatural(t *testing.T) {
	hForced, err := ExternalConvection(2.0, 0.1, 40, 20, 1.2, 1.8e-5, 0.026, 1007, 0.71)
	if err != nil {
		t.Fatalf("unexpected error (forced): %v", err)
	}
	if hForced <= 0 {
		t.Errorf("want positive forced h; got %f", hForced)
	}

	hNatural, err := ExternalConvection(0.0, 0.1, 40, 20, 1.2, 1.8e-5, 0.026, 1007, 0.71)
	if err != nil {
		t.Fatalf("unexpected error (natural): %v", err)
	}
	if hNatural <= 0 {
		t.Errorf("want positive natural h; got %f", hNatural)
	}
}

func TestExternalConvectionRejectsInvalid(t *testing.T) {
	_, err := ExternalConvection(-1, 0.1, 40, 20, 1.2, 1.8e-5, 0.026, 1007, 0.71)
	if !errors.Is(err, therr.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput for negative wind speed; got %v", err)
	}
}
