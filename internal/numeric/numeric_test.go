package numeric

import "testing"

func TestEqualFloat64(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{name: "identical", a: 1.0, b: 1.0, want: true},
		{name: "within tolerance", a: 1.0, b: 1.0 + 1e-12, want: true},
		{name: "outside tolerance", a: 1.0, b: 1.1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualFloat64(tt.a, tt.b); got != tt.want {
				t.Errorf("want %v; got %v", tt.want, got)
			}
		})
	}
}

func TestClampMin0(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{name: "negative", v: -5.0, want: 0.0},
		{name: "zero", v: 0.0, want: 0.0},
		{name: "positive", v: 3.5, want: 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampMin0(tt.v); got != tt.want {
				t.Errorf("want %f; got %f", tt.want, got)
			}
		})
	}
}

func TestFinite(t *testing.T) {
	tests := []struct {
		name string
		vs   []float64
		want bool
	}{
		{name: "all finite", vs: []float64{1.0, 2.0, -3.5}, want: true},
		{name: "has NaN", vs: []float64{1.0, nan()}, want: false},
		{name: "has Inf", vs: []float64{1.0, inf()}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Finite(tt.vs...); got != tt.want {
				t.Errorf("want %v; got %v", tt.want, got)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name                   string
		x, x0, y0, x1, y1      float64
		want                   float64
	}{
		{name: "midpoint", x: 5, x0: 0, y0: 0, x1: 10, y1: 100, want: 50},
		{name: "at x0", x: 0, x0: 0, y0: 10, x1: 10, y1: 20, want: 10},
		{name: "at x1", x: 10, x0: 0, y0: 10, x1: 10, y1: 20, want: 20},
		{name: "degenerate axis", x: 5, x0: 3, y0: 7, x1: 3, y1: 42, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.x, tt.x0, tt.y0, tt.x1, tt.y1); got != tt.want {
				t.Errorf("want %f; got %f", tt.want, got)
			}
		})
	}
}

func TestBracket(t *testing.T) {
	grid := []float64{0, 10, 20, 30, 40}

	tests := []struct {
		name      string
		x         float64
		wantLo    int
		wantHi    int
		wantExact bool
		wantOK    bool
	}{
		{name: "below range", x: -1, wantOK: false},
		{name: "above range", x: 41, wantOK: false},
		{name: "exact node", x: 20, wantLo: 2, wantHi: 2, wantExact: true, wantOK: true},
		{name: "between nodes", x: 25, wantLo: 2, wantHi: 3, wantExact: false, wantOK: true},
		{name: "lower edge", x: 0, wantLo: 0, wantHi: 0, wantExact: true, wantOK: true},
		{name: "upper edge", x: 40, wantLo: 4, wantHi: 4, wantExact: true, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, exact, ok := Bracket(grid, tt.x)
			if ok != tt.wantOK {
				t.Fatalf("ok: want %v; got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if lo != tt.wantLo || hi != tt.wantHi || exact != tt.wantExact {
				t.Errorf("want (lo=%d,hi=%d,exact=%v); got (lo=%d,hi=%d,exact=%v)",
					tt.wantLo, tt.wantHi, tt.wantExact, lo, hi, exact)
			}
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func inf() float64 {
	var zero float64
	return 1.0 / zero
}
