// Package numeric holds the small pure-function helpers shared by the
// properties, hydraulics and freeze packages: float comparison, clamping
// and bracket search over a sorted grid.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// floatEqualityThreshold mirrors the tolerance used throughout the engine
// for "is this an exact grid point" checks.
const floatEqualityThreshold = 1e-9

// EqualFloat64 reports whether a and b are close enough to be considered
// equal for grid-snapping purposes.
func EqualFloat64(a, b float64) bool {
	return math.Abs(a-b) <= floatEqualityThreshold
}

// ClampMin0 clamps v to a minimum of zero.
func ClampMin0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Finite reports whether every value is finite (no NaN, no ±Inf).
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Lerp linearly interpolates between (x0,y0) and (x1,y1) at x.
func Lerp(x, x0, y0, x1, y1 float64) float64 {
	if EqualFloat64(x1, x0) {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// Bracket locates the pair of adjacent indices (lo, hi) in the ascending,
// sorted slice grid such that grid[lo] <= x <= grid[hi]. It reports
// exact=true when x lands on a grid node (within EqualFloat64 tolerance),
// in which case lo==hi is the matching index. ok is false when x falls
// outside [grid[0], grid[len-1]].
func Bracket(grid []float64, x float64) (lo, hi int, exact bool, ok bool) {
	n := len(grid)
	if n == 0 || x < grid[0] || x > grid[n-1] {
		return 0, 0, false, false
	}

	// SearchFloats returns the index of the first element >= x.
	idx := floats.SearchFloats(grid, x)
	switch {
	case idx < n && EqualFloat64(grid[idx], x):
		return idx, idx, true, true
	case idx == 0:
		return 0, 0, true, true
	case idx >= n:
		return n - 1, n - 1, true, true
	default:
		return idx - 1, idx, false, true
	}
}
