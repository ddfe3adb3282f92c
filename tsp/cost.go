// Package tsp - cost utilities shared by the solver and its callers.
//
// Minimal, side-effect free helpers with strict sentinels and stable
// summation: reported costs are rounded to 1e-9 so cross-platform FP
// noise never changes a reported optimum.

package tsp

import (
	"math"

	"github.com/tourbound/tourbound/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums the real edge costs along the closed cycle
// tour[0]→tour[1]→…→tour[len-1].
//
// Contract:
//   - dist must be square; tour indices must be within [0, n).
//   - A +Inf entry on a traversed edge means the walked cycle is not
//     realizable and yields ErrInvalidTour.
//
// Errors: ErrNonSquare, ErrDimensionMismatch (nil/NaN/out-of-range),
// ErrNegativeWeight, ErrInvalidTour (missing edge on the cycle).
//
// Complexity: O(n) time, O(1) space.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	n, err := validateSquare(dist)
	if err != nil {
		return 0, err
	}
	if n == 0 || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		w    float64
		u, v int
		i    int
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		if w, err = dist.At(u, v); err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrInvalidTour
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision. +Inf passes
// through unchanged. Complexity: O(1).
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
