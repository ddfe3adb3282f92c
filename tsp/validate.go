// Package tsp - validation utilities shared by the solver and callers.
//
// Deterministic, side-effect free helpers. No logging, no panics on user
// input - only sentinel errors from types.go.

package tsp

import "github.com/tourbound/tourbound/matrix"

// validateSquare verifies the matrix is non-nil and square, returning
// its order n. Value-level checks (NaN, negativity) happen during
// prefetch, where every entry is read exactly once anyway.
//
// Complexity: O(1).
func validateSquare(dist matrix.Matrix) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr < 0 {
		return 0, ErrNonSquare
	}

	return nr, nil
}

// validateStartVertex verifies that start ∈ [0, n).
//
// Complexity: O(1).
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// ValidateTour checks that tour is a closed Hamiltonian cycle on n
// cities from start: length n+1, first and last equal to start, and
// every city visited exactly once in positions 0..n-1.
//
// Exported so callers and tests can assert solver output independently.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n, start int) error {
	if n < 1 {
		if len(tour) != 0 {
			return ErrInvalidTour
		}

		return nil
	}
	if len(tour) != n+1 {
		return ErrInvalidTour
	}
	if tour[0] != start || tour[n] != start {
		return ErrInvalidTour
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}
