// Package tsp - internal tests for the row/column reducer.
// The reducer is private; testing it in-package keeps the flat-buffer
// representation out of the public surface.
package tsp

import (
	"math"
	"testing"
)

// bufOf flattens rows into the row-major buffer the engine operates on.
func bufOf(rows [][]float64) []float64 {
	n := len(rows)
	w := make([]float64, 0, n*n)
	var i int
	for i = 0; i < n; i++ {
		w = append(w, rows[i]...)
	}

	return w
}

func TestReduceMatrix_RowThenColumnTotals(t *testing.T) {
	inf := math.Inf(1)
	// Row minima 8,2,2 (sum 12); after rows, column 0 still reduces by 6.
	w := bufOf([][]float64{
		{inf, 10, 8},
		{10, inf, 2},
		{8, 2, inf},
	})

	got := reduceMatrix(w, 3)
	if got != 18 {
		t.Fatalf("reduction total: got %v, want 18", got)
	}

	want := bufOf([][]float64{
		{inf, 2, 0},
		{2, inf, 0},
		{0, 0, inf},
	})
	var i int
	for i = range want {
		if w[i] != want[i] {
			t.Fatalf("reduced buffer mismatch at %d: got %v, want %v", i, w[i], want[i])
		}
	}
}

func TestReduceMatrix_Idempotent(t *testing.T) {
	inf := math.Inf(1)
	w := bufOf([][]float64{
		{inf, 10, 8},
		{10, inf, 2},
		{8, 2, inf},
	})

	_ = reduceMatrix(w, 3)
	if again := reduceMatrix(w, 3); again != 0 {
		t.Fatalf("second reduction must be zero, got %v", again)
	}
}

func TestReduceMatrix_FullyBlockedLinesContributeZero(t *testing.T) {
	inf := math.Inf(1)
	w := bufOf([][]float64{
		{inf, inf},
		{5, inf},
	})

	if got := reduceMatrix(w, 2); got != 5 {
		t.Fatalf("reduction total: got %v, want 5", got)
	}
	if !math.IsInf(w[0], 1) || !math.IsInf(w[1], 1) {
		t.Fatalf("blocked row must stay +Inf, got %v", w[:2])
	}
	if w[2] != 0 {
		t.Fatalf("w[1][0] must reduce to 0, got %v", w[2])
	}
}

func TestReduceMatrix_ZeroMinimaLeaveBufferUntouched(t *testing.T) {
	inf := math.Inf(1)
	w := bufOf([][]float64{
		{inf, 0, 3},
		{0, inf, 1},
		{2, 0, inf},
	})
	// Every row already holds a zero; column 2 reduces by 1.
	if got := reduceMatrix(w, 3); got != 1 {
		t.Fatalf("reduction total: got %v, want 1", got)
	}
}
