// Package tsp - row/column reduction of a cost buffer.
//
// Reduction is the bound engine of the solver: subtracting each row's and
// column's minimum finite entry leaves at least one zero per reducible
// line, and the total subtracted is a valid additive lower bound on any
// tour completion consistent with the remaining finite entries.

package tsp

import "math"

// reduceMatrix reduces the n×n buffer w (row-major, w[i*n+j]) in place and
// returns the total amount subtracted.
//
// For each row, then each column: find the minimum entry; when it is
// finite and nonzero, subtract it from every finite entry of that line
// and add it to the running total. +Inf entries are never modified and
// never considered as minima, so a fully blocked line contributes zero.
// Total operation: no failure mode for a well-formed square buffer.
//
// Complexity: O(n²) time, O(1) extra space.
func reduceMatrix(w []float64, n int) float64 {
	var (
		total float64
		min   float64
		i, j  int
	)

	// Row reduction.
	for i = 0; i < n; i++ {
		min = math.Inf(1)
		for j = 0; j < n; j++ {
			if w[i*n+j] < min {
				min = w[i*n+j]
			}
		}
		if math.IsInf(min, 1) || min == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if !math.IsInf(w[i*n+j], 1) {
				w[i*n+j] -= min
			}
		}
		total += min
	}

	// Column reduction.
	for j = 0; j < n; j++ {
		min = math.Inf(1)
		for i = 0; i < n; i++ {
			if w[i*n+j] < min {
				min = w[i*n+j]
			}
		}
		if math.IsInf(min, 1) || min == 0 {
			continue
		}
		for i = 0; i < n; i++ {
			if !math.IsInf(w[i*n+j], 1) {
				w[i*n+j] -= min
			}
		}
		total += min
	}

	return total
}

// blockRow sets every entry of row r to +Inf.
func blockRow(w []float64, n, r int) {
	var j int
	for j = 0; j < n; j++ {
		w[r*n+j] = math.Inf(1)
	}
}

// blockCol sets every entry of column c to +Inf.
func blockCol(w []float64, n, c int) {
	var i int
	for i = 0; i < n; i++ {
		w[i*n+c] = math.Inf(1)
	}
}
