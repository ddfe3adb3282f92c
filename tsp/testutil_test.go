// Package tsp_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and deterministic.
package tsp_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/tourbound/tourbound/matrix"
	"github.com/tourbound/tourbound/tsp"
)

const (
	// startV is the canonical start vertex used across tests.
	startV = 0

	// seedDet seeds deterministic instance generators.
	seedDet = int64(42)
)

// inf is the "no direct edge" sentinel used throughout the tests.
var inf = math.Inf(1)

// mkDense wraps NewDenseFrom and fails the test on malformed fixtures.
func mkDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("fixture matrix: %v", err)
	}

	return m
}

// demo5 is the canonical 5-city instance with optimal tour cost 34.
func demo5() [][]float64 {
	return [][]float64{
		{inf, 10, 8, 9, 7},
		{10, inf, 10, 5, 6},
		{8, 10, inf, 8, 9},
		{9, 5, 8, inf, 6},
		{7, 6, 9, 6, inf},
	}
}

// randCosts builds a deterministic n×n instance with costs in [1, 100).
// When symmetric is true, cost[i][j] == cost[j][i].
func randCosts(n int, seed int64, symmetric bool) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		a[i][i] = inf
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if symmetric && j < i {
				a[i][j] = a[j][i]
				continue
			}
			a[i][j] = float64(1 + r.Intn(99))
		}
	}

	return a
}

// Repeat runs fn N times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustValidTour asserts a closed Hamiltonian cycle and compares the
// recomputed real cost with the reported one.
func mustValidTour(t *testing.T, rows [][]float64, res tsp.Result, n, start int) {
	t.Helper()
	if err := tsp.ValidateTour(res.Tour, n, start); err != nil {
		t.Fatalf("returned tour invalid: %v (%v)", err, res.Tour)
	}
	got, err := tsp.TourCost(mkDense(t, rows), res.Tour)
	if err != nil {
		t.Fatalf("TourCost failed: %v", err)
	}
	if got != res.Cost {
		t.Fatalf("tour cost mismatch: walked=%v reported=%v", got, res.Cost)
	}
}

// bruteForce enumerates every permutation of the non-start cities and
// returns the cheapest realizable cycle cost, or +Inf when none exists.
// Only meant for n ≤ 8.
func bruteForce(rows [][]float64, start int) float64 {
	n := len(rows)
	if n == 0 {
		return 0
	}
	rest := make([]int, 0, n-1)
	var i int
	for i = 0; i < n; i++ {
		if i != start {
			rest = append(rest, i)
		}
	}

	best := math.Inf(1)
	var walk func(k int)
	walk = func(k int) {
		if k == len(rest) {
			cost, ok := cycleCost(rows, start, rest)
			if ok && cost < best {
				best = cost
			}

			return
		}
		var j int
		for j = k; j < len(rest); j++ {
			rest[k], rest[j] = rest[j], rest[k]
			walk(k + 1)
			rest[k], rest[j] = rest[j], rest[k]
		}
	}
	walk(0)

	return best
}

// cycleCost walks start→order...→start over real costs; ok=false when a
// required edge is missing.
func cycleCost(rows [][]float64, start int, order []int) (float64, bool) {
	var (
		sum  float64
		cur  = start
		next int
	)
	for _, next = range order {
		if cur == next || math.IsInf(rows[cur][next], 1) {
			return 0, false
		}
		sum += rows[cur][next]
		cur = next
	}
	if math.IsInf(rows[cur][start], 1) {
		return 0, false
	}
	sum += rows[cur][start]

	return sum, true
}
