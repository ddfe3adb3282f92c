// Package tsp provides an exact Traveling Salesman solver based on
// branch-and-bound over reduced cost matrices with best-first search.
//
// Solve explores partial tours ordered by an admissible lower bound:
// each search node carries its own reduced copy of the cost matrix, and
// the bound is the accumulated real path cost plus the total row/column
// reduction collected along the node's ancestry. The frontier is a
// min-heap keyed by bound (ties prefer deeper nodes), so the first
// complete tour that survives pruning against every remaining bound is
// provably optimal.
//
// Input is an n×n matrix of non-negative directed costs; math.Inf(1)
// denotes "no direct edge". The matrix need not be symmetric, and the
// caller's matrix is never mutated. A graph with no Hamiltonian cycle is
// not an error: the Result reports Feasible=false with Cost=+Inf.
//
// Complexity:
//
//   - Time:  exponential in n in the worst case (exact search); the
//     reduction bound prunes aggressively on practical instances.
//   - Per node: O(n²) matrix copy + reduction, O(log F) heap ops where
//     F is the frontier size.
//   - Memory: O(F·n²) — every frontier node owns an n×n buffer.
//
// Errors (sentinel):
//
//   - ErrNonSquare          if the matrix is not square.
//   - ErrDimensionMismatch  if the matrix is nil or contains NaN.
//   - ErrNegativeWeight     if any off-diagonal cost is negative.
//   - ErrStartOutOfRange    if the start city is outside [0, n).
//   - ErrTimeLimit          if an optional soft time budget expires.
//
// Use this package when optimality must be certain and n is modest
// (n ≲ 20 for well-structured instances).
package tsp
