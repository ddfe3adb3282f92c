// Package tsp - the best-first branch-and-bound driver.
//
// Solve is the single public entry point. Stages:
//
//  1. Validate options, matrix shape and start vertex (strict sentinels).
//  2. Special-case degenerate instances (n ≤ 1) before any search.
//  3. Prefetch the matrix into a dense buffer (diagonal forced to +Inf;
//     NaN and negative entries rejected here).
//  4. Build the reduced root node and run the pop/prune/expand/finalize
//     loop until the frontier empties.
//
// Design principles:
//   - Deterministic: fixed child order, fully ordered frontier.
//   - Strict sentinels: only errors from types.go; infeasibility is a Result.
//   - No hidden globals: all incumbent state lives on the engine value.
//   - Stable cost: returned costs are rounded to 1e−9 to prevent FP drift.

package tsp

import (
	"container/heap"
	"math"
	"time"

	"github.com/tourbound/tourbound/matrix"
)

// popCheckMask gates the soft-deadline test to every 1024 frontier pops;
// frequent enough to bound overshoot, rare enough to stay off the hot path.
const popCheckMask = 1023

// engine holds all search data for one Solve call.
// A dedicated struct (instead of closures) keeps dependencies explicit,
// testing simpler, and hot-path state predictable.
type engine struct {
	// Configuration / policy.
	n     int
	start int
	prune PrunePolicy

	// Time budget.
	useDeadline bool
	deadline    time.Time

	// Original costs prefetched into a dense buffer cost[u*n+v];
	// diagonal forced to +Inf (a city has no edge to itself).
	cost []float64

	// Frontier and insertion sequence for the deterministic tie-break.
	frontier nodeHeap
	seqGen   uint64

	// Incumbent.
	best     []int
	bestCost float64
	found    bool

	// Frontier pops performed (reported as Result.NodesExplored).
	pops int64
}

// nextSeq returns a fresh insertion sequence number.
func (e *engine) nextSeq() uint64 {
	e.seqGen++

	return e.seqGen
}

// Solve computes the minimum-cost Hamiltonian cycle of dist starting and
// ending at opts.StartVertex.
//
// Contracts:
//   - dist must be square with non-negative finite or +Inf entries;
//     diagonal values are ignored (treated as no-edge).
//   - The caller's matrix is never mutated.
//   - An instance with no Hamiltonian cycle yields Feasible=false,
//     Cost=+Inf, Tour=nil — and a nil error.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrNegativeWeight,
// ErrStartOutOfRange, ErrUnsupportedPolicy, ErrTimeLimit.
//
// Complexity: worst case exponential in n; per node O(n²) + O(log F).
func Solve(dist matrix.Matrix, opts Options) (Result, error) {
	// Stage 1 - validation.
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	n, err := validateSquare(dist)
	if err != nil {
		return Result{}, err
	}

	// Stage 2 - degenerate instances, before start validation for n==0
	// (no city index is valid on an empty instance).
	if n == 0 {
		return Result{Tour: []int{}, Cost: 0, Feasible: true}, nil
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return Result{}, err
	}
	if n == 1 {
		// A single city closes on itself trivially at zero cost.
		return Result{
			Tour:     []int{opts.StartVertex, opts.StartVertex},
			Cost:     0,
			Feasible: true,
		}, nil
	}

	// Stage 3 - engine setup and prefetch.
	e := engine{
		n:        n,
		start:    opts.StartVertex,
		prune:    opts.Prune,
		bestCost: math.Inf(1),
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	if e.cost, err = prefetch(dist, n); err != nil {
		return Result{}, err
	}

	// Stage 4 - best-first search.
	if err = e.run(); err != nil {
		return Result{}, err
	}

	if !e.found {
		return Result{Cost: math.Inf(1), NodesExplored: e.pops}, nil
	}
	if err = ValidateTour(e.best, n, e.start); err != nil {
		return Result{}, err
	}

	return Result{
		Tour:          e.best,
		Cost:          round1e9(e.bestCost),
		Feasible:      true,
		NodesExplored: e.pops,
	}, nil
}

// validateOptions checks internal consistency of Options without
// referencing the matrix. Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrDimensionMismatch
	}
	switch opts.Prune {
	case PruneOnPushAndPop, PruneOnPopOnly:
		return nil
	default:
		return ErrUnsupportedPolicy
	}
}

// prefetch loads dist into a flat row-major buffer and applies strict
// sentinels: NaN rejected, negative off-diagonal rejected, +Inf allowed
// (missing edge), diagonal forced to +Inf regardless of input.
// Complexity: O(n²).
func prefetch(dist matrix.Matrix, n int) ([]float64, error) {
	var (
		w    = make([]float64, n*n)
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				w[i*n+j] = math.Inf(1)
				continue
			}
			x, err = dist.At(i, j)
			if err != nil || math.IsNaN(x) {
				return nil, ErrDimensionMismatch
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}

	return w, nil
}

// run executes the driver loop: pop the best node, prune, then either
// finalize a tour or expand children. Terminates when the frontier is
// empty; every node left unexpanded has bound ≥ the final best cost, so
// the last incumbent is optimal.
func (e *engine) run() error {
	heap.Push(&e.frontier, e.rootNode())

	var nd *searchNode
	for e.frontier.Len() > 0 {
		nd = heap.Pop(&e.frontier).(*searchNode)
		e.pops++

		if e.deadlineExpired() {
			return ErrTimeLimit
		}

		// Pop-time pruning: the incumbent may have improved since push.
		if nd.bound >= e.bestCost {
			continue
		}

		if nd.level == e.n-1 {
			e.finalize(nd)
			continue
		}
		e.expand(nd)
	}

	return nil
}

// deadlineExpired performs the rare soft-deadline test.
func (e *engine) deadlineExpired() bool {
	if !e.useDeadline || (e.pops&popCheckMask) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// finalize closes the tour of a depth n-1 node: either all cities are on
// the path and only the return edge remains, or exactly one city r is
// left and the closure is vertex→r→start. The candidate replaces the
// incumbent only when every required edge is finite and the total is
// strictly smaller.
func (e *engine) finalize(nd *searchNode) {
	var (
		n         = e.n
		remaining = -1
		visited   = e.visitedOf(nd)
		i         int
	)
	for i = 0; i < n; i++ {
		if !visited[i] {
			remaining = i
			break
		}
	}

	if remaining == -1 {
		closing := e.cost[nd.vertex*n+e.start]
		if math.IsInf(closing, 1) {
			return // missing return edge
		}
		e.record(nd.pathCost+closing, nd.path, -1)

		return
	}

	var (
		out  = e.cost[nd.vertex*n+remaining]
		back = e.cost[remaining*n+e.start]
	)
	if math.IsInf(out, 1) || math.IsInf(back, 1) {
		return
	}
	e.record(nd.pathCost+out+back, nd.path, remaining)
}

// record commits a candidate tour when it strictly beats the incumbent.
// detour ≥ 0 inserts the remaining city before the closing start vertex.
func (e *engine) record(total float64, path []int, detour int) {
	if total >= e.bestCost {
		return
	}
	tour := make([]int, 0, e.n+1)
	tour = append(tour, path...)
	if detour >= 0 {
		tour = append(tour, detour)
	}
	tour = append(tour, e.start)

	e.best = tour
	e.bestCost = total
	e.found = true
}

// expand generates one child per unvisited reachable city, in ascending
// city order (the documented deterministic branch order).
func (e *engine) expand(p *searchNode) {
	var (
		visited = e.visitedOf(p)
		child   *searchNode
		c       int
	)
	for c = 0; c < e.n; c++ {
		if visited[c] {
			continue
		}
		if child = e.childNode(p, c); child == nil {
			continue
		}
		// Push-time pruning: strict test against the current incumbent.
		if e.prune == PruneOnPushAndPop && child.bound >= e.bestCost {
			continue
		}
		heap.Push(&e.frontier, child)
	}
}

// visitedOf materializes the membership set of a node's path.
func (e *engine) visitedOf(nd *searchNode) []bool {
	visited := make([]bool, e.n)
	var v int
	for _, v = range nd.path {
		visited[v] = true
	}

	return visited
}
