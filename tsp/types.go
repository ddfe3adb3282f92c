// Package tsp - shared types, options and sentinel errors.
//
// This file is the single source of truth for the package surface:
// strict sentinels (matched with errors.Is), the PrunePolicy enum, the
// Options record with DefaultOptions, and the Result record.

package tsp

import (
	"errors"
	"time"
)

// Sentinel errors returned by the solver. Only malformed inputs and an
// expired time budget are errors; an infeasible instance is a Result.
var (
	// ErrNonSquare signals that the cost matrix is not square.
	ErrNonSquare = errors.New("tsp: cost matrix is not square")

	// ErrDimensionMismatch signals a nil matrix, a NaN entry, or an
	// internally inconsistent input shape.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight signals a negative off-diagonal cost entry.
	ErrNegativeWeight = errors.New("tsp: negative cost encountered")

	// ErrStartOutOfRange signals a start city outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrInvalidTour is returned by ValidateTour for sequences that do not
	// form a closed Hamiltonian cycle from the requested start city.
	ErrInvalidTour = errors.New("tsp: tour is not a valid closed cycle")

	// ErrUnsupportedPolicy signals an unknown PrunePolicy value.
	ErrUnsupportedPolicy = errors.New("tsp: unsupported prune policy")

	// ErrTimeLimit signals that the optional soft time budget expired
	// before the search tree was exhausted.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")
)

// PrunePolicy selects where the best-cost pruning test is applied.
//
// PruneOnPushAndPop – children are discarded at creation time when their
// bound cannot beat the incumbent, and again at pop time (default).
// PruneOnPopOnly    – children are always pushed; only the pop-time test
// prunes. The optimal cost is identical under both policies; only
// NodesExplored and memory differ. Kept for testing and benchmarking.
type PrunePolicy int

const (
	// PruneOnPushAndPop applies the strict bound test at both push and pop.
	PruneOnPushAndPop PrunePolicy = iota

	// PruneOnPopOnly defers all pruning to pop time.
	PruneOnPopOnly
)

// Options configures a single Solve call.
//
// StartVertex – city the tour starts and ends at (must be in [0, n)).
// Prune       – where the bound-vs-incumbent test is applied.
// TimeLimit   – optional soft wall-clock budget; 0 means unlimited.
// Checked sparsely, so expiry is detected within a small batch of pops.
type Options struct {
	StartVertex int           // start (and end) city of the tour
	Prune       PrunePolicy   // pruning placement policy
	TimeLimit   time.Duration // soft deadline; 0 = unlimited
}

// DefaultOptions returns the canonical configuration: start at city 0,
// prune at push and pop, no time budget.
func DefaultOptions() Options {
	return Options{
		StartVertex: 0,
		Prune:       PruneOnPushAndPop,
		TimeLimit:   0,
	}
}

// Result holds the outcome of a Solve call.
//
// Tour is the optimal cycle as city indices: len(Tour) == n+1 with
// Tour[0] == Tour[n] == Options.StartVertex; nil when no Hamiltonian
// cycle exists. Cost is the stabilized total cost (+Inf when
// infeasible). NodesExplored counts frontier pops, including nodes that
// were popped only to be pruned.
type Result struct {
	Tour          []int
	Cost          float64
	Feasible      bool
	NodesExplored int64
}
