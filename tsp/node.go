// Package tsp - search node construction.
//
// A searchNode describes one partial tour. Every node owns its reduced
// matrix exclusively: children copy the parent buffer, block the
// committed row/column, and re-reduce. Nodes are immutable once pushed
// onto the frontier and are discarded after being popped.

package tsp

import "math"

// searchNode is one frontier entry of the branch-and-bound tree.
//
// Invariant: bound ≤ cost of any complete tour obtained by extending
// path, and bound never decreases from parent to child. bound
// accumulates the root reduction plus, per committed edge, its
// reduced-matrix entry and the re-reduction it triggered.
type searchNode struct {
	w        []float64 // private reduced cost matrix, row-major n×n
	level    int       // edges fixed so far (root = 0)
	vertex   int       // current (last-visited) city
	pathCost float64   // sum of real edge costs fixed so far
	bound    float64   // lower bound on any completion
	path     []int     // visited cities, path[0] == start, len == level+1
	seq      uint64    // insertion sequence, final heap tie-break
}

// rootNode builds the search root: a reduced copy of the prefetched cost
// buffer with the root reduction as the initial bound.
func (e *engine) rootNode() *searchNode {
	w := make([]float64, len(e.cost))
	copy(w, e.cost) // diagonal is already +Inf after prefetch

	root := &searchNode{
		w:      w,
		level:  0,
		vertex: e.start,
		bound:  reduceMatrix(w, e.n),
		path:   []int{e.start},
		seq:    e.nextSeq(),
	}

	return root
}

// childNode expands p by committing the edge p.vertex→c, or returns nil
// when the edge is forbidden.
//
// Rejection order mirrors the admissibility argument: the edge may be
// blocked in the parent's reduced matrix (already committed elsewhere),
// or absent from the original costs. On success the child's matrix
// blocks row p.vertex and column c entirely and forbids the premature
// closing edge c→start; without that extra block the re-reduction could
// credit an early return the search does not intend to take, producing
// an invalid (too optimistic) bound.
//
// The child bound is the classic reduced-matrix recurrence
//
//	bound = parent.bound + reducedEdge + childReduction
//
// where reducedEdge is the already-reduced entry for p.vertex→c in the
// parent matrix. All three terms are non-negative increments over the
// parent bound, so bounds are monotone along any root-to-leaf path while
// staying a valid lower bound on every completion.
//
// Complexity: O(n²) for the copy and re-reduction.
func (e *engine) childNode(p *searchNode, c int) *searchNode {
	var (
		n   = e.n
		inf = math.Inf(1)
	)
	reducedEdge := p.w[p.vertex*n+c]
	if math.IsInf(reducedEdge, 1) {
		return nil // edge forbidden by prior reductions/blocking
	}
	edge := e.cost[p.vertex*n+c]
	if math.IsInf(edge, 1) {
		return nil // no real edge
	}

	w := make([]float64, len(p.w))
	copy(w, p.w)
	blockRow(w, n, p.vertex)
	blockCol(w, n, c)
	w[c*n+e.start] = inf

	path := make([]int, len(p.path)+1)
	copy(path, p.path)
	path[len(p.path)] = c

	child := &searchNode{
		w:        w,
		level:    p.level + 1,
		vertex:   c,
		pathCost: p.pathCost + edge,
		path:     path,
		seq:      e.nextSeq(),
	}
	child.bound = p.bound + reducedEdge + reduceMatrix(w, n)

	return child
}
