// Package tsp - best-first frontier.
//
// The frontier is a container/heap min-heap of *searchNode. Ordering is
// fully deterministic: bound ascending, then level descending (prefer
// the more complete tour among equal bounds), then current vertex
// ascending, then insertion sequence. Combined with children being
// generated in ascending city order, identical inputs always explore
// nodes in the same order.

package tsp

// nodeHeap implements heap.Interface over frontier nodes.
type nodeHeap []*searchNode

// Len returns the number of nodes in the frontier.
func (h nodeHeap) Len() int { return len(h) }

// Less orders by: bound asc, level desc, vertex asc, seq asc.
func (h nodeHeap) Less(i, j int) bool {
	if h[i].bound != h[j].bound {
		return h[i].bound < h[j].bound
	}
	if h[i].level != h[j].level {
		return h[i].level > h[j].level
	}
	if h[i].vertex != h[j].vertex {
		return h[i].vertex < h[j].vertex
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two frontier entries.
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new node; called by heap.Push, x must be *searchNode.
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*searchNode)) }

// Pop removes and returns the last element; heap.Pop surfaces the minimum.
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the matrix buffer to the GC
	*h = old[:n-1]

	return item
}
