// Package tourbound is an exact Traveling Salesman solver built on
// branch-and-bound over reduced cost matrices with best-first search.
//
// 🚀 What is tourbound?
//
//	A small, deterministic library that computes provably optimal
//	Hamiltonian cycles on directed cost matrices:
//		• matrix/ — dense float64 cost matrices with a +Inf "no edge" sentinel
//		• tsp/    — the reduced-matrix branch-and-bound core
//		• cmd/    — a thin CLI that loads TOML instances and prints tours
//
// ✨ Why choose tourbound?
//
//   - Exact – the returned cost is optimal, not approximate
//   - Deterministic – fixed branching and tie-break order; identical
//     runs yield identical tours
//   - Honest about infeasibility – a graph with no Hamiltonian cycle
//     is a result, not an error
//   - Pure Go core – the solver itself has no third-party dependencies
//
// Quick start:
//
//	m, _ := matrix.NewDenseFrom(costs) // math.Inf(1) marks missing edges
//	res, err := tsp.Solve(m, tsp.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Feasible {
//	    fmt.Println("no feasible tour")
//	    return
//	}
//	fmt.Println(res.Cost, res.Tour, res.NodesExplored)
//
// See tsp for the algorithm contract and complexity notes.
//
//	go get github.com/tourbound/tourbound
package tourbound
