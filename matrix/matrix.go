// Package matrix provides the dense cost-matrix primitive consumed by the
// tsp solver. A Matrix is a bounds-checked float64 grid; a value of
// math.Inf(1) in a cost matrix denotes "no direct edge".
package matrix

// Matrix is the minimal read/write surface the solver operates on.
// Implementations must be bounds-checked: At and Set return ErrOutOfRange
// for invalid indices instead of panicking.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (row, col).
	At(row, col int) (float64, error)

	// Set assigns value v at (row, col).
	Set(row, col int, v float64) error

	// Clone returns a deep copy; mutations on the copy never reach the original.
	Clone() Matrix
}
