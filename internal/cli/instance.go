package cli

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tourbound/tourbound/matrix"
)

// Instance is the on-disk TOML description of one tour problem.
//
// TOML has no literal for +Inf, so any negative cost entry is read as
// "no direct edge" and mapped to +Inf before solving. Example:
//
//	name  = "demo"
//	start = 0
//	costs = [
//	  [-1, 10,  8,  9,  7],
//	  [10, -1, 10,  5,  6],
//	  [ 8, 10, -1,  8,  9],
//	  [ 9,  5,  8, -1,  6],
//	  [ 7,  6,  9,  6, -1],
//	]
type Instance struct {
	Name  string      `toml:"name"`
	Start int         `toml:"start"`
	Costs [][]float64 `toml:"costs"`
}

// LoadInstance reads and decodes a TOML instance file. Structural
// validation of the cost table happens later, in Matrix.
func LoadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var inst Instance
	if err := toml.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("cli: decode %s: %w", path, err)
	}
	if len(inst.Costs) == 0 {
		return nil, fmt.Errorf("cli: %s: %w", path, errEmptyCosts)
	}

	return &inst, nil
}

// errEmptyCosts rejects instance files without a cost table.
var errEmptyCosts = errors.New("instance has no costs table")

// Matrix converts the cost table into a dense matrix, mapping every
// negative entry to +Inf (missing edge). Ragged tables are rejected by
// the matrix constructor.
func (in *Instance) Matrix() (*matrix.Dense, error) {
	var (
		rows = make([][]float64, len(in.Costs))
		i, j int
		x    float64
	)
	for i = range in.Costs {
		rows[i] = make([]float64, len(in.Costs[i]))
		for j, x = range in.Costs[i] {
			if x < 0 {
				x = math.Inf(1)
			}
			rows[i][j] = x
		}
	}

	return matrix.NewDenseFrom(rows)
}
