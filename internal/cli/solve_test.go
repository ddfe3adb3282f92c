package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tourbound/tourbound/tsp"
)

func TestRunSolveDemoInstance(t *testing.T) {
	path := writeInstance(t, demoTOML)
	var out bytes.Buffer

	opts := solveOpts{start: -1}
	if err := runSolve(context.Background(), &out, &opts, path); err != nil {
		t.Fatalf("runSolve() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "cost: 34") {
		t.Errorf("output missing optimal cost:\n%s", got)
	}
	if !strings.Contains(got, "instance: demo (5 cities)") {
		t.Errorf("output missing instance header:\n%s", got)
	}
	if !strings.Contains(got, "tour: 0 ") || !strings.Contains(got, "-> 0\n") {
		t.Errorf("tour must start and end at city 0:\n%s", got)
	}
}

func TestRunSolveStartOverride(t *testing.T) {
	// The cycle cost is start-invariant; only the printed rotation moves.
	path := writeInstance(t, demoTOML)
	var out bytes.Buffer

	opts := solveOpts{start: 2}
	if err := runSolve(context.Background(), &out, &opts, path); err != nil {
		t.Fatalf("runSolve() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "cost: 34") {
		t.Errorf("output missing optimal cost:\n%s", got)
	}
	if !strings.Contains(got, "tour: 2 ") {
		t.Errorf("tour must start at overridden city 2:\n%s", got)
	}
}

func TestRunSolveInfeasible(t *testing.T) {
	// Directed chain with no edge back to city 0.
	path := writeInstance(t, `
name  = "chain"
costs = [
  [-1,  1, -1],
  [-1, -1,  1],
  [-1, -1, -1],
]
`)
	opts := solveOpts{start: -1}
	err := runSolve(context.Background(), &bytes.Buffer{}, &opts, path)
	if !errors.Is(err, errNoFeasibleTour) {
		t.Fatalf("error = %v, want errNoFeasibleTour", err)
	}
}

func TestRunSolveBadStart(t *testing.T) {
	path := writeInstance(t, demoTOML)
	opts := solveOpts{start: 99}
	err := runSolve(context.Background(), &bytes.Buffer{}, &opts, path)
	if !errors.Is(err, tsp.ErrStartOutOfRange) {
		t.Fatalf("error = %v, want tsp.ErrStartOutOfRange", err)
	}
}

func TestRunSolveTimeLimitPropagates(t *testing.T) {
	path := writeInstance(t, demoTOML)
	opts := solveOpts{start: -1, timeLimit: -time.Second}
	err := runSolve(context.Background(), &bytes.Buffer{}, &opts, path)
	if !errors.Is(err, tsp.ErrDimensionMismatch) {
		t.Fatalf("error = %v, want tsp.ErrDimensionMismatch", err)
	}
}

func TestFormatTour(t *testing.T) {
	if got := formatTour([]int{0, 4, 3, 0}); got != "0 -> 4 -> 3 -> 0" {
		t.Errorf("formatTour = %q", got)
	}
	if got := formatTour(nil); got != "" {
		t.Errorf("formatTour(nil) = %q, want empty", got)
	}
}
