/*
Package solve - Ward Roster Optimizer Scheduling Core

==============================================================================
FILE: internal/scheduling/solve/solver.go
==============================================================================

DESCRIPTION:
    The Solver Driver: hands the assembled model to HiGHS through
    github.com/nextmv-io/sdk/mip, enforces the wall-clock budget, and
    classifies the outcome into four buckets (optimal/feasible,
    infeasible, timeout-without-feasible, solver error).

==============================================================================
*/
package solve

import (
	"fmt"
	"time"

	"github.com/nextmv-io/sdk/mip"
)

// Outcome classifies a completed solve attempt.
type Outcome int

const (
	OutcomeOptimal Outcome = iota
	OutcomeFeasible
	OutcomeInfeasible
	OutcomeTimeout
	OutcomeSolverError
)

// Result bundles the solver outcome with the raw mip.Solution the
// Extractor needs to read variable values back out.
type Result struct {
	Outcome  Outcome
	Solution mip.Solution
	Err      error
}

// Run solves m with a wall-clock budget of maxDuration (the
// model.Config.SolveTimeLimit, default 60s) and classifies the result.
func Run(m mip.Model, maxDuration time.Duration) Result {
	solver, err := mip.NewSolver(mip.Highs, m)
	if err != nil {
		return Result{Outcome: OutcomeSolverError, Err: fmt.Errorf("construct solver: %w", err)}
	}

	solution, err := solver.Solve(mip.SolveOptions{Duration: maxDuration})
	if err != nil {
		return Result{Outcome: OutcomeSolverError, Err: fmt.Errorf("solve: %w", err)}
	}

	switch {
	case solution.IsOptimal():
		return Result{Outcome: OutcomeOptimal, Solution: solution}
	case solution.IsSubOptimal():
		return Result{Outcome: OutcomeFeasible, Solution: solution}
	case solution.IsInfeasible():
		return Result{Outcome: OutcomeInfeasible, Solution: solution}
	default:
		return Result{Outcome: OutcomeTimeout, Solution: solution}
	}
}
