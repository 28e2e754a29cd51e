/*
Package scheduling - Ward Roster Optimizer Scheduling Core

==============================================================================
FILE: internal/scheduling/scheduling.go
==============================================================================

DESCRIPTION:
    Public entry point for the scheduling core: Generate wires
    the Calendar, Absence Expander, Variable Builder, Constraint
    Compiler, Objective Assembler, Solver Driver, and Extractor into one
    call. Callers (internal/services/roster_service.go) use the model
    package only for its input types (Employee, Config) and receive a
    solve.Roster; they never run the individual stages themselves.

==============================================================================
*/
package scheduling

import (
	"fmt"
	"time"

	"dienstplan/internal/scheduling/absence"
	"dienstplan/internal/scheduling/calendar"
	"dienstplan/internal/scheduling/model"
	"dienstplan/internal/scheduling/solve"
)

// Reason classifies why Generate produced no roster.
type Reason int

const (
	ReasonInfeasible Reason = iota
	ReasonTimeout
	ReasonSolverError
)

func (r Reason) String() string {
	switch r {
	case ReasonInfeasible:
		return "infeasible"
	case ReasonTimeout:
		return "timeout"
	case ReasonSolverError:
		return "solver_error"
	default:
		return "unknown"
	}
}

// Diagnostics accompanies a NoSolutionError with the analysis
// requires for an infeasible result: per-day qualified-staff headcount
// and per-employee remaining-target shortfall, computed independently of
// the solver since the bundled solver backend does not expose an
// irreducible-infeasible-subsystem trace.
type Diagnostics struct {
	QualifiedAvailablePerDay  map[int]map[model.Qualification]int
	RemainingTargetPerEmployee map[string]int
}

// NoSolutionError is returned in place of a Roster whenever the solver
// does not reach Optimal or Feasible.
type NoSolutionError struct {
	Reason      Reason
	Diagnostics *Diagnostics
	Cause       error
}

func (e *NoSolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("no solution (%s): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("no solution (%s)", e.Reason)
}

func (e *NoSolutionError) Unwrap() error { return e.Cause }

// Input bundles everything Generate needs to snapshot before solving.
type Input struct {
	Year       int
	Month      int
	Employees  []model.Employee
	RawAbsence map[string]absence.RawStrings // keyed by Employee.ID
	Holidays   calendar.HolidayProvider
	Config     model.Config
	Warn       absence.Warner // receives malformed-absence-token warnings; may be nil
}

// Generate runs the full scheduling pipeline and returns a Roster, or a
// *NoSolutionError when the solver does not find an optimal or feasible
// assignment within the configured time limit.
func Generate(in Input) (solve.Roster, error) {
	cal, err := calendar.Build(in.Year, in.Month, in.Holidays)
	if err != nil {
		return solve.Roster{}, fmt.Errorf("invalid month: %w", err)
	}

	lookup, err := buildAbsenceLookup(in)
	if err != nil {
		return solve.Roster{}, err
	}

	builder := model.NewBuilder(in.Employees, cal, lookup, in.Config)
	builder.CompileHardConstraints()
	slacks := builder.CompileSoftConstraints()
	builder.AssembleObjective(slacks)

	limit := in.Config.SolveTimeLimit
	if limit <= 0 {
		limit = 60 * time.Second
	}
	result := solve.Run(builder.Model, limit)

	switch result.Outcome {
	case solve.OutcomeOptimal, solve.OutcomeFeasible:
		return solve.Extract(builder, result.Solution, slacks), nil
	case solve.OutcomeTimeout:
		return solve.Roster{}, &NoSolutionError{Reason: ReasonTimeout, Cause: result.Err}
	case solve.OutcomeInfeasible:
		return solve.Roster{}, &NoSolutionError{
			Reason:      ReasonInfeasible,
			Diagnostics: diagnose(in, lookup, cal),
			Cause:       result.Err,
		}
	default:
		return solve.Roster{}, &NoSolutionError{Reason: ReasonSolverError, Cause: result.Err}
	}
}

func buildAbsenceLookup(in Input) (model.AbsenceLookup, error) {
	lookup := model.AbsenceLookup{
		Absent:   map[string]map[int]bool{},
		Credited: map[string]map[int]bool{},
	}
	daysInMonth := time.Date(in.Year, time.Month(in.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for _, e := range in.Employees {
		raw := in.RawAbsence[e.ID]
		entries, err := absence.Expand(raw, in.Warn)
		if err != nil {
			return lookup, fmt.Errorf("employee %s: %w", e.ID, err)
		}
		lookup.Absent[e.ID] = map[int]bool{}
		lookup.Credited[e.ID] = map[int]bool{}
		for _, entry := range entries {
			if entry.Month != in.Month || entry.Day > daysInMonth {
				continue
			}
			lookup.Absent[e.ID][entry.Day] = true
			if entry.Kind.CreditsWorkday() {
				lookup.Credited[e.ID][entry.Day] = true
			}
		}
	}
	return lookup, nil
}

// diagnose computes the infeasibility diagnostic bundle
// for: headcount of non-absent staff per qualification per day, and each
// employee's remaining target after crediting Fe/SL absences.
func diagnose(in Input, lookup model.AbsenceLookup, cal *calendar.Calendar) *Diagnostics {
	d := &Diagnostics{
		QualifiedAvailablePerDay:   map[int]map[model.Qualification]int{},
		RemainingTargetPerEmployee: map[string]int{},
	}
	for _, day := range cal.Days {
		counts := map[model.Qualification]int{}
		for _, e := range in.Employees {
			if !lookup.IsAbsent(e.ID, day.Number) {
				counts[e.Qualification]++
			}
		}
		d.QualifiedAvailablePerDay[day.Number] = counts
	}
	for _, e := range in.Employees {
		d.RemainingTargetPerEmployee[e.ID] = e.MonthlyTarget - lookup.CreditedDays(e.ID)
	}
	return d
}
