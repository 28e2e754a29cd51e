/*
Package solve - Ward Roster Optimizer Scheduling Core

==============================================================================
FILE: internal/scheduling/solve/extract.go
==============================================================================

DESCRIPTION:
    The Extractor: reads a solved mip.Solution back into a roster by
    walking the Builder's deterministic AssignOrder then OfficeOrder,
    rounding >= 0.5 to "assigned" (binary MIP variables settle near but
    not exactly at 0/1 due to solver floating-point slack). Also sums
    every soft constraint's slack values into a per-ID violation report
    for the slack_report output.

==============================================================================
*/
package solve

import (
	"dienstplan/internal/scheduling/model"

	"github.com/nextmv-io/sdk/mip"
)

// AssignedDay is one (employee, day) -> shift-code result.
type AssignedDay struct {
	EmployeeID string
	Day        int
	Shift      string
}

// Roster is the scheduling core's public result: the assignment list and
// the per-soft-constraint slack totals that must be surfaced.
type Roster struct {
	Assignments []AssignedDay
	SlackReport map[string]float64
}

const assignedThreshold = 0.5

// Extract reads solution against b's deterministic variable order,
// producing one AssignedDay per variable whose value rounds to 1, and
// sums slacks's solved values into the slack report.
func Extract(b *model.Builder, solution mip.Solution, slacks *model.Slacks) Roster {
	var out []AssignedDay

	for _, k := range b.AssignOrder {
		v := b.X.Get(k)
		if solution.Value(v) >= assignedThreshold {
			out = append(out, AssignedDay{EmployeeID: k.EmployeeID, Day: k.Day, Shift: k.Shift})
		}
	}
	for _, k := range b.OfficeOrder {
		v := b.Y.Get(k)
		if solution.Value(v) >= assignedThreshold {
			out = append(out, AssignedDay{EmployeeID: k.EmployeeID, Day: k.Day, Shift: model.ShiftBuero})
		}
	}

	report := map[string]float64{}
	for id, vars := range slacks.ByID {
		total := 0.0
		for _, v := range vars {
			total += solution.Value(v)
		}
		report[id] = total
	}

	return Roster{Assignments: out, SlackReport: report}
}
