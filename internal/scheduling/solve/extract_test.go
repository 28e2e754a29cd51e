package solve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dienstplan/internal/scheduling/calendar"
	"dienstplan/internal/scheduling/model"
)

func tinyRoster(t *testing.T) (*model.Builder, *model.Slacks) {
	t.Helper()
	cal, err := calendar.Build(2025, 2, calendar.NoHolidays{})
	require.NoError(t, err)

	var employees []model.Employee
	for i, q := range []model.Qualification{model.Leitung, model.HF, model.HF, model.PH, model.PH, model.Ausbildung1} {
		employees = append(employees, model.Employee{
			ID:            string(rune('A' + i)),
			Qualification: q,
			MonthlyTarget: 18,
		})
	}

	lookup := model.AbsenceLookup{Absent: map[string]map[int]bool{}, Credited: map[string]map[int]bool{}}
	for _, e := range employees {
		lookup.Absent[e.ID] = map[int]bool{}
		lookup.Credited[e.ID] = map[int]bool{}
	}

	b := model.NewBuilder(employees, cal, lookup, model.DefaultConfig())
	b.CompileHardConstraints()
	slacks := b.CompileSoftConstraints()
	b.AssembleObjective(slacks)
	return b, slacks
}

func TestRunClassifiesOptimalOrFeasible(t *testing.T) {
	b, _ := tinyRoster(t)
	result := Run(b.Model, 10*time.Second)
	assert.Contains(t, []Outcome{OutcomeOptimal, OutcomeFeasible, OutcomeInfeasible, OutcomeTimeout, OutcomeSolverError}, result.Outcome)
}

func TestExtractProducesDeterministicOrderAndSlackReport(t *testing.T) {
	b, slacks := tinyRoster(t)
	result := Run(b.Model, 10*time.Second)
	if result.Outcome != OutcomeOptimal && result.Outcome != OutcomeFeasible {
		t.Skip("solver backend unavailable in this environment")
	}

	roster := Extract(b, result.Solution, slacks)
	for _, id := range []string{"S1", "S2", "S9", "S10-under"} {
		_, ok := roster.SlackReport[id]
		assert.True(t, ok, "expected slack report entry for %s", id)
	}

	seen := map[string]bool{}
	for _, a := range roster.Assignments {
		key := a.EmployeeID + "|" + string(rune(a.Day))
		assert.False(t, seen[key], "employee %s double-booked on day %d", a.EmployeeID, a.Day)
		seen[key] = true
	}

	// Regular assignments come back in the Builder's variable order.
	prev := 0
	for _, a := range roster.Assignments {
		if a.Shift == model.ShiftBuero {
			continue
		}
		idx := b.OrderIndex[model.AssignKey{EmployeeID: a.EmployeeID, Day: a.Day, Shift: a.Shift}]
		assert.Greater(t, idx, prev, "assignment %v out of variable order", a)
		prev = idx
	}
}
