package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dienstplan/internal/scheduling/absence"
	"dienstplan/internal/scheduling/calendar"
	"dienstplan/internal/scheduling/model"
	"dienstplan/internal/scheduling/solve"
)

func wardStaff() []model.Employee {
	var out []model.Employee
	add := func(id string, q model.Qualification, target int) {
		out = append(out, model.Employee{ID: id, Qualification: q, MonthlyTarget: target})
	}
	add("leitung-1", model.Leitung, 18)
	for i := 1; i <= 5; i++ {
		add("hf-"+string(rune('0'+i)), model.HF, 20)
	}
	for i := 1; i <= 5; i++ {
		add("ph-"+string(rune('0'+i)), model.PH, 20)
	}
	add("azubi-1", model.Ausbildung1, 20)
	add("azubi2-1", model.Ausbildung2, 20)
	return out
}

func TestGenerateReturnsRosterOrDiagnosedNoSolution(t *testing.T) {
	in := Input{
		Year:       2025,
		Month:      2,
		Employees:  wardStaff(),
		RawAbsence: map[string]absence.RawStrings{},
		Holidays:   calendar.NoHolidays{},
		Config:     model.DefaultConfig(),
	}

	roster, err := Generate(in)
	if err != nil {
		var noSolution *NoSolutionError
		require.ErrorAs(t, err, &noSolution)
		if noSolution.Reason == ReasonInfeasible {
			require.NotNil(t, noSolution.Diagnostics)
			assert.NotEmpty(t, noSolution.Diagnostics.QualifiedAvailablePerDay)
			assert.NotEmpty(t, noSolution.Diagnostics.RemainingTargetPerEmployee)
		}
		return
	}

	assert.IsType(t, solve.Roster{}, roster)
	assert.NotEmpty(t, roster.Assignments)
}

func TestGenerateRejectsInvalidMonth(t *testing.T) {
	in := Input{
		Year:      2025,
		Month:     13,
		Employees: wardStaff(),
		Holidays:  calendar.NoHolidays{},
		Config:    model.DefaultConfig(),
	}
	_, err := Generate(in)
	assert.Error(t, err)
}

func TestGenerateSurfacesAbsenceExpansionErrors(t *testing.T) {
	var warnings []string
	in := Input{
		Year:      2025,
		Month:     2,
		Employees: wardStaff(),
		RawAbsence: map[string]absence.RawStrings{
			"leitung-1": {Fe: "1.1.-5.6."}, // spans more than two months: skipped with a warning, not fatal
		},
		Holidays: calendar.NoHolidays{},
		Config:   model.DefaultConfig(),
		Warn:     func(msg string) { warnings = append(warnings, msg) },
	}
	_, err := Generate(in)
	assert.NotEmpty(t, warnings)
	if err != nil {
		var noSolution *NoSolutionError
		assert.ErrorAs(t, err, &noSolution)
	}
}
