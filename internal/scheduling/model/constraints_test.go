package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dienstplan/internal/scheduling/calendar"
)

func smallCalendar(t *testing.T) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.Build(2025, 2, calendar.NoHolidays{})
	require.NoError(t, err)
	return cal
}

func noAbsences(employees []Employee) AbsenceLookup {
	lookup := AbsenceLookup{Absent: map[string]map[int]bool{}, Credited: map[string]map[int]bool{}}
	for _, e := range employees {
		lookup.Absent[e.ID] = map[int]bool{}
		lookup.Credited[e.ID] = map[int]bool{}
	}
	return lookup
}

func staffOf(count int, q Qualification, target int) []Employee {
	var out []Employee
	for i := 0; i < count; i++ {
		out = append(out, Employee{ID: string(q) + string(rune('A'+i)), Qualification: q, MonthlyTarget: target})
	}
	return out
}

func TestCompileHardConstraintsDoesNotPanicOnSmallRoster(t *testing.T) {
	employees := append(staffOf(2, Leitung, 18),
		append(staffOf(4, HF, 20), append(staffOf(4, PH, 20), staffOf(2, Ausbildung1, 20)...)...)...)
	cal := smallCalendar(t)
	b := NewBuilder(employees, cal, noAbsences(employees), DefaultConfig())

	assert.NotPanics(t, func() {
		b.CompileHardConstraints()
	})
	assert.NotEmpty(t, b.AssignOrder)
}

func TestLeitungNeverGetsNonBVariables(t *testing.T) {
	employees := staffOf(1, Leitung, 18)
	cal := smallCalendar(t)
	b := NewBuilder(employees, cal, noAbsences(employees), DefaultConfig())

	for _, day := range cal.Days {
		for _, s := range []string{ShiftC, ShiftVS, ShiftS, ShiftBS, ShiftC4} {
			_, ok := b.EmployeeVar(employees[0].ID, day.Number, s)
			assert.False(t, ok, "Leitung should never get shift %s", s)
		}
		if day.IsWeekend() {
			_, ok := b.EmployeeVar(employees[0].ID, day.Number, ShiftB)
			assert.False(t, ok, "Leitung should not work B Dienst on weekends")
		}
	}
}

func TestApprenticeRestrictedToBAndCOnWeekdays(t *testing.T) {
	employees := staffOf(1, Ausbildung1, 20)
	cal := smallCalendar(t)
	b := NewBuilder(employees, cal, noAbsences(employees), DefaultConfig())

	for _, day := range cal.Days {
		for _, s := range []string{ShiftVS, ShiftS, ShiftBS, ShiftC4} {
			_, ok := b.EmployeeVar(employees[0].ID, day.Number, s)
			assert.False(t, ok)
		}
		if day.IsWeekend() {
			_, ok := b.EmployeeVar(employees[0].ID, day.Number, ShiftB)
			assert.False(t, ok)
		}
	}
}

func TestSplitShiftRestrictedToPHAndHF(t *testing.T) {
	employees := append(staffOf(1, Leitung, 18), staffOf(1, Ausbildung1, 20)...)
	cal := smallCalendar(t)
	b := NewBuilder(employees, cal, noAbsences(employees), DefaultConfig())

	for _, e := range employees {
		for _, day := range cal.Days {
			for _, s := range []string{ShiftBS, ShiftC4} {
				_, ok := b.EmployeeVar(e.ID, day.Number, s)
				assert.False(t, ok)
			}
		}
	}
}

func TestAbsentEmployeeGetsNoVariablesOnThatDay(t *testing.T) {
	employees := staffOf(1, HF, 20)
	cal := smallCalendar(t)
	lookup := noAbsences(employees)
	lookup.Absent[employees[0].ID][5] = true

	b := NewBuilder(employees, cal, lookup, DefaultConfig())
	for _, s := range RegularShiftCodes {
		_, ok := b.EmployeeVar(employees[0].ID, 5, s)
		assert.False(t, ok)
	}
}

func TestCompileSoftConstraintsProducesSlacksForAllIDs(t *testing.T) {
	employees := append(staffOf(2, Leitung, 18),
		append(staffOf(4, HF, 20), append(staffOf(4, PH, 20), staffOf(2, Ausbildung1, 20)...)...)...)
	cal := smallCalendar(t)
	b := NewBuilder(employees, cal, noAbsences(employees), DefaultConfig())
	b.CompileHardConstraints()
	slacks := b.CompileSoftConstraints()

	for _, id := range []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7", "S8", "S9", "S10-under", "S10-over", "S10-excess"} {
		assert.NotEmpty(t, slacks.ByID[id], "expected slack variables for %s", id)
	}
}

func TestAssembleObjectiveDoesNotPanic(t *testing.T) {
	employees := append(staffOf(2, Leitung, 18), staffOf(4, HF, 20)...)
	cal := smallCalendar(t)
	b := NewBuilder(employees, cal, noAbsences(employees), DefaultConfig())
	b.CompileHardConstraints()
	slacks := b.CompileSoftConstraints()

	assert.NotPanics(t, func() {
		b.AssembleObjective(slacks)
	})
}
