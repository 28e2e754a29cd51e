/*
Package model - Ward Roster Optimizer Scheduling Core

==============================================================================
FILE: internal/scheduling/model/variables.go
==============================================================================

DESCRIPTION:
    The Variable Builder: materializes x[e,d,s] and y[e,d] decision
    variables for every employee/day/shift combination that is actually
    reachable (the employee is not absent and the shift is permitted
    for their qualification), and records the deterministic day-major /
    shift-minor / employee-innermost index order this package requires
    for tie-breaking and extraction. Variable creation uses
    github.com/nextmv-io/sdk/model.NewMultiMap, the same keyed-map idiom
    a shift-scheduling MIP typically uses for its assignment maps.

==============================================================================
*/
package model

import (
	"github.com/nextmv-io/sdk/mip"
	nextmvmodel "github.com/nextmv-io/sdk/model"

	"dienstplan/internal/scheduling/calendar"
)

// AbsenceLookup reports, per employee and 1-indexed day-of-month, whether
// the employee is absent (any kind) and whether that absence credits a
// worked day (Fe or SL). Built by the top-level Generate call from
// internal/scheduling/absence output, filtered to the target month.
type AbsenceLookup struct {
	Absent   map[string]map[int]bool
	Credited map[string]map[int]bool
}

// IsAbsent reports whether employee e is absent on day d.
func (a AbsenceLookup) IsAbsent(e string, d int) bool {
	return a.Absent[e] != nil && a.Absent[e][d]
}

// CreditedDays counts the distinct days credited toward e's monthly
// target by an Fe/SL absence (the workload-accounting rule).
func (a AbsenceLookup) CreditedDays(e string) int {
	n := 0
	for _, credited := range a.Credited[e] {
		if credited {
			n++
		}
	}
	return n
}

// Builder holds the MIP model, its variable maps, and the bookkeeping the
// Constraint Compiler, Objective Assembler, and Extractor all need.
type Builder struct {
	Model     mip.Model
	Employees []Employee
	Cal       *calendar.Calendar
	Absences  AbsenceLookup
	Config    Config

	X nextmvmodel.MultiMap[mip.Bool, AssignKey]
	Y nextmvmodel.MultiMap[mip.Bool, OfficeKey]

	// AssignOrder and OfficeOrder are the deterministic creation order of
	// every variable that actually exists; OrderIndex maps a key back to
	// its 1-based position for the tie-break objective term
	// and for the Extractor's read-back order.
	AssignOrder []AssignKey
	OfficeOrder []OfficeKey
	OrderIndex  map[AssignKey]int
	officeIndex map[OfficeKey]bool

	// ByEmployeeDay groups every variable touching (e,d) for the
	// one-shift-per-day hard constraint (#1).
	ByEmployeeDay map[employeeDay][]mip.Bool
}

type employeeDay struct {
	EmployeeID string
	Day        int
}

// permittedShifts returns the shift codes q may be assigned on a day with
// the given weekend flag, before absence is considered. Mirrors hard
// constraints 3, 6, and 7.
func permittedShifts(q Qualification, isWeekend bool) []string {
	switch {
	case q == Leitung:
		if isWeekend {
			return nil
		}
		return []string{ShiftB}
	case q.IsApprentice():
		if isWeekend {
			return nil
		}
		return []string{ShiftB, ShiftC}
	default: // HF, PH
		return RegularShiftCodes
	}
}

// NewBuilder constructs the MIP model and enumerates every reachable
// variable in the deterministic order this package requires.
func NewBuilder(employees []Employee, cal *calendar.Calendar, absences AbsenceLookup, cfg Config) *Builder {
	b := &Builder{
		Model:         mip.NewModel(),
		Employees:     employees,
		Cal:           cal,
		Absences:      absences,
		Config:        cfg,
		OrderIndex:    map[AssignKey]int{},
		officeIndex:   map[OfficeKey]bool{},
		ByEmployeeDay: map[employeeDay][]mip.Bool{},
	}
	b.Model.Objective().SetMinimize()

	var assignKeys []AssignKey
	for _, day := range cal.Days {
		for _, shift := range RegularShiftCodes {
			for _, e := range employees {
				if absences.IsAbsent(e.ID, day.Number) {
					continue
				}
				if shift == ShiftBS || shift == ShiftC4 {
					if !e.Qualification.maySplitShift() {
						continue
					}
				}
				allowed := false
				for _, s := range permittedShifts(e.Qualification, day.IsWeekend()) {
					if s == shift {
						allowed = true
						break
					}
				}
				if !allowed {
					continue
				}
				assignKeys = append(assignKeys, AssignKey{EmployeeID: e.ID, Day: day.Number, Shift: shift})
			}
		}
	}

	var officeKeys []OfficeKey
	for _, day := range cal.Days {
		if day.IsWeekend() {
			continue
		}
		for _, e := range employees {
			if e.Qualification != Leitung {
				continue
			}
			if absences.IsAbsent(e.ID, day.Number) {
				continue
			}
			officeKeys = append(officeKeys, OfficeKey{EmployeeID: e.ID, Day: day.Number})
		}
	}

	b.X = nextmvmodel.NewMultiMap(func(...AssignKey) mip.Bool { return b.Model.NewBool() }, assignKeys)
	b.Y = nextmvmodel.NewMultiMap(func(...OfficeKey) mip.Bool { return b.Model.NewBool() }, officeKeys)

	b.AssignOrder = assignKeys
	for i, k := range assignKeys {
		b.OrderIndex[k] = i + 1
		v := b.X.Get(k)
		ed := employeeDay{k.EmployeeID, k.Day}
		b.ByEmployeeDay[ed] = append(b.ByEmployeeDay[ed], v)
	}
	b.OfficeOrder = officeKeys
	for _, k := range officeKeys {
		b.officeIndex[k] = true
		v := b.Y.Get(k)
		ed := employeeDay{k.EmployeeID, k.Day}
		b.ByEmployeeDay[ed] = append(b.ByEmployeeDay[ed], v)
	}

	return b
}

// EmployeeVar returns the x[e,d,s] variable and whether it exists.
func (b *Builder) EmployeeVar(e string, d int, s string) (mip.Bool, bool) {
	k := AssignKey{EmployeeID: e, Day: d, Shift: s}
	if _, ok := b.OrderIndex[k]; !ok {
		return mip.Bool{}, false
	}
	return b.X.Get(k), true
}

// OfficeVar returns the y[e,d] variable and whether it exists.
func (b *Builder) OfficeVar(e string, d int) (mip.Bool, bool) {
	k := OfficeKey{EmployeeID: e, Day: d}
	if !b.officeIndex[k] {
		return mip.Bool{}, false
	}
	return b.Y.Get(k), true
}
