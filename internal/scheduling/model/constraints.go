/*
Package model - Ward Roster Optimizer Scheduling Core

==============================================================================
FILE: internal/scheduling/model/constraints.go
==============================================================================

DESCRIPTION:
    The Constraint Compiler: the largest single piece of
    the scheduling core. Emits every hard constraint as
    linear inequalities over the Builder's variables, and every soft
    constraint as a slacked inequality, collecting the slack variables by
    soft-constraint ID so the Objective Assembler (objective.go) can
    weight them and the Extractor can report their violations.

    Several hard constraints (absence, Leitung/apprentice shift
    restriction, Bü Dienst eligibility, split-shift eligibility) are
    satisfied by construction: the Variable Builder never creates the
    forbidden variable in the first place, so there is nothing to
    constrain here. Each is still noted below at the point the
    constraint table numbers it, so the list reads in order.

==============================================================================
*/
package model

import (
	"math"

	"github.com/nextmv-io/sdk/mip"
)

// Slacks collects every soft-constraint slack variable the compiler
// creates, keyed by the soft-constraint ID (S1..S9, plus
// S10's three components). The Objective Assembler weights them; the
// Extractor sums their solved values into the Roster's slack report.
type Slacks struct {
	ByID map[string][]mip.Float
}

func newSlacks() *Slacks { return &Slacks{ByID: map[string][]mip.Float{}} }

func (s *Slacks) add(id string, v mip.Float) {
	s.ByID[id] = append(s.ByID[id], v)
}

type employeeWeekend struct {
	EmployeeID string
	WeekendIdx int
}

// CompileHardConstraints emits hard constraints 1, 4, 8, 9, 10, 11, 12 of
// the constraint table. Constraints 2, 3 (partially), 5, 6, 7 hold by construction;
// see the file doc comment.
func (b *Builder) CompileHardConstraints() {
	m := b.Model

	// #1 One shift per day: for every (e,d) touched by any variable,
	// sum(x) + y <= 1. This also covers the second half of #3 (Leitung's
	// B Dienst vs. Bü Dienst exclusivity), since both land in the same
	// ByEmployeeDay bucket.
	for _, vars := range b.ByEmployeeDay {
		if len(vars) < 2 {
			continue
		}
		c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
		for _, v := range vars {
			c.NewTerm(1.0, v)
		}
	}

	// #4 Leitung monthly office days: exactly LeitungOfficeDaysPerMonth
	// y[e,d] set over weekdays.
	byEmployee := map[string][]mip.Bool{}
	for _, k := range b.OfficeOrder {
		byEmployee[k.EmployeeID] = append(byEmployee[k.EmployeeID], b.Y.Get(k))
	}
	for _, e := range b.Employees {
		if e.Qualification != Leitung {
			continue
		}
		c := m.NewConstraint(mip.Equal, float64(b.Config.LeitungOfficeDaysPerMonth))
		for _, v := range byEmployee[e.ID] {
			c.NewTerm(1.0, v)
		}
	}

	// #8 Per-day split-shift cap.
	for _, day := range b.Cal.Days {
		c := m.NewConstraint(mip.LessThanOrEqual, float64(b.Config.SplitShiftCapPerDay))
		for _, e := range b.Employees {
			for _, s := range []string{ShiftBS, ShiftC4} {
				if v, ok := b.EmployeeVar(e.ID, day.Number, s); ok {
					c.NewTerm(1.0, v)
				}
			}
		}
	}

	// #9 VS Dienst uniqueness.
	for _, day := range b.Cal.Days {
		c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
		for _, e := range b.Employees {
			if v, ok := b.EmployeeVar(e.ID, day.Number, ShiftVS); ok {
				c.NewTerm(1.0, v)
			}
		}
	}

	b.compileTransitions()
	b.compileWeekendLimits()
}

// compileTransitions emits hard constraint #10, the late->early
// transition rules, exactly as the constraint table encodes them.
func (b *Builder) compileTransitions() {
	m := b.Model
	n := b.Cal.NumDays()
	for _, e := range b.Employees {
		for d := 1; d < n; d++ {
			// d is {S, BS} -> d+1 is neither B nor C.
			lhs := []string{ShiftS, ShiftBS}
			rhs := []string{ShiftB, ShiftC}
			if vars := collectVars(b, e.ID, d, lhs, d+1, rhs); len(vars) > 1 {
				c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
				for _, v := range vars {
					c.NewTerm(1.0, v)
				}
			}

			// d is VS -> d+1 only C allowed among early shifts; forbid
			// B, BS, C4 pairwise.
			if dv, ok := b.EmployeeVar(e.ID, d, ShiftVS); ok {
				for _, s := range []string{ShiftB, ShiftBS, ShiftC4} {
					if nv, ok := b.EmployeeVar(e.ID, d+1, s); ok {
						c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
						c.NewTerm(1.0, dv)
						c.NewTerm(1.0, nv)
					}
				}
			}
			// d is C4 -> same restriction on d+1.
			if dv, ok := b.EmployeeVar(e.ID, d, ShiftC4); ok {
				for _, s := range []string{ShiftB, ShiftBS, ShiftC4} {
					if nv, ok := b.EmployeeVar(e.ID, d+1, s); ok {
						c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
						c.NewTerm(1.0, dv)
						c.NewTerm(1.0, nv)
					}
				}
			}
		}
	}
}

func collectVars(b *Builder, e string, dayA int, shiftsA []string, dayB int, shiftsB []string) []mip.Bool {
	var out []mip.Bool
	for _, s := range shiftsA {
		if v, ok := b.EmployeeVar(e, dayA, s); ok {
			out = append(out, v)
		}
	}
	for _, s := range shiftsB {
		if v, ok := b.EmployeeVar(e, dayB, s); ok {
			out = append(out, v)
		}
	}
	return out
}

// compileWeekendLimits emits hard constraints #11 and #12.
func (b *Builder) compileWeekendLimits() {
	m := b.Model
	weekendVar := map[employeeWeekend]mip.Bool{}

	for _, e := range b.Employees {
		for wIdx, unit := range b.Cal.WeekendUnits {
			w := m.NewBool()
			weekendVar[employeeWeekend{e.ID, wIdx}] = w
			for _, d := range unit.Days {
				for _, s := range RegularShiftCodes {
					if v, ok := b.EmployeeVar(e.ID, d, s); ok {
						c := m.NewConstraint(mip.LessThanOrEqual, 0.0)
						c.NewTerm(1.0, v)
						c.NewTerm(-1.0, w)
					}
				}
			}
		}
	}

	for _, e := range b.Employees {
		limit := b.Config.MaxWeekendsPerEmployee
		if e.Qualification == Ausbildung2 {
			limit = b.Config.MaxWeekendsApprentice2
		}
		c := m.NewConstraint(mip.LessThanOrEqual, float64(limit))
		for wIdx := range b.Cal.WeekendUnits {
			c.NewTerm(1.0, weekendVar[employeeWeekend{e.ID, wIdx}])
		}

		if e.Qualification == Ausbildung2 {
			sundayOrHoliday := m.NewConstraint(mip.LessThanOrEqual, 1.0)
			for _, day := range b.Cal.Days {
				if !day.IsSun && !day.IsHoliday {
					continue
				}
				for _, s := range RegularShiftCodes {
					if v, ok := b.EmployeeVar(e.ID, day.Number, s); ok {
						sundayOrHoliday.NewTerm(1.0, v)
					}
				}
			}
		}
	}
}

// CompileSoftConstraints emits soft constraints S1-S10 and returns their
// slack variables grouped by ID.
func (b *Builder) CompileSoftConstraints() *Slacks {
	slacks := newSlacks()
	m := b.Model
	cfg := b.Config

	for _, day := range b.Cal.Days {
		b.compileDaySoftConstraints(m, day.Number, day.IsWeekend(), cfg, slacks)
	}
	b.compileConsecutiveDayRule(m, slacks)
	b.compileTargetWorkdays(m, slacks)

	return slacks
}

func (b *Builder) compileDaySoftConstraints(m mip.Model, day int, isWeekend bool, cfg Config, slacks *Slacks) {
	earlyFloor := cfg.EarlyCoverageWeekday
	if isWeekend {
		earlyFloor = cfg.EarlyCoverageWeekend
	}

	earlyVars, lateVars, fachEarly, hfB, nonFachEarly, fachLateHF, fachPureLate, bVars := b.dayVarGroups(day)

	// S1: early-group coverage >= floor.
	atLeast(m, slacks, "S1", earlyVars, float64(earlyFloor), float64(earlyFloor))

	// S2: at least one Fach-qualified employee in the early group.
	atLeast(m, slacks, "S2", fachEarly, 1, 1)

	// S3: non-Fach lower band (>=4) on early shifts.
	atLeast(m, slacks, "S3", nonFachEarly, 4, 4)

	// S4: B Dienst coverage >= 2.
	atLeast(m, slacks, "S4", bVars, 2, 2)

	// S5: B Dienst HF composition, modelled as >=1 soft.
	atLeast(m, slacks, "S5", hfB, 1, 1)

	// S6: late-group coverage >= 3.
	atLeast(m, slacks, "S6", lateVars, 3, 3)

	// S7: at least one HF on the late group.
	atLeast(m, slacks, "S7", fachLateHF, 1, 1)

	// S8: at most 1 Fach among pure late {S, VS}; excess is slack.
	atMost(m, slacks, "S8", fachPureLate, 1, float64(len(fachPureLate)))
}

// dayVarGroups collects the variable groups compileDaySoftConstraints
// needs for one day, so each soft constraint's loop body stays a single
// line of intent.
func (b *Builder) dayVarGroups(day int) (early, late, fachEarly, hfB, nonFachEarly, fachLateHF, fachPureLate, bVars []mip.Bool) {
	for _, e := range b.Employees {
		for _, s := range RegularShiftCodes {
			v, ok := b.EmployeeVar(e.ID, day, s)
			if !ok {
				continue
			}
			if isEarlyShift(s) {
				early = append(early, v)
				if e.Qualification.IsFach() {
					fachEarly = append(fachEarly, v)
				} else {
					nonFachEarly = append(nonFachEarly, v)
				}
			}
			if isLateShift(s) {
				late = append(late, v)
				if e.Qualification == HF {
					fachLateHF = append(fachLateHF, v)
				}
			}
			if s == ShiftB {
				bVars = append(bVars, v)
				if e.Qualification == HF {
					hfB = append(hfB, v)
				}
			}
			if (s == ShiftS || s == ShiftVS) && e.Qualification.IsFach() {
				fachPureLate = append(fachPureLate, v)
			}
		}
	}
	return
}

// atLeast emits lhs + slack >= required, bounding slack at [0, boundHint]
// so the solver has a finite feasible region even for an empty lhs.
func atLeast(m mip.Model, slacks *Slacks, id string, vars []mip.Bool, required, boundHint float64) {
	slack := m.NewFloat(0, math.Max(boundHint, required))
	c := m.NewConstraint(mip.GreaterThanOrEqual, required)
	for _, v := range vars {
		c.NewTerm(1.0, v)
	}
	c.NewTerm(1.0, slack)
	slacks.add(id, slack)
}

// atMost emits lhs - slack <= allowed.
func atMost(m mip.Model, slacks *Slacks, id string, vars []mip.Bool, allowed, boundHint float64) {
	slack := m.NewFloat(0, math.Max(boundHint, 1))
	c := m.NewConstraint(mip.LessThanOrEqual, allowed)
	for _, v := range vars {
		c.NewTerm(1.0, v)
	}
	c.NewTerm(-1.0, slack)
	slacks.add(id, slack)
}

// compileConsecutiveDayRule emits S9: no employee works all 5 days of a
// rolling window without the following two in-month days being off,
// unless that violation is absorbed by slack.
func (b *Builder) compileConsecutiveDayRule(m mip.Model, slacks *Slacks) {
	n := b.Cal.NumDays()
	window := b.Config.MaxConsecutiveDays
	for _, e := range b.Employees {
		for d := 1; d+window-1 <= n; d++ {
			dayVars := make([][]mip.Bool, window)
			for j := 0; j < window; j++ {
				for _, s := range RegularShiftCodes {
					if v, ok := b.EmployeeVar(e.ID, d+j, s); ok {
						dayVars[j] = append(dayVars[j], v)
					}
				}
			}

			z := m.NewBool()
			for j := 0; j < window; j++ {
				c := m.NewConstraint(mip.LessThanOrEqual, 0.0)
				c.NewTerm(1.0, z)
				for _, v := range dayVars[j] {
					c.NewTerm(-1.0, v)
				}
			}
			sumC := m.NewConstraint(mip.LessThanOrEqual, float64(window-1))
			sumC.NewTerm(-1.0, z)
			for _, vs := range dayVars {
				for _, v := range vs {
					sumC.NewTerm(1.0, v)
				}
			}

			for _, offset := range []int{window, window + 1} {
				followDay := d + offset
				if followDay > n {
					continue
				}
				var followVars []mip.Bool
				for _, s := range RegularShiftCodes {
					if v, ok := b.EmployeeVar(e.ID, followDay, s); ok {
						followVars = append(followVars, v)
					}
				}
				if len(followVars) == 0 {
					continue
				}
				slack := m.NewFloat(0, 1)
				c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
				for _, v := range followVars {
					c.NewTerm(1.0, v)
				}
				c.NewTerm(1.0, z)
				c.NewTerm(-1.0, slack)
				slacks.add("S9", slack)
			}
		}
	}
}

// compileTargetWorkdays emits S10: worked + credited absence + under -
// over = target, with over <= excessive.
func (b *Builder) compileTargetWorkdays(m mip.Model, slacks *Slacks) {
	n := b.Cal.NumDays()
	for _, e := range b.Employees {
		var worked []mip.Bool
		for _, day := range b.Cal.Days {
			for _, s := range RegularShiftCodes {
				if v, ok := b.EmployeeVar(e.ID, day.Number, s); ok {
					worked = append(worked, v)
				}
			}
			if v, ok := b.OfficeVar(e.ID, day.Number); ok {
				worked = append(worked, v)
			}
		}

		credited := b.Absences.CreditedDays(e.ID)
		target := e.MonthlyTarget

		under := m.NewFloat(0, float64(n))
		over := m.NewFloat(0, float64(n))
		excessive := m.NewFloat(0, float64(n))

		eq := m.NewConstraint(mip.Equal, float64(target-credited))
		for _, v := range worked {
			eq.NewTerm(1.0, v)
		}
		eq.NewTerm(1.0, under)
		eq.NewTerm(-1.0, over)

		bound := m.NewConstraint(mip.LessThanOrEqual, 0.0)
		bound.NewTerm(1.0, over)
		bound.NewTerm(-1.0, excessive)

		slacks.add("S10-under", under)
		slacks.add("S10-over", over)
		slacks.add("S10-excess", excessive)
	}
}
