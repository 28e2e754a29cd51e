/*
Package model - Ward Roster Optimizer Scheduling Core

==============================================================================
FILE: internal/scheduling/model/objective.go
==============================================================================

DESCRIPTION:
    The Objective Assembler: turns the Constraint
    Compiler's slack variables and the Variable Builder's assignment
    order into the single linear minimization objective, weighted by the
    priority ladder in Weights. This weighted sum stands in for true
    lexicographic optimization but is not strictly lexicographic: with
    the default weights, several lower-tier violations can outweigh one
    higher-tier violation (two tier-2 violations at 4000 exceed one
    tier-1 violation at 5000). See DESIGN.md for the open-question
    decision.

==============================================================================
*/
package model

// tierWeight maps a soft-constraint ID to its objective coefficient.
func tierWeight(id string, w Weights) float64 {
	switch id {
	case "S2", "S5", "S7":
		return w.QualificationComposition
	case "S1", "S6":
		return w.GroupCoverage
	case "S3", "S4":
		return w.NonFachAndBFloor
	case "S10-excess":
		return w.ExcessiveWorkdays
	case "S9":
		return w.ConsecutiveDays
	case "S10-under":
		return w.UnderTarget
	case "S8":
		return w.ExtraLateFach
	case "S10-over":
		// Balancing term only; its cost is carried entirely by
		// S10-excess via the over <= excessive constraint.
		return 0
	default:
		return 0
	}
}

// AssembleObjective adds every slack's weighted term, then the
// shift-preference and tie-break terms over every assignment variable,
// to the Builder's model objective. Must run after CompileHardConstraints
// and CompileSoftConstraints.
func (b *Builder) AssembleObjective(slacks *Slacks) {
	obj := b.Model.Objective()
	w := b.Config.Weights

	for id, vars := range slacks.ByID {
		weight := tierWeight(id, w)
		if weight == 0 {
			continue
		}
		for _, v := range vars {
			obj.NewTerm(weight, v)
		}
	}

	for _, k := range b.AssignOrder {
		v := b.X.Get(k)
		coef := shiftPreference(k.Shift, w) + w.TieBreak*float64(b.OrderIndex[k])
		obj.NewTerm(coef, v)
	}
}

// shiftPreference returns the tier-8 cost for assigning shift code s,
// ranking early < late < split.
func shiftPreference(s string, w Weights) float64 {
	switch {
	case isSplitShift(s):
		return w.PreferenceSplit
	case isLateShift(s):
		return w.PreferenceLate
	case isEarlyShift(s):
		return w.PreferenceEarly
	default:
		return 0
	}
}
