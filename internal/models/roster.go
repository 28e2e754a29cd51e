/*
Package models - Ward Roster Optimizer Data Models

==============================================================================
FILE: internal/models/roster.go
==============================================================================

DESCRIPTION:
    Persists the result of one internal/scheduling.Generate invocation: the
    inputs it ran against, the resulting (employee, day) -> shift code
    assignments, and the slack report used for diagnostics. Adapted from
    a payroll-period-style run-tracking pattern: a run header plus
    child rows, one per line item.

USER PERSPECTIVE:
    - Every "generate roster" action creates one RosterRun.
    - RosterAssignment rows are the roster grid rendered by the TUI,
      exported to PDF/Excel, or read back over the API.
    - SlackReport captures which soft constraints had to be relaxed, so a
      planner can see why the roster looks the way it does even though it
      is still the best feasible roster found.

==============================================================================
*/
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RosterRunStatus is the outcome of a generation attempt.
type RosterRunStatus string

const (
	RosterRunStatusOptimal    RosterRunStatus = "optimal"
	RosterRunStatusFeasible   RosterRunStatus = "feasible"
	RosterRunStatusInfeasible RosterRunStatus = "infeasible"
	RosterRunStatusTimeout    RosterRunStatus = "timeout"
	RosterRunStatusError      RosterRunStatus = "error"
)

// RosterRun records one invocation of the scheduler for a given month.
type RosterRun struct {
	BaseModel
	Year            int             `gorm:"not null" json:"year"`
	Month           int             `gorm:"not null" json:"month"`
	Status          RosterRunStatus `gorm:"type:varchar(20);not null" json:"status"`
	SolverTimeMs    int64           `gorm:"not null" json:"solver_time_ms"`
	ObjectiveValue  float64         `json:"objective_value"`
	SlackReport     datatypes.JSON  `gorm:"type:jsonb" json:"slack_report,omitempty"`
	Diagnostics     datatypes.JSON  `gorm:"type:jsonb" json:"diagnostics,omitempty"`
	RequestedByID   *uuid.UUID      `gorm:"type:text" json:"requested_by_id,omitempty"`

	RequestedBy *User              `gorm:"foreignKey:RequestedByID" json:"requested_by,omitempty"`
	Assignments []RosterAssignment `gorm:"foreignKey:RosterRunID" json:"assignments,omitempty"`
}

// TableName specifies the table name
func (RosterRun) TableName() string {
	return "roster_runs"
}

// RosterAssignment is one (employee, day) -> shift code cell of a roster.
type RosterAssignment struct {
	BaseModel
	RosterRunID uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_roster_assignment_cell" json:"roster_run_id"`
	EmployeeID  uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_roster_assignment_cell" json:"employee_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_roster_assignment_cell" json:"date"`
	ShiftCode   string    `gorm:"type:varchar(20);not null" json:"shift_code"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName specifies the table name
func (RosterAssignment) TableName() string {
	return "roster_assignments"
}
