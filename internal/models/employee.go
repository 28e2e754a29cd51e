/*
Package models - Ward Roster Optimizer Data Models

==============================================================================
FILE: internal/models/employee.go
==============================================================================

DESCRIPTION:
    Defines the Employee model - the core entity the scheduler assigns
    shifts to. Holds the employee's qualification, contractual monthly
    workday target, and display pensum.

USER PERSPECTIVE:
    - Stores all employee information visible in the "Mitarbeiter" section
    - Qualification drives which shifts an employee may be assigned
        * Leitung: ward lead, weekday B Dienst or office duty only
        * HF: qualified nurse (Fach)
        * PH: non-qualified care staff
        * Ausbildung 1 / Ausbildung 2: apprentices, weekday early shifts only

DEVELOPER GUIDELINES:
    ✅  OK to modify: Add new fields (remember to update DTOs and API)
    ⚠️  CAUTION when modifying: Qualification validation, target workday math
    📝  When adding fields: Also update internal/dtos/employee.go

SYNTAX EXPLANATION:
    - type Employee struct: Defines Employee as a Go struct (like a class)
    - BaseModel: Embedded struct, gives Employee all BaseModel fields
    - `gorm:"..."`: Database column configuration
        * check:X IN (...): Database-level constraint for allowed values
    - `json:"..."`: JSON field name for API responses

RELATIONS:
    - Absences: Has many absence records
    - RosterAssignments: Has many roster assignments across runs

==============================================================================
*/
package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Qualification is the closed set of staff qualifications the scheduler
// understands. The grouping into Fach / Non-Fach / Apprentice drives most
// of the hard constraint logic in internal/scheduling.
type Qualification string

const (
	QualLeitung       Qualification = "Leitung"
	QualHF            Qualification = "HF"
	QualPH            Qualification = "PH"
	QualAusbildung1   Qualification = "Ausbildung 1"
	QualAusbildung2   Qualification = "Ausbildung 2"
)

// IsValid reports whether q is one of the closed qualification strings.
func (q Qualification) IsValid() bool {
	switch q {
	case QualLeitung, QualHF, QualPH, QualAusbildung1, QualAusbildung2:
		return true
	}
	return false
}

// IsFach reports whether the qualification belongs to the Fach group
// ({Leitung, HF}); everything else is Non-Fach.
func (q Qualification) IsFach() bool {
	return q == QualLeitung || q == QualHF
}

// IsApprentice reports whether the qualification is one of the two
// apprentice grades.
func (q Qualification) IsApprentice() bool {
	return q == QualAusbildung1 || q == QualAusbildung2
}

// Employee represents a member of staff the scheduler can assign shifts to.
type Employee struct {
	BaseModel

	EmployeeNumber string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"employee_number"`
	FirstName      string        `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string        `gorm:"type:varchar(100);not null" json:"last_name"`

	// Qualification gates which shifts the scheduler may assign this
	// employee, see Qualification and its IsFach/IsApprentice helpers.
	Qualification Qualification `gorm:"type:varchar(20);not null;check:qualification IN ('Leitung','HF','PH','Ausbildung 1','Ausbildung 2')" json:"qualification"`

	// MonthlyTarget is the contractual number of workdays the employee is
	// expected to be scheduled for in a given month (soft constraint S10).
	MonthlyTarget int `gorm:"not null;check:monthly_target >= 0" json:"monthly_target"`

	// Pensum is a display-only employment percentage; not consumed by the
	// solver, kept for the roster preview and exports.
	Pensum float64 `gorm:"type:decimal(5,2);default:100" json:"pensum"`

	Active bool `gorm:"default:true" json:"active"`
}

// TableName specifies the table name
func (Employee) TableName() string {
	return "employees"
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Validate validates employee data before it is persisted or handed to the
// scheduler.
func (e *Employee) Validate() error {
	var validationErrors []string

	if strings.TrimSpace(e.EmployeeNumber) == "" {
		validationErrors = append(validationErrors, "employee number is required")
	}
	if strings.TrimSpace(e.FirstName) == "" {
		validationErrors = append(validationErrors, "first name is required")
	}
	if strings.TrimSpace(e.LastName) == "" {
		validationErrors = append(validationErrors, "last name is required")
	}
	if !e.Qualification.IsValid() {
		validationErrors = append(validationErrors, "invalid qualification")
	}
	if e.MonthlyTarget < 0 {
		validationErrors = append(validationErrors, "monthly target must not be negative")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, "; "))
	}

	return nil
}

// BeforeSave validates employee data before saving.
func (e *Employee) BeforeSave(tx *gorm.DB) error {
	return e.Validate()
}
