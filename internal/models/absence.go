/*
Package models - Ward Roster Optimizer Data Models

==============================================================================
FILE: internal/models/absence.go
==============================================================================

DESCRIPTION:
    Defines absence-related models. An AbsenceRecord is the raw,
    un-expanded per-employee absence string the scheduler's Absence
    Expander consumes (one string per employee per kind, per month).
    AbsenceRequest is the approval workflow that produces those raw
    strings: an employee or HR submits a request, it is approved or
    rejected, and an approved request is folded into the employee's raw
    absence string for the affected month.

USER PERSPECTIVE:
    - Absence kinds are a closed set: SL (school), Fe (vacation),
      UW (unpaid), w (Wunschfrei / requested day off).
    - Only Fe and SL count as worked days for the monthly target; this
      asymmetry is load-bearing for the scheduler and must not change.
    - Requests flow PENDING -> APPROVED or PENDING -> REJECTED. There is
      no multi-stage approval chain; either HR/admin decides.

DEVELOPER GUIDELINES:
    ❌  DO NOT add new absence kinds without updating the scheduler's
        absence expander and the target-workday credit rule.
    ✅  OK to modify: Reason validation, request status transitions.

==============================================================================
*/
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsenceKind is the closed set of non-assignable absence codes.
type AbsenceKind string

const (
	AbsenceKindSL AbsenceKind = "SL" // school
	AbsenceKindFe AbsenceKind = "Fe" // vacation (Ferien)
	AbsenceKindUW AbsenceKind = "UW" // unpaid
	AbsenceKindW  AbsenceKind = "w"  // Wunschfrei, requested day off
)

// IsValid reports whether k is one of the four recognized absence kinds.
func (k AbsenceKind) IsValid() bool {
	switch k {
	case AbsenceKindSL, AbsenceKindFe, AbsenceKindUW, AbsenceKindW:
		return true
	}
	return false
}

// CreditsWorkday reports whether this absence kind counts as a worked day
// against the employee's monthly target. Only Fe and SL do; this
// asymmetry must be preserved exactly.
func (k AbsenceKind) CreditsWorkday() bool {
	return k == AbsenceKindFe || k == AbsenceKindSL
}

// AbsenceRecord stores the raw, un-expanded absence string for one
// employee, one kind, one month. The token grammar ("DD.MM." singles,
// "DD.MM.-DD.MM." ranges, comma-separated) is parsed by
// internal/scheduling/absence, not here; this model is the raw_strings
// persistence boundary the scheduler's absence repository reads from.
type AbsenceRecord struct {
	BaseModel
	EmployeeID uuid.UUID   `gorm:"type:text;not null;uniqueIndex:idx_absence_emp_month_kind" json:"employee_id"`
	Year       int         `gorm:"not null;uniqueIndex:idx_absence_emp_month_kind" json:"year"`
	Month      int         `gorm:"not null;uniqueIndex:idx_absence_emp_month_kind" json:"month"`
	Kind       AbsenceKind `gorm:"type:varchar(4);not null;uniqueIndex:idx_absence_emp_month_kind" json:"kind"`
	RawTokens  string      `gorm:"type:text" json:"raw_tokens"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName specifies the table name
func (AbsenceRecord) TableName() string {
	return "absence_records"
}

// BeforeCreate validates the absence kind before insert.
func (a *AbsenceRecord) BeforeCreate(tx *gorm.DB) error {
	if !a.Kind.IsValid() {
		return ErrInvalidAbsenceKind
	}
	return nil
}

// RequestStatus is the status of an absence request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// AbsenceRequest represents a request for an absence of a given kind over
// a date range. Once approved, its range is merged into the employee's
// AbsenceRecord.RawTokens for the covered month(s).
type AbsenceRequest struct {
	BaseModel
	EmployeeID uuid.UUID     `gorm:"type:text;not null" json:"employee_id"`
	Kind       AbsenceKind   `gorm:"type:varchar(4);not null" json:"kind"`
	StartDate  time.Time     `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time     `gorm:"type:date;not null" json:"end_date"`
	Reason     string        `gorm:"type:text" json:"reason,omitempty"`
	Status     RequestStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`

	DecidedBy *uuid.UUID `gorm:"type:text" json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`

	Employee       *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	DecidedByUser  *User     `gorm:"foreignKey:DecidedBy" json:"decided_by_user,omitempty"`
}

// TableName specifies the table name
func (AbsenceRequest) TableName() string {
	return "absence_requests"
}

// BeforeCreate defaults status and validates the date range and kind.
func (ar *AbsenceRequest) BeforeCreate(tx *gorm.DB) error {
	if ar.Status == "" {
		ar.Status = RequestStatusPending
	}
	return ar.Validate()
}

// Validate checks the request's kind and date range.
func (ar *AbsenceRequest) Validate() error {
	if !ar.Kind.IsValid() {
		return ErrInvalidAbsenceKind
	}
	if ar.EndDate.Before(ar.StartDate) {
		return errors.New("end date cannot be before start date")
	}
	return nil
}

// IsDecided reports whether the request has left the PENDING state.
func (ar *AbsenceRequest) IsDecided() bool {
	return ar.Status == RequestStatusApproved || ar.Status == RequestStatusRejected
}
