/*
Package models - Ward Roster Optimizer Data Models

==============================================================================
FILE: internal/models/shift.go
==============================================================================

DESCRIPTION:
    Defines the shift catalog: the closed set of assignable shift codes the
    scheduler is allowed to place on the roster, plus their category
    (early / late / split / office).

USER PERSPECTIVE:
    - HR seeds this table once; the seven codes below are the only shifts
      the scheduler ever assigns.
    - The category drives which daily-coverage soft constraint a shift
      contributes to (early vs. late groups; split counts toward both).

DEVELOPER GUIDELINES:
    ❌  DO NOT add new codes without updating internal/scheduling — the
        constraint compiler switches on these exact strings.
    ✅  OK to modify: Description, DisplayOrder.

==============================================================================
*/
package models

import "gorm.io/gorm"

// ShiftCategory classifies a shift code for coverage accounting.
type ShiftCategory string

const (
	ShiftCategoryEarly  ShiftCategory = "early"
	ShiftCategoryLate   ShiftCategory = "late"
	ShiftCategorySplit  ShiftCategory = "split"
	ShiftCategoryOffice ShiftCategory = "office"
)

// Shift codes the scheduler assigns. internal/scheduling/model declares
// the same strings as its own constants.
const (
	ShiftCodeB     = "B Dienst"
	ShiftCodeC     = "C Dienst"
	ShiftCodeVS    = "VS Dienst"
	ShiftCodeS     = "S Dienst"
	ShiftCodeBS    = "BS Dienst"
	ShiftCodeC4    = "C4 Dienst"
	ShiftCodeBuero = "Bü Dienst"
)

// Shift is a row in the assignable shift catalog.
type Shift struct {
	BaseModel
	Code        string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Description string        `gorm:"type:varchar(255)" json:"description,omitempty"`
	Category    ShiftCategory `gorm:"type:varchar(20);not null;check:category IN ('early','late','split','office')" json:"category"`
	DisplayOrder int          `gorm:"default:0" json:"display_order"`
	IsActive    bool          `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name
func (Shift) TableName() string {
	return "shifts"
}

// BeforeCreate validates the shift code belongs to the closed catalog.
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.Code == "" {
		return ErrCodeRequired
	}
	if !IsAssignableShiftCode(s.Code) {
		return ErrInvalidShiftCode
	}
	return nil
}

// DefaultShiftCatalog is the closed set of seven assignable shift codes,
// inserted by ShiftService.SeedDefaultShifts when the table is empty.
func DefaultShiftCatalog() []Shift {
	return []Shift{
		{Code: ShiftCodeB, Description: "primary morning shift", Category: ShiftCategoryEarly, DisplayOrder: 1},
		{Code: ShiftCodeC, Description: "morning shift", Category: ShiftCategoryEarly, DisplayOrder: 2},
		{Code: ShiftCodeVS, Description: "late shift", Category: ShiftCategoryLate, DisplayOrder: 3},
		{Code: ShiftCodeS, Description: "late shift", Category: ShiftCategoryLate, DisplayOrder: 4},
		{Code: ShiftCodeBS, Description: "split shift", Category: ShiftCategorySplit, DisplayOrder: 5},
		{Code: ShiftCodeC4, Description: "split shift", Category: ShiftCategorySplit, DisplayOrder: 6},
		{Code: ShiftCodeBuero, Description: "office duty, Leitung only, weekdays only", Category: ShiftCategoryOffice, DisplayOrder: 7},
	}
}

// IsAssignableShiftCode reports whether code is one of the seven codes the
// scheduler may assign.
func IsAssignableShiftCode(code string) bool {
	switch code {
	case ShiftCodeB, ShiftCodeC, ShiftCodeVS, ShiftCodeS, ShiftCodeBS, ShiftCodeC4, ShiftCodeBuero:
		return true
	}
	return false
}
