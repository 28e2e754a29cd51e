/*
Package services - Shift Catalog Service

==============================================================================
FILE: internal/services/shift_service.go
==============================================================================

DESCRIPTION:
    Manages the shift catalog: the closed set of seven assignable shift
    codes the scheduler places on a roster. CRUD is trimmed to the closed
    set — codes are validated against models.IsAssignableShiftCode, never
    invented by callers.

USER PERSPECTIVE:
    - HR seeds the catalog once via SeedDefaultShifts
    - The catalog is read-only from the scheduler's point of view; editing
      a shift only changes its description/display order, never its code
      or category

DEVELOPER GUIDELINES:
    OK to modify: Description, display order updates
    DO NOT modify: Code/category of an existing shift once seeded —
        internal/scheduling switches on these exact strings

==============================================================================
*/
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dienstplan/internal/models"
	"dienstplan/internal/repositories"
)

// ShiftService handles shift-catalog business logic
type ShiftService struct {
	db        *gorm.DB
	shiftRepo *repositories.ShiftRepository
}

// NewShiftService creates a new shift service
func NewShiftService(db *gorm.DB) *ShiftService {
	return &ShiftService{
		db:        db,
		shiftRepo: repositories.NewShiftRepository(db),
	}
}

// ShiftRequest represents a request to update a catalog entry's display
// metadata. Code and Category are immutable once seeded.
type ShiftRequest struct {
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// GetAllShifts returns all shifts.
func (s *ShiftService) GetAllShifts() ([]models.Shift, error) {
	return s.shiftRepo.FindAll()
}

// GetActiveShifts returns only active shifts.
func (s *ShiftService) GetActiveShifts() ([]models.Shift, error) {
	return s.shiftRepo.FindActive()
}

// GetShiftByID returns a single shift by ID.
func (s *ShiftService) GetShiftByID(id uuid.UUID) (*models.Shift, error) {
	shift, err := s.shiftRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("shift not found")
		}
		return nil, err
	}
	return shift, nil
}

// UpdateShift updates a catalog entry's display metadata.
func (s *ShiftService) UpdateShift(id uuid.UUID, req ShiftRequest) (*models.Shift, error) {
	shift, err := s.shiftRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("shift not found")
		}
		return nil, err
	}

	shift.Description = req.Description
	shift.DisplayOrder = req.DisplayOrder
	shift.IsActive = req.IsActive

	if err := s.shiftRepo.Update(shift); err != nil {
		return nil, err
	}

	return shift, nil
}

// SeedDefaultShifts seeds the closed catalog of seven assignable codes if
// it has not been seeded yet.
func (s *ShiftService) SeedDefaultShifts() error {
	shifts, err := s.shiftRepo.FindAll()
	if err != nil {
		return err
	}
	if len(shifts) > 0 {
		return nil
	}

	for _, shift := range models.DefaultShiftCatalog() {
		shift := shift
		if err := s.shiftRepo.Create(&shift); err != nil {
			return err
		}
	}

	return nil
}
