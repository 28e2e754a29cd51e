/*
Package repositories - Shift Catalog Data Access Layer

==============================================================================
FILE: internal/repositories/shift_repository.go
==============================================================================

DESCRIPTION:
    Provides data access for the closed shift-code catalog:
    B Dienst, C Dienst, VS Dienst, S Dienst, BS Dienst, C4 Dienst,
    Bü Dienst. This is the concrete backing for the scheduler's
    ShiftCatalog collaborator: codes() returns the seeded
    catalog for validation; the assignable set itself is compiled into
    internal/scheduling, not derived from this table.

USER PERSPECTIVE:
    - HR seeds this table once; the seven codes are the only shifts the
      scheduler ever assigns

DEVELOPER GUIDELINES:
    OK to modify: Add new query methods for shift filtering
    DO NOT modify: Core CRUD method signatures

==============================================================================
*/
package repositories

import (
	"dienstplan/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// FindByID finds a shift by ID
func (r *ShiftRepository) FindByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	return &shift, err
}

// FindByCode finds a shift by code
func (r *ShiftRepository) FindByCode(code string) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Where("code = ?", code).First(&shift).Error
	return &shift, err
}

// FindAll returns every catalog entry
func (r *ShiftRepository) FindAll() ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Order("display_order ASC").Find(&shifts).Error
	return shifts, err
}

// FindActive returns every active catalog entry
func (r *ShiftRepository) FindActive() ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("is_active = ?", true).Order("display_order ASC").Find(&shifts).Error
	return shifts, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete soft-deletes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Shift{}).Error
}

// ExistsByCode checks if a shift code already exists
func (r *ShiftRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Shift{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
