/*
Package repositories - Holiday Data Access Layer

==============================================================================
FILE: internal/repositories/holiday_repository.go
==============================================================================

DESCRIPTION:
    Stores the regional public-holiday calendar. Concrete backing for the
    scheduler's HolidayProvider collaborator: IsHoliday(date) is
    what internal/scheduling's Calendar component calls while enumerating
    the days of a month.

==============================================================================
*/

package repositories

import (
	"time"

	"gorm.io/gorm"

	"dienstplan/internal/models"
)

// HolidayRepository handles public-holiday persistence.
type HolidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// Create records a new holiday.
func (r *HolidayRepository) Create(h *models.Holiday) error {
	return r.db.Create(h).Error
}

// Delete removes a holiday by date.
func (r *HolidayRepository) Delete(date time.Time) error {
	return r.db.Where("date = ?", date).Delete(&models.Holiday{}).Error
}

// ListForMonth returns every holiday falling within the given year/month.
func (r *HolidayRepository) ListForMonth(year int, month time.Month) ([]models.Holiday, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	var holidays []models.Holiday
	err := r.db.Where("date >= ? AND date < ?", start, end).Order("date ASC").Find(&holidays).Error
	return holidays, err
}

// IsHoliday reports whether the given date is a recorded public holiday,
// the HolidayProvider.is_holiday(date) collaborator call.
func (r *HolidayRepository) IsHoliday(date time.Time) (bool, error) {
	var count int64
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	err := r.db.Model(&models.Holiday{}).Where("date = ?", d).Count(&count).Error
	return count > 0, err
}
