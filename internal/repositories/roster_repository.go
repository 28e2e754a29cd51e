/*
Package repositories - Roster Persistence Layer

==============================================================================
FILE: internal/repositories/roster_repository.go
==============================================================================

DESCRIPTION:
    Persists the result of one scheduler invocation: the RosterRun header
    (status, solve time, objective value, slack report) and its
    RosterAssignment rows, following a run-header-plus-line-items pattern:
    one header row per invocation, child rows for the line items.

==============================================================================
*/

package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dienstplan/internal/models"
)

// RosterRepository handles roster run and assignment persistence.
type RosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// CreateRun persists a RosterRun together with its assignments in a single
// transaction.
func (r *RosterRepository) CreateRun(run *models.RosterRun) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Assignments").Create(run).Error; err != nil {
			return err
		}
		for i := range run.Assignments {
			run.Assignments[i].RosterRunID = run.ID
		}
		if len(run.Assignments) > 0 {
			if err := tx.CreateInBatches(run.Assignments, 200).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindRunByID loads a RosterRun with its assignments.
func (r *RosterRepository) FindRunByID(id uuid.UUID) (*models.RosterRun, error) {
	var run models.RosterRun
	err := r.db.Preload("Assignments").Preload("Assignments.Employee").First(&run, "id = ?", id).Error
	return &run, err
}

// LatestRunForMonth returns the most recent roster run for a given month,
// if one exists.
func (r *RosterRepository) LatestRunForMonth(year, month int) (*models.RosterRun, error) {
	var run models.RosterRun
	err := r.db.Preload("Assignments").
		Where("year = ? AND month = ?", year, month).
		Order("created_at DESC").
		First(&run).Error
	return &run, err
}

// ListRuns returns roster runs ordered by most recent first.
func (r *RosterRepository) ListRuns(limit int) ([]models.RosterRun, error) {
	var runs []models.RosterRun
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&runs).Error
	return runs, err
}
