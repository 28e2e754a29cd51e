/*
Package repositories - Absence Data Access Layer

==============================================================================
FILE: internal/repositories/absence_repository.go
==============================================================================

DESCRIPTION:
    Manages absence data: the raw per-employee, per-kind, per-month token
    strings the scheduler's Absence Expander consumes, plus the approval
    workflow (AbsenceRequest) that produces them. This is the concrete
    backing for the scheduler's AbsenceRepo collaborator.

USER PERSPECTIVE:
    - When HR records an employee's vacation/school/unpaid/Wunschfrei days,
      data flows through this repository
    - RawStringsForMonth(employeeID, year, month) is what the roster service
      hands to internal/scheduling/absence before generation

DEVELOPER GUIDELINES:
    ✅  OK to modify: Adding query methods for different filtering
    ⚠️  CAUTION: AbsenceRecord is keyed by (employee, year, month, kind);
        merging an approved request into RawTokens must append, not replace,
        existing tokens for that key

==============================================================================
*/

package repositories

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dienstplan/internal/models"
)

// AbsenceRepository handles absence record and absence request persistence.
type AbsenceRepository struct {
	db *gorm.DB
}

// NewAbsenceRepository creates a new absence repository
func NewAbsenceRepository(db *gorm.DB) *AbsenceRepository {
	return &AbsenceRepository{db: db}
}

// RawStringsForMonth returns the {SL, Fe, UW, w} raw token strings for one
// employee in one month, the exact shape AbsenceRepo.raw_strings
// collaborator interface requires.
func (r *AbsenceRepository) RawStringsForMonth(employeeID uuid.UUID, year, month int) (map[models.AbsenceKind]string, error) {
	var records []models.AbsenceRecord
	err := r.db.Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).Find(&records).Error
	if err != nil {
		return nil, err
	}
	out := map[models.AbsenceKind]string{}
	for _, rec := range records {
		out[rec.Kind] = rec.RawTokens
	}
	return out, nil
}

// UpsertTokens appends tokens to an employee's raw absence string for a
// given kind/month, creating the record if it does not exist yet.
func (r *AbsenceRepository) UpsertTokens(employeeID uuid.UUID, year, month int, kind models.AbsenceKind, tokens string) error {
	var record models.AbsenceRecord
	err := r.db.Where("employee_id = ? AND year = ? AND month = ? AND kind = ?", employeeID, year, month, kind).
		First(&record).Error
	if err == gorm.ErrRecordNotFound {
		record = models.AbsenceRecord{
			EmployeeID: employeeID,
			Year:       year,
			Month:      month,
			Kind:       kind,
			RawTokens:  tokens,
		}
		return r.db.Create(&record).Error
	}
	if err != nil {
		return err
	}
	if strings.TrimSpace(record.RawTokens) == "" {
		record.RawTokens = tokens
	} else {
		record.RawTokens = record.RawTokens + "," + tokens
	}
	return r.db.Save(&record).Error
}

// CreateRequest creates a new absence request (status defaults to PENDING).
func (r *AbsenceRepository) CreateRequest(req *models.AbsenceRequest) error {
	return r.db.Create(req).Error
}

// FindRequestByID finds an absence request by ID.
func (r *AbsenceRepository) FindRequestByID(id uuid.UUID) (*models.AbsenceRequest, error) {
	var req models.AbsenceRequest
	err := r.db.Preload("Employee").First(&req, "id = ?", id).Error
	return &req, err
}

// ListRequestsByStatus lists absence requests with a given status.
func (r *AbsenceRepository) ListRequestsByStatus(status models.RequestStatus) ([]models.AbsenceRequest, error) {
	var reqs []models.AbsenceRequest
	err := r.db.Preload("Employee").Where("status = ?", status).Order("created_at ASC").Find(&reqs).Error
	return reqs, err
}

// ListRequestsByEmployee lists all absence requests for one employee.
func (r *AbsenceRepository) ListRequestsByEmployee(employeeID uuid.UUID) ([]models.AbsenceRequest, error) {
	var reqs []models.AbsenceRequest
	err := r.db.Where("employee_id = ?", employeeID).Order("start_date DESC").Find(&reqs).Error
	return reqs, err
}

// UpdateRequest saves decision fields (status, decided_by, decided_at) on
// an absence request.
func (r *AbsenceRepository) UpdateRequest(req *models.AbsenceRequest) error {
	return r.db.Save(req).Error
}
