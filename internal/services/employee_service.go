/*
Package services - Employee Management Service

==============================================================================
FILE: internal/services/employee_service.go
==============================================================================

DESCRIPTION:
    Manages the staff roster: CRUD over Employee records, qualification
    changes, and bulk import from a spreadsheet. The spreadsheet import is
    the concrete implementation of the scheduling core's "tabular input
    parsing" collaborator — it turns a roster spreadsheet into
    Employee rows plus the raw per-kind absence strings the Absence
    Expander later tokenizes.

USER PERSPECTIVE:
    - HR creates and edits employee records (qualification, monthly target)
    - Bulk-import a month's roster spreadsheet instead of manual entry
    - List/search employees, filter by qualification or active status

SYNTAX EXPLANATION:
    - ImportFromSpreadsheet expects one row per employee on a sheet named
      "Employees", columns: EmployeeNumber, FirstName, LastName,
      Qualification, MonthlyTarget, Pensum, SL, Fe, UW, w. The SL/Fe/UW/w
      columns hold the raw token strings (e.g. "5.2.,12.2.-15.2.") that
      internal/scheduling/absence parses; they are stored as-is.

==============================================================================
*/
package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"dienstplan/internal/dtos"
	apperr "dienstplan/internal/errors"
	"dienstplan/internal/models"
	"dienstplan/internal/repositories"
)

// EmployeeService handles employee management business logic
type EmployeeService struct {
	employeeRepo *repositories.EmployeeRepository
	absenceRepo  *repositories.AbsenceRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo *repositories.EmployeeRepository, absenceRepo *repositories.AbsenceRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, absenceRepo: absenceRepo}
}

// Create creates a new employee
func (s *EmployeeService) Create(req dtos.EmployeeRequest) (*dtos.EmployeeResponse, error) {
	if exists, err := s.employeeRepo.ExistsByEmployeeNumber(req.EmployeeNumber); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	} else if exists {
		return nil, apperr.ErrEmployeeNumberExists
	}

	employee := &models.Employee{
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Qualification:  models.Qualification(req.Qualification),
		MonthlyTarget:  req.MonthlyTarget,
		Pensum:         req.Pensum,
		Active:         true,
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}
	if employee.Pensum == 0 {
		employee.Pensum = 100
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}

	return toEmployeeResponse(employee), nil
}

// GetByID fetches a single employee
func (s *EmployeeService) GetByID(id uuid.UUID) (*dtos.EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	return toEmployeeResponse(employee), nil
}

// Update updates an existing employee
func (s *EmployeeService) Update(id uuid.UUID, req dtos.EmployeeRequest) (*dtos.EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}

	if req.EmployeeNumber != employee.EmployeeNumber {
		if exists, err := s.employeeRepo.ExistsByEmployeeNumber(req.EmployeeNumber); err != nil {
			return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
		} else if exists {
			return nil, apperr.ErrEmployeeNumberExists
		}
	}

	employee.EmployeeNumber = req.EmployeeNumber
	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Qualification = models.Qualification(req.Qualification)
	employee.MonthlyTarget = req.MonthlyTarget
	if req.Pensum > 0 {
		employee.Pensum = req.Pensum
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}

	return toEmployeeResponse(employee), nil
}

// Delete soft-deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.employeeRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperr.ErrNotFound
		}
		return apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	if err := s.employeeRepo.Delete(id); err != nil {
		return apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	return nil
}

// List returns a paginated, filtered employee list
func (s *EmployeeService) List(req dtos.EmployeeSearchRequest) (*dtos.EmployeeListResponse, error) {
	filters := map[string]interface{}{}
	if req.Qualification != "" {
		filters["qualification"] = req.Qualification
	}
	if req.Search != "" {
		filters["search"] = req.Search
	}
	if req.ActiveOnly {
		filters["active_only"] = true
	}

	page, pageSize := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	employees, total, err := s.employeeRepo.List(page, pageSize, filters)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}

	out := make([]dtos.EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, *toEmployeeResponse(&employees[i]))
	}

	return &dtos.EmployeeListResponse{
		Employees: out,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// UpdateQualification changes an employee's qualification in place
func (s *EmployeeService) UpdateQualification(id uuid.UUID, req dtos.UpdateQualificationRequest) error {
	qual := models.Qualification(req.Qualification)
	if !qual.IsValid() {
		return apperr.ErrInvalidQualification
	}
	if err := s.employeeRepo.UpdateQualification(id, qual); err != nil {
		return apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	return nil
}

// ListActiveForScheduling returns the active employees as persisted
// models.Employee rows.
func (s *EmployeeService) ListActiveForScheduling() ([]models.Employee, error) {
	employees, err := s.employeeRepo.ListActive()
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	return employees, nil
}

func toEmployeeResponse(e *models.Employee) *dtos.EmployeeResponse {
	return &dtos.EmployeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Qualification:  string(e.Qualification),
		MonthlyTarget:  e.MonthlyTarget,
		Pensum:         e.Pensum,
		Active:         e.Active,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// employeeSheetColumns is the fixed column order ImportFromSpreadsheet
// expects on the "Employees" sheet.
var employeeSheetColumns = []string{
	"EmployeeNumber", "FirstName", "LastName", "Qualification",
	"MonthlyTarget", "Pensum", "SL", "Fe", "UW", "w",
}

// ImportFromSpreadsheet bulk-loads (or updates) employees and their raw
// monthly absence strings from a roster spreadsheet. This is the
// "tabular input parsing" collaborator: one row per employee on a sheet
// named "Employees", with SL/Fe/UW/w columns holding the raw token
// strings internal/scheduling/absence later tokenizes.
func (s *EmployeeService) ImportFromSpreadsheet(r io.Reader, year, month int) (*dtos.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.ErrInvalidInput.WithMessage(fmt.Sprintf("could not parse spreadsheet: %v", err))
	}
	defer f.Close()

	rows, err := f.GetRows("Employees")
	if err != nil {
		return nil, apperr.ErrInvalidInput.WithMessage("spreadsheet must contain a sheet named 'Employees'")
	}
	if len(rows) == 0 {
		return nil, apperr.ErrInvalidInput.WithMessage("Employees sheet is empty")
	}

	header := rows[0]
	colIndex := make(map[string]int, len(employeeSheetColumns))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}
	for _, required := range employeeSheetColumns[:5] { // all but Pensum/absences are required
		if _, ok := colIndex[required]; !ok {
			return nil, apperr.ErrInvalidInput.WithMessage(fmt.Sprintf("missing required column %q", required))
		}
	}

	result := &dtos.ImportResult{}

	for rowNum, row := range rows[1:] {
		cell := func(col string) string {
			idx, ok := colIndex[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		employeeNumber := cell("EmployeeNumber")
		if employeeNumber == "" {
			result.Skipped++
			continue
		}

		target, err := strconv.Atoi(cell("MonthlyTarget"))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid MonthlyTarget", rowNum+2))
			result.Skipped++
			continue
		}

		qual := models.Qualification(cell("Qualification"))
		if !qual.IsValid() {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid Qualification %q", rowNum+2, cell("Qualification")))
			result.Skipped++
			continue
		}

		pensum := 100.0
		if p := cell("Pensum"); p != "" {
			if parsed, err := strconv.ParseFloat(p, 64); err == nil {
				pensum = parsed
			}
		}

		employee, err := s.employeeRepo.FindByEmployeeNumber(employeeNumber)
		if err == gorm.ErrRecordNotFound {
			employee = &models.Employee{
				EmployeeNumber: employeeNumber,
				Active:         true,
			}
			employee.FirstName = cell("FirstName")
			employee.LastName = cell("LastName")
			employee.Qualification = qual
			employee.MonthlyTarget = target
			employee.Pensum = pensum
			if err := s.employeeRepo.Create(employee); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum+2, err))
				result.Skipped++
				continue
			}
			result.Created++
		} else if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum+2, err))
			result.Skipped++
			continue
		} else {
			employee.FirstName = cell("FirstName")
			employee.LastName = cell("LastName")
			employee.Qualification = qual
			employee.MonthlyTarget = target
			employee.Pensum = pensum
			if err := s.employeeRepo.Update(employee); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum+2, err))
				result.Skipped++
				continue
			}
			result.Updated++
		}

		for _, kind := range []models.AbsenceKind{models.AbsenceKindSL, models.AbsenceKindFe, models.AbsenceKindUW, models.AbsenceKindW} {
			tokens := cell(string(kind))
			if tokens == "" {
				continue
			}
			if err := s.absenceRepo.UpsertTokens(employee.ID, year, month, kind, tokens); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: absence tokens for %s: %v", rowNum+2, kind, err))
			}
		}
	}

	return result, nil
}
