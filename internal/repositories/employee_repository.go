/*
Package repositories - Employee Data Access Layer

==============================================================================
FILE: internal/repositories/employee_repository.go
==============================================================================

DESCRIPTION:
    Data access layer for the staff roster: employees, their qualification,
    and contractual monthly workday target. This is the concrete backing
    for the scheduler's EmployeeRepo collaborator.

USER PERSPECTIVE:
    - When HR creates or updates employee records, all data flows through
      this repository
    - Supports employee search and filtering by qualification/active status
    - ListActive() is what the roster service feeds to the scheduler

DEVELOPER GUIDELINES:
    ✅  OK to modify: Adding new query methods, filtering options
    ⚠️  CAUTION: EmployeeNumber must stay unique; referential integrity with
        absence records and roster assignments
    📝  Best practices: Always filter to Active employees before handing
        the list to internal/scheduling

SYNTAX EXPLANATION:
    - EmployeeRepository: Main struct holding the GORM database connection
    - Create(employee *models.Employee): Inserts new employee record
    - FindByID(id uuid.UUID): Retrieves employee by ID
    - LOWER(first_name) LIKE ?: Case-insensitive search pattern
    - ExistsByEmployeeNumber: Uniqueness validation method returning boolean

==============================================================================
*/

package repositories

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dienstplan/internal/models"
)

// EmployeeRepository handles employee database operations
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// FindByID finds an employee by ID
func (r *EmployeeRepository) FindByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	return &employee, err
}

// FindByEmployeeNumber finds an employee by employee number
func (r *EmployeeRepository) FindByEmployeeNumber(employeeNumber string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("employee_number = ?", employeeNumber).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete soft deletes an employee
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}

// List lists employees with pagination and filtering
func (r *EmployeeRepository) List(page, pageSize int, filters map[string]interface{}) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := r.db.Model(&models.Employee{})

	if qualification, ok := filters["qualification"]; ok {
		query = query.Where("qualification = ?", qualification)
	}
	if search, ok := filters["search"]; ok {
		searchStr := "%" + strings.ToLower(search.(string)) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR employee_number LIKE ?",
			searchStr, searchStr, searchStr,
		)
	}
	if activeOnly, ok := filters["active_only"]; ok && activeOnly.(bool) {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query = query.Limit(pageSize).Offset(offset)

	err := query.Order("employee_number ASC").Find(&employees).Error

	return employees, total, err
}

// ListActive returns every active employee, the input the roster service
// feeds to internal/scheduling.Generate.
func (r *EmployeeRepository) ListActive() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("active = ?", true).Order("employee_number ASC").Find(&employees).Error
	return employees, err
}

// GetActiveCount returns count of active employees
func (r *EmployeeRepository) GetActiveCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}

// UpdateQualification updates an employee's qualification
func (r *EmployeeRepository) UpdateQualification(id uuid.UUID, qualification models.Qualification) error {
	return r.db.Model(&models.Employee{}).
		Where("id = ?", id).
		Update("qualification", qualification).Error
}

// ExistsByEmployeeNumber checks if an employee exists by employee number
func (r *EmployeeRepository) ExistsByEmployeeNumber(employeeNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("employee_number = ?", employeeNumber).
		Count(&count).Error
	return count > 0, err
}
