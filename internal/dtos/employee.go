/*
Package dtos - Employee Data Transfer Objects

==============================================================================
FILE: internal/dtos/employee.go
==============================================================================

DESCRIPTION:
    Defines request and response structures for employee management: the
    staff roster the scheduler assigns shifts to. Each employee carries a
    qualification (Leitung/HF/PH/Ausbildung 1/Ausbildung 2) and a
    contractual monthly workday target.

USER PERSPECTIVE:
    - Shapes the "Mitarbeiter" employee form in the frontend
    - Qualification drives which shifts the scheduler may assign
    - MonthlyTarget feeds the roster's S10 target-workday soft constraint

SYNTAX EXPLANATION:
    - EmployeeRequest: Create/update input from the frontend
    - EmployeeResponse: Full employee data returned to the frontend
    - EmployeeSearchRequest: Pagination + filter input for the list endpoint

==============================================================================
*/
package dtos

import "time"

// EmployeeRequest represents employee creation/update request data
type EmployeeRequest struct {
	EmployeeNumber string  `json:"employee_number" binding:"required,max=50"`
	FirstName      string  `json:"first_name" binding:"required,max=100"`
	LastName       string  `json:"last_name" binding:"required,max=100"`
	Qualification  string  `json:"qualification" binding:"required,oneof='Leitung' 'HF' 'PH' 'Ausbildung 1' 'Ausbildung 2'"`
	MonthlyTarget  int     `json:"monthly_target" binding:"required,min=0"`
	Pensum         float64 `json:"pensum" binding:"omitempty,min=0,max=100"`
	Active         *bool   `json:"active,omitempty"`
}

// EmployeeResponse represents employee data in API responses
type EmployeeResponse struct {
	ID             string    `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	Qualification  string    `json:"qualification"`
	MonthlyTarget  int       `json:"monthly_target"`
	Pensum         float64   `json:"pensum"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EmployeeSearchRequest represents employee search/filter parameters
type EmployeeSearchRequest struct {
	Page          int    `form:"page,default=1" binding:"min=1"`
	PageSize      int    `form:"page_size,default=20" binding:"min=1,max=100"`
	Qualification string `form:"qualification"`
	Search        string `form:"search"`
	ActiveOnly    bool   `form:"active_only,default=false"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// UpdateQualificationRequest changes an employee's qualification in place
type UpdateQualificationRequest struct {
	Qualification string `json:"qualification" binding:"required,oneof='Leitung' 'HF' 'PH' 'Ausbildung 1' 'Ausbildung 2'"`
}

// ImportResult summarizes a spreadsheet employee import
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
