/*
Package api - Ward Roster Optimizer HTTP API Handlers

==============================================================================
FILE: internal/api/employee_handler.go
==============================================================================

DESCRIPTION:
    Handles employee management endpoints: CRUD over the staff roster,
    qualification changes, and bulk import from a spreadsheet.

USER PERSPECTIVE:
    - View, create, edit, and delete employees
    - Change an employee's qualification
    - Bulk import a month's employee/absence spreadsheet

DEVELOPER GUIDELINES:
    OK to modify: Add new employee-related endpoints
    DO NOT modify: Import column order (internal/services.EmployeeService
        depends on it)

SYNTAX EXPLANATION:
    - dtos.EmployeeRequest: Data transfer object for validation
    - c.ShouldBindQuery(): Parses query parameters
    - c.Request.FormFile(): Handles multipart file upload

ENDPOINTS:
    GET    /employees - List employees with pagination/filters
    GET    /employees/:id - Get employee details
    POST   /employees - Create new employee
    PUT    /employees/:id - Update employee
    DELETE /employees/:id - Soft delete employee
    PATCH  /employees/:id/qualification - Change qualification
    POST   /employees/import - Bulk import from spreadsheet

IMPORT FILE FORMAT:
    - One row per employee on a sheet named "Employees"

==============================================================================
*/
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dienstplan/internal/dtos"
	"dienstplan/internal/services"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates new employee handler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// RegisterRoutes registers employee routes
func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	employees := router.Group("/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.POST("", h.CreateEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
		employees.PATCH("/:id/qualification", h.UpdateQualification)
		employees.POST("/import", h.ImportEmployees)
	}
}

// ListEmployees handles employee listing
// @Summary List employees
// @Description Get paginated list of employees with filtering
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param qualification query string false "Qualification filter"
// @Param search query string false "Search term"
// @Param active_only query bool false "Only active employees"
// @Success 200 {object} dtos.EmployeeListResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var req dtos.EmployeeSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": err.Error(),
		})
		return
	}

	response, err := h.employeeService.List(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetEmployee handles getting employee details
// @Summary Get employee
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} dtos.EmployeeResponse
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "invalid employee ID",
		})
		return
	}

	employee, err := h.employeeService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// CreateEmployee handles employee creation
// @Summary Create employee
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dtos.EmployeeRequest true "Employee data"
// @Success 201 {object} dtos.EmployeeResponse
// @Failure 400 {object} map[string]string
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dtos.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": err.Error(),
		})
		return
	}

	employee, err := h.employeeService.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles employee updates
// @Summary Update employee
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param request body dtos.EmployeeRequest true "Employee data"
// @Success 200 {object} dtos.EmployeeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "invalid employee ID",
		})
		return
	}

	var req dtos.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": err.Error(),
		})
		return
	}

	employee, err := h.employeeService.Update(id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles employee deletion
// @Summary Delete employee
// @Tags Employees
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "invalid employee ID",
		})
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "employee deleted successfully"})
}

// UpdateQualification handles an employee's qualification change.
// @Summary Change employee qualification
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param request body dtos.UpdateQualificationRequest true "New qualification"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /employees/{id}/qualification [patch]
func (h *EmployeeHandler) UpdateQualification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "invalid employee ID",
		})
		return
	}

	var req dtos.UpdateQualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": err.Error(),
		})
		return
	}

	if err := h.employeeService.UpdateQualification(id, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "qualification updated"})
}

// ImportEmployees handles bulk employee import from a spreadsheet.
// @Summary Import employees
// @Tags Employees
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Excel file"
// @Param year query int true "Target roster year"
// @Param month query int true "Target roster month"
// @Success 200 {object} dtos.ImportResult
// @Failure 400 {object} map[string]string
// @Router /employees/import [post]
func (h *EmployeeHandler) ImportEmployees(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "year query parameter is required",
		})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "month query parameter is required",
		})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "File Required",
			"message": err.Error(),
		})
		return
	}
	defer file.Close()

	result, err := h.employeeService.ImportFromSpreadsheet(file, year, month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Import Failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
