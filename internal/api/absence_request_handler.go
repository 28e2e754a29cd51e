/*
Package api - Ward Roster Optimizer HTTP API Handlers

==============================================================================
FILE: internal/api/absence_request_handler.go
==============================================================================

DESCRIPTION:
    HTTP handlers for the absence request approval workflow: an employee
    submits a request, HR/admin approves or rejects it. A single decision
    moves the request out of PENDING - there is no multi-stage chain.

ENDPOINTS:
    POST   /absence-requests             - Create new request
    GET    /absence-requests/my-requests/:employeeId - Get one employee's requests
    GET    /absence-requests/pending     - Get pending requests
    GET    /absence-requests/approved    - Get approved requests
    GET    /absence-requests/rejected    - Get rejected requests
    POST   /absence-requests/:id/approve - Approve a pending request
    POST   /absence-requests/:id/reject  - Reject a pending request
    GET    /absence-requests/overlapping - Check overlapping absences
    GET    /absence-requests/counts      - Get pending count

==============================================================================
*/
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dienstplan/internal/middleware"
	"dienstplan/internal/models"
	"dienstplan/internal/services"
)

// AbsenceRequestHandler handles HTTP requests for absence requests
type AbsenceRequestHandler struct {
	service *services.AbsenceRequestService
}

// NewAbsenceRequestHandler creates a new handler
func NewAbsenceRequestHandler(service *services.AbsenceRequestService) *AbsenceRequestHandler {
	return &AbsenceRequestHandler{service: service}
}

// RegisterRoutes registers all absence request routes
func (h *AbsenceRequestHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	requests := rg.Group("/absence-requests")
	requests.Use(authMiddleware.RequireAuth())
	{
		requests.POST("", h.Create)
		requests.GET("/my-requests/:employeeId", h.GetMyRequests)
		requests.GET("/overlapping", h.GetOverlapping)

		hrOnly := requests.Group("")
		hrOnly.Use(authMiddleware.RequireRole("admin", "hr"))
		{
			hrOnly.GET("/pending", h.GetPending)
			hrOnly.GET("/approved", h.GetApproved)
			hrOnly.GET("/rejected", h.GetRejected)
			hrOnly.GET("/counts", h.GetCounts)
			hrOnly.POST("/:id/approve", h.Approve)
			hrOnly.POST("/:id/reject", h.Reject)
		}
	}
}

// createAbsenceRequestDTO is the request body for creating an absence request.
type createAbsenceRequestDTO struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Kind       string `json:"kind" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason"`
}

// Create handles POST /absence-requests
// @Summary Create absence request
// @Tags AbsenceRequests
// @Accept json
// @Produce json
// @Param request body createAbsenceRequestDTO true "Request data"
// @Success 201 {object} models.AbsenceRequest
// @Failure 400 {object} map[string]string
// @Router /absence-requests [post]
func (h *AbsenceRequestHandler) Create(c *gin.Context) {
	var dto createAbsenceRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employeeID, err := uuid.Parse(dto.EmployeeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
		return
	}

	startDate, err := time.Parse("2006-01-02", dto.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format (use YYYY-MM-DD)"})
		return
	}

	endDate, err := time.Parse("2006-01-02", dto.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format (use YYYY-MM-DD)"})
		return
	}

	kind := models.AbsenceKind(dto.Kind)
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid absence kind"})
		return
	}

	req, err := h.service.CreateAbsenceRequest(services.CreateAbsenceRequestInput{
		EmployeeID: employeeID,
		Kind:       kind,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     dto.Reason,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, req)
}

// GetMyRequests handles GET /absence-requests/my-requests/:employeeId
// @Summary List one employee's absence requests
// @Tags AbsenceRequests
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {array} models.AbsenceRequest
// @Router /absence-requests/my-requests/{employeeId} [get]
func (h *AbsenceRequestHandler) GetMyRequests(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	reqs, err := h.service.GetMyRequests(employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// GetPending handles GET /absence-requests/pending
func (h *AbsenceRequestHandler) GetPending(c *gin.Context) {
	reqs, err := h.service.GetPendingRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// GetApproved handles GET /absence-requests/approved
func (h *AbsenceRequestHandler) GetApproved(c *gin.Context) {
	reqs, err := h.service.GetApprovedRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// GetRejected handles GET /absence-requests/rejected
func (h *AbsenceRequestHandler) GetRejected(c *gin.Context) {
	reqs, err := h.service.GetRejectedRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// Approve handles POST /absence-requests/:id/approve
func (h *AbsenceRequestHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject handles POST /absence-requests/:id/reject
func (h *AbsenceRequestHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *AbsenceRequestHandler) decide(c *gin.Context, approve bool) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	deciderID, _, err := middleware.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req, err := h.service.Decide(requestID, deciderID, approve)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetOverlapping handles GET /absence-requests/overlapping
// @Param employee_id query string true "Employee ID"
// @Param start_date query string true "Start date YYYY-MM-DD"
// @Param end_date query string true "End date YYYY-MM-DD"
func (h *AbsenceRequestHandler) GetOverlapping(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
		return
	}
	start, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}

	overlapping, err := h.service.GetOverlapping(employeeID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overlapping)
}

// GetCounts handles GET /absence-requests/counts
func (h *AbsenceRequestHandler) GetCounts(c *gin.Context) {
	count, err := h.service.GetPendingCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": count})
}
