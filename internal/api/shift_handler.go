/*
Package api - Ward Roster Optimizer HTTP API Handlers

==============================================================================
FILE: internal/api/shift_handler.go
==============================================================================

DESCRIPTION:
    Handles shift-catalog endpoints: the closed set of seven assignable
    shift codes the scheduler places on a roster. Codes and categories are
    immutable once seeded; only display metadata can be edited.

USER PERSPECTIVE:
    - List the shift catalog (B Dienst, C Dienst, VS Dienst, S Dienst,
      BS Dienst, C4 Dienst, Bü Dienst)
    - Update a catalog entry's description/display order/active flag

DEVELOPER GUIDELINES:
    OK to modify: Add new read endpoints
    DO NOT modify: Shift code/category immutability

ENDPOINTS:
    GET /shifts - List all shifts
    GET /shifts/active - List only active shifts
    GET /shifts/:id - Get single shift
    PUT /shifts/:id - Update shift display metadata

==============================================================================
*/
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dienstplan/internal/middleware"
	"dienstplan/internal/services"
)

// ShiftHandler handles shift-related endpoints
type ShiftHandler struct {
	shiftService *services.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *services.ShiftService) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// RegisterRoutes registers shift routes
func (h *ShiftHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	shifts := router.Group("/shifts")
	shifts.Use(authMiddleware.RequireAuth())
	{
		shifts.GET("", h.ListShifts)
		shifts.GET("/active", h.ListActiveShifts)
		shifts.GET("/:id", h.GetShift)

		// Admin/HR only routes
		admin := shifts.Group("")
		admin.Use(authMiddleware.RequireRole("admin", "hr"))
		{
			admin.PUT("/:id", h.UpdateShift)
		}
	}
}

// ListShifts returns the whole shift catalog.
// @Summary List all shifts
// @Tags Shifts
// @Produce json
// @Success 200 {array} models.Shift
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	shifts, err := h.shiftService.GetAllShifts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// ListActiveShifts returns only active shift catalog entries.
// @Summary List active shifts
// @Tags Shifts
// @Produce json
// @Success 200 {array} models.Shift
// @Router /shifts/active [get]
func (h *ShiftHandler) ListActiveShifts(c *gin.Context) {
	shifts, err := h.shiftService.GetActiveShifts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetShift returns a single shift by ID
// @Summary Get shift by ID
// @Tags Shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} models.Shift
// @Failure 404 {object} map[string]string
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "invalid shift ID",
		})
		return
	}

	shift, err := h.shiftService.GetShiftByID(id)
	if err != nil {
		if err.Error() == "shift not found" {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "shift not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, shift)
}

// UpdateShift updates a catalog entry's display metadata.
// @Summary Update shift
// @Tags Shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body services.ShiftRequest true "Shift data"
// @Success 200 {object} models.Shift
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "invalid shift ID",
		})
		return
	}

	var req services.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	shift, err := h.shiftService.UpdateShift(id, req)
	if err != nil {
		if err.Error() == "shift not found" {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "shift not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, shift)
}
