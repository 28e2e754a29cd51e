/*
Package api - Ward Roster Optimizer HTTP API Handlers

==============================================================================
FILE: internal/api/roster_handler.go
==============================================================================

DESCRIPTION:
    Exposes roster generation and retrieval: trigger the scheduling core
    for a given month, fetch a specific run, or list recent runs.

ENDPOINTS:
    POST /rosters/generate        - Run the scheduler for a year/month
    GET  /rosters/:id             - Get one roster run with its assignments
    GET  /rosters/latest          - Get the latest run for a year/month
    GET  /rosters                 - List recent roster runs

==============================================================================
*/
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperr "dienstplan/internal/errors"
	"dienstplan/internal/middleware"
	"dienstplan/internal/scheduling"
	"dienstplan/internal/services"
)

// RosterHandler handles roster generation endpoints.
type RosterHandler struct {
	rosterService *services.RosterService
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// RegisterRoutes registers roster routes.
func (h *RosterHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	rosters := router.Group("/rosters")
	rosters.Use(authMiddleware.RequireAuth())
	{
		rosters.GET("", h.ListRuns)
		rosters.GET("/latest", h.GetLatest)
		rosters.GET("/:id", h.GetRun)

		generate := rosters.Group("")
		generate.Use(authMiddleware.RequireRole("admin", "hr"))
		{
			generate.POST("/generate", h.Generate)
		}
	}
}

type generateRosterRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// Generate handles POST /rosters/generate
// @Summary Generate a roster for a month
// @Tags Rosters
// @Accept json
// @Produce json
// @Param request body generateRosterRequest true "Target month"
// @Success 201 {object} models.RosterRun
// @Failure 422 {object} map[string]string "infeasible or timed out"
// @Router /rosters/generate [post]
func (h *RosterHandler) Generate(c *gin.Context) {
	var req generateRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestedBy, _, err := middleware.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	run, genErr := h.rosterService.GenerateRoster(req.Year, req.Month, requestedBy)
	if genErr != nil {
		var noSolution *scheduling.NoSolutionError
		if errors.As(genErr, &noSolution) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  genErr.Error(),
				"reason": noSolution.Reason.String(),
				"run":    run,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": genErr.Error()})
		return
	}

	c.JSON(http.StatusCreated, run)
}

// GetRun handles GET /rosters/:id
func (h *RosterHandler) GetRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid roster run ID"})
		return
	}

	run, err := h.rosterService.GetRun(id)
	if err != nil {
		c.JSON(apperr.GetHTTPStatus(err), gin.H{"error": apperr.GetErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, run)
}

// GetLatest handles GET /rosters/latest?year=&month=
func (h *RosterHandler) GetLatest(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter is required"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter is required"})
		return
	}

	run, err := h.rosterService.GetLatestForMonth(year, month)
	if err != nil {
		c.JSON(apperr.GetHTTPStatus(err), gin.H{"error": apperr.GetErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, run)
}

// ListRuns handles GET /rosters?limit=
func (h *RosterHandler) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	runs, err := h.rosterService.ListRuns(limit)
	if err != nil {
		c.JSON(apperr.GetHTTPStatus(err), gin.H{"error": apperr.GetErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, runs)
}
