/*
Package api - Ward Roster Optimizer HTTP API Handlers

==============================================================================
FILE: internal/api/report_handler.go
==============================================================================

DESCRIPTION:
    Exposes a generated roster run's assignment grid as JSON, CSV, or PDF.

ENDPOINTS:
    GET /reports/:runId/json - Roster grid as JSON
    GET /reports/:runId/csv  - Roster grid as CSV
    GET /reports/:runId/pdf  - Roster grid as a landscape PDF table

==============================================================================
*/
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperr "dienstplan/internal/errors"
	"dienstplan/internal/services"
)

// ReportHandler handles roster export endpoints.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers report routes.
func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/reports")
	group.GET("/:runId/json", h.ExportJSON)
	group.GET("/:runId/csv", h.ExportCSV)
	group.GET("/:runId/pdf", h.ExportPDF)
}

func (h *ReportHandler) runID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("runId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid roster run ID"})
		return uuid.UUID{}, false
	}
	return id, true
}

// ExportJSON handles GET /reports/:runId/json
func (h *ReportHandler) ExportJSON(c *gin.Context) {
	id, ok := h.runID(c)
	if !ok {
		return
	}
	data, err := h.service.ExportJSON(id)
	if err != nil {
		c.JSON(apperr.GetHTTPStatus(err), gin.H{"error": apperr.GetErrorMessage(err)})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// ExportCSV handles GET /reports/:runId/csv
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	id, ok := h.runID(c)
	if !ok {
		return
	}
	data, err := h.service.ExportCSV(id)
	if err != nil {
		c.JSON(apperr.GetHTTPStatus(err), gin.H{"error": apperr.GetErrorMessage(err)})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=roster_%s.csv", id))
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportPDF handles GET /reports/:runId/pdf
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	id, ok := h.runID(c)
	if !ok {
		return
	}
	data, err := h.service.ExportPDF(id)
	if err != nil {
		c.JSON(apperr.GetHTTPStatus(err), gin.H{"error": apperr.GetErrorMessage(err)})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=roster_%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", data)
}
