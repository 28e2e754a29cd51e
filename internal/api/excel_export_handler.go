/*
Package api - Ward Roster Optimizer HTTP API Handlers

==============================================================================
FILE: internal/api/excel_export_handler.go
==============================================================================

DESCRIPTION:
    Handles Excel (.xlsx) export of a generated roster run.

ENDPOINTS:
    GET /excel-export/:runId - Download the roster run as an .xlsx workbook

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

// ExcelExportHandler handles the .xlsx roster export endpoint.
type ExcelExportHandler struct {
	service *services.ExcelExportService
}

// NewExcelExportHandler creates a new Excel export handler.
func NewExcelExportHandler(service *services.ExcelExportService) *ExcelExportHandler {
	return &ExcelExportHandler{service: service}
}

// RegisterRoutes registers Excel export routes.
func (h *ExcelExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/excel-export/:runId", h.GetRosterExcel)
}

// GetRosterExcel handles downloading a roster run as an .xlsx workbook.
func (h *ExcelExportHandler) GetRosterExcel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("runId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid roster run ID"})
		return
	}

	data, err := h.service.GenerateRosterExcel(id)
	if err != nil {
		c.JSON(apperr.GetHTTPStatus(err), gin.H{"error": apperr.GetErrorMessage(err)})
		return
	}

	fileName := fmt.Sprintf("roster_%s.xlsx", id)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
