/*
Package api - Ward Roster Optimizer HTTP API Handlers

==============================================================================
FILE: internal/api/calendar_handler.go
==============================================================================

DESCRIPTION:
    HTTP handlers for the month calendar view and the public-holiday table
    that backs the scheduling core's HolidayProvider collaborator.

ENDPOINTS:
    GET    /calendar/:year/:month   - Render a month's day-by-day view
    GET    /calendar/holidays       - List holidays for a year/month
    POST   /calendar/holidays       - Record a public holiday
    DELETE /calendar/holidays/:date - Remove a public holiday

==============================================================================
*/
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dienstplan/internal/dtos"
	"dienstplan/internal/services"
)

// CalendarHandler handles HTTP requests for the calendar and holidays
type CalendarHandler struct {
	service *services.CalendarService
}

// NewCalendarHandler creates a new handler
func NewCalendarHandler(service *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// RegisterRoutes registers all calendar routes
func (h *CalendarHandler) RegisterRoutes(rg *gin.RouterGroup) {
	calendar := rg.Group("/calendar")
	{
		calendar.GET("/:year/:month", h.GetMonth)
		calendar.GET("/holidays", h.ListHolidays)
		calendar.POST("/holidays", h.CreateHoliday)
		calendar.DELETE("/holidays/:date", h.DeleteHoliday)
	}
}

// GetMonth handles GET /calendar/:year/:month
// @Summary Render a month calendar
// @Description Returns every day of the month with weekend/holiday flags
// @Tags Calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dtos.MonthCalendarResponse
// @Failure 400 {object} map[string]string
// @Router /calendar/{year}/{month} [get]
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	response, err := h.service.MonthCalendar(year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListHolidays handles GET /calendar/holidays?year=&month=
// @Summary List public holidays for a month
// @Tags Calendar
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {array} dtos.HolidayResponse
// @Router /calendar/holidays [get]
func (h *CalendarHandler) ListHolidays(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter is required"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter must be 1-12"})
		return
	}

	holidays, err := h.service.ListHolidaysForMonth(year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, holidays)
}

// CreateHoliday handles POST /calendar/holidays
// @Summary Record a public holiday
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body dtos.HolidayRequest true "Holiday data"
// @Success 201 {object} dtos.HolidayResponse
// @Failure 400 {object} map[string]string
// @Router /calendar/holidays [post]
func (h *CalendarHandler) CreateHoliday(c *gin.Context) {
	var req dtos.HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holiday, err := h.service.CreateHoliday(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

// DeleteHoliday handles DELETE /calendar/holidays/:date
// @Summary Remove a public holiday
// @Tags Calendar
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /calendar/holidays/{date} [delete]
func (h *CalendarHandler) DeleteHoliday(c *gin.Context) {
	if err := h.service.DeleteHoliday(c.Param("date")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
		return 0, 0, false
	}
	return year, month, true
}
