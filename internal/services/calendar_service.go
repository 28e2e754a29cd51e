/*
Package services - Calendar Service

==============================================================================
FILE: internal/services/calendar_service.go
==============================================================================

DESCRIPTION:
    Backs the scheduling core's HolidayProvider collaborator and
    renders a plain weekday/weekend/holiday month view for the UI's
    calendar widget. This replaced an earlier version that aggregated HR
    calendar events (absences, incidences, shift exceptions) across
    departments; the roster domain has no such event stream, only public
    holidays and the days of the month.

==============================================================================
*/
package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"dienstplan/internal/dtos"
	apperr "dienstplan/internal/errors"
	"dienstplan/internal/models"
	"dienstplan/internal/repositories"
)

// CalendarService resolves public holidays and renders month calendars.
type CalendarService struct {
	holidayRepo *repositories.HolidayRepository
}

// NewCalendarService creates a new calendar service
func NewCalendarService(holidayRepo *repositories.HolidayRepository) *CalendarService {
	return &CalendarService{holidayRepo: holidayRepo}
}

// IsHolidayOn reports whether the given date is a recorded public holiday.
func (s *CalendarService) IsHolidayOn(date time.Time) (bool, error) {
	return s.holidayRepo.IsHoliday(date)
}

// IsHoliday implements the scheduling core's calendar.HolidayProvider
// interface. That interface has no error return, so a lookup failure is
// logged and treated as "not a holiday" rather than aborting roster
// generation over a transient database hiccup.
func (s *CalendarService) IsHoliday(date time.Time) bool {
	isHoliday, err := s.holidayRepo.IsHoliday(date)
	if err != nil {
		logrus.WithError(err).WithField("date", date.Format("2006-01-02")).
			Warn("holiday lookup failed, treating day as non-holiday")
		return false
	}
	return isHoliday
}

// CreateHoliday records a new public holiday.
func (s *CalendarService) CreateHoliday(req dtos.HolidayRequest) (*dtos.HolidayResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperr.ErrInvalidInput.WithMessage("date must be in YYYY-MM-DD format")
	}

	holiday := &models.Holiday{Date: date, Name: req.Name}
	if err := s.holidayRepo.Create(holiday); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}

	return &dtos.HolidayResponse{
		ID:   holiday.ID.String(),
		Date: holiday.Date,
		Name: holiday.Name,
	}, nil
}

// DeleteHoliday removes a public holiday by date.
func (s *CalendarService) DeleteHoliday(dateStr string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return apperr.ErrInvalidInput.WithMessage("date must be in YYYY-MM-DD format")
	}
	if err := s.holidayRepo.Delete(date); err != nil {
		return apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	return nil
}

// ListHolidaysForMonth returns the holidays recorded for a given year/month.
func (s *CalendarService) ListHolidaysForMonth(year int, month time.Month) ([]dtos.HolidayResponse, error) {
	holidays, err := s.holidayRepo.ListForMonth(year, month)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}

	out := make([]dtos.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, dtos.HolidayResponse{ID: h.ID.String(), Date: h.Date, Name: h.Name})
	}
	return out, nil
}

// MonthCalendar renders every day of a year/month with its weekday,
// weekend, and holiday classification for the roster UI's month picker.
func (s *CalendarService) MonthCalendar(year int, month time.Month) (*dtos.MonthCalendarResponse, error) {
	if month < time.January || month > time.December {
		return nil, apperr.ErrInvalidMonth.WithMessage(fmt.Sprintf("month %d is out of range", month))
	}

	holidays, err := s.holidayRepo.ListForMonth(year, month)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	holidayNames := make(map[string]string, len(holidays))
	for _, h := range holidays {
		holidayNames[h.Date.Format("2006-01-02")] = h.Name
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	days := make([]dtos.DayView, 0, 31)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		weekday := (int(d.Weekday()) + 6) % 7 // Mon=0 ... Sun=6
		key := d.Format("2006-01-02")
		name, isHoliday := holidayNames[key]
		days = append(days, dtos.DayView{
			Date:        key,
			Day:         d.Day(),
			Weekday:     weekday,
			IsWeekend:   weekday >= 5,
			IsHoliday:   isHoliday,
			HolidayName: name,
		})
	}

	return &dtos.MonthCalendarResponse{Year: year, Month: int(month), Days: days}, nil
}
