/*
Package services - Absence Request Approval Service

==============================================================================
FILE: internal/services/absence_request_service.go
==============================================================================

DESCRIPTION:
    Implements the single-decision absence request workflow: an employee
    (or HR on their behalf) submits a request for a kind/date range, and
    HR/admin approves or rejects it. There is no multi-stage approval
    chain. On approval, the range is split at month boundaries and folded
    into the employee's AbsenceRecord.RawTokens using the same
    "DD.MM." / "DD.MM.-DD.MM." token grammar internal/scheduling/absence
    expands - this is the bridge between the request workflow and the
    scheduler's absence input.

USER PERSPECTIVE:
    - An employee requests a block of Fe/SL/UW/w days
    - HR reviews pending requests and approves or rejects them
    - Once approved, the scheduler's next roster generation for the
      affected month(s) sees the employee as absent on those days

DEVELOPER GUIDELINES:
    OK to modify: Validation rules, listing filters
    CAUTION: The token format produced here must stay exactly what
        internal/scheduling/absence.expandToken parses

==============================================================================
*/
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dienstplan/internal/models"
	"dienstplan/internal/repositories"
)

// CreateAbsenceRequestInput is the input to CreateAbsenceRequest.
type CreateAbsenceRequestInput struct {
	EmployeeID uuid.UUID
	Kind       models.AbsenceKind
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}

// AbsenceRequestService handles the absence request approval workflow.
type AbsenceRequestService struct {
	absenceRepo  *repositories.AbsenceRepository
	employeeRepo *repositories.EmployeeRepository
}

// NewAbsenceRequestService creates a new absence request service.
func NewAbsenceRequestService(db *gorm.DB) *AbsenceRequestService {
	return &AbsenceRequestService{
		absenceRepo:  repositories.NewAbsenceRepository(db),
		employeeRepo: repositories.NewEmployeeRepository(db),
	}
}

// CreateAbsenceRequest submits a new absence request in the PENDING state.
func (s *AbsenceRequestService) CreateAbsenceRequest(input CreateAbsenceRequestInput) (*models.AbsenceRequest, error) {
	if _, err := s.employeeRepo.FindByID(input.EmployeeID); err != nil {
		return nil, errors.New("employee not found")
	}

	req := &models.AbsenceRequest{
		EmployeeID: input.EmployeeID,
		Kind:       input.Kind,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Reason:     input.Reason,
		Status:     models.RequestStatusPending,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.absenceRepo.CreateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetMyRequests lists all absence requests for one employee.
func (s *AbsenceRequestService) GetMyRequests(employeeID uuid.UUID) ([]models.AbsenceRequest, error) {
	return s.absenceRepo.ListRequestsByEmployee(employeeID)
}

// GetPendingRequests lists every request awaiting a decision.
func (s *AbsenceRequestService) GetPendingRequests() ([]models.AbsenceRequest, error) {
	return s.absenceRepo.ListRequestsByStatus(models.RequestStatusPending)
}

// GetApprovedRequests lists every approved request.
func (s *AbsenceRequestService) GetApprovedRequests() ([]models.AbsenceRequest, error) {
	return s.absenceRepo.ListRequestsByStatus(models.RequestStatusApproved)
}

// GetRejectedRequests lists every rejected request.
func (s *AbsenceRequestService) GetRejectedRequests() ([]models.AbsenceRequest, error) {
	return s.absenceRepo.ListRequestsByStatus(models.RequestStatusRejected)
}

// Decide approves or rejects a pending request. On approval, the request's
// date range is folded into the employee's raw absence tokens for every
// month it touches.
func (s *AbsenceRequestService) Decide(requestID, deciderID uuid.UUID, approve bool) (*models.AbsenceRequest, error) {
	req, err := s.absenceRepo.FindRequestByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("absence request not found")
		}
		return nil, err
	}
	if req.IsDecided() {
		return nil, errors.New("request has already been decided")
	}

	now := time.Now()
	req.DecidedBy = &deciderID
	req.DecidedAt = &now

	if approve {
		req.Status = models.RequestStatusApproved
		if err := s.foldIntoRawTokens(req); err != nil {
			return nil, err
		}
	} else {
		req.Status = models.RequestStatusRejected
	}

	if err := s.absenceRepo.UpdateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// foldIntoRawTokens splits req's date range at month boundaries and
// appends a "DD.MM." token (or "DD.MM.-DD.MM." range token) to the
// employee's AbsenceRecord for each month the range touches.
func (s *AbsenceRequestService) foldIntoRawTokens(req *models.AbsenceRequest) error {
	for _, span := range splitByMonth(req.StartDate, req.EndDate) {
		token := formatToken(span.start, span.end)
		if err := s.absenceRepo.UpsertTokens(req.EmployeeID, span.year, span.month, req.Kind, token); err != nil {
			return err
		}
	}
	return nil
}

type monthSpan struct {
	year, month int
	start, end  time.Time
}

// splitByMonth breaks a [start, end] date range (inclusive) into one
// monthSpan per calendar month it overlaps.
func splitByMonth(start, end time.Time) []monthSpan {
	var spans []monthSpan
	cursor := start
	for !cursor.After(end) {
		year, month := cursor.Year(), int(cursor.Month())
		monthEnd := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, cursor.Location())
		segmentEnd := monthEnd
		if end.Before(monthEnd) {
			segmentEnd = end
		}
		spans = append(spans, monthSpan{year: year, month: month, start: cursor, end: segmentEnd})
		cursor = segmentEnd.AddDate(0, 0, 1)
	}
	return spans
}

// formatToken renders a single day as "DD.MM." or a multi-day span as
// "DD.MM.-DD.MM.", matching internal/scheduling/absence's token grammar.
func formatToken(start, end time.Time) string {
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return fmt.Sprintf("%02d.%02d.", start.Day(), int(start.Month()))
	}
	return fmt.Sprintf("%02d.%02d.-%02d.%02d.", start.Day(), int(start.Month()), end.Day(), int(end.Month()))
}

// GetOverlapping returns any existing requests for the employee whose date
// range overlaps [start, end], useful for flagging double-booked days
// before a new request is submitted.
func (s *AbsenceRequestService) GetOverlapping(employeeID uuid.UUID, start, end time.Time) ([]models.AbsenceRequest, error) {
	all, err := s.absenceRepo.ListRequestsByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	var overlapping []models.AbsenceRequest
	for _, r := range all {
		if r.Status == models.RequestStatusRejected {
			continue
		}
		if r.StartDate.After(end) || r.EndDate.Before(start) {
			continue
		}
		overlapping = append(overlapping, r)
	}
	return overlapping, nil
}

// GetPendingCount returns the number of requests awaiting a decision.
func (s *AbsenceRequestService) GetPendingCount() (int, error) {
	pending, err := s.GetPendingRequests()
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}
