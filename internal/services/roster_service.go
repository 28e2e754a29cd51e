/*
Package services - Roster Generation Service

==============================================================================
FILE: internal/services/roster_service.go
==============================================================================

DESCRIPTION:
    Orchestrates one call to internal/scheduling.Generate: loads the
    active employee roster and their raw absence strings for the target
    month, wires the holiday repository as the scheduling core's
    HolidayProvider, runs the solver, and persists the outcome as a
    RosterRun with its RosterAssignment rows. This is the only place that
    bridges persisted models to the scheduling core's plain-struct input.

USER PERSPECTIVE:
    - A planner picks a year/month and triggers "generate roster"
    - The service returns the roster grid, or an explanation of why no
      roster could be produced (infeasible/timeout) along with
      diagnostics a planner can act on

DEVELOPER GUIDELINES:
    OK to modify: Config tuning, diagnostics shape
    CAUTION: Employee.ID is carried through the scheduling core as a bare
        string (model.Employee.ID); keep it as the UUID's string form so
        extracted assignments can be mapped back to employees

==============================================================================
*/
package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperr "dienstplan/internal/errors"
	"dienstplan/internal/models"
	"dienstplan/internal/repositories"
	"dienstplan/internal/scheduling"
	"dienstplan/internal/scheduling/absence"
	schedmodel "dienstplan/internal/scheduling/model"
)

// RosterService drives roster generation and exposes past runs.
type RosterService struct {
	employeeRepo *repositories.EmployeeRepository
	absenceRepo  *repositories.AbsenceRepository
	holidayRepo  *repositories.HolidayRepository
	rosterRepo   *repositories.RosterRepository
	config       schedmodel.Config
}

// NewRosterService creates a new roster service with the scheduling
// core's default tunables.
func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{
		employeeRepo: repositories.NewEmployeeRepository(db),
		absenceRepo:  repositories.NewAbsenceRepository(db),
		holidayRepo:  repositories.NewHolidayRepository(db),
		rosterRepo:   repositories.NewRosterRepository(db),
		config:       schedmodel.DefaultConfig(),
	}
}

// holidayProvider adapts HolidayRepository to the scheduling core's
// calendar.HolidayProvider interface, swallowing lookup errors as
// "not a holiday" since the calendar has no channel to report them.
type holidayProvider struct {
	repo *repositories.HolidayRepository
}

func (h holidayProvider) IsHoliday(t time.Time) bool {
	isHoliday, err := h.repo.IsHoliday(t)
	if err != nil {
		return false
	}
	return isHoliday
}

// GenerateRoster runs the scheduling core for one month and persists the
// result. requestedBy may be uuid.Nil when triggered by a background job.
func (s *RosterService) GenerateRoster(year, month int, requestedBy uuid.UUID) (*models.RosterRun, error) {
	employees, err := s.employeeRepo.ListActive()
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	if len(employees) == 0 {
		return nil, errors.New("no active employees to schedule")
	}

	schedEmployees := make([]schedmodel.Employee, 0, len(employees))
	rawAbsence := make(map[string]absence.RawStrings, len(employees))
	byID := make(map[string]models.Employee, len(employees))

	for _, e := range employees {
		id := e.ID.String()
		byID[id] = e
		schedEmployees = append(schedEmployees, schedmodel.Employee{
			ID:            id,
			Qualification: schedmodel.Qualification(e.Qualification),
			MonthlyTarget: e.MonthlyTarget,
		})

		raw, err := s.absenceRepo.RawStringsForMonth(e.ID, year, month)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
		}
		rawAbsence[id] = absence.RawStrings{
			SL: raw[models.AbsenceKindSL],
			Fe: raw[models.AbsenceKindFe],
			UW: raw[models.AbsenceKindUW],
			W:  raw[models.AbsenceKindW],
		}
	}

	var requestedByPtr *uuid.UUID
	if requestedBy != uuid.Nil {
		requestedByPtr = &requestedBy
	}

	start := time.Now()
	roster, genErr := scheduling.Generate(scheduling.Input{
		Year:       year,
		Month:      month,
		Employees:  schedEmployees,
		RawAbsence: rawAbsence,
		Holidays:   holidayProvider{repo: s.holidayRepo},
		Config:     s.config,
	})
	elapsed := time.Since(start)

	run := &models.RosterRun{
		Year:          year,
		Month:         month,
		SolverTimeMs:  elapsed.Milliseconds(),
		RequestedByID: requestedByPtr,
	}

	if genErr != nil {
		var noSolution *scheduling.NoSolutionError
		if errors.As(genErr, &noSolution) {
			switch noSolution.Reason {
			case scheduling.ReasonTimeout:
				run.Status = models.RosterRunStatusTimeout
			case scheduling.ReasonInfeasible:
				run.Status = models.RosterRunStatusInfeasible
			default:
				run.Status = models.RosterRunStatusError
			}
			if noSolution.Diagnostics != nil {
				if diagJSON, err := json.Marshal(noSolution.Diagnostics); err == nil {
					run.Diagnostics = datatypes.JSON(diagJSON)
				}
			}
		} else {
			run.Status = models.RosterRunStatusError
		}

		if err := s.rosterRepo.CreateRun(run); err != nil {
			return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
		}
		return run, genErr
	}

	run.Status = models.RosterRunStatusOptimal
	if slackJSON, err := json.Marshal(roster.SlackReport); err == nil {
		run.SlackReport = datatypes.JSON(slackJSON)
	}

	run.Assignments = make([]models.RosterAssignment, 0, len(roster.Assignments))
	for _, a := range roster.Assignments {
		employeeID, err := uuid.Parse(a.EmployeeID)
		if err != nil {
			continue
		}
		run.Assignments = append(run.Assignments, models.RosterAssignment{
			EmployeeID: employeeID,
			Date:       time.Date(year, time.Month(month), a.Day, 0, 0, 0, 0, time.UTC),
			ShiftCode:  a.Shift,
		})
	}

	if err := s.rosterRepo.CreateRun(run); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	return run, nil
}

// GetRun loads a single roster run with its assignments.
func (s *RosterService) GetRun(id uuid.UUID) (*models.RosterRun, error) {
	run, err := s.rosterRepo.FindRunByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	return run, nil
}

// GetLatestForMonth returns the most recent run for a given month.
func (s *RosterService) GetLatestForMonth(year, month int) (*models.RosterRun, error) {
	run, err := s.rosterRepo.LatestRunForMonth(year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	return run, nil
}

// ListRuns returns recent roster runs, most recent first.
func (s *RosterService) ListRuns(limit int) ([]models.RosterRun, error) {
	runs, err := s.rosterRepo.ListRuns(limit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}
	return runs, nil
}
