/*
Package services - Roster Report Generation Service

==============================================================================
FILE: internal/services/report_service.go
==============================================================================

DESCRIPTION:
    Generates roster reports in multiple formats (PDF, CSV, JSON): the
    month's full assignment grid (one row per employee, one column per
    day). The run's slack report is not part of these exports.

USER PERSPECTIVE:
    - Export a generated roster as a printable landscape PDF grid
    - Export the same grid as CSV for spreadsheet tools
    - Pull the raw JSON for the web UI's calendar view

DEVELOPER GUIDELINES:
    OK to modify: Report formats, add new report types
    CAUTION: Grid column order (day 1..N) must stay chronological
    Note: PDF generation uses gofpdf, matching the rest of the stack

==============================================================================
*/
package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	apperr "dienstplan/internal/errors"
	"dienstplan/internal/repositories"
)

// ReportService generates exports of a roster run's assignment grid.
type ReportService struct {
	rosterRepo *repositories.RosterRepository
}

// NewReportService creates a new report service.
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		rosterRepo: repositories.NewRosterRepository(db),
	}
}

// GridRow is one employee's assignments across the month, keyed by
// day-of-month for easy column lookup when rendering.
type GridRow struct {
	EmployeeID     string         `json:"employee_id"`
	EmployeeNumber string         `json:"employee_number"`
	FullName       string         `json:"full_name"`
	Qualification  string         `json:"qualification"`
	Days           map[int]string `json:"days"`
}

// RosterGrid is the report's shared intermediate shape: a list of
// employee rows plus the days of the month that make up the columns.
type RosterGrid struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []int     `json:"days"`
	Rows  []GridRow `json:"rows"`
}

// BuildGrid loads a roster run and reshapes its assignment rows into a
// per-employee, per-day grid.
func (s *ReportService) BuildGrid(runID uuid.UUID) (*RosterGrid, error) {
	run, err := s.rosterRepo.FindRunByID(runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Wrap(err, apperr.ErrDatabaseOperation)
	}

	daysInMonth := time.Date(run.Year, time.Month(run.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]int, daysInMonth)
	for i := range days {
		days[i] = i + 1
	}

	rowsByEmployee := map[string]*GridRow{}
	var order []string
	for _, a := range run.Assignments {
		id := a.EmployeeID.String()
		row, ok := rowsByEmployee[id]
		if !ok {
			row = &GridRow{EmployeeID: id, Days: map[int]string{}}
			if a.Employee != nil {
				row.EmployeeNumber = a.Employee.EmployeeNumber
				row.FullName = a.Employee.FullName()
				row.Qualification = string(a.Employee.Qualification)
			}
			rowsByEmployee[id] = row
			order = append(order, id)
		}
		row.Days[a.Date.Day()] = a.ShiftCode
	}

	sort.Slice(order, func(i, j int) bool {
		return rowsByEmployee[order[i]].EmployeeNumber < rowsByEmployee[order[j]].EmployeeNumber
	})

	grid := &RosterGrid{Year: run.Year, Month: run.Month, Days: days}
	for _, id := range order {
		grid.Rows = append(grid.Rows, *rowsByEmployee[id])
	}
	return grid, nil
}

// ExportJSON renders the grid as indented JSON.
func (s *ReportService) ExportJSON(runID uuid.UUID) ([]byte, error) {
	grid, err := s.BuildGrid(runID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(grid, "", "  ")
}

// ExportCSV renders the grid as CSV, one column per day of the month.
func (s *ReportService) ExportCSV(runID uuid.UUID) ([]byte, error) {
	grid, err := s.BuildGrid(runID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Personalnummer", "Name", "Qualifikation"}
	for _, d := range grid.Days {
		header = append(header, fmt.Sprintf("%d", d))
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, row := range grid.Rows {
		record := []string{row.EmployeeNumber, row.FullName, row.Qualification}
		for _, d := range grid.Days {
			record = append(record, row.Days[d])
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

// ExportPDF renders the grid as a landscape PDF table, one page-wide row
// per employee.
func (s *ReportService) ExportPDF(runID uuid.UUID) ([]byte, error) {
	grid, err := s.BuildGrid(runID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFillColor(30, 58, 138)
	pdf.Rect(0, 0, 297, 22, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetXY(10, 6)
	pdf.Cell(200, 10, fmt.Sprintf("Dienstplan %02d/%d", grid.Month, grid.Year))
	pdf.SetTextColor(0, 0, 0)

	nameWidth, qualWidth := 45.0, 22.0
	dayWidth := (277.0 - nameWidth - qualWidth) / float64(len(grid.Days))

	y := 28.0
	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(210, 210, 210)
	pdf.SetXY(10, y)
	pdf.CellFormat(nameWidth, 6, "Name", "1", 0, "L", true, 0, "")
	pdf.CellFormat(qualWidth, 6, "Qual.", "1", 0, "C", true, 0, "")
	for _, d := range grid.Days {
		pdf.CellFormat(dayWidth, 6, fmt.Sprintf("%d", d), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, row := range grid.Rows {
		pdf.SetX(10)
		pdf.CellFormat(nameWidth, 6, row.FullName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(qualWidth, 6, row.Qualification, "1", 0, "C", false, 0, "")
		for _, d := range grid.Days {
			pdf.CellFormat(dayWidth, 6, row.Days[d], "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "I", 7)
	pdf.SetTextColor(128, 128, 128)
	pdf.SetXY(10, 200)
	pdf.Cell(277, 5, fmt.Sprintf("Erstellt: %s", time.Now().Format("02.01.2006 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
