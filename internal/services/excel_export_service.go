/*
Package services - Roster Excel Export Service

==============================================================================
FILE: internal/services/excel_export_service.go
==============================================================================

DESCRIPTION:
    Renders a roster run as a single-sheet .xlsx workbook: one row per
    employee, one column per day of the month, the shift code in each
    cell. Complements report_service.go's CSV/PDF/JSON exports with a
    spreadsheet planners can open directly in Excel/LibreOffice.

USER PERSPECTIVE:
    - Download a month's roster as an Excel workbook
    - Weekend columns are shaded for quick visual scanning

DEVELOPER GUIDELINES:
    OK to modify: Cell styling, column widths
    CAUTION: Column order (day 1..N) must stay chronological

==============================================================================
*/
package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExcelExportService generates an .xlsx workbook for a roster run.
type ExcelExportService struct {
	reportService *ReportService
}

// NewExcelExportService creates a new Excel export service.
func NewExcelExportService(db *gorm.DB) *ExcelExportService {
	return &ExcelExportService{
		reportService: NewReportService(db),
	}
}

const rosterSheetName = "Dienstplan"

// GenerateRosterExcel renders the roster run's assignment grid as an
// .xlsx workbook and returns the encoded file bytes.
func (s *ExcelExportService) GenerateRosterExcel(runID uuid.UUID) ([]byte, error) {
	grid, err := s.reportService.BuildGrid(runID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", rosterSheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D2D2D2"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	weekendStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weekend style: %w", err)
	}

	f.SetCellValue(rosterSheetName, "A1", "Personalnummer")
	f.SetCellValue(rosterSheetName, "B1", "Name")
	f.SetCellValue(rosterSheetName, "C1", "Qualifikation")
	f.SetColWidth(rosterSheetName, "B", "B", 24)

	weekendCols := map[int]bool{}
	for i, day := range grid.Days {
		col, _ := excelize.ColumnNumberToName(4 + i)
		cell := fmt.Sprintf("%s1", col)
		f.SetCellValue(rosterSheetName, cell, day)
		f.SetColWidth(rosterSheetName, col, col, 4)

		date := time.Date(grid.Year, time.Month(grid.Month), day, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			weekendCols[4+i] = true
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(3 + len(grid.Days))
	f.SetCellStyle(rosterSheetName, "A1", fmt.Sprintf("%s1", lastCol), headerStyle)

	for r, row := range grid.Rows {
		excelRow := r + 2
		f.SetCellValue(rosterSheetName, fmt.Sprintf("A%d", excelRow), row.EmployeeNumber)
		f.SetCellValue(rosterSheetName, fmt.Sprintf("B%d", excelRow), row.FullName)
		f.SetCellValue(rosterSheetName, fmt.Sprintf("C%d", excelRow), row.Qualification)
		for i, day := range grid.Days {
			col, _ := excelize.ColumnNumberToName(4 + i)
			cell := fmt.Sprintf("%s%d", col, excelRow)
			f.SetCellValue(rosterSheetName, cell, row.Days[day])
			if weekendCols[4+i] {
				f.SetCellStyle(rosterSheetName, cell, cell, weekendStyle)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
