package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildGrid_ShapesAssignmentsByEmployeeAndDay(t *testing.T) {
	db := setupRosterExportTestDB(t)
	run := createTestRosterRun(t, db)

	service := NewReportService(db)
	grid, err := service.BuildGrid(run.ID)

	assert.NoError(t, err)
	assert.Equal(t, 2026, grid.Year)
	assert.Equal(t, 3, grid.Month)
	assert.Equal(t, 31, len(grid.Days))
	assert.Equal(t, 1, len(grid.Rows))
	assert.Equal(t, "B", grid.Rows[0].Days[1])
	assert.Equal(t, "C", grid.Rows[0].Days[2])
	assert.Equal(t, "VS", grid.Rows[0].Days[7])
	assert.Equal(t, "", grid.Rows[0].Days[15])
}

func TestExportCSV_ContainsDayColumns(t *testing.T) {
	db := setupRosterExportTestDB(t)
	run := createTestRosterRun(t, db)

	service := NewReportService(db)
	data, err := service.ExportCSV(run.ID)

	assert.NoError(t, err)
	assert.Greater(t, len(data), 0)
}

func TestExportPDF_ProducesNonEmptyFile(t *testing.T) {
	db := setupRosterExportTestDB(t)
	run := createTestRosterRun(t, db)

	service := NewReportService(db)
	data, err := service.ExportPDF(run.ID)

	assert.NoError(t, err)
	assert.Greater(t, len(data), 0)
}

func TestBuildGrid_UnknownRunReturnsNotFound(t *testing.T) {
	db := setupRosterExportTestDB(t)
	service := NewReportService(db)

	_, err := service.BuildGrid(uuid.Nil)
	assert.Error(t, err)
}
