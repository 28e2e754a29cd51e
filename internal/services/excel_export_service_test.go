package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dienstplan/internal/models"
)

func setupRosterExportTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Employee{},
		&models.RosterRun{},
		&models.RosterAssignment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestRosterRun(t *testing.T, db *gorm.DB) *models.RosterRun {
	emp := &models.Employee{
		EmployeeNumber: "E001",
		FirstName:      "Anna",
		LastName:       "Keller",
		Qualification:  models.QualHF,
		MonthlyTarget:  20,
	}
	if err := db.Create(emp).Error; err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}

	run := &models.RosterRun{
		Year:         2026,
		Month:        3,
		Status:       models.RosterRunStatusOptimal,
		SolverTimeMs: 120,
	}
	if err := db.Create(run).Error; err != nil {
		t.Fatalf("failed to create roster run: %v", err)
	}

	assignments := []models.RosterAssignment{
		{RosterRunID: run.ID, EmployeeID: emp.ID, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), ShiftCode: "B"},
		{RosterRunID: run.ID, EmployeeID: emp.ID, Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), ShiftCode: "C"},
		{RosterRunID: run.ID, EmployeeID: emp.ID, Date: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), ShiftCode: "VS"},
	}
	if err := db.Create(&assignments).Error; err != nil {
		t.Fatalf("failed to create roster assignments: %v", err)
	}

	return run
}

func TestGenerateRosterExcel_ProducesNonEmptyWorkbook(t *testing.T) {
	db := setupRosterExportTestDB(t)
	run := createTestRosterRun(t, db)

	service := NewExcelExportService(db)
	data, err := service.GenerateRosterExcel(run.ID)

	assert.NoError(t, err)
	assert.Greater(t, len(data), 0)
}
