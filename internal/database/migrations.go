/*
Package database - Ward Roster Optimizer Database Migrations

==============================================================================
FILE: internal/database/migrations.go
==============================================================================

DESCRIPTION:
    Handles automatic database schema migrations using GORM AutoMigrate.
    Creates and updates tables for all application models. Called at
    application startup to ensure schema is current.

USER PERSPECTIVE:
    - Automatically creates database tables on first run
    - Updates schema when models change
    - No manual SQL migration scripts needed

DEVELOPER GUIDELINES:
    OK to modify: Add new models to AutoMigrate list
    CAUTION: Removing models (may cause data loss)
    DO NOT modify: Model order if foreign key dependencies exist

MODEL LIST (in migration order):
    - User: Authentication and authorization
    - Employee: Core roster-planning employee data
    - Holiday: Public holidays affecting coverage requirements
    - AbsenceRecord: Per-employee/year/month tokenized absence entries
    - AbsenceRequest: Single-decision absence request workflow
    - Shift: Catalog of assignable shift codes with category and display order
    - RosterRun/RosterAssignment: Generated monthly rosters and their assignments
    - AuditLog/LoginSession/PageVisit: Audit trail

==============================================================================
*/
package database

import (
	"gorm.io/gorm"

	"dienstplan/internal/models"
)

// Migrate performs database migrations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Holiday{},
		&models.AbsenceRecord{},
		&models.AbsenceRequest{},
		&models.Shift{},
		&models.RosterRun{},
		&models.RosterAssignment{},
		&models.AuditLog{},
		&models.LoginSession{},
		&models.PageVisit{},
	)
}
