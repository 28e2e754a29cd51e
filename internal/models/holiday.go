/*
Package models - Ward Roster Optimizer Data Models

==============================================================================
FILE: internal/models/holiday.go
==============================================================================

DESCRIPTION:
    Defines the regional public-holiday table. This is the concrete
    backing for spec's HolidayProvider collaborator: a simple
    (date, name) lookup the Calendar component consults to set each
    day's is_holiday flag.

==============================================================================
*/
package models

import "time"

// Holiday is a single public holiday observed in the ward's region.
type Holiday struct {
	BaseModel
	Date time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Name string    `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName specifies the table name
func (Holiday) TableName() string {
	return "holidays"
}
