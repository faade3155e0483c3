package models

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

// AttendanceStatus is the presence mark of an employee for one day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// IsValid reports whether the status is one of the known marks.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent:
		return true
	default:
		return false
	}
}

// Attendance represents a single ledger record: one status per employee per calendar date.
type Attendance struct {
	ID         int              `json:"id"`
	EmployeeID int              `json:"employee_id"`
	Date       date.Date        `json:"date"`
	Status     AttendanceStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

// AttendanceFilter restricts a ledger query. Nil fields are not applied.
type AttendanceFilter struct {
	EmployeeID *int
	Date       *date.Date
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) date.Date {
	return date.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a full-date string (YYYY-MM-DD).
func ParseDate(value string) (date.Date, error) {
	parsed, err := date.ParseDate(value)
	if err != nil {
		return date.Date{}, err //nolint:wrapcheck // caller adds context
	}

	return NewDate(parsed.Time), nil
}
