package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `id, employee_id, date, status, created_at`

// SaveAttendance inserts a ledger record and returns it with its assigned id and timestamp.
func (r *Repository) SaveAttendance(ctx context.Context, record models.Attendance) (models.Attendance, error) {
	defer r.observe("insert_attendance")()

	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING ` + attendanceColumns + `;
	`

	row := r.conn(ctx).QueryRow(ctx, query, record.EmployeeID, record.Date.Time, string(record.Status))

	created, err := scanAttendance(row)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("failed to save attendance: %w", translatePgError(err))
	}

	return created, nil
}

// IsAttendanceMarked checks whether the employee already has a record for the day.
func (r *Repository) IsAttendanceMarked(ctx context.Context, employeeID int, day date.Date) (bool, error) {
	defer r.observe("attendance_marked")()

	marked, err := r.exists(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance WHERE employee_id = $1 AND date = $2)`, employeeID, day.Time)
	if err != nil {
		return false, fmt.Errorf("error checking the existence of the attendance: %w", err)
	}

	return marked, nil
}

// ListAttendance returns the records matching every non-nil field of the filter, ordered by date and id.
func (r *Repository) ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	defer r.observe("list_attendance")()

	args := make([]any, 0, 2) //nolint:mnd // at most two filters
	conditions := make([]string, 0, 2)

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, "employee_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Date != nil {
		args = append(args, filter.Date.Time)
		conditions = append(conditions, "date = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendance`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY date, id`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	records := make([]models.Attendance, 0)
	for rows.Next() {
		record, scanErr := scanAttendance(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", scanErr)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

func scanAttendance(row pgx.Row) (models.Attendance, error) {
	var (
		record models.Attendance
		day    time.Time
		status string
	)

	if err := row.Scan(&record.ID, &record.EmployeeID, &day, &status, &record.CreatedAt); err != nil {
		return models.Attendance{}, err //nolint:wrapcheck // wrapped by callers
	}

	record.Date = models.NewDate(day)
	record.Status = models.AttendanceStatus(status)

	return record, nil
}
