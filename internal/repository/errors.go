package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"

	employeeIDConstraint     = "employees_employee_id_key"
	employeeEmailConstraint  = "employees_email_key"
	attendanceDayConstraint  = "uq_employee_date"
	attendanceEmployeeFKey   = "attendance_employee_id_fkey"
	attendanceStatusCheckKey = "attendance_status_check"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateEmployeeID = errors.New("employee_id already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrDuplicateAttendance = errors.New("attendance already marked for this date")
	ErrEmployeeMissing     = errors.New("referenced employee does not exist")
	ErrInvalidStatus       = errors.New("attendance status is not allowed")
)

// translatePgError maps constraint violations reported by PostgreSQL to repository sentinels.
// Anything it does not recognise is returned unchanged.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == employeeIDConstraint:
		return ErrDuplicateEmployeeID
	case pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == employeeEmailConstraint:
		return ErrDuplicateEmail
	case pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == attendanceDayConstraint:
		return ErrDuplicateAttendance
	case pgErr.Code == foreignKeyViolationCode && pgErr.ConstraintName == attendanceEmployeeFKey:
		return ErrEmployeeMissing
	case pgErr.Code == checkViolationCode && pgErr.ConstraintName == attendanceStatusCheckKey:
		return ErrInvalidStatus
	}

	return err
}
