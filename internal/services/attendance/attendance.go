package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/UnknownOlympus/hrms-lite/internal/lib/apperr"
	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
)

// Transactor runs a unit of work inside one store transaction.
type Transactor interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

// MarkAttendanceInput is one presence mark for an employee and a calendar date.
type MarkAttendanceInput struct {
	EmployeeID int
	Date       date.Date
	Status     models.AttendanceStatus
}

// Ledger owns the attendance records. It reads the directory only to check that an employee exists.
type Ledger struct {
	log       *slog.Logger
	repo      repository.AttendanceRepoIface
	employees repository.EmployeeRepoIface
	tx        Transactor
	metrics   *metrics.Metrics
}

func NewLedger(
	log *slog.Logger,
	repo repository.AttendanceRepoIface,
	employees repository.EmployeeRepoIface,
	tx Transactor,
	metrics *metrics.Metrics,
) *Ledger {
	return &Ledger{log: log, repo: repo, employees: employees, tx: tx, metrics: metrics}
}

func (l *Ledger) initLogger(opn string) *slog.Logger {
	return l.log.With(
		sl.Op(opn),
		slog.String("division", "attendance"),
	)
}

// MarkAttendance records the status of an employee for a date. A second mark for the same day is rejected.
func (l *Ledger) MarkAttendance(ctx context.Context, input MarkAttendanceInput) (models.Attendance, error) {
	const opn = "Ledger.MarkAttendance"
	log := l.initLogger(opn)

	if input.EmployeeID <= 0 {
		return models.Attendance{}, apperr.Validation("employee_id must be a positive integer")
	}
	if input.Date.IsZero() {
		return models.Attendance{}, apperr.Validation("date must be later than %s", input.Date.String())
	}
	if !input.Status.IsValid() {
		return models.Attendance{}, apperr.Validation("status must be one of %s, %s",
			models.StatusPresent, models.StatusAbsent)
	}

	if !models.IDStorable(input.EmployeeID) {
		return models.Attendance{}, employeeNotFound(input.EmployeeID)
	}

	record := models.Attendance{
		EmployeeID: input.EmployeeID,
		Date:       models.NewDate(input.Date.Time),
		Status:     input.Status,
	}

	var saved models.Attendance
	err := l.tx.WithinReadWrite(ctx, func(ctx context.Context) error {
		exists, checkErr := l.employees.EmployeeExists(ctx, record.EmployeeID)
		if checkErr != nil {
			return checkErr
		}
		if !exists {
			return employeeNotFound(record.EmployeeID)
		}

		marked, checkErr := l.repo.IsAttendanceMarked(ctx, record.EmployeeID, record.Date)
		if checkErr != nil {
			return checkErr
		}
		if marked {
			return alreadyMarked(record)
		}

		var saveErr error
		saved, saveErr = l.repo.SaveAttendance(ctx, record)
		switch {
		case errors.Is(saveErr, repository.ErrDuplicateAttendance):
			return alreadyMarked(record).Wrap(saveErr)
		case errors.Is(saveErr, repository.ErrEmployeeMissing):
			return employeeNotFound(record.EmployeeID).Wrap(saveErr)
		}

		return saveErr
	})
	if err != nil {
		return models.Attendance{}, l.fail(ctx, log, err)
	}

	l.metrics.AttendanceMarked.WithLabelValues(string(saved.Status)).Inc()
	log.InfoContext(ctx, "attendance marked",
		"employee_id", saved.EmployeeID, "date", saved.Date.String(), "status", saved.Status)

	return saved, nil
}

// QueryAttendance returns the records matching the filter, ordered by date then id.
func (l *Ledger) QueryAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	const opn = "Ledger.QueryAttendance"
	log := l.initLogger(opn)

	if filter.EmployeeID != nil && !models.IDStorable(*filter.EmployeeID) {
		return []models.Attendance{}, nil
	}

	if filter.Date != nil {
		day := models.NewDate(filter.Date.Time)
		filter.Date = &day
	}

	var records []models.Attendance
	err := l.tx.WithinReadOnly(ctx, func(ctx context.Context) error {
		var listErr error
		records, listErr = l.repo.ListAttendance(ctx, filter)
		return listErr
	})
	if err != nil {
		return nil, l.fail(ctx, log, err)
	}

	if records == nil {
		records = []models.Attendance{}
	}

	return records, nil
}

func (l *Ledger) fail(ctx context.Context, log *slog.Logger, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindConflict:
		l.metrics.Conflicts.WithLabelValues("attendance").Inc()
		log.InfoContext(ctx, "attendance rejected", sl.Err(err))
		return err
	case apperr.KindInternal:
		log.ErrorContext(ctx, "attendance ledger failure", sl.Err(err))
		return fmt.Errorf("ledger: %w", err)
	default:
		return err
	}
}

func employeeNotFound(identifier int) *apperr.Error {
	return apperr.NotFound("Employee with ID %d not found", identifier)
}

func alreadyMarked(record models.Attendance) *apperr.Error {
	return apperr.Conflict("Attendance already marked for employee %d on %s", record.EmployeeID, record.Date.String())
}
