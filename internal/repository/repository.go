package repository

import (
	"context"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int) error
	EmployeeExists(ctx context.Context, identifier int) (bool, error)
	IsEmployeeIDTaken(ctx context.Context, employeeID string) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
}

// AttendanceRepoIface represents the interface for interacting with the attendance ledger.
type AttendanceRepoIface interface {
	SaveAttendance(ctx context.Context, record models.Attendance) (models.Attendance, error)
	IsAttendanceMarked(ctx context.Context, employeeID int, day date.Date) (bool, error)
	ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

func NewAttendanceRepository(db Database, metrics *metrics.Metrics) AttendanceRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// conn returns the transaction carried by ctx, or the pool.
func (r *Repository) conn(ctx context.Context) Database {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}

	return r.db
}

func (r *Repository) observe(queryType string) func() {
	startTime := time.Now()

	return func() {
		r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
	}
}

func (r *Repository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, translatePgError(err)
	}

	return exists, nil
}
