package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attendanceColumns = []string{"id", "employee_id", "date", "status", "created_at"}

const (
	saveAttendanceQuery   = `INSERT INTO attendance (employee_id, date, status)`
	attendanceMarkedQuery = `SELECT EXISTS(SELECT 1 FROM attendance WHERE employee_id = $1 AND date = $2)`
	listAttendanceQuery   = `SELECT id, employee_id, date, status, created_at FROM attendance`
)

func newYear(t *testing.T) models.Attendance {
	t.Helper()

	day, err := models.ParseDate("2024-01-01")
	require.NoError(t, err)

	return models.Attendance{EmployeeID: 1, Date: day, Status: models.StatusPresent}
}

func TestSaveAttendance_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	record := newYear(t)
	createdAt := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(saveAttendanceQuery)).
		WithArgs(1, record.Date.Time, "Present").
		WillReturnRows(pgxmock.NewRows(attendanceColumns).AddRow(1, 1, record.Date.Time, "Present", createdAt))

	repo := repository.NewAttendanceRepository(mock, newMetrics())
	saved, err := repo.SaveAttendance(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)
	assert.Equal(t, "2024-01-01", saved.Date.String())
	assert.Equal(t, models.StatusPresent, saved.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAttendance_ConstraintViolations(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		pgErr    *pgconn.PgError
		expected error
	}{
		{
			name:     "same day",
			pgErr:    &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_date"},
			expected: repository.ErrDuplicateAttendance,
		},
		{
			name:     "unknown employee",
			pgErr:    &pgconn.PgError{Code: "23503", ConstraintName: "attendance_employee_id_fkey"},
			expected: repository.ErrEmployeeMissing,
		},
		{
			name:     "bad status",
			pgErr:    &pgconn.PgError{Code: "23514", ConstraintName: "attendance_status_check"},
			expected: repository.ErrInvalidStatus,
		},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			record := newYear(t)
			mock.ExpectQuery(regexp.QuoteMeta(saveAttendanceQuery)).
				WithArgs(1, record.Date.Time, "Present").
				WillReturnError(tc.pgErr)

			repo := repository.NewAttendanceRepository(mock, newMetrics())
			_, err = repo.SaveAttendance(context.Background(), record)

			require.ErrorIs(t, err, tc.expected)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveAttendance_UnknownPgErrorPassesThrough(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	record := newYear(t)
	pgErr := &pgconn.PgError{Code: "40001"}
	mock.ExpectQuery(regexp.QuoteMeta(saveAttendanceQuery)).
		WithArgs(1, record.Date.Time, "Present").
		WillReturnError(pgErr)

	repo := repository.NewAttendanceRepository(mock, newMetrics())
	_, err = repo.SaveAttendance(context.Background(), record)

	require.ErrorIs(t, err, pgErr)
	require.NotErrorIs(t, err, repository.ErrDuplicateAttendance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsAttendanceMarked(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	record := newYear(t)
	mock.ExpectQuery(regexp.QuoteMeta(attendanceMarkedQuery)).
		WithArgs(1, record.Date.Time).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	repo := repository.NewAttendanceRepository(mock, newMetrics())
	marked, err := repo.IsAttendanceMarked(context.Background(), 1, record.Date)

	require.NoError(t, err)
	assert.True(t, marked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAttendance_Filters(t *testing.T) {
	t.Parallel()

	day, err := models.ParseDate("2024-01-02")
	require.NoError(t, err)
	employeeID := 3

	testCases := []struct {
		name   string
		filter models.AttendanceFilter
		query  string
		args   []any
	}{
		{
			name:  "no filter",
			query: listAttendanceQuery + ` ORDER BY date, id`,
		},
		{
			name:   "employee only",
			filter: models.AttendanceFilter{EmployeeID: &employeeID},
			query:  listAttendanceQuery + ` WHERE employee_id = $1 ORDER BY date, id`,
			args:   []any{3},
		},
		{
			name:   "date only",
			filter: models.AttendanceFilter{Date: &day},
			query:  listAttendanceQuery + ` WHERE date = $1 ORDER BY date, id`,
			args:   []any{day.Time},
		},
		{
			name:   "both",
			filter: models.AttendanceFilter{EmployeeID: &employeeID, Date: &day},
			query:  listAttendanceQuery + ` WHERE employee_id = $1 AND date = $2 ORDER BY date, id`,
			args:   []any{3, day.Time},
		},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectQuery("^" + regexp.QuoteMeta(tc.query) + "$").
				WithArgs(tc.args...).
				WillReturnRows(pgxmock.NewRows(attendanceColumns).
					AddRow(5, 3, day.Time, "Absent", time.Now().UTC()))

			repo := repository.NewAttendanceRepository(mock, newMetrics())
			records, err := repo.ListAttendance(context.Background(), tc.filter)

			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, models.StatusAbsent, records[0].Status)
			assert.Equal(t, "2024-01-02", records[0].Date.String())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListAttendance_Empty(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(listAttendanceQuery)).WillReturnRows(pgxmock.NewRows(attendanceColumns))

	repo := repository.NewAttendanceRepository(mock, newMetrics())
	records, err := repo.ListAttendance(context.Background(), models.AttendanceFilter{})

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	require.NoError(t, mock.ExpectationsWereMet())
}
