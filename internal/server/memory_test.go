package server_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
)

// errInt4Range mirrors the driver refusing to encode an id wider than the int4 columns.
var errInt4Range = errors.New("unable to encode id into int4: greater than maximum value")

func checkID(id int) error {
	if id > models.MaxID {
		return errInt4Range
	}
	return nil
}

// memoryStore is an in-process stand-in for PostgreSQL, including its unique keys and the cascade.
type memoryStore struct {
	mu           sync.Mutex
	employees    []models.Employee
	attendance   []models.Attendance
	nextEmployee int
	nextRecord   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{nextEmployee: 1, nextRecord: 1}
}

func (m *memoryStore) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (m *memoryStore) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (m *memoryStore) CreateEmployee(_ context.Context, employee models.Employee) (models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.employees {
		if existing.EmployeeID == employee.EmployeeID {
			return models.Employee{}, repository.ErrDuplicateEmployeeID
		}
		if existing.Email == employee.Email {
			return models.Employee{}, repository.ErrDuplicateEmail
		}
	}

	employee.ID = m.nextEmployee
	employee.CreatedAt = time.Now().UTC()
	m.nextEmployee++
	m.employees = append(m.employees, employee)

	return employee, nil
}

func (m *memoryStore) ListEmployees(_ context.Context) ([]models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.employees), nil
}

func (m *memoryStore) DeleteEmployee(_ context.Context, identifier int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := checkID(identifier); err != nil {
		return err
	}

	before := len(m.employees)
	m.employees = slices.DeleteFunc(m.employees, func(e models.Employee) bool { return e.ID == identifier })
	if len(m.employees) == before {
		return repository.ErrNotFound
	}

	m.attendance = slices.DeleteFunc(m.attendance, func(a models.Attendance) bool { return a.EmployeeID == identifier })

	return nil
}

func (m *memoryStore) EmployeeExists(_ context.Context, identifier int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := checkID(identifier); err != nil {
		return false, err
	}

	return slices.ContainsFunc(m.employees, func(e models.Employee) bool { return e.ID == identifier }), nil
}

func (m *memoryStore) IsEmployeeIDTaken(_ context.Context, employeeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.ContainsFunc(m.employees, func(e models.Employee) bool { return e.EmployeeID == employeeID }), nil
}

func (m *memoryStore) IsEmailTaken(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.ContainsFunc(m.employees, func(e models.Employee) bool { return e.Email == email }), nil
}

func (m *memoryStore) SaveAttendance(_ context.Context, record models.Attendance) (models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := checkID(record.EmployeeID); err != nil {
		return models.Attendance{}, err
	}

	if !slices.ContainsFunc(m.employees, func(e models.Employee) bool { return e.ID == record.EmployeeID }) {
		return models.Attendance{}, repository.ErrEmployeeMissing
	}
	if slices.ContainsFunc(m.attendance, func(a models.Attendance) bool {
		return a.EmployeeID == record.EmployeeID && a.Date.Equal(record.Date.Time)
	}) {
		return models.Attendance{}, repository.ErrDuplicateAttendance
	}

	record.ID = m.nextRecord
	record.CreatedAt = time.Now().UTC()
	m.nextRecord++
	m.attendance = append(m.attendance, record)

	return record, nil
}

func (m *memoryStore) IsAttendanceMarked(_ context.Context, employeeID int, day date.Date) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := checkID(employeeID); err != nil {
		return false, err
	}

	return slices.ContainsFunc(m.attendance, func(a models.Attendance) bool {
		return a.EmployeeID == employeeID && a.Date.Equal(day.Time)
	}), nil
}

func (m *memoryStore) ListAttendance(_ context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if filter.EmployeeID != nil {
		if err := checkID(*filter.EmployeeID); err != nil {
			return nil, err
		}
	}

	records := make([]models.Attendance, 0)
	for _, record := range m.attendance {
		if filter.EmployeeID != nil && record.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Date != nil && !record.Date.Equal(filter.Date.Time) {
			continue
		}
		records = append(records, record)
	}

	slices.SortStableFunc(records, func(a, b models.Attendance) int {
		if c := a.Date.Compare(b.Date.Time); c != 0 {
			return c
		}
		return a.ID - b.ID
	})

	return records, nil
}
