package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/hrms-lite/internal/lib/apperr"
	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
	"github.com/go-playground/validator/v10"
)

const deletedMessage = "Employee deleted successfully"

// Transactor runs a unit of work inside one store transaction.
type Transactor interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

// CreateEmployeeInput carries the caller supplied fields of a new employee.
type CreateEmployeeInput struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// Directory owns the employee records.
type Directory struct {
	log      *slog.Logger
	repo     repository.EmployeeRepoIface
	tx       Transactor
	metrics  *metrics.Metrics
	validate *validator.Validate
}

func NewDirectory(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	tx Transactor,
	metrics *metrics.Metrics,
) *Directory {
	return &Directory{
		log:      log,
		repo:     repo,
		tx:       tx,
		metrics:  metrics,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (d *Directory) initLogger(opn string) *slog.Logger {
	return d.log.With(
		sl.Op(opn),
		slog.String("division", "employee"),
	)
}

// CreateEmployee validates the input, checks employee_id and email uniqueness and stores the employee.
func (d *Directory) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (models.Employee, error) {
	const opn = "Directory.CreateEmployee"
	log := d.initLogger(opn)

	employee, err := d.normalize(input)
	if err != nil {
		return models.Employee{}, err
	}

	var created models.Employee
	err = d.tx.WithinReadWrite(ctx, func(ctx context.Context) error {
		taken, checkErr := d.repo.IsEmployeeIDTaken(ctx, employee.EmployeeID)
		if checkErr != nil {
			return checkErr
		}
		if taken {
			return duplicateIDError(employee.EmployeeID)
		}

		taken, checkErr = d.repo.IsEmailTaken(ctx, employee.Email)
		if checkErr != nil {
			return checkErr
		}
		if taken {
			return duplicateEmailError(employee.Email)
		}

		var createErr error
		created, createErr = d.repo.CreateEmployee(ctx, employee)
		switch {
		case errors.Is(createErr, repository.ErrDuplicateEmployeeID):
			return duplicateIDError(employee.EmployeeID).Wrap(createErr)
		case errors.Is(createErr, repository.ErrDuplicateEmail):
			return duplicateEmailError(employee.Email).Wrap(createErr)
		}

		return createErr
	})
	if err != nil {
		return models.Employee{}, d.fail(ctx, log, err)
	}

	d.metrics.EmployeesCreated.Inc()
	log.InfoContext(ctx, "employee created", "id", created.ID, "employee_id", created.EmployeeID)

	return created, nil
}

// ListEmployees returns every employee ordered by id.
func (d *Directory) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	const opn = "Directory.ListEmployees"
	log := d.initLogger(opn)

	var employees []models.Employee
	err := d.tx.WithinReadOnly(ctx, func(ctx context.Context) error {
		var listErr error
		employees, listErr = d.repo.ListEmployees(ctx)
		return listErr
	})
	if err != nil {
		return nil, d.fail(ctx, log, err)
	}

	if employees == nil {
		employees = []models.Employee{}
	}

	return employees, nil
}

// DeleteEmployee removes the employee and, through the store cascade, all of its attendance.
func (d *Directory) DeleteEmployee(ctx context.Context, identifier int) (models.Acknowledgement, error) {
	const opn = "Directory.DeleteEmployee"
	log := d.initLogger(opn)

	if identifier <= 0 {
		return models.Acknowledgement{}, apperr.Validation("Employee id must be a positive integer")
	}

	if !models.IDStorable(identifier) {
		return models.Acknowledgement{}, notFoundError(identifier)
	}

	err := d.tx.WithinReadWrite(ctx, func(ctx context.Context) error {
		exists, checkErr := d.repo.EmployeeExists(ctx, identifier)
		if checkErr != nil {
			return checkErr
		}
		if !exists {
			return notFoundError(identifier)
		}

		deleteErr := d.repo.DeleteEmployee(ctx, identifier)
		if errors.Is(deleteErr, repository.ErrNotFound) {
			return notFoundError(identifier).Wrap(deleteErr)
		}

		return deleteErr
	})
	if err != nil {
		return models.Acknowledgement{}, d.fail(ctx, log, err)
	}

	d.metrics.EmployeesDeleted.Inc()
	log.InfoContext(ctx, "employee deleted", "id", identifier)

	return models.Acknowledgement{Success: true, Message: deletedMessage}, nil
}

func (d *Directory) normalize(input CreateEmployeeInput) (models.Employee, error) {
	employee := models.Employee{
		EmployeeID: strings.TrimSpace(input.EmployeeID),
		FullName:   strings.TrimSpace(input.FullName),
		Email:      strings.TrimSpace(input.Email),
		Department: strings.TrimSpace(input.Department),
	}

	fields := []struct {
		name  string
		value string
	}{
		{"employee_id", employee.EmployeeID},
		{"full_name", employee.FullName},
		{"email", employee.Email},
		{"department", employee.Department},
	}
	for _, field := range fields {
		if field.value == "" {
			return models.Employee{}, apperr.Validation("%s must not be empty", field.name)
		}
	}

	if err := d.validate.Var(employee.Email, "email"); err != nil {
		return models.Employee{}, apperr.Validation("Invalid email address: %s", employee.Email)
	}

	return employee, nil
}

// fail logs internal errors and counts conflicts. Tagged errors are returned as they are.
func (d *Directory) fail(ctx context.Context, log *slog.Logger, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindConflict:
		d.metrics.Conflicts.WithLabelValues("employee").Inc()
		log.InfoContext(ctx, "employee rejected", sl.Err(err))
		return err
	case apperr.KindInternal:
		log.ErrorContext(ctx, "employee directory failure", sl.Err(err))
		return fmt.Errorf("directory: %w", err)
	default:
		return err
	}
}

func duplicateIDError(employeeID string) *apperr.Error {
	return apperr.Conflict("Employee with ID %s already exists", employeeID)
}

func duplicateEmailError(email string) *apperr.Error {
	return apperr.Conflict("Employee with email %s already exists", email)
}

func notFoundError(identifier int) *apperr.Error {
	return apperr.NotFound("Employee with ID %d not found", identifier)
}
