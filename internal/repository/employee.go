package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, employee_id, full_name, email, department, created_at`

// CreateEmployee inserts a new employee and returns the stored row with its assigned id and timestamp.
func (r *Repository) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("create_employee")()

	query := `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + employeeColumns + `;
	`

	row := r.conn(ctx).QueryRow(ctx, query, employee.EmployeeID, employee.FullName, employee.Email, employee.Department)

	created, err := scanEmployee(row)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", translatePgError(err))
	}

	return created, nil
}

// ListEmployees returns every employee ordered by id.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees")()

	rows, err := r.conn(ctx).Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", scanErr)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// DeleteEmployee removes the employee; attendance rows go with it through ON DELETE CASCADE.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int) error {
	defer r.observe("delete_employee")()

	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM employees WHERE id = $1`, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", translatePgError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// EmployeeExists checks whether an employee with the given system id exists.
func (r *Repository) EmployeeExists(ctx context.Context, identifier int) (bool, error) {
	defer r.observe("employee_exists")()

	exists, err := r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, identifier)
	if err != nil {
		return false, fmt.Errorf("error checking the existence of the employee: %w", err)
	}

	return exists, nil
}

// IsEmployeeIDTaken checks whether the caller supplied employee_id is already used.
func (r *Repository) IsEmployeeIDTaken(ctx context.Context, employeeID string) (bool, error) {
	defer r.observe("employee_id_taken")()

	taken, err := r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`, employeeID)
	if err != nil {
		return false, fmt.Errorf("error checking employee_id uniqueness: %w", err)
	}

	return taken, nil
}

// IsEmailTaken checks whether the email is already used by another employee.
func (r *Repository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	defer r.observe("email_taken")()

	taken, err := r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email)
	if err != nil {
		return false, fmt.Errorf("error checking email uniqueness: %w", err)
	}

	return taken, nil
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var employee models.Employee

	err := row.Scan(
		&employee.ID,
		&employee.EmployeeID,
		&employee.FullName,
		&employee.Email,
		&employee.Department,
		&employee.CreatedAt,
	)
	if err != nil {
		return models.Employee{}, err //nolint:wrapcheck // wrapped by callers
	}

	return employee, nil
}
