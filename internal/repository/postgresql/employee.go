package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, user_id, first_name, last_name, department, designation, employment_type,
	joining_date, reporting_to, basic_salary, allowances, deductions, net_salary,
	leave_paid, leave_sick, leave_unpaid, created_at, updated_at
`

func (r *employeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := q.Exec(ctx, query,
		e.ID,
		e.UserID,
		e.FirstName,
		e.LastName,
		e.Department,
		e.Designation,
		string(e.EmploymentType),
		e.JoiningDate,
		e.ReportingTo,
		e.Salary.Basic,
		e.Salary.Allowances,
		e.Salary.Deductions,
		e.Salary.NetSalary,
		e.LeaveBalance.Paid,
		e.LeaveBalance.Sick,
		e.LeaveBalance.Unpaid,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrProfileExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`
	return scanEmployee(q.QueryRow(ctx, query, userID))
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	var employmentType string

	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.FirstName,
		&e.LastName,
		&e.Department,
		&e.Designation,
		&employmentType,
		&e.JoiningDate,
		&e.ReportingTo,
		&e.Salary.Basic,
		&e.Salary.Allowances,
		&e.Salary.Deductions,
		&e.Salary.NetSalary,
		&e.LeaveBalance.Paid,
		&e.LeaveBalance.Sick,
		&e.LeaveBalance.Unpaid,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	e.EmploymentType = employee.EmploymentType(employmentType)
	return &e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		var e employee.Employee
		var employmentType string
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.FirstName,
			&e.LastName,
			&e.Department,
			&e.Designation,
			&employmentType,
			&e.JoiningDate,
			&e.ReportingTo,
			&e.Salary.Basic,
			&e.Salary.Allowances,
			&e.Salary.Deductions,
			&e.Salary.NetSalary,
			&e.LeaveBalance.Paid,
			&e.LeaveBalance.Sick,
			&e.LeaveBalance.Unpaid,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.EmploymentType = employee.EmploymentType(employmentType)
		employees = append(employees, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, department = $3, designation = $4,
		    employment_type = $5, reporting_to = $6, basic_salary = $7,
		    allowances = $8, deductions = $9, net_salary = $10,
		    leave_paid = $11, leave_sick = $12, leave_unpaid = $13, updated_at = $14
		WHERE id = $15
	`

	result, err := q.Exec(ctx, query,
		e.FirstName,
		e.LastName,
		e.Department,
		e.Designation,
		string(e.EmploymentType),
		e.ReportingTo,
		e.Salary.Basic,
		e.Salary.Allowances,
		e.Salary.Deductions,
		e.Salary.NetSalary,
		e.LeaveBalance.Paid,
		e.LeaveBalance.Sick,
		e.LeaveBalance.Unpaid,
		time.Now(),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// DecrementLeaveBalance subtracts days from one balance counter. The counter
// name is mapped to a fixed column here, never interpolated from input.
func (r *employeeRepository) DecrementLeaveBalance(ctx context.Context, employeeID, counter string, days int) error {
	q := GetQuerier(ctx, r.db)

	var column string
	switch counter {
	case "paid":
		column = "leave_paid"
	case "sick":
		column = "leave_sick"
	case "unpaid":
		column = "leave_unpaid"
	default:
		return fmt.Errorf("unknown leave balance counter: %q", counter)
	}

	query := fmt.Sprintf(`UPDATE employees SET %s = %s - $1, updated_at = $2 WHERE id = $3`, column, column)

	result, err := q.Exec(ctx, query, days, time.Now(), employeeID)
	if err != nil {
		return fmt.Errorf("failed to decrement leave balance: %w", err)
	}

	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}
