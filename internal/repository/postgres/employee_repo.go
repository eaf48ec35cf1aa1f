package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/logger"
)

// Payroll tables live in the payroll schema, separate from the public
// application tables.

type employeeRepo struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) domain.EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	query := `INSERT INTO payroll.employees
                  (first_name, last_name, email, phone_number, hire_date, job_title, department)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		employee.FirstName, employee.LastName, employee.Email, employee.PhoneNumber,
		employee.HireDate, employee.JobTitle, employee.Department,
	).Scan(&employee.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Validation("An employee with this email already exists.")
		}
		logger.Log.Error("error creating employee", "error", err)
		return err
	}
	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `SELECT id, first_name, last_name, email, phone_number, hire_date, job_title, department
              FROM payroll.employees WHERE id = $1`

	var e domain.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
		&e.HireDate, &e.JobTitle, &e.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving employee", "error", err, "employee_id", id)
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT id, first_name, last_name, email, phone_number, hire_date, job_title, department
              FROM payroll.employees ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("error listing employees", "error", err)
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		err := rows.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
			&e.HireDate, &e.JobTitle, &e.Department,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepo) Update(ctx context.Context, id int64, patch domain.EmployeePatch) error {
	b := newUpdateBuilder()
	if patch.FirstName != nil {
		b.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		b.Set("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		b.Set("email", *patch.Email)
	}
	if patch.PhoneNumber != nil {
		b.Set("phone_number", *patch.PhoneNumber)
	}
	if patch.HireDate != nil {
		b.Set("hire_date", *patch.HireDate)
	}
	if patch.JobTitle != nil {
		b.Set("job_title", *patch.JobTitle)
	}
	if patch.Department != nil {
		b.Set("department", *patch.Department)
	}
	if b.Empty() {
		return nil
	}

	query, args := b.Build("payroll.employees", id)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Validation("An employee with this email already exists.")
		}
		logger.Log.Error("error updating employee", "error", err, "employee_id", id)
		return err
	}
	return nil
}

func (r *employeeRepo) Remove(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payroll.employees WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("error removing employee", "error", err, "employee_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Employee not found.")
	}
	return nil
}
