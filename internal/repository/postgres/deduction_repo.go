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

type deductionRepo struct {
	db *pgxpool.Pool
}

func NewDeductionRepository(db *pgxpool.Pool) domain.DeductionRepository {
	return &deductionRepo{db: db}
}

func (r *deductionRepo) Create(ctx context.Context, deduction *domain.Deduction) error {
	query := `INSERT INTO payroll.deductions
                  (employee_id, tax, insurance, retirement_fund, other_deductions, deduction_period)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		deduction.EmployeeID, deduction.Tax, deduction.Insurance,
		deduction.RetirementFund, deduction.OtherDeductions, deduction.DeductionPeriod,
	).Scan(&deduction.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.NotFound("Employee not found.")
		}
		logger.Log.Error("error creating deduction", "error", err,
			"employee_id", deduction.EmployeeID)
		return err
	}
	return nil
}

func (r *deductionRepo) GetByID(ctx context.Context, id int64) (*domain.Deduction, error) {
	query := `SELECT id, employee_id, tax, insurance, retirement_fund, other_deductions, deduction_period
              FROM payroll.deductions WHERE id = $1`

	var d domain.Deduction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.EmployeeID, &d.Tax, &d.Insurance, &d.RetirementFund,
		&d.OtherDeductions, &d.DeductionPeriod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving deduction", "error", err, "deduction_id", id)
		return nil, err
	}
	return &d, nil
}

func (r *deductionRepo) Update(ctx context.Context, id int64, patch domain.DeductionPatch) error {
	b := newUpdateBuilder()
	if patch.Tax != nil {
		b.Set("tax", *patch.Tax)
	}
	if patch.Insurance != nil {
		b.Set("insurance", *patch.Insurance)
	}
	if patch.RetirementFund != nil {
		b.Set("retirement_fund", *patch.RetirementFund)
	}
	if patch.OtherDeductions != nil {
		b.Set("other_deductions", *patch.OtherDeductions)
	}
	if patch.DeductionPeriod != nil {
		b.Set("deduction_period", *patch.DeductionPeriod)
	}
	if b.Empty() {
		return nil
	}

	query, args := b.Build("payroll.deductions", id)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		logger.Log.Error("error updating deduction", "error", err, "deduction_id", id)
		return err
	}
	return nil
}

func (r *deductionRepo) Remove(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payroll.deductions WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("error removing deduction", "error", err, "deduction_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Deduction not found.")
	}
	return nil
}
