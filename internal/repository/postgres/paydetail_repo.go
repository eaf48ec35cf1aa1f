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

type payDetailRepo struct {
	db *pgxpool.Pool
}

func NewPayDetailRepository(db *pgxpool.Pool) domain.PayDetailRepository {
	return &payDetailRepo{db: db}
}

func (r *payDetailRepo) Create(ctx context.Context, payDetail *domain.PayDetail) error {
	query := `INSERT INTO payroll.pay_details
                  (employee_id, basic_salary, bonuses, overtime_pay, pay_period)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		payDetail.EmployeeID, payDetail.BasicSalary, payDetail.Bonuses,
		payDetail.OvertimePay, payDetail.PayPeriod,
	).Scan(&payDetail.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.NotFound("Employee not found.")
		}
		logger.Log.Error("error creating pay detail", "error", err,
			"employee_id", payDetail.EmployeeID)
		return err
	}
	return nil
}

func (r *payDetailRepo) GetByID(ctx context.Context, id int64) (*domain.PayDetail, error) {
	query := `SELECT id, employee_id, basic_salary, bonuses, overtime_pay, pay_period
              FROM payroll.pay_details WHERE id = $1`

	var p domain.PayDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.BasicSalary, &p.Bonuses, &p.OvertimePay, &p.PayPeriod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving pay detail", "error", err, "pay_detail_id", id)
		return nil, err
	}
	return &p, nil
}

func (r *payDetailRepo) Update(ctx context.Context, id int64, patch domain.PayDetailPatch) error {
	b := newUpdateBuilder()
	if patch.BasicSalary != nil {
		b.Set("basic_salary", *patch.BasicSalary)
	}
	if patch.Bonuses != nil {
		b.Set("bonuses", *patch.Bonuses)
	}
	if patch.OvertimePay != nil {
		b.Set("overtime_pay", *patch.OvertimePay)
	}
	if patch.PayPeriod != nil {
		b.Set("pay_period", *patch.PayPeriod)
	}
	if b.Empty() {
		return nil
	}

	query, args := b.Build("payroll.pay_details", id)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		logger.Log.Error("error updating pay detail", "error", err, "pay_detail_id", id)
		return err
	}
	return nil
}

func (r *payDetailRepo) Remove(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payroll.pay_details WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("error removing pay detail", "error", err, "pay_detail_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Pay detail not found.")
	}
	return nil
}
