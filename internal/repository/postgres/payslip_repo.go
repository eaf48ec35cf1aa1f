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

type payslipRepo struct {
	db *pgxpool.Pool
}

func NewPayslipRepository(db *pgxpool.Pool) domain.PayslipRepository {
	return &payslipRepo{db: db}
}

func (r *payslipRepo) Create(ctx context.Context, payslip *domain.Payslip) error {
	query := `INSERT INTO payroll.payslips
                  (employee_id, pay_detail_id, deduction_id, issue_date,
                   total_earnings, total_deductions, net_pay)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		payslip.EmployeeID, payslip.PayDetailID, payslip.DeductionID,
		payslip.IssueDate, payslip.TotalEarnings, payslip.TotalDeductions,
		payslip.NetPay,
	).Scan(&payslip.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.NotFound("Employee, pay detail or deduction not found.")
		}
		logger.Log.Error("error creating payslip", "error", err,
			"employee_id", payslip.EmployeeID)
		return err
	}
	return nil
}

func (r *payslipRepo) GetByID(ctx context.Context, id int64) (*domain.Payslip, error) {
	query := `SELECT p.id, p.employee_id, p.pay_detail_id, p.deduction_id, p.issue_date,
                     p.total_earnings, p.total_deductions, p.net_pay,
                     e.id, e.first_name, e.last_name, e.email, e.phone_number,
                     e.hire_date, e.job_title, e.department,
                     pd.id, pd.employee_id, pd.basic_salary, pd.bonuses, pd.overtime_pay, pd.pay_period,
                     d.id, d.employee_id, d.tax, d.insurance, d.retirement_fund,
                     d.other_deductions, d.deduction_period
              FROM payroll.payslips p
              JOIN payroll.employees e ON e.id = p.employee_id
              JOIN payroll.pay_details pd ON pd.id = p.pay_detail_id
              JOIN payroll.deductions d ON d.id = p.deduction_id
              WHERE p.id = $1`

	var p domain.Payslip
	var e domain.Employee
	var pd domain.PayDetail
	var d domain.Deduction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PayDetailID, &p.DeductionID, &p.IssueDate,
		&p.TotalEarnings, &p.TotalDeductions, &p.NetPay,
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
		&e.HireDate, &e.JobTitle, &e.Department,
		&pd.ID, &pd.EmployeeID, &pd.BasicSalary, &pd.Bonuses, &pd.OvertimePay, &pd.PayPeriod,
		&d.ID, &d.EmployeeID, &d.Tax, &d.Insurance, &d.RetirementFund,
		&d.OtherDeductions, &d.DeductionPeriod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving payslip", "error", err, "payslip_id", id)
		return nil, err
	}
	p.Employee = &e
	p.PayDetail = &pd
	p.Deduction = &d
	return &p, nil
}

func (r *payslipRepo) Remove(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payroll.payslips WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("error removing payslip", "error", err, "payslip_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Payslip not found.")
	}
	return nil
}
