package usecase

import (
	"context"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

type payrollUsecase struct {
	employeeRepo  domain.EmployeeRepository
	payDetailRepo domain.PayDetailRepository
	deductionRepo domain.DeductionRepository
	payslipRepo   domain.PayslipRepository
}

func NewPayrollUsecase(
	employeeRepo domain.EmployeeRepository,
	payDetailRepo domain.PayDetailRepository,
	deductionRepo domain.DeductionRepository,
	payslipRepo domain.PayslipRepository,
) domain.PayrollUsecase {
	return &payrollUsecase{
		employeeRepo:  employeeRepo,
		payDetailRepo: payDetailRepo,
		deductionRepo: deductionRepo,
		payslipRepo:   payslipRepo,
	}
}

// requireAdmin double-checks the caller's role from the request context. The
// routes are already gated by the authorization middleware; this guards the
// usecase if it is ever wired elsewhere.
func requireAdmin(ctx context.Context) error {
	role, ok := domain.RoleFromContext(ctx)
	if !ok || role != domain.RoleAdmin {
		return apperror.Forbidden("Administrator access required.")
	}
	return nil
}

func (u *payrollUsecase) CreateEmployee(ctx context.Context, req domain.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	employee := &domain.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		HireDate:    req.HireDate,
		JobTitle:    req.JobTitle,
		Department:  req.Department,
	}
	if err := u.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (u *payrollUsecase) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	employee, err := u.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("payroll", "GetEmployee", id)
	}
	if employee == nil {
		return nil, apperror.NotFound("Employee not found.").Trace("payroll", "GetEmployee", id)
	}
	return employee, nil
}

func (u *payrollUsecase) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.employeeRepo.List(ctx)
}

func (u *payrollUsecase) UpdateEmployee(ctx context.Context, id int64, patch domain.EmployeePatch) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := validatePatch(patch); err != nil {
		return err
	}
	employee, err := u.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal("", err).Trace("payroll", "UpdateEmployee", id)
	}
	if employee == nil {
		return apperror.NotFound("Employee not found.").Trace("payroll", "UpdateEmployee", id)
	}
	return u.employeeRepo.Update(ctx, id, patch)
}

func (u *payrollUsecase) RemoveEmployee(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return u.employeeRepo.Remove(ctx, id)
}

func (u *payrollUsecase) CreatePayDetail(ctx context.Context, req domain.CreatePayDetailRequest) (*domain.PayDetail, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	employee, err := u.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("payroll", "CreatePayDetail", req.EmployeeID)
	}
	if employee == nil {
		return nil, apperror.NotFound("Employee not found.").Trace("payroll", "CreatePayDetail", req.EmployeeID)
	}

	payDetail := &domain.PayDetail{
		EmployeeID:  req.EmployeeID,
		BasicSalary: req.BasicSalary,
		Bonuses:     req.Bonuses,
		OvertimePay: req.OvertimePay,
		PayPeriod:   req.PayPeriod,
	}
	if err := u.payDetailRepo.Create(ctx, payDetail); err != nil {
		return nil, err
	}
	return payDetail, nil
}

func (u *payrollUsecase) GetPayDetail(ctx context.Context, id int64) (*domain.PayDetail, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	payDetail, err := u.payDetailRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("payroll", "GetPayDetail", id)
	}
	if payDetail == nil {
		return nil, apperror.NotFound("Pay detail not found.").Trace("payroll", "GetPayDetail", id)
	}
	return payDetail, nil
}

func (u *payrollUsecase) UpdatePayDetail(ctx context.Context, id int64, patch domain.PayDetailPatch) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := validatePatch(patch); err != nil {
		return err
	}
	payDetail, err := u.payDetailRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal("", err).Trace("payroll", "UpdatePayDetail", id)
	}
	if payDetail == nil {
		return apperror.NotFound("Pay detail not found.").Trace("payroll", "UpdatePayDetail", id)
	}
	return u.payDetailRepo.Update(ctx, id, patch)
}

func (u *payrollUsecase) RemovePayDetail(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return u.payDetailRepo.Remove(ctx, id)
}

func (u *payrollUsecase) CreateDeduction(ctx context.Context, req domain.CreateDeductionRequest) (*domain.Deduction, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	employee, err := u.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("payroll", "CreateDeduction", req.EmployeeID)
	}
	if employee == nil {
		return nil, apperror.NotFound("Employee not found.").Trace("payroll", "CreateDeduction", req.EmployeeID)
	}

	deduction := &domain.Deduction{
		EmployeeID:      req.EmployeeID,
		Tax:             req.Tax,
		Insurance:       req.Insurance,
		RetirementFund:  req.RetirementFund,
		OtherDeductions: req.OtherDeductions,
		DeductionPeriod: req.DeductionPeriod,
	}
	if err := u.deductionRepo.Create(ctx, deduction); err != nil {
		return nil, err
	}
	return deduction, nil
}

func (u *payrollUsecase) GetDeduction(ctx context.Context, id int64) (*domain.Deduction, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	deduction, err := u.deductionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("payroll", "GetDeduction", id)
	}
	if deduction == nil {
		return nil, apperror.NotFound("Deduction not found.").Trace("payroll", "GetDeduction", id)
	}
	return deduction, nil
}

func (u *payrollUsecase) UpdateDeduction(ctx context.Context, id int64, patch domain.DeductionPatch) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := validatePatch(patch); err != nil {
		return err
	}
	deduction, err := u.deductionRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal("", err).Trace("payroll", "UpdateDeduction", id)
	}
	if deduction == nil {
		return apperror.NotFound("Deduction not found.").Trace("payroll", "UpdateDeduction", id)
	}
	return u.deductionRepo.Update(ctx, id, patch)
}

func (u *payrollUsecase) RemoveDeduction(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return u.deductionRepo.Remove(ctx, id)
}

// CreatePayslip denormalizes the referenced pay detail and deduction into
// fixed totals. Later edits to either source never change an issued payslip.
func (u *payrollUsecase) CreatePayslip(ctx context.Context, req domain.CreatePayslipRequest) (*domain.Payslip, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	employee, err := u.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("payroll", "CreatePayslip", req.EmployeeID)
	}
	if employee == nil {
		return nil, apperror.NotFound("Employee not found.").Trace("payroll", "CreatePayslip", req.EmployeeID)
	}

	payDetail, err := u.payDetailRepo.GetByID(ctx, req.PayDetailID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("payroll", "CreatePayslip", req.PayDetailID)
	}
	if payDetail == nil {
		return nil, apperror.NotFound("Pay detail not found.").Trace("payroll", "CreatePayslip", req.PayDetailID)
	}

	deduction, err := u.deductionRepo.GetByID(ctx, req.DeductionID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("payroll", "CreatePayslip", req.DeductionID)
	}
	if deduction == nil {
		return nil, apperror.NotFound("Deduction not found.").Trace("payroll", "CreatePayslip", req.DeductionID)
	}

	totalEarnings := payDetail.BasicSalary + payDetail.Bonuses + payDetail.OvertimePay
	totalDeductions := deduction.Tax + deduction.Insurance + deduction.RetirementFund + deduction.OtherDeductions

	payslip := &domain.Payslip{
		EmployeeID:      req.EmployeeID,
		PayDetailID:     req.PayDetailID,
		DeductionID:     req.DeductionID,
		IssueDate:       req.IssueDate,
		TotalEarnings:   totalEarnings,
		TotalDeductions: totalDeductions,
		NetPay:          totalEarnings - totalDeductions,
	}
	if err := u.payslipRepo.Create(ctx, payslip); err != nil {
		return nil, err
	}
	payslip.Employee = employee
	payslip.PayDetail = payDetail
	payslip.Deduction = deduction
	return payslip, nil
}

func (u *payrollUsecase) GetPayslip(ctx context.Context, id int64) (*domain.Payslip, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	payslip, err := u.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("payroll", "GetPayslip", id)
	}
	if payslip == nil {
		return nil, apperror.NotFound("Payslip not found.").Trace("payroll", "GetPayslip", id)
	}
	return payslip, nil
}

func (u *payrollUsecase) RemovePayslip(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return u.payslipRepo.Remove(ctx, id)
}
