package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"job-finder-backend/internal/domain"
	"job-finder-backend/internal/usecase"
)

func adminContext() context.Context {
	return context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
}

func newPayrollFixture() (domain.PayrollUsecase, *MockEmployeeRepo, *MockPayDetailRepo, *MockDeductionRepo, *MockPayslipRepo) {
	employeeRepo := new(MockEmployeeRepo)
	payDetailRepo := new(MockPayDetailRepo)
	deductionRepo := new(MockDeductionRepo)
	payslipRepo := new(MockPayslipRepo)
	uc := usecase.NewPayrollUsecase(employeeRepo, payDetailRepo, deductionRepo, payslipRepo)
	return uc, employeeRepo, payDetailRepo, deductionRepo, payslipRepo
}

func TestPayrollRequiresAdmin(t *testing.T) {
	uc, employeeRepo, _, _, _ := newPayrollFixture()

	t.Run("missing role", func(t *testing.T) {
		_, err := uc.ListEmployees(context.Background())
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
	})

	t.Run("wrong role", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleRecruiter)
		_, err := uc.ListEmployees(ctx)
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
	})

	employeeRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestCreatePayslip(t *testing.T) {
	issueDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	req := domain.CreatePayslipRequest{
		EmployeeID: 1, PayDetailID: 2, DeductionID: 3, IssueDate: issueDate,
	}

	t.Run("totals come from the referenced rows", func(t *testing.T) {
		uc, employeeRepo, payDetailRepo, deductionRepo, payslipRepo := newPayrollFixture()
		employeeRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Employee{ID: 1}, nil)
		payDetailRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.PayDetail{
			ID: 2, EmployeeID: 1, BasicSalary: 1000, Bonuses: 200, OvertimePay: 100,
		}, nil)
		deductionRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Deduction{
			ID: 3, EmployeeID: 1, Tax: 100, Insurance: 50, RetirementFund: 25, OtherDeductions: 10,
		}, nil)
		payslipRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payslip")).Return(nil)

		payslip, err := uc.CreatePayslip(adminContext(), req)

		assert.NoError(t, err)
		assert.Equal(t, 1300.0, payslip.TotalEarnings)
		assert.Equal(t, 185.0, payslip.TotalDeductions)
		assert.Equal(t, 1115.0, payslip.NetPay)
	})

	t.Run("missing pay detail is not found", func(t *testing.T) {
		uc, employeeRepo, payDetailRepo, _, payslipRepo := newPayrollFixture()
		employeeRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Employee{ID: 1}, nil)
		payDetailRepo.On("GetByID", mock.Anything, int64(2)).Return(nil, nil)

		_, err := uc.CreatePayslip(adminContext(), req)

		assert.Equal(t, http.StatusNotFound, appCode(t, err))
		payslipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateEmployee(t *testing.T) {
	t.Run("missing employee is not found", func(t *testing.T) {
		uc, employeeRepo, _, _, _ := newPayrollFixture()
		employeeRepo.On("GetByID", mock.Anything, int64(4)).Return(nil, nil)

		first := "Ada"
		err := uc.UpdateEmployee(adminContext(), 4, domain.EmployeePatch{FirstName: &first})

		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("invalid patch is rejected before the lookup", func(t *testing.T) {
		uc, employeeRepo, _, _, _ := newPayrollFixture()

		bad := "not-an-email"
		err := uc.UpdateEmployee(adminContext(), 4, domain.EmployeePatch{Email: &bad})

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		employeeRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
