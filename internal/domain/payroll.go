package domain

import (
	"context"
	"time"
)

// Payroll entities live in their own database schema and are administered
// exclusively through the admin service.

type Employee struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	HireDate    time.Time `json:"hireDate"`
	JobTitle    string    `json:"jobTitle"`
	Department  string    `json:"department"`
}

type PayDetail struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employeeId"`
	BasicSalary float64   `json:"basicSalary"`
	Bonuses     float64   `json:"bonuses"`
	OvertimePay float64   `json:"overtimePay"`
	PayPeriod   time.Time `json:"payPeriod"`
}

type Deduction struct {
	ID              int64     `json:"id"`
	EmployeeID      int64     `json:"employeeId"`
	Tax             float64   `json:"tax"`
	Insurance       float64   `json:"insurance"`
	RetirementFund  float64   `json:"retirementFund"`
	OtherDeductions float64   `json:"otherDeductions"`
	DeductionPeriod time.Time `json:"deductionPeriod"`
}

// Payslip aggregates one pay detail and one deduction row into denormalized
// totals computed at creation time.
type Payslip struct {
	ID              int64      `json:"id"`
	EmployeeID      int64      `json:"employeeId"`
	PayDetailID     int64      `json:"payDetailId"`
	DeductionID     int64      `json:"deductionId"`
	IssueDate       time.Time  `json:"issueDate"`
	TotalEarnings   float64    `json:"totalEarnings"`
	TotalDeductions float64    `json:"totalDeductions"`
	NetPay          float64    `json:"netPay"`
	Employee        *Employee  `json:"employee,omitempty"`
	PayDetail       *PayDetail `json:"payDetail,omitempty"`
	Deduction       *Deduction `json:"deduction,omitempty"`
}

type EmployeePatch struct {
	FirstName   *string    `json:"firstName" validate:"omitempty,min=1"`
	LastName    *string    `json:"lastName" validate:"omitempty,min=1"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	PhoneNumber *string    `json:"phoneNumber"`
	HireDate    *time.Time `json:"hireDate"`
	JobTitle    *string    `json:"jobTitle" validate:"omitempty,min=1"`
	Department  *string    `json:"department" validate:"omitempty,min=1"`
}

type PayDetailPatch struct {
	BasicSalary *float64   `json:"basicSalary" validate:"omitempty,min=0"`
	Bonuses     *float64   `json:"bonuses" validate:"omitempty,min=0"`
	OvertimePay *float64   `json:"overtimePay" validate:"omitempty,min=0"`
	PayPeriod   *time.Time `json:"payPeriod"`
}

type DeductionPatch struct {
	Tax             *float64   `json:"tax" validate:"omitempty,min=0"`
	Insurance       *float64   `json:"insurance" validate:"omitempty,min=0"`
	RetirementFund  *float64   `json:"retirementFund" validate:"omitempty,min=0"`
	OtherDeductions *float64   `json:"otherDeductions" validate:"omitempty,min=0"`
	DeductionPeriod *time.Time `json:"deductionPeriod"`
}

type CreateEmployeeRequest struct {
	FirstName   string    `json:"firstName" binding:"required"`
	LastName    string    `json:"lastName" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	PhoneNumber string    `json:"phoneNumber"`
	HireDate    time.Time `json:"hireDate" binding:"required"`
	JobTitle    string    `json:"jobTitle" binding:"required"`
	Department  string    `json:"department" binding:"required"`
}

type CreatePayDetailRequest struct {
	EmployeeID  int64     `json:"employeeId" binding:"required"`
	BasicSalary float64   `json:"basicSalary" binding:"required,min=0"`
	Bonuses     float64   `json:"bonuses" binding:"omitempty,min=0"`
	OvertimePay float64   `json:"overtimePay" binding:"omitempty,min=0"`
	PayPeriod   time.Time `json:"payPeriod" binding:"required"`
}

type CreateDeductionRequest struct {
	EmployeeID      int64     `json:"employeeId" binding:"required"`
	Tax             float64   `json:"tax" binding:"required,min=0"`
	Insurance       float64   `json:"insurance" binding:"omitempty,min=0"`
	RetirementFund  float64   `json:"retirementFund" binding:"omitempty,min=0"`
	OtherDeductions float64   `json:"otherDeductions" binding:"omitempty,min=0"`
	DeductionPeriod time.Time `json:"deductionPeriod" binding:"required"`
}

type CreatePayslipRequest struct {
	EmployeeID  int64     `json:"employeeId" binding:"required"`
	PayDetailID int64     `json:"payDetailId" binding:"required"`
	DeductionID int64     `json:"deductionId" binding:"required"`
	IssueDate   time.Time `json:"issueDate" binding:"required"`
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *Employee) error
	GetByID(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, id int64, patch EmployeePatch) error
	Remove(ctx context.Context, id int64) error
}

type PayDetailRepository interface {
	Create(ctx context.Context, payDetail *PayDetail) error
	GetByID(ctx context.Context, id int64) (*PayDetail, error)
	Update(ctx context.Context, id int64, patch PayDetailPatch) error
	Remove(ctx context.Context, id int64) error
}

type DeductionRepository interface {
	Create(ctx context.Context, deduction *Deduction) error
	GetByID(ctx context.Context, id int64) (*Deduction, error)
	Update(ctx context.Context, id int64, patch DeductionPatch) error
	Remove(ctx context.Context, id int64) error
}

type PayslipRepository interface {
	Create(ctx context.Context, payslip *Payslip) error
	// GetByID returns the payslip with employee, pay detail and deduction
	// joined, or nil.
	GetByID(ctx context.Context, id int64) (*Payslip, error)
	Remove(ctx context.Context, id int64) error
}

type PayrollUsecase interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	UpdateEmployee(ctx context.Context, id int64, patch EmployeePatch) error
	RemoveEmployee(ctx context.Context, id int64) error

	CreatePayDetail(ctx context.Context, req CreatePayDetailRequest) (*PayDetail, error)
	GetPayDetail(ctx context.Context, id int64) (*PayDetail, error)
	UpdatePayDetail(ctx context.Context, id int64, patch PayDetailPatch) error
	RemovePayDetail(ctx context.Context, id int64) error

	CreateDeduction(ctx context.Context, req CreateDeductionRequest) (*Deduction, error)
	GetDeduction(ctx context.Context, id int64) (*Deduction, error)
	UpdateDeduction(ctx context.Context, id int64, patch DeductionPatch) error
	RemoveDeduction(ctx context.Context, id int64) error

	CreatePayslip(ctx context.Context, req CreatePayslipRequest) (*Payslip, error)
	GetPayslip(ctx context.Context, id int64) (*Payslip, error)
	RemovePayslip(ctx context.Context, id int64) error
}
