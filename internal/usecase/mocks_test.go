package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"job-finder-backend/internal/domain"
)

// Mock repositories shared across the usecase tests.

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Get(ctx context.Context, q domain.UserQuery) (*domain.User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, id int64, patch domain.UserPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockUserRepo) Remove(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) CreateWithUser(ctx context.Context, user *domain.User, admin *domain.Admin) error {
	return m.Called(ctx, user, admin).Error(0)
}

func (m *MockAdminRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Admin, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) CreateWithUser(ctx context.Context, user *domain.User, candidate *domain.Candidate) error {
	return m.Called(ctx, user, candidate).Error(0)
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, id int64, patch domain.CandidatePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockCandidateRepo) List(ctx context.Context, q domain.CandidatesQuery) ([]domain.Candidate, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

type MockRecruiterRepo struct {
	mock.Mock
}

func (m *MockRecruiterRepo) CreateWithUser(ctx context.Context, user *domain.User, recruiter *domain.Recruiter) error {
	return m.Called(ctx, user, recruiter).Error(0)
}

func (m *MockRecruiterRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Recruiter, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruiter), args.Error(1)
}

func (m *MockRecruiterRepo) Update(ctx context.Context, id int64, patch domain.RecruiterPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockRecruiterRepo) List(ctx context.Context, q domain.RecruitersQuery) ([]domain.Recruiter, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recruiter), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) List(ctx context.Context, q domain.JobsQuery) ([]domain.Job, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.Job, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, id int64, patch domain.JobPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockJobRepo) Remove(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepo) IncrementViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, application *domain.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (*domain.Application, error) {
	args := m.Called(ctx, jobID, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, id int64, patch domain.EmployeePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockEmployeeRepo) Remove(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPayDetailRepo struct {
	mock.Mock
}

func (m *MockPayDetailRepo) Create(ctx context.Context, payDetail *domain.PayDetail) error {
	return m.Called(ctx, payDetail).Error(0)
}

func (m *MockPayDetailRepo) GetByID(ctx context.Context, id int64) (*domain.PayDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayDetail), args.Error(1)
}

func (m *MockPayDetailRepo) Update(ctx context.Context, id int64, patch domain.PayDetailPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockPayDetailRepo) Remove(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockDeductionRepo struct {
	mock.Mock
}

func (m *MockDeductionRepo) Create(ctx context.Context, deduction *domain.Deduction) error {
	return m.Called(ctx, deduction).Error(0)
}

func (m *MockDeductionRepo) GetByID(ctx context.Context, id int64) (*domain.Deduction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deduction), args.Error(1)
}

func (m *MockDeductionRepo) Update(ctx context.Context, id int64, patch domain.DeductionPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockDeductionRepo) Remove(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPayslipRepo struct {
	mock.Mock
}

func (m *MockPayslipRepo) Create(ctx context.Context, payslip *domain.Payslip) error {
	return m.Called(ctx, payslip).Error(0)
}

func (m *MockPayslipRepo) GetByID(ctx context.Context, id int64) (*domain.Payslip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payslip), args.Error(1)
}

func (m *MockPayslipRepo) Remove(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(to, subject, htmlBody string) error {
	return m.Called(to, subject, htmlBody).Error(0)
}

func (m *MockNotifier) IsConfigured() bool {
	return m.Called().Bool(0)
}
