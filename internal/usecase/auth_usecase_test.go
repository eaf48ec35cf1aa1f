package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"job-finder-backend/internal/domain"
	"job-finder-backend/internal/usecase"
	"job-finder-backend/pkg/email"
	"job-finder-backend/pkg/password"
	"job-finder-backend/pkg/token"
)

type authFixture struct {
	uc            domain.AuthUsecase
	userRepo      *MockUserRepo
	candidateRepo *MockCandidateRepo
	recruiterRepo *MockRecruiterRepo
	notifier      *MockNotifier
	hasher        *password.Hasher
	tokens        *token.Manager
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	cfg := testConfig()
	f := &authFixture{
		userRepo:      new(MockUserRepo),
		candidateRepo: new(MockCandidateRepo),
		recruiterRepo: new(MockRecruiterRepo),
		notifier:      new(MockNotifier),
		hasher:        password.NewHasher(cfg),
		tokens:        token.NewManager(cfg),
	}
	f.uc = usecase.NewAuthUsecase(
		f.userRepo, new(MockAdminRepo), f.candidateRepo, f.recruiterRepo,
		f.tokens, f.hasher, f.notifier, email.NewTemplates(cfg.ProductName), cfg,
	)
	return f
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	const plain = "Secret123"

	verifiedUser := func(t *testing.T, f *authFixture) *domain.User {
		hashed, err := f.hasher.Hash(plain, domain.RoleCandidate)
		assert.NoError(t, err)
		return &domain.User{
			ID: 1, Email: "jane@example.com", Role: domain.RoleCandidate,
			Password: hashed, IsVerified: true,
		}
	}

	t.Run("success returns a verifiable access token", func(t *testing.T) {
		f := newAuthFixture(t)
		user := verifiedUser(t, f)
		f.userRepo.On("Get", mock.Anything, domain.UserQuery{Email: user.Email}).Return(user, nil)

		result, err := f.uc.Login(ctx, domain.LoginRequest{
			Email: user.Email, Password: plain, Role: domain.RoleCandidate,
		})

		assert.NoError(t, err)
		assert.Equal(t, user.Email, result.User.Email)

		claims, err := f.tokens.Verify(domain.RoleCandidate, token.TypeAccess, result.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		user := verifiedUser(t, f)
		f.userRepo.On("Get", mock.Anything, mock.Anything).Return(user, nil)

		_, err := f.uc.Login(ctx, domain.LoginRequest{
			Email: user.Email, Password: "Wrong1234", Role: domain.RoleCandidate,
		})

		assert.Equal(t, http.StatusUnauthorized, appCode(t, err))
	})

	t.Run("role mismatch looks like bad credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		user := verifiedUser(t, f)
		f.userRepo.On("Get", mock.Anything, mock.Anything).Return(user, nil)

		_, err := f.uc.Login(ctx, domain.LoginRequest{
			Email: user.Email, Password: plain, Role: domain.RoleRecruiter,
		})

		assert.Equal(t, http.StatusUnauthorized, appCode(t, err))
	})

	t.Run("unverified account is forbidden", func(t *testing.T) {
		f := newAuthFixture(t)
		user := verifiedUser(t, f)
		user.IsVerified = false
		f.userRepo.On("Get", mock.Anything, mock.Anything).Return(user, nil)

		_, err := f.uc.Login(ctx, domain.LoginRequest{
			Email: user.Email, Password: plain, Role: domain.RoleCandidate,
		})

		assert.Equal(t, http.StatusForbidden, appCode(t, err))
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmation mismatch never touches the repository", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.uc.Register(ctx, domain.RegisterRequest{
			Role: domain.RoleCandidate, Email: "jane@example.com", MobileNumber: "1234567",
			Password: "Secret123", ConfirmPassword: "Other1234",
			FirstName: "Jane", LastName: "Doe",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		f.candidateRepo.AssertNotCalled(t, "CreateWithUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("recruiter registration requires company fields", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.uc.Register(ctx, domain.RegisterRequest{
			Role: domain.RoleRecruiter, Email: "acme@example.com", MobileNumber: "1234567",
			Password: "Secret123", ConfirmPassword: "Secret123",
		})

		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})

	t.Run("candidate registration hashes and emails activation", func(t *testing.T) {
		f := newAuthFixture(t)
		f.candidateRepo.On("CreateWithUser", mock.Anything,
			mock.MatchedBy(func(u *domain.User) bool {
				return u.Password != "Secret123" && !u.IsVerified && u.Role == domain.RoleCandidate
			}),
			mock.AnythingOfType("*domain.Candidate"),
		).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)
		f.notifier.On("IsConfigured").Return(true)
		f.notifier.On("Send", "jane@example.com", mock.Anything, mock.Anything).Return(nil)

		dto, err := f.uc.Register(ctx, domain.RegisterRequest{
			Role: domain.RoleCandidate, Email: "jane@example.com", MobileNumber: "1234567",
			Password: "Secret123", ConfirmPassword: "Secret123",
			FirstName: "Jane", LastName: "Doe",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), dto.ID)
		f.candidateRepo.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
	})
}

func TestForgotPassword(t *testing.T) {
	t.Run("unknown account succeeds silently", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)

		err := f.uc.ForgotPassword(context.Background(), "ghost@example.com", domain.RoleCandidate)

		assert.NoError(t, err)
		f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestConfirmActivation(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the account verified", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("Get", mock.Anything, domain.UserQuery{ID: 5}).
			Return(&domain.User{ID: 5, Role: domain.RoleCandidate}, nil)
		f.userRepo.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(p domain.UserPatch) bool {
			return p.IsVerified != nil && *p.IsVerified
		})).Return(nil)

		assert.NoError(t, f.uc.ConfirmActivation(ctx, 5))
		f.userRepo.AssertExpectations(t)
	})

	t.Run("confirming twice is harmless", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("Get", mock.Anything, domain.UserQuery{ID: 5}).
			Return(&domain.User{ID: 5, IsVerified: true}, nil)

		assert.NoError(t, f.uc.ConfirmActivation(ctx, 5))
		f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
