package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"job-finder-backend/config"
	"job-finder-backend/internal/domain"
	"job-finder-backend/internal/usecase"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/email"
	"job-finder-backend/pkg/password"
)

func testConfig() *config.Config {
	secrets := func(prefix string) config.RoleSecrets {
		return config.RoleSecrets{
			AccessKey:     prefix + "-access",
			ActivationKey: prefix + "-activation",
			PasswordKey:   prefix + "-password",
			Pepper:        prefix + "-pepper",
		}
	}
	return &config.Config{
		Roles: map[string]config.RoleSecrets{
			domain.RoleAdmin:     secrets("admin"),
			domain.RoleCandidate: secrets("candidate"),
			domain.RoleRecruiter: secrets("recruiter"),
		},
		AdminURL:     "http://localhost:3001",
		CandidateURL: "http://localhost:3002",
		RecruiterURL: "http://localhost:3003",
		AuthAPIURL:   "http://localhost:8080",
		ProductName:  "Job Finder",
	}
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func newUserUsecase(t *testing.T) (domain.UserUsecase, *MockUserRepo, *MockNotifier, *password.Hasher) {
	t.Helper()
	cfg := testConfig()
	hasher := password.NewHasher(cfg)
	userRepo := new(MockUserRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewUserUsecase(userRepo, hasher, notifier, email.NewTemplates(cfg.ProductName))
	return uc, userRepo, notifier, hasher
}

func TestUpdateContact(t *testing.T) {
	ctx := context.Background()

	t.Run("empty request is a no-op", func(t *testing.T) {
		uc, userRepo, _, _ := newUserUsecase(t)

		err := uc.UpdateContact(ctx, 1, domain.UpdateContactRequest{})

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing user is not found", func(t *testing.T) {
		uc, userRepo, _, _ := newUserUsecase(t)
		userRepo.On("Get", mock.Anything, domain.UserQuery{ID: 42}).Return(nil, nil)

		err := uc.UpdateContact(ctx, 42, domain.UpdateContactRequest{Email: "new@example.com"})

		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("only the provided fields are patched", func(t *testing.T) {
		uc, userRepo, _, _ := newUserUsecase(t)
		userRepo.On("Get", mock.Anything, domain.UserQuery{ID: 1}).
			Return(&domain.User{ID: 1, Role: domain.RoleCandidate}, nil)
		userRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p domain.UserPatch) bool {
			return p.Email != nil && *p.Email == "new@example.com" && p.MobileNumber == nil
		})).Return(nil)

		err := uc.UpdateContact(ctx, 1, domain.UpdateContactRequest{Email: "new@example.com"})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()
	const current = "Current123"
	const userID = int64(1)

	setup := func(t *testing.T) (domain.UserUsecase, *MockUserRepo, *MockNotifier) {
		uc, userRepo, notifier, hasher := newUserUsecase(t)
		hashed, err := hasher.Hash(current, domain.RoleCandidate)
		assert.NoError(t, err)
		userRepo.On("Get", mock.Anything, domain.UserQuery{ID: userID}).
			Return(&domain.User{ID: userID, Email: "user@example.com", Role: domain.RoleCandidate, Password: hashed}, nil)
		return uc, userRepo, notifier
	}

	t.Run("confirmation mismatch always wins", func(t *testing.T) {
		uc, _, _ := setup(t)

		// Even with a wrong current password the mismatch is what gets
		// reported.
		err := uc.UpdatePassword(ctx, userID, domain.UpdatePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "NewSecret1",
			ConfirmPassword: "Different1",
		}, "127.0.0.1")

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		assert.Contains(t, err.Error(), "confirmation")
	})

	t.Run("wrong current password", func(t *testing.T) {
		uc, _, _ := setup(t)

		err := uc.UpdatePassword(ctx, userID, domain.UpdatePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "NewSecret1",
			ConfirmPassword: "NewSecret1",
		}, "127.0.0.1")

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		assert.Contains(t, err.Error(), "Current password")
	})

	t.Run("new password must differ from current", func(t *testing.T) {
		uc, _, _ := setup(t)

		err := uc.UpdatePassword(ctx, userID, domain.UpdatePasswordRequest{
			CurrentPassword: current,
			NewPassword:     current,
			ConfirmPassword: current,
		}, "127.0.0.1")

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		assert.Contains(t, err.Error(), "different")
	})

	t.Run("weak new password is rejected", func(t *testing.T) {
		uc, _, _ := setup(t)

		err := uc.UpdatePassword(ctx, userID, domain.UpdatePasswordRequest{
			CurrentPassword: current,
			NewPassword:     "alllowercase",
			ConfirmPassword: "alllowercase",
		}, "127.0.0.1")

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
	})

	t.Run("success rehashes and notifies", func(t *testing.T) {
		uc, userRepo, notifier := setup(t)
		userRepo.On("Update", mock.Anything, userID, mock.MatchedBy(func(p domain.UserPatch) bool {
			// The stored value must be a hash, never the plaintext.
			return p.Password != nil && *p.Password != "NewSecret1"
		})).Return(nil)
		notifier.On("IsConfigured").Return(true)
		notifier.On("Send", "user@example.com", mock.Anything, mock.Anything).Return(nil)

		err := uc.UpdatePassword(ctx, userID, domain.UpdatePasswordRequest{
			CurrentPassword: current,
			NewPassword:     "NewSecret1",
			ConfirmPassword: "NewSecret1",
		}, "127.0.0.1")

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})
}

func TestRemoveAccount(t *testing.T) {
	t.Run("missing account surfaces not found", func(t *testing.T) {
		uc, userRepo, _, _ := newUserUsecase(t)
		userRepo.On("Remove", mock.Anything, int64(99)).
			Return(apperror.NotFound("User not found."))

		err := uc.RemoveAccount(context.Background(), 99)

		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})
}
