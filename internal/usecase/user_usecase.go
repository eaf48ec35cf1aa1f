package usecase

import (
	"context"
	"time"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/email"
	"job-finder-backend/pkg/logger"
	"job-finder-backend/pkg/password"
)

type userUsecase struct {
	userRepo  domain.UserRepository
	hasher    *password.Hasher
	notifier  email.Notifier
	templates *email.Templates
}

func NewUserUsecase(
	userRepo domain.UserRepository,
	hasher *password.Hasher,
	notifier email.Notifier,
	templates *email.Templates,
) domain.UserUsecase {
	return &userUsecase{
		userRepo:  userRepo,
		hasher:    hasher,
		notifier:  notifier,
		templates: templates,
	}
}

func (u *userUsecase) UpdateContact(ctx context.Context, userID int64, req domain.UpdateContactRequest) error {
	// A request with no recognized fields changes nothing.
	if req.Empty() {
		return nil
	}

	user, err := u.userRepo.Get(ctx, domain.UserQuery{ID: userID})
	if err != nil {
		return apperror.Internal("", err).Trace("user", "UpdateContact", userID)
	}
	if user == nil {
		return apperror.NotFound("User not found.").Trace("user", "UpdateContact", userID)
	}

	patch := domain.UserPatch{}
	if req.Email != "" {
		patch.Email = &req.Email
	}
	if req.MobileNumber != "" {
		patch.MobileNumber = &req.MobileNumber
	}
	return u.userRepo.Update(ctx, userID, patch)
}

func (u *userUsecase) UpdatePassword(ctx context.Context, userID int64, req domain.UpdatePasswordRequest, clientIP string) error {
	user, err := u.userRepo.Get(ctx, domain.UserQuery{ID: userID})
	if err != nil {
		return apperror.Internal("", err).Trace("user", "UpdatePassword", userID)
	}
	if user == nil {
		return apperror.NotFound("User not found.").Trace("user", "UpdatePassword", userID)
	}

	// Confirmation is checked before anything else so a mismatch is always
	// reported the same way, regardless of the other fields.
	if !password.ConstantTimeEqual(req.NewPassword, req.ConfirmPassword) {
		return apperror.Validation("Password confirmation does not match.").Trace("user", "UpdatePassword", userID)
	}
	if !u.hasher.Verify(req.CurrentPassword, user.Password, user.Role) {
		return apperror.Validation("Current password is incorrect.").Trace("user", "UpdatePassword", userID)
	}
	if password.ConstantTimeEqual(req.NewPassword, req.CurrentPassword) {
		return apperror.Validation("New password must be different from the current password.").Trace("user", "UpdatePassword", userID)
	}
	if err := password.ValidateStrength(req.NewPassword); err != nil {
		return apperror.Validation(err.Error()).Trace("user", "UpdatePassword", userID)
	}

	hashed, err := u.hasher.Hash(req.NewPassword, user.Role)
	if err != nil {
		return apperror.Internal("", err).Trace("user", "UpdatePassword", userID)
	}
	if err := u.userRepo.Update(ctx, userID, domain.UserPatch{Password: &hashed}); err != nil {
		return err
	}

	u.sendPasswordUpdated(user.Email, clientIP)
	return nil
}

// sendPasswordUpdated notifies the account owner; delivery failures are
// logged but never fail the password change itself.
func (u *userUsecase) sendPasswordUpdated(to, clientIP string) {
	if !u.notifier.IsConfigured() {
		return
	}
	body, err := u.templates.PasswordUpdated(to, clientIP, time.Now().UTC().Format(time.RFC1123))
	if err != nil {
		logger.Log.Error("error rendering password updated email", "error", err)
		return
	}
	if err := u.notifier.Send(to, "Your password has been updated", body); err != nil {
		logger.Log.Error("error sending password updated email", "error", err, "to", to)
	}
}

func (u *userUsecase) RemoveAccount(ctx context.Context, userID int64) error {
	return u.userRepo.Remove(ctx, userID)
}
