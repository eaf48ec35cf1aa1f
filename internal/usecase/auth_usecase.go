package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"job-finder-backend/config"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/email"
	"job-finder-backend/pkg/logger"
	"job-finder-backend/pkg/password"
	"job-finder-backend/pkg/token"
)

type authUsecase struct {
	userRepo      domain.UserRepository
	adminRepo     domain.AdminRepository
	candidateRepo domain.CandidateRepository
	recruiterRepo domain.RecruiterRepository
	tokens        *token.Manager
	hasher        *password.Hasher
	notifier      email.Notifier
	templates     *email.Templates
	cfg           *config.Config
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	adminRepo domain.AdminRepository,
	candidateRepo domain.CandidateRepository,
	recruiterRepo domain.RecruiterRepository,
	tokens *token.Manager,
	hasher *password.Hasher,
	notifier email.Notifier,
	templates *email.Templates,
	cfg *config.Config,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		adminRepo:     adminRepo,
		candidateRepo: candidateRepo,
		recruiterRepo: recruiterRepo,
		tokens:        tokens,
		hasher:        hasher,
		notifier:      notifier,
		templates:     templates,
		cfg:           cfg,
	}
}

func (u *authUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	user, err := u.userRepo.Get(ctx, domain.UserQuery{Email: req.Email})
	if err != nil {
		return nil, apperror.Internal("", err).Trace("auth", "Login", req.Email)
	}
	// A wrong role and a wrong password are reported identically so the
	// response never reveals whether the account exists.
	if user == nil || user.Role != req.Role {
		return nil, apperror.Unauthorized("Invalid email or password.").Trace("auth", "Login", req.Email)
	}
	if !u.hasher.Verify(req.Password, user.Password, user.Role) {
		return nil, apperror.Unauthorized("Invalid email or password.").Trace("auth", "Login", req.Email)
	}
	if !user.IsVerified {
		return nil, apperror.Forbidden("Your account has not been activated yet. Please check your email.").Trace("auth", "Login", req.Email)
	}

	accessToken, err := u.tokens.Sign(user.Role, token.TypeAccess, user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("auth", "Login", req.Email)
	}

	return &domain.LoginResult{
		AccessToken: accessToken,
		User:        domain.ToUserDTO(user),
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserDTO, error) {
	if !password.ConstantTimeEqual(req.Password, req.ConfirmPassword) {
		return nil, apperror.Validation("Password confirmation does not match.").Trace("auth", "Register", req.Email)
	}
	if err := password.ValidateStrength(req.Password); err != nil {
		return nil, apperror.Validation(err.Error()).Trace("auth", "Register", req.Email)
	}

	hashed, err := u.hasher.Hash(req.Password, req.Role)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("auth", "Register", req.Email)
	}

	user := &domain.User{
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Password:     hashed,
		Role:         req.Role,
		IsVerified:   false,
	}

	switch req.Role {
	case domain.RoleAdmin:
		if req.FirstName == "" || req.LastName == "" {
			return nil, apperror.BadRequest("First name and last name are required.").Trace("auth", "Register", req.Email)
		}
		err = u.adminRepo.CreateWithUser(ctx, user, &domain.Admin{
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
	case domain.RoleCandidate:
		if req.FirstName == "" || req.LastName == "" {
			return nil, apperror.BadRequest("First name and last name are required.").Trace("auth", "Register", req.Email)
		}
		err = u.candidateRepo.CreateWithUser(ctx, user, &domain.Candidate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Title:     req.Title,
			Skills:    req.Skills,
		})
	case domain.RoleRecruiter:
		if req.Name == "" || req.Industry == "" {
			return nil, apperror.BadRequest("Company name and industry are required.").Trace("auth", "Register", req.Email)
		}
		err = u.recruiterRepo.CreateWithUser(ctx, user, &domain.Recruiter{
			Name:     req.Name,
			Industry: req.Industry,
		})
	default:
		return nil, apperror.BadRequest("Unknown role.").Trace("auth", "Register", req.Email)
	}
	if err != nil {
		return nil, err
	}

	u.sendActivationMail(user, false)

	dto := domain.ToUserDTO(user)
	return &dto, nil
}

// Logout is stateless on the server; tokens simply expire. The endpoint
// exists so clients of every role have a uniform sign-out call.
func (u *authUsecase) Logout(ctx context.Context, userID int64) error {
	logger.Log.Info("user logged out", "user_id", userID)
	return nil
}

func (u *authUsecase) ForgotPassword(ctx context.Context, emailAddr, role string) error {
	user, err := u.userRepo.Get(ctx, domain.UserQuery{Email: emailAddr})
	if err != nil {
		return apperror.Internal("", err).Trace("auth", "ForgotPassword", emailAddr)
	}
	// Always succeed from the caller's point of view; the mail only goes
	// out when the account actually exists under that role.
	if user == nil || user.Role != role {
		return nil
	}

	passwordToken, err := u.tokens.Sign(role, token.TypePassword, user.ID, user.Email)
	if err != nil {
		return apperror.Internal("", err).Trace("auth", "ForgotPassword", emailAddr)
	}

	resetURL := fmt.Sprintf("%s/auth/password/edit?password_token=%s",
		u.cfg.FrontendURL(role), url.QueryEscape(passwordToken))
	body, err := u.templates.ForgotPassword(user.Email, resetURL)
	if err != nil {
		logger.Log.Error("error rendering password reset email", "error", err)
		return nil
	}
	if u.notifier.IsConfigured() {
		if err := u.notifier.Send(user.Email, "Reset your password", body); err != nil {
			logger.Log.Error("error sending password reset email", "error", err, "to", user.Email)
		}
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, userID int64, role string, req domain.ResetPasswordRequest, clientIP string) error {
	user, err := u.userRepo.Get(ctx, domain.UserQuery{ID: userID})
	if err != nil {
		return apperror.Internal("", err).Trace("auth", "ResetPassword", userID)
	}
	if user == nil || user.Role != role {
		return apperror.NotFound("User not found.").Trace("auth", "ResetPassword", userID)
	}

	if !password.ConstantTimeEqual(req.NewPassword, req.ConfirmPassword) {
		return apperror.Validation("Password confirmation does not match.").Trace("auth", "ResetPassword", userID)
	}
	if err := password.ValidateStrength(req.NewPassword); err != nil {
		return apperror.Validation(err.Error()).Trace("auth", "ResetPassword", userID)
	}

	hashed, err := u.hasher.Hash(req.NewPassword, role)
	if err != nil {
		return apperror.Internal("", err).Trace("auth", "ResetPassword", userID)
	}
	if err := u.userRepo.Update(ctx, userID, domain.UserPatch{Password: &hashed}); err != nil {
		return err
	}

	if u.notifier.IsConfigured() {
		body, err := u.templates.PasswordUpdated(user.Email, clientIP, time.Now().UTC().Format(time.RFC1123))
		if err != nil {
			logger.Log.Error("error rendering password updated email", "error", err)
			return nil
		}
		if err := u.notifier.Send(user.Email, "Your password has been updated", body); err != nil {
			logger.Log.Error("error sending password updated email", "error", err, "to", user.Email)
		}
	}
	return nil
}

func (u *authUsecase) RequestActivation(ctx context.Context, emailAddr, role string) error {
	user, err := u.userRepo.Get(ctx, domain.UserQuery{Email: emailAddr})
	if err != nil {
		return apperror.Internal("", err).Trace("auth", "RequestActivation", emailAddr)
	}
	// Same silent contract as ForgotPassword; the mail only goes out for an
	// existing, still-unverified account.
	if user == nil || user.Role != role || user.IsVerified {
		return nil
	}

	u.sendActivationMail(user, true)
	return nil
}

func (u *authUsecase) ConfirmActivation(ctx context.Context, userID int64) error {
	user, err := u.userRepo.Get(ctx, domain.UserQuery{ID: userID})
	if err != nil {
		return apperror.Internal("", err).Trace("auth", "ConfirmActivation", userID)
	}
	if user == nil {
		return apperror.NotFound("User not found.").Trace("auth", "ConfirmActivation", userID)
	}
	// Confirming twice is harmless.
	if user.IsVerified {
		return nil
	}

	verified := true
	return u.userRepo.Update(ctx, userID, domain.UserPatch{IsVerified: &verified})
}

// sendActivationMail mints an activation token and mails the confirmation
// link. Failures are logged; registration never fails on a mail problem.
func (u *authUsecase) sendActivationMail(user *domain.User, reactivation bool) {
	activationToken, err := u.tokens.Sign(user.Role, token.TypeActivation, user.ID, user.Email)
	if err != nil {
		logger.Log.Error("error signing activation token", "error", err, "user_id", user.ID)
		return
	}

	activationURL := fmt.Sprintf("%s/api/v1/auth/account/confirm_activation?token=%s",
		u.cfg.AuthAPIURL, url.QueryEscape(activationToken))

	var body, subject string
	if reactivation {
		subject = "Reactivate your account"
		body, err = u.templates.ReactivateAccount(user.Email, activationURL)
	} else {
		subject = "Activate your account"
		body, err = u.templates.ActivateAccount(user.Email, activationURL)
	}
	if err != nil {
		logger.Log.Error("error rendering activation email", "error", err)
		return
	}
	if !u.notifier.IsConfigured() {
		logger.Log.Warn("email not configured; skipping activation email", "to", user.Email)
		return
	}
	if err := u.notifier.Send(user.Email, subject, body); err != nil {
		logger.Log.Error("error sending activation email", "error", err, "to", user.Email)
	}
}
