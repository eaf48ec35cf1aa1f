package domain

import "context"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin candidate recruiter"`
}

type LoginResult struct {
	AccessToken string  `json:"accessToken"`
	User        UserDTO `json:"user"`
}

// RegisterRequest carries the account fields plus the role-specific profile
// fields; which profile fields are required depends on Role.
type RegisterRequest struct {
	Role            string `json:"role" binding:"required,oneof=admin candidate recruiter"`
	Email           string `json:"email" binding:"required,email"`
	MobileNumber    string `json:"mobileNumber" binding:"required,min=7,max=15"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`

	// admin / candidate profile
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// candidate extras
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
	// recruiter profile
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

type ResetPasswordRequest struct {
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type AuthUsecase interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	// Register creates the user and its role profile together and sends the
	// activation email.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
	Logout(ctx context.Context, userID int64) error
	// ForgotPassword always succeeds from the caller's point of view; the
	// reset email is only sent when the account exists.
	ForgotPassword(ctx context.Context, email, role string) error
	ResetPassword(ctx context.Context, userID int64, role string, req ResetPasswordRequest, clientIP string) error
	RequestActivation(ctx context.Context, email, role string) error
	ConfirmActivation(ctx context.Context, userID int64) error
}
