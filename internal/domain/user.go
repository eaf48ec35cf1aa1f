package domain

import (
	"context"
	"time"
)

// User roles. The role field decides which profile table the user is linked
// to and which secret set signs its tokens.
const (
	RoleAdmin     = "admin"
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           int64          `json:"id"`
	AvatarURL    map[string]any `json:"avatarUrl,omitempty"`
	Email        string         `json:"email"`
	MobileNumber string         `json:"mobileNumber"`
	Password     string         `json:"-"`
	Role         string         `json:"role"`
	IsVerified   bool           `json:"isVerified"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// UserDTO is the response-safe projection of a User. It never carries the
// password hash.
type UserDTO struct {
	ID           int64          `json:"id"`
	AvatarURL    map[string]any `json:"avatarUrl,omitempty"`
	Email        string         `json:"email"`
	MobileNumber string         `json:"mobileNumber"`
	Role         string         `json:"role"`
	IsVerified   bool           `json:"isVerified"`
}

func ToUserDTO(u *User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		AvatarURL:    u.AvatarURL,
		Email:        u.Email,
		MobileNumber: u.MobileNumber,
		Role:         u.Role,
		IsVerified:   u.IsVerified,
	}
}

// UserQuery identifies a user by id or natural key; the lookup matches on an
// OR of whichever fields are set.
type UserQuery struct {
	ID    int64
	Email string
}

// UserPatch is a typed partial update; nil fields are left untouched.
type UserPatch struct {
	Email        *string
	MobileNumber *string
	Password     *string
	IsVerified   *bool
	AvatarURL    map[string]any
}

// UpdateContactRequest carries the mutable contact fields. Both are optional;
// a request with neither is a no-op.
type UpdateContactRequest struct {
	Email        string `json:"email" binding:"omitempty,email"`
	MobileNumber string `json:"mobileNumber" binding:"omitempty,min=7,max=15"`
}

// Empty reports whether the request carries no recognized fields.
func (r UpdateContactRequest) Empty() bool {
	return r.Email == "" && r.MobileNumber == ""
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UserRepository interface {
	// Get returns the user matching an OR of the query's set fields, or nil
	// when nothing matches.
	Get(ctx context.Context, q UserQuery) (*User, error)
	Update(ctx context.Context, id int64, patch UserPatch) error
	// Remove deletes the user row; profile rows cascade. Zero rows affected
	// is a not-found error.
	Remove(ctx context.Context, id int64) error
}

// UserUsecase covers the account operations every role shares.
type UserUsecase interface {
	UpdateContact(ctx context.Context, userID int64, req UpdateContactRequest) error
	UpdatePassword(ctx context.Context, userID int64, req UpdatePasswordRequest, clientIP string) error
	RemoveAccount(ctx context.Context, userID int64) error
}
