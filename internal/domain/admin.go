package domain

import (
	"context"
	"time"
)

type Admin struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `json:"-"`
}

type AdminDTO struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	User      UserDTO `json:"user"`
}

func ToAdminDTO(a *Admin) AdminDTO {
	dto := AdminDTO{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
	if a.User != nil {
		dto.User = ToUserDTO(a.User)
	}
	return dto
}

type AdminRepository interface {
	// CreateWithUser inserts the user and admin profile in one transaction.
	CreateWithUser(ctx context.Context, user *User, admin *Admin) error
	// GetByUserID returns the admin profile with its user joined, or nil.
	GetByUserID(ctx context.Context, userID int64) (*Admin, error)
}

type AdminUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*AdminDTO, error)
	RemoveAccount(ctx context.Context, userID int64) error
}
