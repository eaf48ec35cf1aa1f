package domain

import (
	"context"
	"time"
)

type Recruiter struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	WebsiteURL  string    `json:"websiteUrl"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Size        *int      `json:"size"`
	FoundedIn   *int      `json:"foundedIn"`
	IsVerified  bool      `json:"isVerified"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        *User     `json:"-"`
}

type RecruiterDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Industry    string  `json:"industry"`
	WebsiteURL  string  `json:"websiteUrl"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Size        *int    `json:"size"`
	FoundedIn   *int    `json:"foundedIn"`
	IsVerified  bool    `json:"isVerified"`
	User        UserDTO `json:"user"`
}

func ToRecruiterDTO(r *Recruiter) RecruiterDTO {
	dto := RecruiterDTO{
		ID:          r.ID,
		Name:        r.Name,
		Industry:    r.Industry,
		WebsiteURL:  r.WebsiteURL,
		Location:    r.Location,
		Description: r.Description,
		Size:        r.Size,
		FoundedIn:   r.FoundedIn,
		IsVerified:  r.IsVerified,
	}
	if r.User != nil {
		dto.User = ToUserDTO(r.User)
	}
	return dto
}

type RecruiterPatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Industry    *string `json:"industry" validate:"omitempty,min=1"`
	WebsiteURL  *string `json:"websiteUrl" validate:"omitempty,url"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Size        *int    `json:"size" validate:"omitempty,min=1"`
	FoundedIn   *int    `json:"foundedIn" validate:"omitempty,min=1800"`
}

// RecruitersQuery filters recruiter listings: partial name/industry/location
// match, verification equality.
type RecruitersQuery struct {
	Name       string
	Industry   string
	Location   string
	IsVerified *bool
}

type RecruiterRepository interface {
	CreateWithUser(ctx context.Context, user *User, recruiter *Recruiter) error
	GetByUserID(ctx context.Context, userID int64) (*Recruiter, error)
	Update(ctx context.Context, id int64, patch RecruiterPatch) error
	List(ctx context.Context, q RecruitersQuery) ([]Recruiter, error)
}

type RecruiterUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*RecruiterDTO, error)
	UpdateProfile(ctx context.Context, userID int64, patch RecruiterPatch) error
}
