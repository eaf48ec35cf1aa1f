package domain

import (
	"context"
	"time"
)

// CandidateTitles enumerates the accepted salutations.
var CandidateTitles = []string{
	"Mr", "Mrs", "Ms", "Miss", "Dr", "Prof", "Rev", "Capt", "Sir", "Madam",
	"Mx", "Rather Not Say",
}

type Candidate struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Title      string    `json:"title"`
	Skills     []string  `json:"skills"`
	IsEmployed *bool     `json:"isEmployed"`
	UserID     int64     `json:"userId"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	User       *User     `json:"-"`
}

type CandidateDTO struct {
	ID         int64    `json:"id"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Title      string   `json:"title"`
	Skills     []string `json:"skills"`
	IsEmployed *bool    `json:"isEmployed"`
	User       UserDTO  `json:"user"`
}

func ToCandidateDTO(c *Candidate) CandidateDTO {
	dto := CandidateDTO{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Title:      c.Title,
		Skills:     c.Skills,
		IsEmployed: c.IsEmployed,
	}
	if c.User != nil {
		dto.User = ToUserDTO(c.User)
	}
	return dto
}

// CandidatePatch is a typed partial profile update.
type CandidatePatch struct {
	FirstName  *string  `json:"firstName" validate:"omitempty,min=1"`
	LastName   *string  `json:"lastName" validate:"omitempty,min=1"`
	Title      *string  `json:"title" validate:"omitempty,oneof=Mr Mrs Ms Miss Dr Prof Rev Capt Sir Madam Mx 'Rather Not Say'"`
	Skills     []string `json:"skills"`
	IsEmployed *bool    `json:"isEmployed"`
}

// CandidatesQuery filters candidate listings: skills overlap, employment
// status equality.
type CandidatesQuery struct {
	Skills     []string
	IsEmployed *bool
}

type CandidateRepository interface {
	CreateWithUser(ctx context.Context, user *User, candidate *Candidate) error
	GetByUserID(ctx context.Context, userID int64) (*Candidate, error)
	Update(ctx context.Context, id int64, patch CandidatePatch) error
	List(ctx context.Context, q CandidatesQuery) ([]Candidate, error)
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*CandidateDTO, error)
	UpdateProfile(ctx context.Context, userID int64, patch CandidatePatch) error
}
