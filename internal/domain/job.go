package domain

import (
	"context"
	"time"
)

// Job types accepted by the jobs endpoints.
var JobTypes = []string{"Full-time", "Part-time", "Contract", "Freelance", "Internship"}

type Job struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Responsibility string    `json:"responsibility"`
	Requirements   []string  `json:"requirements"`
	Benefits       []string  `json:"benefits"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	Vacancy        *int      `json:"vacancy"`
	Deadline       time.Time `json:"deadline"`
	Tags           []string  `json:"tags"`
	RecruiterID    int64     `json:"recruiterId"`
	Views          int       `json:"views"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateJobRequest struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description" binding:"required"`
	Responsibility string    `json:"responsibility" binding:"required"`
	Requirements   []string  `json:"requirements" binding:"required,min=1"`
	Benefits       []string  `json:"benefits"`
	Location       string    `json:"location" binding:"required"`
	Type           string    `json:"type" binding:"required,oneof=Full-time Part-time Contract Freelance Internship"`
	Vacancy        *int      `json:"vacancy" binding:"omitempty,min=1"`
	Deadline       time.Time `json:"deadline" binding:"required"`
	Tags           []string  `json:"tags" binding:"required,min=1"`
}

type JobPatch struct {
	Title          *string    `json:"title" validate:"omitempty,min=1"`
	Description    *string    `json:"description" validate:"omitempty,min=1"`
	Responsibility *string    `json:"responsibility" validate:"omitempty,min=1"`
	Requirements   []string   `json:"requirements"`
	Benefits       []string   `json:"benefits"`
	Location       *string    `json:"location" validate:"omitempty,min=1"`
	Type           *string    `json:"type" validate:"omitempty,oneof=Full-time Part-time Contract Freelance Internship"`
	Vacancy        *int       `json:"vacancy" validate:"omitempty,min=1"`
	Deadline       *time.Time `json:"deadline"`
	Tags           []string   `json:"tags"`
	IsActive       *bool      `json:"isActive"`
}

// JobsQuery filters job listings: partial title/location match, type set
// membership.
type JobsQuery struct {
	Title      string
	Location   string
	Types      []string
	ActiveOnly bool
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	List(ctx context.Context, q JobsQuery) ([]Job, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]Job, error)
	Update(ctx context.Context, id int64, patch JobPatch) error
	Remove(ctx context.Context, id int64) error
	// IncrementViews bumps the view counter in a single statement.
	IncrementViews(ctx context.Context, id int64) error
}

// JobUsecase serves both sides of the board: recruiters manage their own
// postings, candidates browse active ones.
type JobUsecase interface {
	CreateJob(ctx context.Context, recruiterUserID int64, req CreateJobRequest) (*Job, error)
	ListOwnJobs(ctx context.Context, recruiterUserID int64) ([]Job, error)
	GetOwnJob(ctx context.Context, recruiterUserID, jobID int64) (*Job, error)
	UpdateJob(ctx context.Context, recruiterUserID, jobID int64, patch JobPatch) error
	RemoveJob(ctx context.Context, recruiterUserID, jobID int64) error

	ListJobs(ctx context.Context, q JobsQuery) ([]Job, error)
	// ViewJob returns an active job and increments its view counter.
	ViewJob(ctx context.Context, jobID int64) (*Job, error)
}
