package domain

import (
	"context"
	"time"
)

// Application statuses. Transitions are deliberately unconstrained; any
// status may be set at any time.
const (
	ApplicationPending     = "Pending"
	ApplicationApproved    = "Approved"
	ApplicationShortlisted = "Shortlisted"
	ApplicationRejected    = "Rejected"
)

type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"jobId"`
	CandidateID int64     `json:"candidateId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Job         *Job      `json:"job,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Shortlisted Rejected"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	// GetByJobAndCandidate returns an existing application for the pair, or
	// nil; used for duplicate detection.
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (*Application, error)
	// ListByCandidate returns the candidate's applications with jobs joined.
	ListByCandidate(ctx context.Context, candidateID int64) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, candidateUserID, jobID int64) (*Application, error)
	ListOwn(ctx context.Context, candidateUserID int64) ([]Application, error)
	ListForJob(ctx context.Context, recruiterUserID, jobID int64) ([]Application, error)
	SetStatus(ctx context.Context, recruiterUserID, applicationID int64, status string) error
}
