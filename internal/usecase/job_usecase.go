package usecase

import (
	"context"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo       domain.JobRepository
	recruiterRepo domain.RecruiterRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, recruiterRepo domain.RecruiterRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, recruiterRepo: recruiterRepo}
}

// ownedJob resolves the recruiter profile for the user and returns the job
// only when it belongs to that recruiter. Jobs owned by someone else are
// indistinguishable from missing ones.
func (u *jobUsecase) ownedJob(ctx context.Context, recruiterUserID, jobID int64) (*domain.Job, error) {
	recruiter, err := u.recruiterRepo.GetByUserID(ctx, recruiterUserID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("job", "ownedJob", recruiterUserID)
	}
	if recruiter == nil {
		return nil, apperror.NotFound("Recruiter profile not found.").Trace("job", "ownedJob", recruiterUserID)
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("job", "ownedJob", jobID)
	}
	if job == nil || job.RecruiterID != recruiter.ID {
		return nil, apperror.NotFound("Job not found.").Trace("job", "ownedJob", jobID)
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, recruiterUserID int64, req domain.CreateJobRequest) (*domain.Job, error) {
	recruiter, err := u.recruiterRepo.GetByUserID(ctx, recruiterUserID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("job", "CreateJob", recruiterUserID)
	}
	if recruiter == nil {
		return nil, apperror.NotFound("Recruiter profile not found.").Trace("job", "CreateJob", recruiterUserID)
	}

	job := &domain.Job{
		Title:          req.Title,
		Description:    req.Description,
		Responsibility: req.Responsibility,
		Requirements:   req.Requirements,
		Benefits:       req.Benefits,
		Location:       req.Location,
		Type:           req.Type,
		Vacancy:        req.Vacancy,
		Deadline:       req.Deadline,
		Tags:           req.Tags,
		RecruiterID:    recruiter.ID,
		IsActive:       true,
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListOwnJobs(ctx context.Context, recruiterUserID int64) ([]domain.Job, error) {
	recruiter, err := u.recruiterRepo.GetByUserID(ctx, recruiterUserID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("job", "ListOwnJobs", recruiterUserID)
	}
	if recruiter == nil {
		return nil, apperror.NotFound("Recruiter profile not found.").Trace("job", "ListOwnJobs", recruiterUserID)
	}
	return u.jobRepo.ListByRecruiter(ctx, recruiter.ID)
}

func (u *jobUsecase) GetOwnJob(ctx context.Context, recruiterUserID, jobID int64) (*domain.Job, error) {
	return u.ownedJob(ctx, recruiterUserID, jobID)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, recruiterUserID, jobID int64, patch domain.JobPatch) error {
	if err := validatePatch(patch); err != nil {
		return err
	}
	if _, err := u.ownedJob(ctx, recruiterUserID, jobID); err != nil {
		return err
	}
	return u.jobRepo.Update(ctx, jobID, patch)
}

func (u *jobUsecase) RemoveJob(ctx context.Context, recruiterUserID, jobID int64) error {
	if _, err := u.ownedJob(ctx, recruiterUserID, jobID); err != nil {
		return err
	}
	return u.jobRepo.Remove(ctx, jobID)
}

// ListJobs serves the public board; only active postings within their
// deadline are visible.
func (u *jobUsecase) ListJobs(ctx context.Context, q domain.JobsQuery) ([]domain.Job, error) {
	q.ActiveOnly = true
	return u.jobRepo.List(ctx, q)
}

func (u *jobUsecase) ViewJob(ctx context.Context, jobID int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("job", "ViewJob", jobID)
	}
	if job == nil || !job.IsActive {
		return nil, apperror.NotFound("Job not found.").Trace("job", "ViewJob", jobID)
	}
	if err := u.jobRepo.IncrementViews(ctx, jobID); err == nil {
		job.Views++
	}
	return job, nil
}
