package usecase

import (
	"context"
	"time"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
	recruiterRepo   domain.RecruiterRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	recruiterRepo domain.RecruiterRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		recruiterRepo:   recruiterRepo,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, candidateUserID, jobID int64) (*domain.Application, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, candidateUserID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("application", "Apply", candidateUserID)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate profile not found.").Trace("application", "Apply", candidateUserID)
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("application", "Apply", jobID)
	}
	if job == nil {
		return nil, apperror.NotFound("Job not found.").Trace("application", "Apply", jobID)
	}
	if !job.IsActive || job.Deadline.Before(time.Now()) {
		return nil, apperror.Validation("This job is no longer accepting applications.").Trace("application", "Apply", jobID)
	}

	existing, err := u.applicationRepo.GetByJobAndCandidate(ctx, jobID, candidate.ID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("application", "Apply", jobID)
	}
	if existing != nil {
		return nil, apperror.Validation("You have already applied to this job.").Trace("application", "Apply", jobID)
	}

	application := &domain.Application{
		JobID:       jobID,
		CandidateID: candidate.ID,
		Status:      domain.ApplicationPending,
	}
	if err := u.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}
	application.Job = job
	return application, nil
}

func (u *applicationUsecase) ListOwn(ctx context.Context, candidateUserID int64) ([]domain.Application, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, candidateUserID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("application", "ListOwn", candidateUserID)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate profile not found.").Trace("application", "ListOwn", candidateUserID)
	}
	return u.applicationRepo.ListByCandidate(ctx, candidate.ID)
}

func (u *applicationUsecase) ListForJob(ctx context.Context, recruiterUserID, jobID int64) ([]domain.Application, error) {
	if err := u.checkJobOwnership(ctx, recruiterUserID, jobID); err != nil {
		return nil, err
	}
	return u.applicationRepo.ListByJob(ctx, jobID)
}

func (u *applicationUsecase) SetStatus(ctx context.Context, recruiterUserID, applicationID int64, status string) error {
	application, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.Internal("", err).Trace("application", "SetStatus", applicationID)
	}
	if application == nil {
		return apperror.NotFound("Application not found.").Trace("application", "SetStatus", applicationID)
	}
	// The owning job decides who may change the status. A foreign
	// application is reported as missing, not forbidden.
	if err := u.checkJobOwnership(ctx, recruiterUserID, application.JobID); err != nil {
		return apperror.NotFound("Application not found.").Trace("application", "SetStatus", applicationID)
	}
	return u.applicationRepo.UpdateStatus(ctx, applicationID, status)
}

func (u *applicationUsecase) checkJobOwnership(ctx context.Context, recruiterUserID, jobID int64) error {
	recruiter, err := u.recruiterRepo.GetByUserID(ctx, recruiterUserID)
	if err != nil {
		return apperror.Internal("", err).Trace("application", "checkJobOwnership", recruiterUserID)
	}
	if recruiter == nil {
		return apperror.NotFound("Recruiter profile not found.").Trace("application", "checkJobOwnership", recruiterUserID)
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return apperror.Internal("", err).Trace("application", "checkJobOwnership", jobID)
	}
	if job == nil || job.RecruiterID != recruiter.ID {
		return apperror.NotFound("Job not found.").Trace("application", "checkJobOwnership", jobID)
	}
	return nil
}
