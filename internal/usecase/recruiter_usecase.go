package usecase

import (
	"context"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

type recruiterUsecase struct {
	recruiterRepo domain.RecruiterRepository
}

func NewRecruiterUsecase(recruiterRepo domain.RecruiterRepository) domain.RecruiterUsecase {
	return &recruiterUsecase{recruiterRepo: recruiterRepo}
}

func (u *recruiterUsecase) GetProfile(ctx context.Context, userID int64) (*domain.RecruiterDTO, error) {
	recruiter, err := u.recruiterRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("recruiter", "GetProfile", userID)
	}
	if recruiter == nil {
		return nil, apperror.NotFound("Recruiter profile not found.").Trace("recruiter", "GetProfile", userID)
	}
	dto := domain.ToRecruiterDTO(recruiter)
	return &dto, nil
}

func (u *recruiterUsecase) UpdateProfile(ctx context.Context, userID int64, patch domain.RecruiterPatch) error {
	if err := validatePatch(patch); err != nil {
		return err
	}

	recruiter, err := u.recruiterRepo.GetByUserID(ctx, userID)
	if err != nil {
		return apperror.Internal("", err).Trace("recruiter", "UpdateProfile", userID)
	}
	if recruiter == nil {
		return apperror.NotFound("Recruiter profile not found.").Trace("recruiter", "UpdateProfile", userID)
	}
	return u.recruiterRepo.Update(ctx, recruiter.ID, patch)
}
