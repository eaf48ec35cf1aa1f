package usecase

import (
	"context"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidateRepo: candidateRepo}
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID int64) (*domain.CandidateDTO, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("candidate", "GetProfile", userID)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate profile not found.").Trace("candidate", "GetProfile", userID)
	}
	dto := domain.ToCandidateDTO(candidate)
	return &dto, nil
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, userID int64, patch domain.CandidatePatch) error {
	if err := validatePatch(patch); err != nil {
		return err
	}

	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return apperror.Internal("", err).Trace("candidate", "UpdateProfile", userID)
	}
	if candidate == nil {
		return apperror.NotFound("Candidate profile not found.").Trace("candidate", "UpdateProfile", userID)
	}
	return u.candidateRepo.Update(ctx, candidate.ID, patch)
}
