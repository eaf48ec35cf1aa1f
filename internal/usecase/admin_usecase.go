package usecase

import (
	"context"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	userRepo  domain.UserRepository
}

func NewAdminUsecase(adminRepo domain.AdminRepository, userRepo domain.UserRepository) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo, userRepo: userRepo}
}

func (u *adminUsecase) GetProfile(ctx context.Context, userID int64) (*domain.AdminDTO, error) {
	admin, err := u.adminRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("", err).Trace("admin", "GetProfile", userID)
	}
	if admin == nil {
		return nil, apperror.NotFound("Admin profile not found.").Trace("admin", "GetProfile", userID)
	}
	dto := domain.ToAdminDTO(admin)
	return &dto, nil
}

func (u *adminUsecase) RemoveAccount(ctx context.Context, userID int64) error {
	admin, err := u.adminRepo.GetByUserID(ctx, userID)
	if err != nil {
		return apperror.Internal("", err).Trace("admin", "RemoveAccount", userID)
	}
	if admin == nil {
		return apperror.NotFound("Admin profile not found.").Trace("admin", "RemoveAccount", userID)
	}
	// The profile row cascades with the user.
	return u.userRepo.Remove(ctx, userID)
}
