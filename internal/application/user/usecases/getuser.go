package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*user.User, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", id)
		return nil, appErrors.NewInternalError("failed to get user")
	}
	return u, nil
}
