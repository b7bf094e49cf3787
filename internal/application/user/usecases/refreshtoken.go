package usecases

import (
	"context"

	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken string
	ExpiresIn   int64
}

type RefreshTokenUseCase struct {
	tokenService SessionTokenService
	accessExpSec int64
	logger       logger.Interface
}

func NewRefreshTokenUseCase(tokenService SessionTokenService, accessExpMinutes int, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
		accessExpSec: int64(accessExpMinutes * 60),
		logger:       logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, appErrors.NewUnauthorizedError("missing refresh token")
	}

	accessToken, err := uc.tokenService.RefreshAccess(cmd.RefreshToken)
	if err != nil {
		uc.logger.Debugw("refresh token rejected", "error", err)
		return nil, appErrors.NewUnauthorizedError("invalid refresh token")
	}

	return &RefreshTokenResult{
		AccessToken: accessToken,
		ExpiresIn:   uc.accessExpSec,
	}, nil
}
