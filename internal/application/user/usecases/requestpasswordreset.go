package usecases

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/domain/user"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	// Login accepts a username or an email address.
	Login string
}

// RequestPasswordResetUseCase issues a reset token. Unknown accounts
// succeed silently so the endpoint cannot be used for enumeration.
type RequestPasswordResetUseCase struct {
	userRepo        user.Repository
	tokenGenerator  TokenGenerator
	emailService    EmailService
	resetExpiresMin int
	logger          logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	tokenGenerator TokenGenerator,
	emailService EmailService,
	resetExpiresMinutes int,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:        userRepo,
		tokenGenerator:  tokenGenerator,
		emailService:    emailService,
		resetExpiresMin: resetExpiresMinutes,
		logger:          logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	login := strings.TrimSpace(cmd.Login)
	if login == "" {
		return appErrors.NewValidationError("username or email is required")
	}

	var (
		u   *user.User
		err error
	)
	if strings.Contains(login, "@") {
		u, err = uc.userRepo.GetByEmail(ctx, strings.ToLower(login))
	} else {
		u, err = uc.userRepo.GetByUsername(ctx, login)
	}
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			uc.logger.Debugw("password reset requested for unknown account", "login", login)
			return nil
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return appErrors.NewInternalError("failed to look up user")
	}

	plainToken, tokenHash, err := uc.tokenGenerator.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err)
		return appErrors.NewInternalError("failed to generate reset token")
	}

	u.SetPasswordResetToken(tokenHash, time.Now().UTC().Add(time.Duration(uc.resetExpiresMin)*time.Minute))

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to store reset token", "error", err, "user_id", u.ID())
		return appErrors.NewInternalError("failed to store reset token")
	}

	if err := uc.emailService.SendPasswordResetEmail(u.Email().String(), plainToken); err != nil {
		uc.logger.Warnw("failed to send password reset email", "error", err, "user_id", u.ID())
	}

	uc.logger.Infow("password reset requested", "user_id", u.ID())
	return nil
}
