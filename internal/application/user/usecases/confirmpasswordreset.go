package usecases

import (
	"context"
	"errors"
	"time"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ConfirmPasswordResetCommand struct {
	UserID          uint
	Token           string
	Password        string
	ConfirmPassword string
}

type ConfirmPasswordResetUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenGenerator TokenGenerator
	emailService   EmailService
	logger         logger.Interface
}

func NewConfirmPasswordResetUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenGenerator TokenGenerator,
	emailService EmailService,
	logger logger.Interface,
) *ConfirmPasswordResetUseCase {
	return &ConfirmPasswordResetUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenGenerator: tokenGenerator,
		emailService:   emailService,
		logger:         logger,
	}
}

func (uc *ConfirmPasswordResetUseCase) Execute(ctx context.Context, cmd ConfirmPasswordResetCommand) error {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return appErrors.NewInvalidTokenError("invalid or expired token")
		}
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return appErrors.NewInternalError("failed to load user")
	}

	hash := u.PasswordResetTokenHash()
	expiresAt := u.PasswordResetExpiresAt()
	if hash == nil || expiresAt == nil || time.Now().UTC().After(*expiresAt) {
		return appErrors.NewInvalidTokenError("invalid or expired token")
	}
	if !uc.tokenGenerator.Verify(cmd.Token, *hash) {
		return appErrors.NewInvalidTokenError("invalid or expired token")
	}

	if cmd.Password != cmd.ConfirmPassword {
		return appErrors.NewConflictError("passwords do not match")
	}
	if _, err := vo.NewPassword(cmd.Password); err != nil {
		if errors.Is(err, vo.ErrPasswordTooShort) {
			return appErrors.NewPasswordTooShortError(err.Error())
		}
		return appErrors.NewValidationError(err.Error())
	}

	passwordHash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return appErrors.NewInternalError("failed to process password")
	}

	if err := u.ChangePassword(passwordHash); err != nil {
		return appErrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update password", "error", err, "user_id", u.ID())
		return appErrors.NewInternalError("failed to update password")
	}

	if err := uc.emailService.SendPasswordChangedEmail(u.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "error", err, "user_id", u.ID())
	}

	uc.logger.Infow("password reset completed", "user_id", u.ID())
	return nil
}
