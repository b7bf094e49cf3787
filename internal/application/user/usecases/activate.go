package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ActivateCommand struct {
	UserID uint
	Token  string
}

// ActivateUseCase consumes an activation token: it confirms the email
// and promotes a pending address when one is staged.
type ActivateUseCase struct {
	userRepo       user.Repository
	tokenGenerator TokenGenerator
	logger         logger.Interface
}

func NewActivateUseCase(
	userRepo user.Repository,
	tokenGenerator TokenGenerator,
	logger logger.Interface,
) *ActivateUseCase {
	return &ActivateUseCase{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

func (uc *ActivateUseCase) Execute(ctx context.Context, cmd ActivateCommand) error {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return appErrors.NewInvalidTokenError("invalid or expired token")
		}
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return appErrors.NewInternalError("failed to load user")
	}

	hash := u.ActivationTokenHash()
	expiresAt := u.ActivationExpiresAt()
	if hash == nil || expiresAt == nil {
		return appErrors.NewInvalidTokenError("invalid or expired token")
	}
	if time.Now().UTC().After(*expiresAt) {
		return appErrors.NewInvalidTokenError("invalid or expired token")
	}
	if !uc.tokenGenerator.Verify(cmd.Token, *hash) {
		return appErrors.NewInvalidTokenError("invalid or expired token")
	}

	if pending := u.NewEmail(); pending != nil && !pending.Equals(u.Email()) {
		taken, err := uc.userRepo.ExistsByEmail(ctx, pending.String())
		if err != nil {
			uc.logger.Errorw("failed to check pending email", "error", err)
			return appErrors.NewInternalError("failed to check pending email")
		}
		if taken {
			return appErrors.NewConflictError("email address is already in use")
		}
	}

	u.ConfirmEmail()

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return appErrors.NewInternalError("failed to activate account")
	}

	uc.logger.Infow("account activated", "user_id", u.ID())
	return nil
}
