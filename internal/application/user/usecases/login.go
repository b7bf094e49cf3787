package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/user"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	// Login accepts a username or an email address.
	Login    string
	Password string
}

type LoginResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenService   SessionTokenService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenService SessionTokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.lookup(ctx, strings.TrimSpace(cmd.Login))
	if err != nil {
		return nil, err
	}
	if u == nil {
		// Generic message so callers cannot probe for accounts.
		return nil, appErrors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.passwordHasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		return nil, appErrors.NewUnauthorizedError("invalid credentials")
	}

	if !u.CanLogin() {
		return nil, appErrors.NewUnauthorizedError("account is inactive or email unconfirmed")
	}

	tokens, err := uc.tokenService.Generate(u.ID(), u.Username().String(), u.IsSuperuser(), u.IsStaff())
	if err != nil {
		uc.logger.Errorw("failed to generate session tokens", "error", err, "user_id", u.ID())
		return nil, appErrors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		User:         u,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

func (uc *LoginUseCase) lookup(ctx context.Context, login string) (*user.User, error) {
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
			return nil, nil
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, appErrors.NewInternalError("failed to look up user")
	}
	return u, nil
}
