package handlers

import (
	"context"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/domain/user"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type registerExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*user.User, error)
}

type loginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type refreshTokenExecutor interface {
	Execute(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.RefreshTokenResult, error)
}

type activateExecutor interface {
	Execute(ctx context.Context, cmd usecases.ActivateCommand) error
}

type requestPasswordResetExecutor interface {
	Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error
}

type confirmPasswordResetExecutor interface {
	Execute(ctx context.Context, cmd usecases.ConfirmPasswordResetCommand) error
}
