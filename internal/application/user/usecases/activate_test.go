package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func pendingActivationUser(t *testing.T, expiresAt time.Time) *user.User {
	t.Helper()
	hash := "token-hash"
	return buildUser(t, 7, "alice", "alice@example.com", user.ReconstructState{
		Active:              true,
		EmailConfirmed:      false,
		ActivationTokenHash: &hash,
		ActivationExpiresAt: &expiresAt,
	})
}

func TestActivateUseCase_Success(t *testing.T) {
	u := pendingActivationUser(t, time.Now().UTC().Add(time.Hour))
	var updated *user.User

	uc := NewActivateUseCase(&mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}, &mockTokenGenerator{}, logger.Default())

	err := uc.Execute(context.Background(), ActivateCommand{UserID: 7, Token: "plain-token"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsEmailConfirmed())
	assert.Nil(t, updated.ActivationTokenHash())
}

func TestActivateUseCase_PromotesPendingEmail(t *testing.T) {
	pending, err := uservo.NewEmail("alice-new@example.com")
	require.NoError(t, err)
	hash := "token-hash"
	expiresAt := time.Now().UTC().Add(time.Hour)
	u := buildUser(t, 7, "alice", "alice@example.com", user.ReconstructState{
		Active:              true,
		EmailConfirmed:      false,
		NewEmail:            pending,
		ActivationTokenHash: &hash,
		ActivationExpiresAt: &expiresAt,
	})

	uc := NewActivateUseCase(&mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
	}, &mockTokenGenerator{}, logger.Default())

	err = uc.Execute(context.Background(), ActivateCommand{UserID: 7, Token: "plain-token"})
	require.NoError(t, err)
	assert.Equal(t, "alice-new@example.com", u.Email().String())
	assert.Nil(t, u.NewEmail())
}

func TestActivateUseCase_PendingEmailTaken(t *testing.T) {
	pending, err := uservo.NewEmail("alice-new@example.com")
	require.NoError(t, err)
	hash := "token-hash"
	expiresAt := time.Now().UTC().Add(time.Hour)
	u := buildUser(t, 7, "alice", "alice@example.com", user.ReconstructState{
		Active:              true,
		NewEmail:            pending,
		ActivationTokenHash: &hash,
		ActivationExpiresAt: &expiresAt,
	})

	uc := NewActivateUseCase(&mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return email == "alice-new@example.com", nil
		},
	}, &mockTokenGenerator{}, logger.Default())

	err = uc.Execute(context.Background(), ActivateCommand{UserID: 7, Token: "plain-token"})
	require.Error(t, err)
	assert.True(t, appErrors.IsConflictError(err))
}

func TestActivateUseCase_InvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		user  func(t *testing.T) *user.User
		token string
	}{
		{
			name: "wrong token",
			user: func(t *testing.T) *user.User {
				return pendingActivationUser(t, time.Now().UTC().Add(time.Hour))
			},
			token: "not-the-token",
		},
		{
			name: "expired token",
			user: func(t *testing.T) *user.User {
				return pendingActivationUser(t, time.Now().UTC().Add(-time.Minute))
			},
			token: "plain-token",
		},
		{
			name: "no token on record",
			user: func(t *testing.T) *user.User {
				return buildUser(t, 7, "alice", "alice@example.com", user.ReconstructState{Active: true})
			},
			token: "plain-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user(t)
			uc := NewActivateUseCase(&mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return u, nil
				},
			}, &mockTokenGenerator{}, logger.Default())

			err := uc.Execute(context.Background(), ActivateCommand{UserID: 7, Token: tt.token})
			require.Error(t, err)
			appErr := appErrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 498, appErr.Code)
		})
	}
}

func TestActivateUseCase_UnknownUser(t *testing.T) {
	uc := NewActivateUseCase(&mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, appErrors.NewNotFoundError("user not found")
		},
	}, &mockTokenGenerator{}, logger.Default())

	err := uc.Execute(context.Background(), ActivateCommand{UserID: 99, Token: "plain-token"})
	require.Error(t, err)
	appErr := appErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 498, appErr.Code)
}
