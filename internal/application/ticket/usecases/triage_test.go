package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func ticketRepoReturning(tk *ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
}

func userRepoReturning(t *testing.T, id uint, username string) *mockUserRepository {
	t.Helper()
	un, err := uservo.NewUsername(username)
	require.NoError(t, err)
	em, err := uservo.NewEmail(username + "@example.com")
	require.NoError(t, err)
	name, err := uservo.NewPersonName("Test", "User")
	require.NoError(t, err)
	now := time.Now()
	u, err := user.ReconstructUser(id, un, em, name, user.ReconstructState{
		PasswordHash: "hash", Active: true, EmailConfirmed: true, GroupIDs: []uint{},
	}, now, now, 1)
	require.NoError(t, err)
	return &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return u, nil
		},
	}
}

func TestChangeStatusUseCase(t *testing.T) {
	t.Run("any status is reachable with ticket:update", func(t *testing.T) {
		tk := buildTicket(t, 10, 5, vo.StatusClosed, false, nil, nil)
		uc := NewChangeStatusUseCase(ticketRepoReturning(tk), authz.NewEvaluator(grantOnly("ticket:update"), logger.Default()), logger.Default())

		res, err := uc.Execute(context.Background(), ChangeStatusCommand{Actor: authz.Actor{ID: 7}, TicketID: 10, Status: "open"})
		require.NoError(t, err)
		assert.Equal(t, vo.StatusOpen, res.Status())
	})

	t.Run("the owner alone cannot change status", func(t *testing.T) {
		tk := buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil)
		uc := NewChangeStatusUseCase(ticketRepoReturning(tk), authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())

		_, err := uc.Execute(context.Background(), ChangeStatusCommand{Actor: authz.Actor{ID: 5}, TicketID: 10, Status: "closed"})
		require.Error(t, err)
		assert.True(t, appErrors.IsForbiddenError(err))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		uc := NewChangeStatusUseCase(&mockTicketRepository{}, authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{Actor: authz.Actor{ID: 5}, TicketID: 10, Status: "resolved"})
		require.Error(t, err)
		assert.True(t, appErrors.IsValidationError(err))
	})
}

func TestAddModeratorUseCase_AutoAssigns(t *testing.T) {
	tk := buildTicket(t, 10, 5, vo.StatusUnassigned, false, nil, nil)
	uc := NewAddModeratorUseCase(ticketRepoReturning(tk), userRepoReturning(t, 8, "mod"),
		authz.NewEvaluator(grantOnly("ticket:update"), logger.Default()), logger.Default())

	res, err := uc.Execute(context.Background(), AddModeratorCommand{Actor: authz.Actor{ID: 7}, TicketID: 10, Username: "mod"})
	require.NoError(t, err)
	assert.True(t, res.IsModerator(8))
	assert.Equal(t, vo.StatusAssigned, res.Status())

	// A second moderator leaves the status alone.
	tk2 := buildTicket(t, 11, 5, vo.StatusOpen, false, nil, []uint{8})
	uc2 := NewAddModeratorUseCase(ticketRepoReturning(tk2), userRepoReturning(t, 9, "mod2"),
		authz.NewEvaluator(grantOnly("ticket:update"), logger.Default()), logger.Default())
	res2, err := uc2.Execute(context.Background(), AddModeratorCommand{Actor: authz.Actor{ID: 7}, TicketID: 11, Username: "mod2"})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, res2.Status())
}

func TestAddParticipantUseCase(t *testing.T) {
	t.Run("owner adds a participant", func(t *testing.T) {
		tk := buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil)
		uc := NewAddParticipantUseCase(ticketRepoReturning(tk), userRepoReturning(t, 6, "helper"),
			authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())

		res, err := uc.Execute(context.Background(), AddParticipantCommand{Actor: authz.Actor{ID: 5}, TicketID: 10, Username: "helper"})
		require.NoError(t, err)
		assert.True(t, res.IsParticipant(6))
	})

	t.Run("the owner is silently not added", func(t *testing.T) {
		tk := buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil)
		uc := NewAddParticipantUseCase(ticketRepoReturning(tk), userRepoReturning(t, 5, "owner"),
			authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())

		res, err := uc.Execute(context.Background(), AddParticipantCommand{Actor: authz.Actor{ID: 5}, TicketID: 10, Username: "owner"})
		require.NoError(t, err)
		assert.False(t, res.IsParticipant(5))
	})

	t.Run("a stranger may not add participants", func(t *testing.T) {
		tk := buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil)
		uc := NewAddParticipantUseCase(ticketRepoReturning(tk), userRepoReturning(t, 6, "helper"),
			authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())

		_, err := uc.Execute(context.Background(), AddParticipantCommand{Actor: authz.Actor{ID: 9}, TicketID: 10, Username: "helper"})
		require.Error(t, err)
		assert.True(t, appErrors.IsForbiddenError(err))
	})
}

func TestHideUnhideUseCases(t *testing.T) {
	t.Run("hide requires ticket:hide", func(t *testing.T) {
		tk := buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil)
		uc := NewHideTicketUseCase(ticketRepoReturning(tk), authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())

		err := uc.Execute(context.Background(), HideTicketCommand{Actor: authz.Actor{ID: 5}, TicketID: 10})
		require.Error(t, err)
		assert.True(t, appErrors.IsForbiddenError(err))

		uc = NewHideTicketUseCase(ticketRepoReturning(tk), authz.NewEvaluator(grantOnly("ticket:hide"), logger.Default()), logger.Default())
		require.NoError(t, uc.Execute(context.Background(), HideTicketCommand{Actor: authz.Actor{ID: 7}, TicketID: 10}))
		assert.True(t, tk.IsHidden())
	})

	t.Run("unhide requires ticket:unhide", func(t *testing.T) {
		tk := buildTicket(t, 10, 5, vo.StatusOpen, true, nil, nil)
		uc := NewUnhideTicketUseCase(ticketRepoReturning(tk), authz.NewEvaluator(grantOnly("ticket:unhide"), logger.Default()), logger.Default())

		require.NoError(t, uc.Execute(context.Background(), UnhideTicketCommand{Actor: authz.Actor{ID: 7}, TicketID: 10}))
		assert.False(t, tk.IsHidden())
	})
}
