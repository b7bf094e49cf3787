package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestListTicketsUseCase_Filter(t *testing.T) {
	var got ticket.TicketFilter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			got = filter
			return nil, 0, nil
		},
	}

	t.Run("defaults to the dashboard scope without hidden tickets", func(t *testing.T) {
		uc := NewListTicketsUseCase(repo, authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())
		_, err := uc.Execute(context.Background(), ListTicketsCommand{Actor: authz.Actor{ID: 5}})
		require.NoError(t, err)
		assert.Equal(t, ticket.ScopeDashboard, got.Scope)
		assert.Equal(t, uint(5), got.UserID)
		assert.False(t, got.IncludeHidden)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 20, got.PageSize)
	})

	t.Run("ticket:unhide includes hidden tickets", func(t *testing.T) {
		uc := NewListTicketsUseCase(repo, authz.NewEvaluator(grantOnly("ticket:unhide", "ticket:view"), logger.Default()), logger.Default())
		_, err := uc.Execute(context.Background(), ListTicketsCommand{Actor: authz.Actor{ID: 5}, Scope: ticket.ScopeAll})
		require.NoError(t, err)
		assert.True(t, got.IncludeHidden)
	})

	t.Run("status filter is validated", func(t *testing.T) {
		uc := NewListTicketsUseCase(repo, authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())
		bad := "resolved"
		_, err := uc.Execute(context.Background(), ListTicketsCommand{Actor: authz.Actor{ID: 5}, Status: &bad})
		require.Error(t, err)
		assert.True(t, appErrors.IsValidationError(err))
	})

	t.Run("page size is clamped", func(t *testing.T) {
		uc := NewListTicketsUseCase(repo, authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())
		_, err := uc.Execute(context.Background(), ListTicketsCommand{Actor: authz.Actor{ID: 5}, Page: -2, PageSize: 9999})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 100, got.PageSize)
	})
}

func TestListTicketsUseCase_AllScopeNeedsTicketView(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, authz.NewEvaluator(&mockEnforcer{}, logger.Default()), logger.Default())
	_, err := uc.Execute(context.Background(), ListTicketsCommand{Actor: authz.Actor{ID: 5}, Scope: ticket.ScopeAll})
	require.Error(t, err)
	assert.True(t, appErrors.IsForbiddenError(err))
}
