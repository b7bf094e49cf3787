package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

func newGetTicketUseCase(tk *ticket.Ticket, enforcer *mockEnforcer, commentRepo *mockCommentRepository, attachmentRepo *mockAttachmentRepository) *GetTicketUseCase {
	if enforcer == nil {
		enforcer = &mockEnforcer{}
	}
	if commentRepo == nil {
		commentRepo = &mockCommentRepository{}
	}
	if attachmentRepo == nil {
		attachmentRepo = &mockAttachmentRepository{}
	}
	return NewGetTicketUseCase(&mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}, commentRepo, attachmentRepo, authz.NewEvaluator(enforcer, logger.Default()), markdown.NewService(), logger.Default())
}

func TestGetTicketUseCase_OwnerSeesRenderedDetail(t *testing.T) {
	tk := buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil)
	comment := buildComment(t, 30, 10, 6, 1, "Have you tried **turning it off**?")

	uc := newGetTicketUseCase(tk, nil, &mockCommentRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{comment}, nil
		},
	}, nil)

	res, err := uc.Execute(context.Background(), GetTicketCommand{Actor: authz.Actor{ID: 5}, TicketID: 10})
	require.NoError(t, err)
	assert.Contains(t, res.DescriptionHTML, "printer")
	require.Len(t, res.Comments, 1)
	assert.Contains(t, res.Comments[0].ContentHTML, "<strong>")
}

func TestGetTicketUseCase_SanitizesScripts(t *testing.T) {
	tk := buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil)
	require.NoError(t, tk.UpdateDescription("hello <script>alert(1)</script> world"))

	uc := newGetTicketUseCase(tk, nil, nil, nil)
	res, err := uc.Execute(context.Background(), GetTicketCommand{Actor: authz.Actor{ID: 5}, TicketID: 10})
	require.NoError(t, err)
	assert.NotContains(t, res.DescriptionHTML, "<script>")
	assert.Contains(t, res.DescriptionHTML, "hello")
}

func TestGetTicketUseCase_Visibility(t *testing.T) {
	tests := []struct {
		name     string
		ticket   func(t *testing.T) *ticket.Ticket
		actor    authz.Actor
		enforcer *mockEnforcer
		wantErr  bool
	}{
		{
			name:   "participant sees the ticket",
			ticket: func(t *testing.T) *ticket.Ticket { return buildTicket(t, 10, 5, vo.StatusOpen, false, []uint{6}, nil) },
			actor:  authz.Actor{ID: 6},
		},
		{
			name:    "stranger gets not found",
			ticket:  func(t *testing.T) *ticket.Ticket { return buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil) },
			actor:   authz.Actor{ID: 7},
			wantErr: true,
		},
		{
			name:     "ticket:view grants access",
			ticket:   func(t *testing.T) *ticket.Ticket { return buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil) },
			actor:    authz.Actor{ID: 7},
			enforcer: grantOnly("ticket:view"),
		},
		{
			name:    "hidden ticket vanishes for its owner",
			ticket:  func(t *testing.T) *ticket.Ticket { return buildTicket(t, 10, 5, vo.StatusOpen, true, nil, nil) },
			actor:   authz.Actor{ID: 5},
			wantErr: true,
		},
		{
			name:     "ticket:unhide reveals hidden tickets",
			ticket:   func(t *testing.T) *ticket.Ticket { return buildTicket(t, 10, 5, vo.StatusOpen, true, nil, nil) },
			actor:    authz.Actor{ID: 7},
			enforcer: grantOnly("ticket:unhide", "ticket:view"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newGetTicketUseCase(tt.ticket(t), tt.enforcer, nil, nil)
			_, err := uc.Execute(context.Background(), GetTicketCommand{Actor: tt.actor, TicketID: 10})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, appErrors.IsNotFoundError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
