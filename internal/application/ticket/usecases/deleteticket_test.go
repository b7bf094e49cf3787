package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestDeleteTicketUseCase_CascadesRowsAndFiles(t *testing.T) {
	tk := buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil)
	ticketID := uint(10)
	commentID := uint(31)
	ticketAttachment := buildAttachment(t, 40, 5, &ticketID, nil)
	commentAttachment := buildAttachment(t, 41, 6, nil, &commentID)

	var deletedAttachmentIDs, removedBlobIDs []uint
	var commentsDeleted, ticketDeleted bool

	uc := NewDeleteTicketUseCase(
		&mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				ticketDeleted = true
				return nil
			},
		},
		&mockCommentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
				return []*ticket.Comment{buildComment(t, 31, 10, 6, 1, "x")}, nil
			},
			DeleteByTicketIDFunc: func(ctx context.Context, ticketID uint) error {
				commentsDeleted = true
				return nil
			},
		},
		&mockAttachmentRepository{
			ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*attachment.Attachment, error) {
				return []*attachment.Attachment{ticketAttachment}, nil
			},
			ListByCommentFunc: func(ctx context.Context, commentID uint) ([]*attachment.Attachment, error) {
				return []*attachment.Attachment{commentAttachment}, nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedAttachmentIDs = append(deletedAttachmentIDs, id)
				return nil
			},
		},
		&mockBlobStore{
			RemoveFunc: func(ctx context.Context, id uint) error {
				removedBlobIDs = append(removedBlobIDs, id)
				return nil
			},
		},
		authz.NewEvaluator(grantOnly("ticket:delete"), logger.Default()),
		&mockTxRunner{},
		logger.Default(),
	)

	err := uc.Execute(context.Background(), DeleteTicketCommand{Actor: authz.Actor{ID: 7}, TicketID: 10})
	require.NoError(t, err)
	assert.True(t, ticketDeleted)
	assert.True(t, commentsDeleted)
	assert.Equal(t, []uint{40, 41}, deletedAttachmentIDs)
	assert.Equal(t, []uint{40, 41}, removedBlobIDs)
}

func TestDeleteTicketUseCase_RequiresPermission(t *testing.T) {
	tk := buildTicket(t, 10, 5, vo.StatusOpen, false, nil, nil)
	uc := NewDeleteTicketUseCase(ticketRepoReturning(tk), &mockCommentRepository{}, &mockAttachmentRepository{},
		&mockBlobStore{}, authz.NewEvaluator(&mockEnforcer{}, logger.Default()), &mockTxRunner{}, logger.Default())

	// Even the owner needs ticket:delete.
	err := uc.Execute(context.Background(), DeleteTicketCommand{Actor: authz.Actor{ID: 5}, TicketID: 10})
	require.Error(t, err)
	assert.True(t, appErrors.IsForbiddenError(err))
}
