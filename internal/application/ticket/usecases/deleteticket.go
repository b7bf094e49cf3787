package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    authz.Actor
	TicketID uint
}

// DeleteTicketUseCase permanently removes a ticket with its comments
// and attachments. Rows go inside one transaction; stored files are
// removed afterwards, best effort, since a leftover blob is preferable
// to a half-deleted ticket.
type DeleteTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo attachment.Repository
	blobStore      attachment.BlobStore
	evaluator      *authz.Evaluator
	txManager      TransactionRunner
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo attachment.Repository,
	blobStore attachment.BlobStore,
	evaluator *authz.Evaluator,
	txManager TransactionRunner,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		evaluator:      evaluator,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return appErrors.NewInternalError("failed to load ticket")
	}

	if !uc.evaluator.HasPermission(cmd.Actor, constants.ResourceTicket, constants.ActionDelete) {
		return appErrors.NewForbiddenError("not allowed to delete tickets")
	}

	doomed, err := uc.collectAttachments(ctx, t)
	if err != nil {
		uc.logger.Errorw("failed to collect ticket attachments", "error", err, "ticket_id", t.ID())
		return appErrors.NewInternalError("failed to delete ticket")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, a := range doomed {
			if err := uc.attachmentRepo.Delete(txCtx, a.ID()); err != nil {
				return err
			}
		}
		if err := uc.commentRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", t.ID())
		return appErrors.NewInternalError("failed to delete ticket")
	}

	for _, a := range doomed {
		if err := uc.blobStore.Remove(ctx, a.ID()); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "error", err, "attachment_id", a.ID())
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID())
	return nil
}

func (uc *DeleteTicketUseCase) collectAttachments(ctx context.Context, t *ticket.Ticket) ([]*attachment.Attachment, error) {
	doomed, err := uc.attachmentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		commentAttachments, err := uc.attachmentRepo.ListByComment(ctx, c.ID())
		if err != nil {
			return nil, err
		}
		doomed = append(doomed, commentAttachments...)
	}
	return doomed, nil
}
