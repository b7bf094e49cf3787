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

type AddCommentCommand struct {
	Actor    authz.Actor
	TicketID uint
	Content  string

	// AttachmentIDs are the actor's pending uploads to claim for this
	// comment.
	AttachmentIDs []uint
}

// AddCommentUseCase appends a comment to a ticket the actor may view.
// The per-ticket sequence number is assigned by the repository inside
// the transaction, so concurrent posts cannot collide.
type AddCommentUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo attachment.Repository
	evaluator      *authz.Evaluator
	txManager      TransactionRunner
	logger         logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo attachment.Repository,
	evaluator *authz.Evaluator,
	txManager TransactionRunner,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		evaluator:      evaluator,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*ticket.Comment, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, appErrors.NewInternalError("failed to load ticket")
	}

	if !uc.evaluator.Decide(ctx, cmd.Actor, ticketRef(t, cmd.Actor.ID), constants.ActionView) {
		return nil, appErrors.NewNotFoundError("ticket not found")
	}

	c, err := ticket.NewComment(t.ID(), cmd.Actor.ID, cmd.Content)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, c); err != nil {
			return err
		}
		return claimPendingAttachments(txCtx, uc.attachmentRepo, cmd.Actor.ID, cmd.AttachmentIDs, func(a *attachment.Attachment) error {
			return a.LinkToComment(c.ID())
		})
	})
	if err != nil {
		uc.logger.Errorw("failed to add comment", "error", err, "ticket_id", t.ID())
		return nil, appErrors.NewInternalError("failed to add comment")
	}

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "comment_id", c.ID(), "num", c.Num())
	return c, nil
}
