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

type DeleteAttachmentCommand struct {
	Actor        authz.Actor
	AttachmentID uint
}

type DeleteAttachmentUseCase struct {
	attachmentRepo attachment.Repository
	blobStore      attachment.BlobStore
	facts          attachmentFacts
	evaluator      *authz.Evaluator
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	attachmentRepo attachment.Repository,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	blobStore attachment.BlobStore,
	evaluator *authz.Evaluator,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		facts:          attachmentFacts{ticketRepo: ticketRepo, commentRepo: commentRepo},
		evaluator:      evaluator,
		logger:         logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	a, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load attachment", "error", err, "attachment_id", cmd.AttachmentID)
		return appErrors.NewInternalError("failed to load attachment")
	}

	ref, err := uc.facts.ref(ctx, a, cmd.Actor.ID)
	if err != nil {
		uc.logger.Errorw("failed to resolve attachment facts", "error", err, "attachment_id", a.ID())
		return appErrors.NewInternalError("failed to load attachment")
	}
	if !uc.evaluator.Decide(ctx, cmd.Actor, ref, constants.ActionDelete) {
		return appErrors.NewForbiddenError("not allowed to delete this attachment")
	}

	// The file goes first. A missing file surfaces as 404 and a
	// filesystem permission failure as 403; the row is only removed
	// once the bytes are gone.
	if err := uc.blobStore.Remove(ctx, a.ID()); err != nil {
		if appErrors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to remove attachment file", "error", err, "attachment_id", a.ID())
		return appErrors.NewInternalError("failed to delete attachment")
	}

	if err := uc.attachmentRepo.Delete(ctx, a.ID()); err != nil {
		uc.logger.Errorw("failed to delete attachment row", "error", err, "attachment_id", a.ID())
		return appErrors.NewInternalError("failed to delete attachment")
	}

	uc.logger.Infow("attachment deleted", "attachment_id", a.ID(), "actor_id", cmd.Actor.ID)
	return nil
}
