package usecases

import (
	"context"
	"io"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UploadCommand carries one multipart file upload. TicketID or
// CommentID (at most one) links the attachment immediately; neither
// leaves it pending for a later ticket create or comment post.
type UploadCommand struct {
	Actor    authz.Actor
	Filename string
	Size     int64
	Content  io.Reader

	TicketID  *uint
	CommentID *uint
}

type UploadUseCase struct {
	attachmentRepo attachment.Repository
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	blobStore      attachment.BlobStore
	evaluator      *authz.Evaluator
	logger         logger.Interface
}

func NewUploadUseCase(
	attachmentRepo attachment.Repository,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	blobStore attachment.BlobStore,
	evaluator *authz.Evaluator,
	logger logger.Interface,
) *UploadUseCase {
	return &UploadUseCase{
		attachmentRepo: attachmentRepo,
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		blobStore:      blobStore,
		evaluator:      evaluator,
		logger:         logger,
	}
}

func (uc *UploadUseCase) Execute(ctx context.Context, cmd UploadCommand) (*attachment.Attachment, error) {
	if cmd.TicketID != nil && cmd.CommentID != nil {
		return nil, appErrors.NewValidationError("attachment may link to a ticket or a comment, not both")
	}

	a, err := attachment.NewAttachment(cmd.Filename, cmd.Size, cmd.Actor.ID)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if cmd.TicketID != nil {
		if err := uc.linkTicket(ctx, cmd.Actor, a, *cmd.TicketID); err != nil {
			return nil, err
		}
	}
	if cmd.CommentID != nil {
		if err := uc.linkComment(ctx, cmd.Actor, a, *cmd.CommentID); err != nil {
			return nil, err
		}
	}

	if err := uc.attachmentRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create attachment row", "error", err)
		return nil, appErrors.NewInternalError("failed to store attachment")
	}

	if _, err := uc.blobStore.Save(ctx, a.ID(), cmd.Content); err != nil {
		// The row without its bytes is useless; roll it back.
		if delErr := uc.attachmentRepo.Delete(ctx, a.ID()); delErr != nil {
			uc.logger.Errorw("failed to roll back attachment row", "error", delErr, "attachment_id", a.ID())
		}
		uc.logger.Errorw("failed to store attachment blob", "error", err, "attachment_id", a.ID())
		return nil, appErrors.NewInternalError("failed to store attachment")
	}

	uc.logger.Infow("attachment uploaded", "attachment_id", a.ID(), "uploader_id", cmd.Actor.ID, "filename", a.Filename())
	return a, nil
}

func (uc *UploadUseCase) linkTicket(ctx context.Context, actor authz.Actor, a *attachment.Attachment, ticketID uint) error {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", ticketID)
		return appErrors.NewInternalError("failed to load ticket")
	}

	allowed := actor.Superuser ||
		actor.ID == t.OwnerID() ||
		uc.evaluator.HasPermission(actor, constants.ResourceAttachment, constants.ActionAdd)
	if !allowed {
		return appErrors.NewForbiddenError("not allowed to attach files to this ticket")
	}

	return a.LinkToTicket(t.ID())
}

func (uc *UploadUseCase) linkComment(ctx context.Context, actor authz.Actor, a *attachment.Attachment, commentID uint) error {
	c, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load comment", "error", err, "comment_id", commentID)
		return appErrors.NewInternalError("failed to load comment")
	}

	allowed := actor.Superuser ||
		actor.ID == c.AuthorID() ||
		uc.evaluator.HasPermission(actor, constants.ResourceAttachment, constants.ActionAdd)
	if !allowed {
		return appErrors.NewForbiddenError("not allowed to attach files to this comment")
	}

	return a.LinkToComment(c.ID())
}
