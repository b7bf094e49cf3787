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

type FetchAttachmentCommand struct {
	Actor        authz.Actor
	AttachmentID uint
}

// FetchAttachmentResult carries the metadata plus both serving options:
// Path for an internal redirect to the web server, Open for streaming
// the bytes directly.
type FetchAttachmentResult struct {
	Attachment *attachment.Attachment
	Path       string
	Open       func(ctx context.Context) (io.ReadCloser, error)
}

type FetchAttachmentUseCase struct {
	attachmentRepo attachment.Repository
	blobStore      attachment.BlobStore
	facts          attachmentFacts
	evaluator      *authz.Evaluator
	logger         logger.Interface
}

func NewFetchAttachmentUseCase(
	attachmentRepo attachment.Repository,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	blobStore attachment.BlobStore,
	evaluator *authz.Evaluator,
	logger logger.Interface,
) *FetchAttachmentUseCase {
	return &FetchAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		facts:          attachmentFacts{ticketRepo: ticketRepo, commentRepo: commentRepo},
		evaluator:      evaluator,
		logger:         logger,
	}
}

func (uc *FetchAttachmentUseCase) Execute(ctx context.Context, cmd FetchAttachmentCommand) (*FetchAttachmentResult, error) {
	a, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load attachment", "error", err, "attachment_id", cmd.AttachmentID)
		return nil, appErrors.NewInternalError("failed to load attachment")
	}

	ref, err := uc.facts.ref(ctx, a, cmd.Actor.ID)
	if err != nil {
		uc.logger.Errorw("failed to resolve attachment facts", "error", err, "attachment_id", a.ID())
		return nil, appErrors.NewInternalError("failed to load attachment")
	}
	if !uc.evaluator.Decide(ctx, cmd.Actor, ref, constants.ActionView) {
		return nil, appErrors.NewForbiddenError("not allowed to view this attachment")
	}

	id := a.ID()
	return &FetchAttachmentResult{
		Attachment: a,
		Path:       uc.blobStore.Path(id),
		Open: func(ctx context.Context) (io.ReadCloser, error) {
			return uc.blobStore.Open(ctx, id)
		},
	}, nil
}
