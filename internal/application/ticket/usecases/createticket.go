package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/ticket"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       authz.Actor
	Title       string
	Description string
	Location    string
	CategoryID  uint

	// AttachmentIDs are pending uploads to claim for this ticket. Only
	// the actor's own unlinked attachments are linked.
	AttachmentIDs []uint
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	categoryRepo   category.Repository
	attachmentRepo attachment.Repository
	txManager      TransactionRunner
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo category.Repository,
	attachmentRepo attachment.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		categoryRepo:   categoryRepo,
		attachmentRepo: attachmentRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error) {
	exists, err := uc.categoryRepo.Exists(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to check category", "error", err, "category_id", cmd.CategoryID)
		return nil, appErrors.NewInternalError("failed to check category")
	}
	if !exists {
		return nil, appErrors.NewNotFoundError("category not found")
	}

	t, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Location, cmd.Actor.ID, cmd.CategoryID)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return err
		}
		return claimPendingAttachments(txCtx, uc.attachmentRepo, cmd.Actor.ID, cmd.AttachmentIDs, func(a *attachment.Attachment) error {
			return a.LinkToTicket(t.ID())
		})
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "owner_id", cmd.Actor.ID)
		return nil, appErrors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "owner_id", cmd.Actor.ID)
	return t, nil
}

// claimPendingAttachments links the actor's own pending uploads to a
// freshly created ticket or comment. IDs that are unknown, already
// linked, or owned by someone else are silently skipped.
func claimPendingAttachments(ctx context.Context, repo attachment.Repository, uploaderID uint, ids []uint, link func(a *attachment.Attachment) error) error {
	if len(ids) == 0 {
		return nil
	}

	pending, err := repo.ListPendingByUploader(ctx, uploaderID, ids)
	if err != nil {
		return err
	}
	for _, a := range pending {
		if err := link(a); err != nil {
			return err
		}
		if err := repo.Update(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
