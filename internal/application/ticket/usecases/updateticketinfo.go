package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateTicketInfoCommand carries the header fields of a ticket edit.
// Empty strings and a zero CategoryID leave the stored value unchanged.
type UpdateTicketInfoCommand struct {
	Actor      authz.Actor
	TicketID   uint
	Title      string
	Location   string
	CategoryID uint
}

type UpdateTicketInfoUseCase struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo category.Repository
	evaluator    *authz.Evaluator
	logger       logger.Interface
}

func NewUpdateTicketInfoUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo category.Repository,
	evaluator *authz.Evaluator,
	logger logger.Interface,
) *UpdateTicketInfoUseCase {
	return &UpdateTicketInfoUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		evaluator:    evaluator,
		logger:       logger,
	}
}

func (uc *UpdateTicketInfoUseCase) Execute(ctx context.Context, cmd UpdateTicketInfoCommand) (*ticket.Ticket, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, appErrors.NewInternalError("failed to load ticket")
	}

	if !uc.evaluator.Decide(ctx, cmd.Actor, ticketRef(t, cmd.Actor.ID), constants.ActionUpdate) {
		return nil, appErrors.NewForbiddenError("not allowed to edit this ticket")
	}

	if cmd.CategoryID != 0 && cmd.CategoryID != t.CategoryID() {
		exists, err := uc.categoryRepo.Exists(ctx, cmd.CategoryID)
		if err != nil {
			uc.logger.Errorw("failed to check category", "error", err, "category_id", cmd.CategoryID)
			return nil, appErrors.NewInternalError("failed to check category")
		}
		if !exists {
			return nil, appErrors.NewNotFoundError("category not found")
		}
	}

	if err := t.UpdateInfo(cmd.Title, cmd.Location, cmd.CategoryID); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, appErrors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket info updated", "ticket_id", t.ID())
	return t, nil
}
