package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateDescriptionCommand struct {
	Actor       authz.Actor
	TicketID    uint
	Description string
}

type UpdateDescriptionUseCase struct {
	ticketRepo ticket.TicketRepository
	evaluator  *authz.Evaluator
	logger     logger.Interface
}

func NewUpdateDescriptionUseCase(ticketRepo ticket.TicketRepository, evaluator *authz.Evaluator, logger logger.Interface) *UpdateDescriptionUseCase {
	return &UpdateDescriptionUseCase{ticketRepo: ticketRepo, evaluator: evaluator, logger: logger}
}

func (uc *UpdateDescriptionUseCase) Execute(ctx context.Context, cmd UpdateDescriptionCommand) (*ticket.Ticket, error) {
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

	if err := t.UpdateDescription(cmd.Description); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, appErrors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket description updated", "ticket_id", t.ID())
	return t, nil
}
