package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Actor    authz.Actor
	TicketID uint
	Status   string
}

// ChangeStatusUseCase sets a ticket's status directly. There is no
// transition graph; holding ticket:update is the whole requirement.
// Owners without it cannot move their own tickets.
type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	evaluator  *authz.Evaluator
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.TicketRepository, evaluator *authz.Evaluator, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{ticketRepo: ticketRepo, evaluator: evaluator, logger: logger}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ticket.Ticket, error) {
	status := vo.Status(cmd.Status)
	if !status.IsValid() {
		return nil, appErrors.NewValidationError("invalid status")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, appErrors.NewInternalError("failed to load ticket")
	}

	if !uc.evaluator.HasPermission(cmd.Actor, constants.ResourceTicket, constants.ActionUpdate) {
		return nil, appErrors.NewForbiddenError("not allowed to change ticket status")
	}

	if err := t.ChangeStatus(status); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, appErrors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "status", status.String())
	return t, nil
}
