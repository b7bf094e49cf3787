package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UnhideTicketCommand struct {
	Actor    authz.Actor
	TicketID uint
}

type UnhideTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	evaluator  *authz.Evaluator
	logger     logger.Interface
}

func NewUnhideTicketUseCase(ticketRepo ticket.TicketRepository, evaluator *authz.Evaluator, logger logger.Interface) *UnhideTicketUseCase {
	return &UnhideTicketUseCase{ticketRepo: ticketRepo, evaluator: evaluator, logger: logger}
}

func (uc *UnhideTicketUseCase) Execute(ctx context.Context, cmd UnhideTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return appErrors.NewInternalError("failed to load ticket")
	}

	if !uc.evaluator.HasPermission(cmd.Actor, constants.ResourceTicket, constants.ActionUnhide) {
		return appErrors.NewForbiddenError("not allowed to unhide tickets")
	}

	t.Unhide()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return appErrors.NewInternalError("failed to unhide ticket")
	}

	uc.logger.Infow("ticket unhidden", "ticket_id", t.ID())
	return nil
}
