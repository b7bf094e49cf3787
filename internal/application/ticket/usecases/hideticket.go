package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type HideTicketCommand struct {
	Actor    authz.Actor
	TicketID uint
}

// HideTicketUseCase soft-deletes a ticket from regular listings. The
// ticket stays fetchable for actors holding ticket:unhide.
type HideTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	evaluator  *authz.Evaluator
	logger     logger.Interface
}

func NewHideTicketUseCase(ticketRepo ticket.TicketRepository, evaluator *authz.Evaluator, logger logger.Interface) *HideTicketUseCase {
	return &HideTicketUseCase{ticketRepo: ticketRepo, evaluator: evaluator, logger: logger}
}

func (uc *HideTicketUseCase) Execute(ctx context.Context, cmd HideTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return appErrors.NewInternalError("failed to load ticket")
	}

	if !uc.evaluator.HasPermission(cmd.Actor, constants.ResourceTicket, constants.ActionHide) {
		return appErrors.NewForbiddenError("not allowed to hide tickets")
	}

	t.Hide()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return appErrors.NewInternalError("failed to hide ticket")
	}

	uc.logger.Infow("ticket hidden", "ticket_id", t.ID())
	return nil
}
