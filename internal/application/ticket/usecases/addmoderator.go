package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddModeratorCommand struct {
	Actor    authz.Actor
	TicketID uint
	Username string
}

// AddModeratorUseCase assigns a moderator to a ticket. Requires
// ticket:update; the first moderator on an unassigned ticket moves its
// status to assigned.
type AddModeratorUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	evaluator  *authz.Evaluator
	logger     logger.Interface
}

func NewAddModeratorUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	evaluator *authz.Evaluator,
	logger logger.Interface,
) *AddModeratorUseCase {
	return &AddModeratorUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		evaluator:  evaluator,
		logger:     logger,
	}
}

func (uc *AddModeratorUseCase) Execute(ctx context.Context, cmd AddModeratorCommand) (*ticket.Ticket, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, appErrors.NewInternalError("failed to load ticket")
	}

	if !uc.evaluator.HasPermission(cmd.Actor, constants.ResourceTicket, constants.ActionUpdate) {
		return nil, appErrors.NewForbiddenError("not allowed to add moderators")
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to look up user", "error", err, "username", cmd.Username)
		return nil, appErrors.NewInternalError("failed to look up user")
	}

	if err := t.AddModerator(u.ID()); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, appErrors.NewInternalError("failed to add moderator")
	}

	uc.logger.Infow("moderator added", "ticket_id", t.ID(), "user_id", u.ID(), "status", t.Status().String())
	return t, nil
}
