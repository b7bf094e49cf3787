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

type AddParticipantCommand struct {
	Actor    authz.Actor
	TicketID uint
	Username string
}

// AddParticipantUseCase attaches a user to a ticket by username. Owners
// may invite people to their own tickets; triage staff use
// ticket:update. Naming the owner is a silent no-op.
type AddParticipantUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	evaluator  *authz.Evaluator
	logger     logger.Interface
}

func NewAddParticipantUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	evaluator *authz.Evaluator,
	logger logger.Interface,
) *AddParticipantUseCase {
	return &AddParticipantUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		evaluator:  evaluator,
		logger:     logger,
	}
}

func (uc *AddParticipantUseCase) Execute(ctx context.Context, cmd AddParticipantCommand) (*ticket.Ticket, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, appErrors.NewInternalError("failed to load ticket")
	}

	if !uc.evaluator.Decide(ctx, cmd.Actor, ticketRef(t, cmd.Actor.ID), constants.ActionUpdate) {
		return nil, appErrors.NewForbiddenError("not allowed to add participants")
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to look up user", "error", err, "username", cmd.Username)
		return nil, appErrors.NewInternalError("failed to look up user")
	}

	if err := t.AddParticipant(u.ID()); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, appErrors.NewInternalError("failed to add participant")
	}

	uc.logger.Infow("participant added", "ticket_id", t.ID(), "user_id", u.ID())
	return t, nil
}
