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

type ListTicketsCommand struct {
	Actor      authz.Actor
	Scope      ticket.Scope
	Status     *string
	CategoryID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets  []*ticket.Ticket
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	evaluator  *authz.Evaluator
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, evaluator *authz.Evaluator, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, evaluator: evaluator, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	scope := cmd.Scope
	switch scope {
	case ticket.ScopeAll, ticket.ScopeDashboard, ticket.ScopeOwn, ticket.ScopeParticipating, ticket.ScopeModerated:
	case "":
		scope = ticket.ScopeDashboard
	default:
		return nil, appErrors.NewValidationError("unknown listing scope")
	}

	// The all-tickets listing is a triage surface behind ticket:view.
	if scope == ticket.ScopeAll && !uc.evaluator.HasPermission(cmd.Actor, constants.ResourceTicket, constants.ActionView) {
		return nil, appErrors.NewForbiddenError("not allowed to list all tickets")
	}

	page := cmd.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := cmd.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	filter := ticket.TicketFilter{
		Scope:         scope,
		UserID:        cmd.Actor.ID,
		CategoryID:    cmd.CategoryID,
		IncludeHidden: uc.evaluator.HasPermission(cmd.Actor, constants.ResourceTicket, constants.ActionUnhide),
		Page:          page,
		PageSize:      pageSize,
		SortBy:        cmd.SortBy,
		SortOrder:     cmd.SortOrder,
	}

	if cmd.Status != nil {
		status := vo.Status(*cmd.Status)
		if !status.IsValid() {
			return nil, appErrors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "scope", scope)
		return nil, appErrors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets:  tickets,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
