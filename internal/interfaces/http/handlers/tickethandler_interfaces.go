package handlers

import (
	"context"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
)

// Use case interfaces for TicketHandler - enables unit testing with mocks.

type createTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*ticket.Ticket, error)
}

type listTicketsExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListTicketsCommand) (*usecases.ListTicketsResult, error)
}

type getTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.GetTicketCommand) (*usecases.GetTicketResult, error)
}

type updateTicketInfoExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketInfoCommand) (*ticket.Ticket, error)
}

type updateDescriptionExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateDescriptionCommand) (*ticket.Ticket, error)
}

type changeStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*ticket.Ticket, error)
}

type hideTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.HideTicketCommand) error
}

type unhideTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.UnhideTicketCommand) error
}

type deleteTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

type addParticipantExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddParticipantCommand) (*ticket.Ticket, error)
}

type addModeratorExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddModeratorCommand) (*ticket.Ticket, error)
}

type addCommentExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*ticket.Comment, error)
}

type editCommentExecutor interface {
	Execute(ctx context.Context, cmd usecases.EditCommentCommand) (*ticket.Comment, error)
}
