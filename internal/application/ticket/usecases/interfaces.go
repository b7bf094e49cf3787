package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
)

// TransactionRunner runs a function inside a database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ticketRef builds the decision facts for a loaded ticket.
func ticketRef(t *ticket.Ticket, actorID uint) authz.Ref {
	return authz.Ref{
		Kind:        constants.ResourceTicket,
		OwnerID:     t.OwnerID(),
		Hidden:      t.IsHidden(),
		Participant: t.IsParticipant(actorID),
		Moderator:   t.IsModerator(actorID),
	}
}
