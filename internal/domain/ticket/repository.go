package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Scope selects which slice of the ticket space a listing covers.
type Scope string

const (
	ScopeAll           Scope = "all"
	ScopeDashboard     Scope = "dashboard"
	ScopeOwn           Scope = "own"
	ScopeParticipating Scope = "participating"
	ScopeModerated     Scope = "moderated"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)

	// ReassignOwned moves every ticket owned by fromUserID to toUserID.
	// Used when an account is deleted.
	ReassignOwned(ctx context.Context, fromUserID, toUserID uint) error

	// CountByCategory reports how many tickets reference a category
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// TicketFilter narrows and paginates listings. IncludeHidden is set only
// for actors allowed to see hidden tickets; Scope* fields pivot on UserID.
type TicketFilter struct {
	Scope         Scope
	UserID        uint
	Status        *vo.Status
	CategoryID    *uint
	IncludeHidden bool
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

type CommentRepository interface {
	// Save inserts the comment, assigning its per-ticket num inside the
	// surrounding transaction
	Save(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
