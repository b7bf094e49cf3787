package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
)

// attachmentFacts resolves the decision facts for an attachment: who
// owns the linked ticket, who wrote the linked comment, and whether the
// actor belongs to the linked ticket's participant or moderator set.
type attachmentFacts struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
}

func (f attachmentFacts) ref(ctx context.Context, a *attachment.Attachment, actorID uint) (authz.Ref, error) {
	ref := authz.Ref{
		Kind:       constants.ResourceAttachment,
		UploaderID: a.UploaderID(),
	}

	linkedTicketID := a.TicketID()

	if commentID := a.CommentID(); commentID != nil {
		c, err := f.commentRepo.GetByID(ctx, *commentID)
		switch {
		case err == nil:
			ref.LinkedCommentAuthorID = c.AuthorID()
			ticketID := c.TicketID()
			linkedTicketID = &ticketID
		case appErrors.IsNotFoundError(err):
			// Dangling link; no comment facts to add.
		default:
			return authz.Ref{}, err
		}
	}

	if linkedTicketID != nil {
		t, err := f.ticketRepo.GetByID(ctx, *linkedTicketID)
		switch {
		case err == nil:
			ref.LinkedTicketOwnerID = t.OwnerID()
			ref.Participant = t.IsParticipant(actorID)
			ref.Moderator = t.IsModerator(actorID)
		case appErrors.IsNotFoundError(err):
		default:
			return authz.Ref{}, err
		}
	}

	return ref, nil
}
