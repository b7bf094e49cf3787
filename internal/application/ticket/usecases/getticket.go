package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type GetTicketCommand struct {
	Actor    authz.Actor
	TicketID uint
}

// CommentView pairs a comment with its rendered body and attachments.
type CommentView struct {
	Comment     *ticket.Comment
	ContentHTML string
	Attachments []*attachment.Attachment
}

type GetTicketResult struct {
	Ticket          *ticket.Ticket
	DescriptionHTML string
	Comments        []*CommentView
	Attachments     []*attachment.Attachment
}

// GetTicketUseCase loads a ticket's detail view. Hidden tickets, and
// tickets the actor may not see, answer not-found so their existence
// is not leaked.
type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo attachment.Repository
	evaluator      *authz.Evaluator
	renderer       markdown.Service
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo attachment.Repository,
	evaluator *authz.Evaluator,
	renderer markdown.Service,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		evaluator:      evaluator,
		renderer:       renderer,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, appErrors.NewInternalError("failed to load ticket")
	}

	if !uc.evaluator.Decide(ctx, cmd.Actor, ticketRef(t, cmd.Actor.ID), constants.ActionView) {
		return nil, appErrors.NewNotFoundError("ticket not found")
	}

	descriptionHTML, err := uc.renderer.ToHTMLSanitized(t.Description())
	if err != nil {
		uc.logger.Errorw("failed to render ticket description", "error", err, "ticket_id", t.ID())
		return nil, appErrors.NewInternalError("failed to render ticket")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "error", err, "ticket_id", t.ID())
		return nil, appErrors.NewInternalError("failed to load comments")
	}

	views := make([]*CommentView, 0, len(comments))
	for _, c := range comments {
		contentHTML, err := uc.renderer.ToHTMLSanitized(c.Content())
		if err != nil {
			uc.logger.Errorw("failed to render comment", "error", err, "comment_id", c.ID())
			return nil, appErrors.NewInternalError("failed to render comment")
		}
		commentAttachments, err := uc.attachmentRepo.ListByComment(ctx, c.ID())
		if err != nil {
			uc.logger.Errorw("failed to load comment attachments", "error", err, "comment_id", c.ID())
			return nil, appErrors.NewInternalError("failed to load attachments")
		}
		views = append(views, &CommentView{
			Comment:     c,
			ContentHTML: contentHTML,
			Attachments: commentAttachments,
		})
	}

	attachments, err := uc.attachmentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket attachments", "error", err, "ticket_id", t.ID())
		return nil, appErrors.NewInternalError("failed to load attachments")
	}

	return &GetTicketResult{
		Ticket:          t,
		DescriptionHTML: descriptionHTML,
		Comments:        views,
		Attachments:     attachments,
	}, nil
}
