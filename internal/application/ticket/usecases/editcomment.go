package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type EditCommentCommand struct {
	Actor     authz.Actor
	CommentID uint
	Content   string
}

// EditCommentUseCase rewrites a comment's body. Authors edit their own
// comments; comment:update covers everyone else's.
type EditCommentUseCase struct {
	commentRepo ticket.CommentRepository
	evaluator   *authz.Evaluator
	logger      logger.Interface
}

func NewEditCommentUseCase(commentRepo ticket.CommentRepository, evaluator *authz.Evaluator, logger logger.Interface) *EditCommentUseCase {
	return &EditCommentUseCase{commentRepo: commentRepo, evaluator: evaluator, logger: logger}
}

func (uc *EditCommentUseCase) Execute(ctx context.Context, cmd EditCommentCommand) (*ticket.Comment, error) {
	c, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load comment", "error", err, "comment_id", cmd.CommentID)
		return nil, appErrors.NewInternalError("failed to load comment")
	}

	ref := authz.Ref{Kind: constants.ResourceComment, OwnerID: c.AuthorID()}
	if !uc.evaluator.Decide(ctx, cmd.Actor, ref, constants.ActionUpdate) {
		return nil, appErrors.NewForbiddenError("not allowed to edit this comment")
	}

	if err := c.UpdateContent(cmd.Content); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update comment", "error", err, "comment_id", c.ID())
		return nil, appErrors.NewInternalError("failed to update comment")
	}

	uc.logger.Infow("comment updated", "comment_id", c.ID())
	return c, nil
}
