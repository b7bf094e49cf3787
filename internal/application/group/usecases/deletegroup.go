package usecases

import (
	"context"

	"helpdesk/internal/domain/group"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteGroupCommand struct {
	GroupID uint
}

// DeleteGroupUseCase removes a non-reserved group. Membership rows are
// detached by the repository and the casbin role is dropped with its
// policies.
type DeleteGroupUseCase struct {
	groupRepo group.Repository
	enforcer  group.PermissionEnforcer
	logger    logger.Interface
}

func NewDeleteGroupUseCase(
	groupRepo group.Repository,
	enforcer group.PermissionEnforcer,
	logger logger.Interface,
) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{
		groupRepo: groupRepo,
		enforcer:  enforcer,
		logger:    logger,
	}
}

func (uc *DeleteGroupUseCase) Execute(ctx context.Context, cmd DeleteGroupCommand) error {
	g, err := uc.groupRepo.GetByID(ctx, cmd.GroupID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load group", "error", err, "group_id", cmd.GroupID)
		return appErrors.NewInternalError("failed to load group")
	}

	if g.IsReserved() {
		return appErrors.NewForbiddenError("reserved groups cannot be deleted")
	}

	if err := uc.groupRepo.Delete(ctx, g.ID()); err != nil {
		uc.logger.Errorw("failed to delete group", "error", err, "group_id", g.ID())
		return appErrors.NewInternalError("failed to delete group")
	}

	if err := uc.enforcer.DeleteRole(g.Slug()); err != nil {
		uc.logger.Warnw("failed to drop casbin role", "error", err, "role", g.Slug())
	}

	uc.logger.Infow("group deleted", "group_id", g.ID(), "slug", g.Slug())
	return nil
}
