package usecases

import (
	"context"

	"helpdesk/internal/domain/group"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateGroupCommand struct {
	Name          string
	PermissionIDs []uint
}

// CreateGroupUseCase creates a group and mirrors its permission grants
// into casbin under the group's role slug. Submitted permission IDs are
// filtered against the registry; unknown IDs are silently dropped.
type CreateGroupUseCase struct {
	groupRepo      group.Repository
	permissionRepo group.PermissionRepository
	enforcer       group.PermissionEnforcer
	logger         logger.Interface
}

func NewCreateGroupUseCase(
	groupRepo group.Repository,
	permissionRepo group.PermissionRepository,
	enforcer group.PermissionEnforcer,
	logger logger.Interface,
) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		groupRepo:      groupRepo,
		permissionRepo: permissionRepo,
		enforcer:       enforcer,
		logger:         logger,
	}
}

func (uc *CreateGroupUseCase) Execute(ctx context.Context, cmd CreateGroupCommand) (*group.Group, error) {
	slug := group.Slugify(cmd.Name)
	if slug == "" {
		return nil, appErrors.NewValidationError("group name must contain at least one letter or digit")
	}

	exists, err := uc.groupRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		uc.logger.Errorw("failed to check group slug", "error", err)
		return nil, appErrors.NewInternalError("failed to check group")
	}
	if exists {
		return nil, appErrors.NewConflictError("a group with this name already exists")
	}

	known, err := uc.permissionRepo.FilterKnownIDs(ctx, cmd.PermissionIDs)
	if err != nil {
		uc.logger.Errorw("failed to filter permission ids", "error", err)
		return nil, appErrors.NewInternalError("failed to resolve permissions")
	}

	g, err := group.NewGroup(cmd.Name, known)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.groupRepo.Create(ctx, g); err != nil {
		if appErrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create group", "error", err)
		return nil, appErrors.NewInternalError("failed to create group")
	}

	perms, err := uc.permissionRepo.GetByIDs(ctx, known)
	if err != nil {
		uc.logger.Errorw("failed to load permissions for casbin sync", "error", err, "group_id", g.ID())
		return g, nil
	}
	for _, p := range perms {
		if err := uc.enforcer.AddPolicy(g.Slug(), p.Resource(), p.Action()); err != nil {
			uc.logger.Warnw("failed to add casbin policy", "error", err, "role", g.Slug(), "permission", p.Code())
		}
	}

	uc.logger.Infow("group created", "group_id", g.ID(), "slug", g.Slug())
	return g, nil
}
