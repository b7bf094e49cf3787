package usecases

import (
	"context"
	"strconv"

	"helpdesk/internal/domain/group"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils/setutil"
)

type UpdateGroupCommand struct {
	GroupID       uint
	Name          *string
	PermissionIDs []uint // nil means leave the grant set unchanged
}

// UpdateGroupUseCase renames a group and/or replaces its permission
// set. Reserved groups cannot be renamed, and the admin group's grant
// set is immutable. Casbin policies follow every change; a rename moves
// the role to the new slug, memberships included.
type UpdateGroupUseCase struct {
	groupRepo      group.Repository
	permissionRepo group.PermissionRepository
	userRepo       userIDLister
	enforcer       group.PermissionEnforcer
	logger         logger.Interface
}

func NewUpdateGroupUseCase(
	groupRepo group.Repository,
	permissionRepo group.PermissionRepository,
	userRepo userIDLister,
	enforcer group.PermissionEnforcer,
	logger logger.Interface,
) *UpdateGroupUseCase {
	return &UpdateGroupUseCase{
		groupRepo:      groupRepo,
		permissionRepo: permissionRepo,
		userRepo:       userRepo,
		enforcer:       enforcer,
		logger:         logger,
	}
}

func (uc *UpdateGroupUseCase) Execute(ctx context.Context, cmd UpdateGroupCommand) (*group.Group, error) {
	g, err := uc.groupRepo.GetByID(ctx, cmd.GroupID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load group", "error", err, "group_id", cmd.GroupID)
		return nil, appErrors.NewInternalError("failed to load group")
	}

	oldSlug := g.Slug()
	oldPermissionIDs := g.PermissionIDs()

	if cmd.Name != nil && *cmd.Name != g.Name() {
		if g.IsReserved() {
			return nil, appErrors.NewForbiddenError("reserved groups cannot be renamed")
		}
		newSlug := group.Slugify(*cmd.Name)
		if newSlug != oldSlug {
			exists, err := uc.groupRepo.ExistsBySlug(ctx, newSlug)
			if err != nil {
				uc.logger.Errorw("failed to check group slug", "error", err)
				return nil, appErrors.NewInternalError("failed to check group")
			}
			if exists {
				return nil, appErrors.NewConflictError("a group with this name already exists")
			}
		}
		if err := g.Rename(*cmd.Name); err != nil {
			return nil, appErrors.NewValidationError(err.Error())
		}
	}

	var added, removed []uint
	if cmd.PermissionIDs != nil {
		if g.Slug() == constants.ReservedGroupAdmin && g.IsReserved() {
			return nil, appErrors.NewForbiddenError("the admin group's permissions cannot be edited")
		}
		known, err := uc.permissionRepo.FilterKnownIDs(ctx, cmd.PermissionIDs)
		if err != nil {
			uc.logger.Errorw("failed to filter permission ids", "error", err)
			return nil, appErrors.NewInternalError("failed to resolve permissions")
		}
		current := setutil.NewUintSetOf(oldPermissionIDs)
		next := setutil.NewUintSetOf(known)
		added = next.Diff(current)
		removed = current.Diff(next)
		g.ReplacePermissions(known)
	}

	if err := uc.groupRepo.Update(ctx, g); err != nil {
		if appErrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update group", "error", err, "group_id", g.ID())
		return nil, appErrors.NewInternalError("failed to update group")
	}

	if g.Slug() != oldSlug {
		if err := uc.moveRole(ctx, g, oldSlug); err != nil {
			uc.logger.Errorw("failed to move casbin role", "error", err, "from", oldSlug, "to", g.Slug())
		}
	} else {
		uc.syncGrantDiff(ctx, g.Slug(), added, removed)
	}

	uc.logger.Infow("group updated", "group_id", g.ID(), "slug", g.Slug())
	return g, nil
}

// moveRole rebuilds the casbin role under the new slug: the full grant
// set is re-added, memberships are re-attached, and the old role is
// dropped last so a crash leaves grants intact under one slug or the
// other.
func (uc *UpdateGroupUseCase) moveRole(ctx context.Context, g *group.Group, oldSlug string) error {
	perms, err := uc.permissionRepo.GetByIDs(ctx, g.PermissionIDs())
	if err != nil {
		return err
	}
	for _, p := range perms {
		if err := uc.enforcer.AddPolicy(g.Slug(), p.Resource(), p.Action()); err != nil {
			uc.logger.Warnw("failed to add casbin policy", "error", err, "role", g.Slug(), "permission", p.Code())
		}
	}

	memberIDs, err := uc.userRepo.ListIDsByGroup(ctx, g.ID())
	if err != nil {
		return err
	}
	for _, id := range memberIDs {
		subject := strconv.FormatUint(uint64(id), 10)
		if err := uc.enforcer.AddRoleForUser(subject, g.Slug()); err != nil {
			uc.logger.Warnw("failed to attach casbin role", "error", err, "user_id", id, "role", g.Slug())
		}
	}

	return uc.enforcer.DeleteRole(oldSlug)
}

func (uc *UpdateGroupUseCase) syncGrantDiff(ctx context.Context, slug string, added, removed []uint) {
	if len(added) > 0 {
		perms, err := uc.permissionRepo.GetByIDs(ctx, added)
		if err != nil {
			uc.logger.Errorw("failed to load added permissions", "error", err, "role", slug)
		} else {
			for _, p := range perms {
				if err := uc.enforcer.AddPolicy(slug, p.Resource(), p.Action()); err != nil {
					uc.logger.Warnw("failed to add casbin policy", "error", err, "role", slug, "permission", p.Code())
				}
			}
		}
	}

	if len(removed) > 0 {
		perms, err := uc.permissionRepo.GetByIDs(ctx, removed)
		if err != nil {
			uc.logger.Errorw("failed to load removed permissions", "error", err, "role", slug)
			return
		}
		for _, p := range perms {
			if err := uc.enforcer.RemovePolicy(slug, p.Resource(), p.Action()); err != nil {
				uc.logger.Warnw("failed to remove casbin policy", "error", err, "role", slug, "permission", p.Code())
			}
		}
	}
}
