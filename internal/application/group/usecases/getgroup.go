package usecases

import (
	"context"

	"helpdesk/internal/domain/group"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetGroupCommand struct {
	GroupID uint
}

// GetGroupResult pairs the group with its member user IDs.
type GetGroupResult struct {
	Group     *group.Group
	MemberIDs []uint
}

type GetGroupUseCase struct {
	groupRepo group.Repository
	userRepo  userIDLister
	logger    logger.Interface
}

// userIDLister is the slice of the user repository this usecase needs.
type userIDLister interface {
	ListIDsByGroup(ctx context.Context, groupID uint) ([]uint, error)
}

func NewGetGroupUseCase(groupRepo group.Repository, userRepo userIDLister, logger logger.Interface) *GetGroupUseCase {
	return &GetGroupUseCase{groupRepo: groupRepo, userRepo: userRepo, logger: logger}
}

func (uc *GetGroupUseCase) Execute(ctx context.Context, cmd GetGroupCommand) (*GetGroupResult, error) {
	g, err := uc.groupRepo.GetByID(ctx, cmd.GroupID)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load group", "error", err, "group_id", cmd.GroupID)
		return nil, appErrors.NewInternalError("failed to load group")
	}

	memberIDs, err := uc.userRepo.ListIDsByGroup(ctx, g.ID())
	if err != nil {
		uc.logger.Errorw("failed to list group members", "error", err, "group_id", g.ID())
		return nil, appErrors.NewInternalError("failed to list group members")
	}

	return &GetGroupResult{Group: g, MemberIDs: memberIDs}, nil
}
