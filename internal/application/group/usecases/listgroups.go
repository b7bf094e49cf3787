package usecases

import (
	"context"

	"helpdesk/internal/domain/group"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListGroupsUseCase struct {
	groupRepo group.Repository
	logger    logger.Interface
}

func NewListGroupsUseCase(groupRepo group.Repository, logger logger.Interface) *ListGroupsUseCase {
	return &ListGroupsUseCase{groupRepo: groupRepo, logger: logger}
}

func (uc *ListGroupsUseCase) Execute(ctx context.Context) ([]*group.Group, error) {
	groups, err := uc.groupRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list groups", "error", err)
		return nil, appErrors.NewInternalError("failed to list groups")
	}
	return groups, nil
}
