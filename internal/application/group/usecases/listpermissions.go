package usecases

import (
	"context"

	"helpdesk/internal/domain/group"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ListPermissionsUseCase exposes the fixed permission registry so the
// group editing UI can render grant checkboxes.
type ListPermissionsUseCase struct {
	permissionRepo group.PermissionRepository
	logger         logger.Interface
}

func NewListPermissionsUseCase(permissionRepo group.PermissionRepository, logger logger.Interface) *ListPermissionsUseCase {
	return &ListPermissionsUseCase{permissionRepo: permissionRepo, logger: logger}
}

func (uc *ListPermissionsUseCase) Execute(ctx context.Context) ([]*group.Permission, error) {
	permissions, err := uc.permissionRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list permissions", "error", err)
		return nil, appErrors.NewInternalError("failed to list permissions")
	}
	return permissions, nil
}
