package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/group"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	appErrors "helpdesk/internal/shared/errors"
)

// PermissionRepository reads the fixed permission registry.
type PermissionRepository struct {
	db     *gorm.DB
	mapper mappers.GroupMapper
}

func NewPermissionRepository(gdb *gorm.DB) *PermissionRepository {
	return &PermissionRepository{
		db:     gdb,
		mapper: mappers.NewGroupMapper(),
	}
}

func (r *PermissionRepository) GetByID(ctx context.Context, id uint) (*group.Permission, error) {
	var model models.PermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("permission not found")
		}
		return nil, fmt.Errorf("failed to find permission: %w", err)
	}

	return r.mapper.PermissionToDomain(&model)
}

func (r *PermissionRepository) GetByIDs(ctx context.Context, ids []uint) ([]*group.Permission, error) {
	if len(ids) == 0 {
		return []*group.Permission{}, nil
	}

	var permissionModels []models.PermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&permissionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find permissions: %w", err)
	}

	return r.toDomainList(permissionModels)
}

func (r *PermissionRepository) GetByCode(ctx context.Context, resource, action string) (*group.Permission, error) {
	var model models.PermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("resource = ? AND action = ?", resource, action).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("permission not found")
		}
		return nil, fmt.Errorf("failed to find permission: %w", err)
	}

	return r.mapper.PermissionToDomain(&model)
}

func (r *PermissionRepository) List(ctx context.Context) ([]*group.Permission, error) {
	var permissionModels []models.PermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&permissionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	return r.toDomainList(permissionModels)
}

// FilterKnownIDs drops submitted IDs that do not exist in the registry.
func (r *PermissionRepository) FilterKnownIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return []uint{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var known []uint
	if err := tx.Model(&models.PermissionModel{}).
		Where("id IN ?", ids).
		Pluck("id", &known).Error; err != nil {
		return nil, fmt.Errorf("failed to filter permission IDs: %w", err)
	}

	return known, nil
}

func (r *PermissionRepository) toDomainList(permissionModels []models.PermissionModel) ([]*group.Permission, error) {
	permissions := make([]*group.Permission, len(permissionModels))
	for i, model := range permissionModels {
		p, err := r.mapper.PermissionToDomain(&model)
		if err != nil {
			return nil, err
		}
		permissions[i] = p
	}
	return permissions, nil
}
