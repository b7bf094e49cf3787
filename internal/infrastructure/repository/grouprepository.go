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
	"helpdesk/internal/shared/utils/setutil"
)

type GroupRepository struct {
	db     *gorm.DB
	mapper mappers.GroupMapper
}

func NewGroupRepository(gdb *gorm.DB) *GroupRepository {
	return &GroupRepository{
		db:     gdb,
		mapper: mappers.NewGroupMapper(),
	}
}

func (r *GroupRepository) Create(ctx context.Context, g *group.Group) error {
	model := r.mapper.ToModel(g)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("group name already exists")
		}
		return fmt.Errorf("failed to create group: %w", err)
	}

	if err := g.SetID(model.ID); err != nil {
		return err
	}

	return r.syncPermissions(tx, g.ID(), g.PermissionIDs())
}

func (r *GroupRepository) GetByID(ctx context.Context, id uint) (*group.Group, error) {
	var model models.GroupModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("group not found")
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	permissionIDs, err := r.loadPermissionIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, permissionIDs)
}

func (r *GroupRepository) GetByIDs(ctx context.Context, ids []uint) ([]*group.Group, error) {
	if len(ids) == 0 {
		return []*group.Group{}, nil
	}

	var groupModels []models.GroupModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&groupModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find groups: %w", err)
	}

	return r.toDomainList(tx, groupModels)
}

func (r *GroupRepository) GetBySlug(ctx context.Context, slug string) (*group.Group, error) {
	var model models.GroupModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("group not found")
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	permissionIDs, err := r.loadPermissionIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, permissionIDs)
}

func (r *GroupRepository) Update(ctx context.Context, g *group.Group) error {
	model := r.mapper.ToModel(g)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.GroupModel{}).
		Where("id = ?", model.ID).
		Select("name", "slug", "version", "updated_at").
		Updates(model)

	if result.Error != nil {
		if appErrors.IsDuplicateError(result.Error) {
			return appErrors.NewConflictError("group name already exists")
		}
		return fmt.Errorf("failed to update group: %w", result.Error)
	}

	return r.syncPermissions(tx, g.ID(), g.PermissionIDs())
}

func (r *GroupRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.GroupModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete group: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("group not found")
	}

	if err := tx.Where("group_id = ?", id).Delete(&models.UserGroupModel{}).Error; err != nil {
		return fmt.Errorf("failed to detach members: %w", err)
	}
	if err := tx.Where("group_id = ?", id).Delete(&models.GroupPermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete permission rows: %w", err)
	}

	return nil
}

func (r *GroupRepository) List(ctx context.Context) ([]*group.Group, error) {
	var groupModels []models.GroupModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&groupModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return r.toDomainList(tx, groupModels)
}

func (r *GroupRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.GroupModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check group slug: %w", err)
	}

	return count > 0, nil
}

func (r *GroupRepository) loadPermissionIDs(tx *gorm.DB, groupID uint) ([]uint, error) {
	var permissionIDs []uint
	if err := tx.Model(&models.GroupPermissionModel{}).
		Where("group_id = ?", groupID).
		Pluck("permission_id", &permissionIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load group permissions: %w", err)
	}
	return permissionIDs, nil
}

func (r *GroupRepository) syncPermissions(tx *gorm.DB, groupID uint, permissionIDs []uint) error {
	current, err := r.loadPermissionIDs(tx, groupID)
	if err != nil {
		return err
	}

	want := setutil.NewUintSetOf(permissionIDs)
	have := setutil.NewUintSetOf(current)

	for _, permissionID := range want.Diff(have) {
		row := &models.GroupPermissionModel{GroupID: groupID, PermissionID: permissionID}
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to grant permission: %w", err)
		}
	}

	toRemove := have.Diff(want)
	if len(toRemove) > 0 {
		if err := tx.
			Where("group_id = ? AND permission_id IN ?", groupID, toRemove).
			Delete(&models.GroupPermissionModel{}).Error; err != nil {
			return fmt.Errorf("failed to revoke permission: %w", err)
		}
	}

	return nil
}

func (r *GroupRepository) toDomainList(tx *gorm.DB, groupModels []models.GroupModel) ([]*group.Group, error) {
	groups := make([]*group.Group, len(groupModels))
	for i, model := range groupModels {
		permissionIDs, err := r.loadPermissionIDs(tx, model.ID)
		if err != nil {
			return nil, err
		}
		g, err := r.mapper.ToDomain(&model, permissionIDs)
		if err != nil {
			return nil, err
		}
		groups[i] = g
	}
	return groups, nil
}
