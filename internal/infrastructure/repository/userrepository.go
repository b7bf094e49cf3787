package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainEvents "helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils/setutil"
)

var allowedUserOrderByFields = map[string]bool{
	"id":         true,
	"username":   true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

type UserRepository struct {
	db     *gorm.DB
	events domainEvents.EventPublisher
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(gdb *gorm.DB, publisher domainEvents.EventPublisher, log logger.Interface) *UserRepository {
	return &UserRepository{
		db:     gdb,
		events: publisher,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return err
	}

	if err := r.syncGroups(tx, u.ID(), u.GroupIDs()); err != nil {
		return err
	}

	r.publishEvents(u)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	groupIDs, err := r.loadGroupIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, groupIDs)
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	return r.toDomainList(tx, userModels)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	groupIDs, err := r.loadGroupIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, groupIDs)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	groupIDs, err := r.loadGroupIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, groupIDs)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("username", "email", "new_email", "first_name", "last_name",
			"password_hash", "active", "email_confirmed", "superuser", "staff",
			"activation_token_hash", "activation_expires_at",
			"password_reset_token_hash", "password_reset_expires_at",
			"version", "updated_at").
		Updates(model)

	if result.Error != nil {
		if appErrors.IsDuplicateError(result.Error) {
			return appErrors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	if err := r.syncGroups(tx, u.ID(), u.GroupIDs()); err != nil {
		return err
	}

	r.publishEvents(u)
	return nil
}

// publishEvents drains the events recorded on the aggregate and hands
// them to the dispatcher. Publish failures are logged, not returned.
func (r *UserRepository) publishEvents(u *user.User) {
	if r.events == nil {
		return
	}
	for _, recorded := range u.GetEvents() {
		event, ok := recorded.(domainEvents.DomainEvent)
		if !ok {
			continue
		}
		if err := r.events.Publish(event); err != nil {
			r.logger.Warnw("failed to publish domain event",
				"event_type", event.GetEventType(), "error", err)
		}
	}
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("user not found")
	}

	if err := tx.Where("user_id = ?", id).Delete(&models.UserGroupModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete group membership: %w", err)
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	if filter.Username != "" {
		query = query.Where("username LIKE ?", "%"+filter.Username+"%")
	}
	if filter.Email != "" {
		query = query.Where("email LIKE ?", "%"+filter.Email+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	orderBy := strings.ToLower(filter.OrderBy)
	if orderBy != "" && allowedUserOrderByFields[orderBy] {
		order := strings.ToUpper(filter.Order)
		if order != "ASC" && order != "DESC" {
			order = "ASC"
		}
		query = query.Order(orderBy + " " + order)
	} else {
		query = query.Order("id ASC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var userModels []models.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.toDomainList(tx, userModels)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) Search(ctx context.Context, query string, limit int) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	pattern := "%" + query + "%"
	var userModels []models.UserModel
	if err := tx.
		Where("username LIKE ? OR first_name LIKE ? OR last_name LIKE ?", pattern, pattern, pattern).
		Order("username ASC").
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return r.toDomainList(tx, userModels)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) ReplaceGroups(ctx context.Context, userID uint, groupIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.syncGroups(tx, userID, groupIDs)
}

func (r *UserRepository) ListIDsByGroup(ctx context.Context, groupID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userIDs []uint
	if err := tx.Model(&models.UserGroupModel{}).
		Where("group_id = ?", groupID).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}

	return userIDs, nil
}

func (r *UserRepository) loadGroupIDs(tx *gorm.DB, userID uint) ([]uint, error) {
	var groupIDs []uint
	if err := tx.Model(&models.UserGroupModel{}).
		Where("user_id = ?", userID).
		Pluck("group_id", &groupIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load group membership: %w", err)
	}
	return groupIDs, nil
}

func (r *UserRepository) syncGroups(tx *gorm.DB, userID uint, groupIDs []uint) error {
	current, err := r.loadGroupIDs(tx, userID)
	if err != nil {
		return err
	}

	want := setutil.NewUintSetOf(groupIDs)
	have := setutil.NewUintSetOf(current)

	for _, groupID := range want.Diff(have) {
		row := &models.UserGroupModel{UserID: userID, GroupID: groupID}
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to add group membership: %w", err)
		}
	}

	toRemove := have.Diff(want)
	if len(toRemove) > 0 {
		if err := tx.
			Where("user_id = ? AND group_id IN ?", userID, toRemove).
			Delete(&models.UserGroupModel{}).Error; err != nil {
			return fmt.Errorf("failed to remove group membership: %w", err)
		}
	}

	return nil
}

func (r *UserRepository) toDomainList(tx *gorm.DB, userModels []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, len(userModels))
	for i, model := range userModels {
		groupIDs, err := r.loadGroupIDs(tx, model.ID)
		if err != nil {
			return nil, err
		}
		u, err := r.mapper.ToDomain(&model, groupIDs)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}
