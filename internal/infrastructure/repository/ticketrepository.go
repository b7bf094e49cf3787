package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils/setutil"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"title":       true,
	"status":      true,
	"owner_id":    true,
	"category_id": true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return r.syncMembers(tx, t)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "location", "status", "hidden", "owner_id", "category_id", "version", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return r.syncMembers(tx, t)
}

// syncMembers reconciles the participant and moderator join rows against
// the aggregate's sets.
func (r *TicketRepository) syncMembers(tx *gorm.DB, t *ticket.Ticket) error {
	if err := r.syncJoin(tx, t.ID(), t.ParticipantIDs(), &models.TicketParticipantModel{}, func(userID uint) interface{} {
		return &models.TicketParticipantModel{TicketID: t.ID(), UserID: userID}
	}); err != nil {
		return fmt.Errorf("failed to sync participants: %w", err)
	}

	if err := r.syncJoin(tx, t.ID(), t.ModeratorIDs(), &models.TicketModeratorModel{}, func(userID uint) interface{} {
		return &models.TicketModeratorModel{TicketID: t.ID(), UserID: userID}
	}); err != nil {
		return fmt.Errorf("failed to sync moderators: %w", err)
	}

	return nil
}

func (r *TicketRepository) syncJoin(tx *gorm.DB, ticketID uint, wantIDs []uint, model interface{}, newRow func(userID uint) interface{}) error {
	var current []uint
	if err := tx.Model(model).
		Where("ticket_id = ?", ticketID).
		Pluck("user_id", &current).Error; err != nil {
		return err
	}

	want := setutil.NewUintSetOf(wantIDs)
	have := setutil.NewUintSetOf(current)

	for _, userID := range want.Diff(have) {
		if err := tx.Create(newRow(userID)).Error; err != nil {
			return err
		}
	}

	toRemove := have.Diff(want)
	if len(toRemove) > 0 {
		if err := tx.
			Where("ticket_id = ? AND user_id IN ?", ticketID, toRemove).
			Delete(model).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	participantIDs, moderatorIDs, err := r.loadMembers(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, participantIDs, moderatorIDs)
}

func (r *TicketRepository) loadMembers(tx *gorm.DB, ticketID uint) ([]uint, []uint, error) {
	var participantIDs []uint
	if err := tx.Model(&models.TicketParticipantModel{}).
		Where("ticket_id = ?", ticketID).
		Pluck("user_id", &participantIDs).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load participants: %w", err)
	}

	var moderatorIDs []uint
	if err := tx.Model(&models.TicketModeratorModel{}).
		Where("ticket_id = ?", ticketID).
		Pluck("user_id", &moderatorIDs).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load moderators: %w", err)
	}

	return participantIDs, moderatorIDs, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("ticket not found")
	}

	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketParticipantModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete participant rows: %w", err)
	}
	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketModeratorModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete moderator rows: %w", err)
	}

	return nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	switch filter.Scope {
	case ticket.ScopeOwn:
		query = query.Where("owner_id = ?", filter.UserID)
	case ticket.ScopeParticipating:
		query = query.Where("id IN (?)", tx.Model(&models.TicketParticipantModel{}).
			Select("ticket_id").Where("user_id = ?", filter.UserID))
	case ticket.ScopeModerated:
		query = query.Where("id IN (?)", tx.Model(&models.TicketModeratorModel{}).
			Select("ticket_id").Where("user_id = ?", filter.UserID))
	case ticket.ScopeDashboard:
		query = query.Where("owner_id = ? OR id IN (?)", filter.UserID,
			tx.Model(&models.TicketParticipantModel{}).
				Select("ticket_id").Where("user_id = ?", filter.UserID))
	}

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if !filter.IncludeHidden {
		query = query.Where("hidden = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		participantIDs, moderatorIDs, err := r.loadMembers(tx, model.ID)
		if err != nil {
			return nil, 0, err
		}
		t, err := r.mapper.ToDomain(&model, participantIDs, moderatorIDs)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) ReassignOwned(ctx context.Context, fromUserID, toUserID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Where("owner_id = ?", fromUserID).
		Update("owner_id", toUserID).Error; err != nil {
		return fmt.Errorf("failed to reassign tickets: %w", err)
	}

	// The new owner must not linger in participant sets of its own tickets.
	if err := tx.
		Where("user_id = ? AND ticket_id IN (?)", toUserID,
			tx.Model(&models.TicketModel{}).Select("id").Where("owner_id = ?", toUserID)).
		Delete(&models.TicketParticipantModel{}).Error; err != nil {
		return fmt.Errorf("failed to prune participant rows: %w", err)
	}

	return nil
}

func (r *TicketRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}
