package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	appErrors "helpdesk/internal/shared/errors"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.AttachmentMapper
}

func NewAttachmentRepository(gdb *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     gdb,
		mapper: mappers.NewAttachmentMapper(),
	}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *attachment.Attachment) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*attachment.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AttachmentRepository) Update(ctx context.Context, a *attachment.Attachment) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AttachmentModel{}).
		Where("id = ?", model.ID).
		Select("ticket_id", "comment_id", "updated_at").
		Updates(map[string]interface{}{
			"ticket_id":  model.TicketID,
			"comment_id": model.CommentID,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("attachment not found")
	}

	return nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("attachment not found")
	}

	return nil
}

func (r *AttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*attachment.Attachment, error) {
	return r.list(ctx, "ticket_id = ?", ticketID)
}

func (r *AttachmentRepository) ListByComment(ctx context.Context, commentID uint) ([]*attachment.Attachment, error) {
	return r.list(ctx, "comment_id = ?", commentID)
}

// ListPendingByUploader returns the subset of ids that are pending
// attachments uploaded by the given user. IDs that are missing, already
// linked, or owned by someone else are silently dropped.
func (r *AttachmentRepository) ListPendingByUploader(ctx context.Context, uploaderID uint, ids []uint) ([]*attachment.Attachment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).
		Where("uploader_id = ?", uploaderID).
		Where("ticket_id IS NULL").
		Where("comment_id IS NULL").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending attachments: %w", err)
	}

	return r.toDomainSlice(attachmentModels)
}

func (r *AttachmentRepository) list(ctx context.Context, query string, arg interface{}) ([]*attachment.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, arg).Order("id ASC").Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	return r.toDomainSlice(attachmentModels)
}

func (r *AttachmentRepository) toDomainSlice(attachmentModels []models.AttachmentModel) ([]*attachment.Attachment, error) {
	attachments := make([]*attachment.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		attachments[i] = a
	}
	return attachments, nil
}
