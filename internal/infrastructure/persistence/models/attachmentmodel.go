package models

import (
	"time"

	"helpdesk/internal/shared/constants"
)

// AttachmentModel represents the database persistence model for attachments.
// At most one of TicketID/CommentID is set; both nil means pending.
type AttachmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	Filename   string `gorm:"size:255;not null"`
	Size       int64  `gorm:"not null"`
	UploaderID uint   `gorm:"not null;index"`
	TicketID   *uint  `gorm:"index"`
	CommentID  *uint  `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}
