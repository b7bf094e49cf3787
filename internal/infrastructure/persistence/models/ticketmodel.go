package models

import (
	"time"

	"helpdesk/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Location    string `gorm:"size:255"`
	Status      string `gorm:"size:20;not null;index"`
	Hidden      bool   `gorm:"not null;default:false;index"`
	OwnerID     uint   `gorm:"not null;index"`
	CategoryID  uint   `gorm:"not null;index"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

// TicketParticipantModel joins tickets to participating users
type TicketParticipantModel struct {
	ID       uint `gorm:"primaryKey"`
	TicketID uint `gorm:"not null;uniqueIndex:idx_ticket_participant"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_ticket_participant;index"`
}

func (TicketParticipantModel) TableName() string {
	return constants.TableTicketParticipants
}

// TicketModeratorModel joins tickets to moderating users
type TicketModeratorModel struct {
	ID       uint `gorm:"primaryKey"`
	TicketID uint `gorm:"not null;uniqueIndex:idx_ticket_moderator"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_ticket_moderator;index"`
}

func (TicketModeratorModel) TableName() string {
	return constants.TableTicketModerators
}

// CommentModel carries the per-ticket sequence in Num; the unique index
// on (ticket_id, num) backs the in-transaction MAX+1 assignment.
type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;uniqueIndex:idx_ticket_num;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Num       uint   `gorm:"not null;uniqueIndex:idx_ticket_num"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
