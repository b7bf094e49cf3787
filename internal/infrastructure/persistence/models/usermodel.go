package models

import (
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                     uint    `gorm:"primarykey"`
	Username               string  `gorm:"uniqueIndex;not null;size:150"`
	Email                  string  `gorm:"uniqueIndex;not null;size:255"`
	NewEmail               *string `gorm:"size:255"`
	FirstName              string  `gorm:"size:150"`
	LastName               string  `gorm:"size:150"`
	PasswordHash           string  `gorm:"not null;size:255"`
	Active                 bool    `gorm:"not null;default:true"`
	EmailConfirmed         bool    `gorm:"not null;default:false;index:idx_email_confirmed"`
	Superuser              bool    `gorm:"not null;default:false"`
	Staff                  bool    `gorm:"not null;default:false"`
	Reserved               bool    `gorm:"not null;default:false"`
	ActivationTokenHash    *string `gorm:"size:64"`
	ActivationExpiresAt    *time.Time
	PasswordResetTokenHash *string `gorm:"size:64"`
	PasswordResetExpiresAt *time.Time
	Version                int `gorm:"not null;default:1"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}

// UserGroupModel joins users to groups
type UserGroupModel struct {
	ID      uint `gorm:"primarykey"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_user_group"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_user_group;index"`
}

func (UserGroupModel) TableName() string {
	return constants.TableUserGroups
}
