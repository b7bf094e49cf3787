package models

import (
	"time"

	"helpdesk/internal/shared/constants"
)

// CategoryModel represents the database persistence model for categories
type CategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:150"`
	Color     string `gorm:"not null;size:6"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}
