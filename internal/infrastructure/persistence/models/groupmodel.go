package models

import (
	"time"

	"helpdesk/internal/shared/constants"
)

// GroupModel represents the database persistence model for groups
type GroupModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:150"`
	Slug      string `gorm:"uniqueIndex;not null;size:150"`
	Reserved  bool   `gorm:"not null;default:false"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GroupModel) TableName() string {
	return constants.TableGroups
}

// PermissionModel is a row in the fixed permission registry
type PermissionModel struct {
	ID          uint   `gorm:"primarykey"`
	Resource    string `gorm:"not null;size:50;uniqueIndex:idx_resource_action"`
	Action      string `gorm:"not null;size:50;uniqueIndex:idx_resource_action"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PermissionModel) TableName() string {
	return constants.TablePermissions
}

// GroupPermissionModel joins groups to registry entries
type GroupPermissionModel struct {
	ID           uint `gorm:"primarykey"`
	GroupID      uint `gorm:"not null;uniqueIndex:idx_group_permission"`
	PermissionID uint `gorm:"not null;uniqueIndex:idx_group_permission;index"`
}

func (GroupPermissionModel) TableName() string {
	return constants.TableGroupPermissions
}
