package permission

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

// PermissionSync mirrors the group/permission tables into casbin_rule so
// the enforcer sees a policy row for every group-permission grant and a
// grouping row for every membership.
type PermissionSync struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPermissionSync(db *gorm.DB, logger logger.Interface) *PermissionSync {
	return &PermissionSync{
		db:     db,
		logger: logger,
	}
}

func (s *PermissionSync) SyncToCasbin() error {
	s.logger.Infow("syncing permissions to casbin")

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := s.syncGroupPermissions(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to sync group permissions: %w", err)
	}

	if err := s.syncUserGroups(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to sync user groups: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Infow("permissions synced to casbin")
	return nil
}

func (s *PermissionSync) syncGroupPermissions(tx *gorm.DB) error {
	query := `
		INSERT INTO casbin_rule (ptype, v0, v1, v2)
		SELECT DISTINCT
			'p',
			g.slug,
			p.resource,
			p.action
		FROM group_permissions gp
		JOIN ` + "`groups`" + ` g ON gp.group_id = g.id
		JOIN permissions p ON gp.permission_id = p.id
		WHERE NOT EXISTS (
			SELECT 1 FROM casbin_rule cr
			WHERE cr.ptype = 'p'
			AND cr.v0 = g.slug
			AND cr.v1 = p.resource
			AND cr.v2 = p.action
		)
	`

	result := tx.Exec(query)
	if result.Error != nil {
		return fmt.Errorf("failed to sync group permissions: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger.Infow("synced group permissions to casbin", "count", result.RowsAffected)
	}

	return nil
}

func (s *PermissionSync) syncUserGroups(tx *gorm.DB) error {
	query := `
		INSERT INTO casbin_rule (ptype, v0, v1, v2)
		SELECT DISTINCT
			'g',
			CAST(ug.user_id AS CHAR),
			g.slug,
			''
		FROM user_groups ug
		JOIN ` + "`groups`" + ` g ON ug.group_id = g.id
		WHERE NOT EXISTS (
			SELECT 1 FROM casbin_rule cr
			WHERE cr.ptype = 'g'
			AND cr.v0 = CAST(ug.user_id AS CHAR)
			AND cr.v1 = g.slug
		)
	`

	result := tx.Exec(query)
	if result.Error != nil {
		return fmt.Errorf("failed to sync user groups: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger.Infow("synced user groups to casbin", "count", result.RowsAffected)
	}

	return nil
}
