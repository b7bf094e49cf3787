package migration

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

// permissionRegistry is the fixed set of named permissions. Groups can
// only be granted entries from this list.
var permissionRegistry = []struct {
	Resource    string
	Action      string
	Description string
}{
	{constants.ResourceUser, constants.ActionView, "View user accounts"},
	{constants.ResourceUser, constants.ActionCreate, "Create user accounts"},
	{constants.ResourceUser, constants.ActionUpdate, "Edit user accounts"},
	{constants.ResourceUser, constants.ActionDelete, "Delete user accounts"},
	{constants.ResourceUser, constants.ActionChangePermission, "Change user group membership"},
	{constants.ResourceGroup, constants.ActionView, "View groups"},
	{constants.ResourceGroup, constants.ActionCreate, "Create groups"},
	{constants.ResourceGroup, constants.ActionUpdate, "Edit groups"},
	{constants.ResourceGroup, constants.ActionDelete, "Delete groups"},
	{constants.ResourceCategory, constants.ActionView, "View categories"},
	{constants.ResourceCategory, constants.ActionCreate, "Create categories"},
	{constants.ResourceCategory, constants.ActionUpdate, "Edit categories"},
	{constants.ResourceCategory, constants.ActionDelete, "Delete categories"},
	{constants.ResourceTicket, constants.ActionView, "View all tickets"},
	{constants.ResourceTicket, constants.ActionCreate, "Create tickets"},
	{constants.ResourceTicket, constants.ActionUpdate, "Edit and triage tickets"},
	{constants.ResourceTicket, constants.ActionDelete, "Delete tickets"},
	{constants.ResourceTicket, constants.ActionHide, "Hide tickets"},
	{constants.ResourceTicket, constants.ActionUnhide, "Unhide tickets"},
	{constants.ResourceComment, constants.ActionUpdate, "Edit any comment"},
	{constants.ResourceAttachment, constants.ActionView, "View any attachment"},
	{constants.ResourceAttachment, constants.ActionAdd, "Add attachments"},
	{constants.ResourceAttachment, constants.ActionDelete, "Delete attachments"},
	{constants.ResourceSetting, constants.ActionView, "View site settings"},
	{constants.ResourceSetting, constants.ActionUpdate, "Edit site settings"},
}

// moderatorPermissions are the registry codes granted to the seeded
// moderator group. The admin group gets the full registry; the user
// group gets none (member abilities are ownership-based).
var moderatorPermissions = map[string]bool{
	"ticket:view":     true,
	"ticket:update":   true,
	"ticket:hide":     true,
	"ticket:unhide":   true,
	"comment:update":  true,
	"attachment:view": true,
	"attachment:add":  true,
	"category:view":   true,
	"user:view":       true,
}

// Seeder writes the reserved rows every installation needs: the ghost
// and admin users, the reserved groups, the permission registry, the
// base category, and the matching casbin policy rows.
type Seeder struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSeeder(db *gorm.DB, log logger.Interface) *Seeder {
	return &Seeder{
		db:     db,
		logger: log,
	}
}

// Seed is idempotent; existing rows are left untouched.
func (s *Seeder) Seed(adminPasswordHash string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		permissionIDs, err := s.seedPermissions(tx)
		if err != nil {
			return err
		}

		groupIDs, err := s.seedGroups(tx, permissionIDs)
		if err != nil {
			return err
		}

		if err := s.seedUsers(tx, groupIDs, adminPasswordHash); err != nil {
			return err
		}

		if err := s.seedCategories(tx); err != nil {
			return err
		}

		s.logger.Infow("database seeding completed")
		return nil
	})
}

func (s *Seeder) seedPermissions(tx *gorm.DB) (map[string]uint, error) {
	ids := make(map[string]uint, len(permissionRegistry))

	for _, entry := range permissionRegistry {
		var model models.PermissionModel
		err := tx.Where("resource = ? AND action = ?", entry.Resource, entry.Action).
			Attrs(models.PermissionModel{
				Resource:    entry.Resource,
				Action:      entry.Action,
				Description: entry.Description,
			}).
			FirstOrCreate(&model).Error
		if err != nil {
			return nil, fmt.Errorf("failed to seed permission %s:%s: %w", entry.Resource, entry.Action, err)
		}
		ids[entry.Resource+":"+entry.Action] = model.ID
	}

	return ids, nil
}

func (s *Seeder) seedGroups(tx *gorm.DB, permissionIDs map[string]uint) (map[string]uint, error) {
	groups := []string{
		constants.ReservedGroupAdmin,
		constants.ReservedGroupMod,
		constants.ReservedGroupMember,
	}

	ids := make(map[string]uint, len(groups))

	for _, name := range groups {
		var model models.GroupModel
		err := tx.Where("slug = ?", name).
			Attrs(models.GroupModel{
				Name:     name,
				Slug:     name,
				Reserved: true,
			}).
			FirstOrCreate(&model).Error
		if err != nil {
			return nil, fmt.Errorf("failed to seed group %s: %w", name, err)
		}
		ids[name] = model.ID
	}

	for code, permissionID := range permissionIDs {
		if err := s.grantPermission(tx, ids[constants.ReservedGroupAdmin], permissionID, constants.ReservedGroupAdmin, code); err != nil {
			return nil, err
		}
		if moderatorPermissions[code] {
			if err := s.grantPermission(tx, ids[constants.ReservedGroupMod], permissionID, constants.ReservedGroupMod, code); err != nil {
				return nil, err
			}
		}
	}

	return ids, nil
}

func (s *Seeder) grantPermission(tx *gorm.DB, groupID, permissionID uint, slug, code string) error {
	var link models.GroupPermissionModel
	err := tx.Where("group_id = ? AND permission_id = ?", groupID, permissionID).
		Attrs(models.GroupPermissionModel{
			GroupID:      groupID,
			PermissionID: permissionID,
		}).
		FirstOrCreate(&link).Error
	if err != nil {
		return fmt.Errorf("failed to grant %s to %s: %w", code, slug, err)
	}
	return nil
}

func (s *Seeder) seedUsers(tx *gorm.DB, groupIDs map[string]uint, adminPasswordHash string) error {
	now := time.Now().UTC()

	var ghost models.UserModel
	err := tx.Where("username = ?", constants.ReservedUserGhost).
		Attrs(models.UserModel{
			Username:       constants.ReservedUserGhost,
			Email:          "ghost@helpdesk.local",
			PasswordHash:   "",
			Active:         false,
			EmailConfirmed: true,
			Reserved:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}).
		FirstOrCreate(&ghost).Error
	if err != nil {
		return fmt.Errorf("failed to seed ghost user: %w", err)
	}

	var admin models.UserModel
	err = tx.Where("username = ?", constants.ReservedUserAdmin).
		Attrs(models.UserModel{
			Username:       constants.ReservedUserAdmin,
			Email:          "admin@helpdesk.local",
			PasswordHash:   adminPasswordHash,
			Active:         true,
			EmailConfirmed: true,
			Superuser:      true,
			Staff:          true,
			Reserved:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}).
		FirstOrCreate(&admin).Error
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	var membership models.UserGroupModel
	err = tx.Where("user_id = ? AND group_id = ?", admin.ID, groupIDs[constants.ReservedGroupAdmin]).
		Attrs(models.UserGroupModel{
			UserID:  admin.ID,
			GroupID: groupIDs[constants.ReservedGroupAdmin],
		}).
		FirstOrCreate(&membership).Error
	if err != nil {
		return fmt.Errorf("failed to seed admin group membership: %w", err)
	}

	return nil
}

func (s *Seeder) seedCategories(tx *gorm.DB) error {
	var model models.CategoryModel
	err := tx.Where("name = ?", "General").
		Attrs(models.CategoryModel{
			Name:  "General",
			Color: "1f6feb",
		}).
		FirstOrCreate(&model).Error
	if err != nil {
		return fmt.Errorf("failed to seed base category: %w", err)
	}
	return nil
}
