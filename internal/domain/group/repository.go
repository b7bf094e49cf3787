package group

import "context"

// Repository defines the interface for group data operations
type Repository interface {
	// Create creates a new group
	Create(ctx context.Context, group *Group) error

	// GetByID retrieves a group by internal ID
	GetByID(ctx context.Context, id uint) (*Group, error)

	// GetByIDs retrieves multiple groups by internal IDs
	GetByIDs(ctx context.Context, ids []uint) ([]*Group, error)

	// GetBySlug retrieves a group by its role slug
	GetBySlug(ctx context.Context, slug string) (*Group, error)

	// Update updates an existing group
	Update(ctx context.Context, group *Group) error

	// Delete permanently deletes a group; membership rows are detached
	Delete(ctx context.Context, id uint) error

	// List retrieves all groups
	List(ctx context.Context) ([]*Group, error)

	// ExistsBySlug checks if a group exists by slug
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

// PermissionRepository exposes the fixed permission registry
type PermissionRepository interface {
	// GetByID retrieves a registry entry by ID
	GetByID(ctx context.Context, id uint) (*Permission, error)

	// GetByIDs retrieves multiple registry entries by IDs
	GetByIDs(ctx context.Context, ids []uint) ([]*Permission, error)

	// GetByCode retrieves a registry entry by "resource:action" codename
	GetByCode(ctx context.Context, resource, action string) (*Permission, error)

	// List retrieves the whole registry
	List(ctx context.Context) ([]*Permission, error)

	// FilterKnownIDs returns the subset of ids present in the registry
	FilterKnownIDs(ctx context.Context, ids []uint) ([]uint, error)
}
