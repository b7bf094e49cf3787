package group

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Group is a named role users belong to. Permission membership is an ID
// set into the registry; the slug doubles as the casbin role name.
type Group struct {
	id            uint
	name          string
	slug          string
	reserved      bool
	permissionIDs []uint
	createdAt     time.Time
	updatedAt     time.Time
	version       int
}

// Slugify normalizes a group name into its role slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// NewGroup creates a new group aggregate
func NewGroup(name string, permissionIDs []uint) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("group name cannot exceed 150 characters")
	}

	slug := Slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("group name must contain at least one letter or digit")
	}

	if permissionIDs == nil {
		permissionIDs = []uint{}
	}

	now := time.Now()
	return &Group{
		name:          name,
		slug:          slug,
		permissionIDs: permissionIDs,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
	}, nil
}

// ReconstructGroup reconstructs a group from persistence
func ReconstructGroup(id uint, name, slug string, reserved bool, permissionIDs []uint, createdAt, updatedAt time.Time, version int) (*Group, error) {
	if id == 0 {
		return nil, fmt.Errorf("group ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("group slug is required")
	}

	if permissionIDs == nil {
		permissionIDs = []uint{}
	}

	return &Group{
		id:            id,
		name:          name,
		slug:          slug,
		reserved:      reserved,
		permissionIDs: permissionIDs,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
	}, nil
}

func (g *Group) ID() uint {
	return g.id
}

func (g *Group) Name() string {
	return g.name
}

// Slug returns the normalized role name used for casbin grouping
func (g *Group) Slug() string {
	return g.slug
}

func (g *Group) IsReserved() bool {
	return g.reserved
}

func (g *Group) PermissionIDs() []uint {
	return g.permissionIDs
}

func (g *Group) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Group) UpdatedAt() time.Time {
	return g.updatedAt
}

func (g *Group) Version() int {
	return g.version
}

// SetID sets the group ID (only for persistence layer use)
func (g *Group) SetID(id uint) error {
	if g.id != 0 {
		return fmt.Errorf("group ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("group ID cannot be zero")
	}
	g.id = id
	return nil
}

// MarkReserved flags the group as a seeded system group.
func (g *Group) MarkReserved() {
	g.reserved = true
	g.touch()
}

// Rename changes the group's name and slug. Reserved groups keep their
// identity so permission wiring and seeds stay stable.
func (g *Group) Rename(name string) error {
	if g.reserved {
		return fmt.Errorf("reserved group %q cannot be renamed", g.name)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("group name is required")
	}

	slug := Slugify(name)
	if slug == "" {
		return fmt.Errorf("group name must contain at least one letter or digit")
	}

	g.name = name
	g.slug = slug
	g.touch()
	return nil
}

// ReplacePermissions swaps the permission ID set
func (g *Group) ReplacePermissions(permissionIDs []uint) {
	if permissionIDs == nil {
		permissionIDs = []uint{}
	}
	g.permissionIDs = permissionIDs
	g.touch()
}

func (g *Group) touch() {
	g.updatedAt = time.Now()
	g.version++
}
