package category

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var hexColorRegex = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Category labels tickets with a name and a display color.
type Category struct {
	id        uint
	name      string
	color     string
	createdAt time.Time
	updatedAt time.Time
	version   int
}

// NormalizeColor strips an optional leading '#' and validates the
// six-digit hex form. The stored value never carries the '#'.
func NormalizeColor(color string) (string, error) {
	color = strings.TrimPrefix(strings.TrimSpace(color), "#")
	if !hexColorRegex.MatchString(color) {
		return "", fmt.Errorf("color must be a six-digit hex value, got %q", color)
	}
	return strings.ToLower(color), nil
}

// NewCategory creates a new category aggregate
func NewCategory(name, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("category name cannot exceed 150 characters")
	}

	normalized, err := NormalizeColor(color)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Category{
		name:      name,
		color:     normalized,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}, nil
}

// ReconstructCategory reconstructs a category from persistence
func ReconstructCategory(id uint, name, color string, createdAt, updatedAt time.Time, version int) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		id:        id,
		name:      name,
		color:     color,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

// Color returns the six-digit hex color without the leading '#'
func (c *Category) Color() string {
	return c.color
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) Version() int {
	return c.version
}

// SetID sets the category ID (only for persistence layer use)
func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}

	c.name = name
	c.touch()
	return nil
}

// Recolor changes the display color
func (c *Category) Recolor(color string) error {
	normalized, err := NormalizeColor(color)
	if err != nil {
		return err
	}

	c.color = normalized
	c.touch()
	return nil
}

func (c *Category) touch() {
	c.updatedAt = time.Now()
	c.version++
}
