package category

import "context"

// Repository defines the interface for category data operations
type Repository interface {
	// Create creates a new category
	Create(ctx context.Context, category *Category) error

	// GetByID retrieves a category by internal ID
	GetByID(ctx context.Context, id uint) (*Category, error)

	// Update updates an existing category
	Update(ctx context.Context, category *Category) error

	// Delete permanently deletes a category
	Delete(ctx context.Context, id uint) error

	// List retrieves all categories
	List(ctx context.Context) ([]*Category, error)

	// Exists checks if a category exists by internal ID
	Exists(ctx context.Context, id uint) (bool, error)
}
