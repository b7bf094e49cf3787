package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByIDs retrieves multiple users by internal IDs
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)

	// GetByUsername retrieves a user by exact username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete permanently deletes a user by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated list of users
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// Search returns users whose username or name contains the query,
	// capped at limit results
	Search(ctx context.Context, query string, limit int) ([]*User, error)

	// ExistsByUsername checks if a user exists by exact username
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ReplaceGroups persists the user's group membership set
	ReplaceGroups(ctx context.Context, userID uint, groupIDs []uint) error

	// ListIDsByGroup returns the IDs of all members of a group
	ListIDsByGroup(ctx context.Context, groupID uint) ([]uint, error)
}

// ListFilter represents filtering and pagination options for user list
type ListFilter struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	OrderBy  string `json:"order_by,omitempty"` // field to order by
	Order    string `json:"order,omitempty"`    // asc or desc
}
