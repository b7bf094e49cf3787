package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// usernameRegex restricts usernames to letters, digits and a few separators.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9@._+\-]+$`)

// Username represents a unique login name value object
type Username struct {
	value string
}

// NewUsername creates a new Username value object with validation
func NewUsername(value string) (*Username, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	if len(normalized) > 150 {
		return nil, fmt.Errorf("username cannot exceed 150 characters")
	}

	if !usernameRegex.MatchString(normalized) {
		return nil, fmt.Errorf("username contains invalid characters: %s", value)
	}

	return &Username{value: normalized}, nil
}

// String returns the string representation of the username
func (u *Username) String() string {
	return u.value
}

// Equals checks if two username objects are equal
// Comparison is case-insensitive so "Admin" and "admin" collide.
func (u *Username) Equals(other *Username) bool {
	if u == nil || other == nil {
		return u == other
	}
	return strings.EqualFold(u.value, other.value)
}

// Lower returns the lowercase form used for uniqueness checks.
func (u *Username) Lower() string {
	return strings.ToLower(u.value)
}
