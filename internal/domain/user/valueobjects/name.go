package valueobjects

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameRegex ensures the name contains only valid characters
var nameRegex = regexp.MustCompile(`^[a-zA-Z\s\-'\.]*$`)

// PersonName represents the first/last name pair of an account holder.
// Either part may be empty since self-registered users often omit them.
type PersonName struct {
	first string
	last  string
}

// NewPersonName creates a new PersonName value object with validation
func NewPersonName(first, last string) (*PersonName, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)

	if len(first) > 150 {
		return nil, fmt.Errorf("first name cannot exceed 150 characters")
	}
	if len(last) > 150 {
		return nil, fmt.Errorf("last name cannot exceed 150 characters")
	}
	if !nameRegex.MatchString(first) {
		return nil, fmt.Errorf("first name contains invalid characters: %s", first)
	}
	if !nameRegex.MatchString(last) {
		return nil, fmt.Errorf("last name contains invalid characters: %s", last)
	}

	return &PersonName{first: first, last: last}, nil
}

// First returns the first name part
func (n *PersonName) First() string {
	return n.first
}

// Last returns the last name part
func (n *PersonName) Last() string {
	return n.last
}

// Full returns "First Last" with empty parts collapsed.
func (n *PersonName) Full() string {
	return strings.TrimSpace(n.first + " " + n.last)
}

// Equals checks if two name objects are equal
func (n *PersonName) Equals(other *PersonName) bool {
	if n == nil || other == nil {
		return n == other
	}
	return strings.EqualFold(n.first, other.first) && strings.EqualFold(n.last, other.last)
}

// Initials returns the uppercase initials of the name
func (n *PersonName) Initials() string {
	var initials []string
	for _, part := range []string{n.first, n.last} {
		if len(part) > 0 {
			initials = append(initials, string(part[0]))
		}
	}
	return strings.ToUpper(strings.Join(initials, ""))
}

// Display returns a title-cased display name
func (n *PersonName) Display() string {
	caser := cases.Title(language.English)
	var formatted []string
	for _, part := range strings.Fields(n.Full()) {
		formatted = append(formatted, caser.String(strings.ToLower(part)))
	}
	return strings.Join(formatted, " ")
}
