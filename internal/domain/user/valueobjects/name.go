package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name represents a person's name as entered at registration.
type Name struct {
	firstName string
	lastName  string
}

// NewName creates a new Name value object with validation
func NewName(firstName, lastName string) (*Name, error) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)

	if first == "" {
		return nil, fmt.Errorf("first name cannot be empty")
	}
	if last == "" {
		return nil, fmt.Errorf("last name cannot be empty")
	}
	if len(first) > 100 {
		return nil, fmt.Errorf("first name cannot exceed 100 characters")
	}
	if len(last) > 100 {
		return nil, fmt.Errorf("last name cannot exceed 100 characters")
	}

	return &Name{firstName: first, lastName: last}, nil
}

// FirstName returns the first name part
func (n *Name) FirstName() string {
	return n.firstName
}

// LastName returns the last name part
func (n *Name) LastName() string {
	return n.lastName
}

// FullName returns "First Last" exactly as stored.
func (n *Name) FullName() string {
	return n.firstName + " " + n.lastName
}

// DisplayName returns the full name with each part title-cased.
func (n *Name) DisplayName() string {
	caser := cases.Title(language.English)
	return caser.String(strings.ToLower(n.firstName)) + " " + caser.String(strings.ToLower(n.lastName))
}

// Equals checks if two name objects are equal
func (n *Name) Equals(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return strings.EqualFold(n.firstName, other.firstName) &&
		strings.EqualFold(n.lastName, other.lastName)
}
