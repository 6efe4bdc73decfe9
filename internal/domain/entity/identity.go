// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Identity is the provider-issued representation of a signed-in user.
// It is owned by the external auth provider; the application only reacts
// to its presence or absence and never persists it.
type Identity struct {
	UID   string // Unique user handle issued by the auth provider.
	Email string // Verified email address.
	Name  string // Display name claim, may be empty.
}
