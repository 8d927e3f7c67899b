// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the single core entity in the system, representing one
// registered person. The store assigns the ID on creation; it never changes.
type Account struct {
	ID             uint      // Auto-assigned integer identity, immutable after creation.
	Username       string    // Unique, case-sensitive login name; lookup key for authenticated operations.
	Email          string    // Unique contact email; lookup key for login and registration dedup.
	PasswordDigest string    // Salted bcrypt digest of the password. Never the plaintext.
	Role           Role      // The account's single role. Defaults to RoleUser.
	FullName       string    // Optional display name.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this account.
}
