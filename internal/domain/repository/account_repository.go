// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/errors"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
// All operations are atomic single-record operations.
type AccountRepository interface {
	// FindByID retrieves a single account by its store-assigned ID.
	FindByID(ctx context.Context, id uint) (*entity.Account, error)

	// FindByUsername retrieves a single account by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// ListAll returns every account. Ordering is implementation-defined;
	// callers must not depend on it.
	ListAll(ctx context.Context) ([]*entity.Account, error)

	// Create persists a new account and assigns its ID.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account permanently. There is no soft delete.
	Delete(ctx context.Context, account *entity.Account) error
}
