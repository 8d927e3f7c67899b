// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateAccountInput defines the mutable identity fields of an account.
type UpdateAccountInput struct {
	Username string
	FullName string
	Email    string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated identity and its bearer token.
type AuthOutput struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	Role     string `json:"role"`
}

// AccountSummary is the listing projection: never the digest, never the email.
type AccountSummary struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
//
// Self-service operations take the caller's own account, resolved by the
// delivery layer from the authenticated identity — never from a
// client-supplied id. Administrative operations (ListAccounts, UpdateRole,
// UpdateAccountByID) are gated on the Admin role by the delivery layer.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, username string) (*entity.Account, error)
	ListAccounts(ctx context.Context) ([]*AccountSummary, error)
	UpdateRole(ctx context.Context, username string, role string) error
	UpdateAccountByID(ctx context.Context, id uint, input *UpdateAccountInput) error
	UpdateAccount(ctx context.Context, account *entity.Account, input *UpdateAccountInput) error
	ChangePassword(ctx context.Context, account *entity.Account, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, account *entity.Account) error
}
