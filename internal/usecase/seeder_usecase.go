package usecase

import "context"

// SeederUsecase guarantees baseline records exist before the service accepts
// requests.
type SeederUsecase interface {
	// EnsureAdminAccount creates the bootstrap administrator account when no
	// account holds the configured admin email. It is idempotent: running it
	// again is a no-op.
	EnsureAdminAccount(ctx context.Context) error
}
