package impl

import (
	"context"
	"log/slog"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seederService implements the SeederUsecase interface.
type seederService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	seed        config.SeedConfig
	logger      *slog.Logger
}

// SeederServiceParams holds dependencies for seederService, injected by Fx.
type SeederServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSeederService is the constructor for seederService.
func NewSeederService(params SeederServiceParams) usecase.SeederUsecase {
	return &seederService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		seed:        params.Config.Seed,
		logger:      params.Logger,
	}
}

// EnsureAdminAccount creates the bootstrap administrator when no account holds
// the configured admin email. Presence of the email is the only trigger: an
// existing account is never modified, whatever its role or password.
func (srv *seederService) EnsureAdminAccount(ctx context.Context) error {
	_, err := srv.accountRepo.FindByEmail(ctx, srv.seed.AdminEmail)
	if err == nil {
		srv.logger.Debug("Admin account already present", slog.String("email", srv.seed.AdminEmail))

		return nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check for admin account")
	}

	digest, err := srv.hasher.Hash(srv.seed.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.Account{
		Username:       srv.seed.AdminUsername,
		Email:          srv.seed.AdminEmail,
		PasswordDigest: digest,
		Role:           entity.RoleAdmin,
	}

	if err := srv.accountRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create admin account")
	}

	srv.logger.Info("Seeded admin account",
		slog.String("username", admin.Username),
		slog.String("email", admin.Email),
	)

	return nil
}
