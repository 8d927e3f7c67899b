// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokenIssuer service.TokenIssuer
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	TokenIssuer service.TokenIssuer
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokenIssuer: params.TokenIssuer,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
// New accounts always start with the User role.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	// The HTTP layer validates shape; emptiness is a business rule re-checked here.
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username, email and password are required")
	}

	if err := srv.ensureEmailUnused(ctx, input.Email); err != nil {
		return nil, err
	}
	if err := srv.ensureUsernameUnused(ctx, input.Username); err != nil {
		return nil, err
	}

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Username:       input.Username,
		Email:          input.Email,
		PasswordDigest: digest,
		Role:           entity.RoleUser,
		FullName:       input.FullName,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		srv.log(ctx).Warn("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	token, err := srv.tokenIssuer.Issue(newAccount)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Uint64("accountID", uint64(newAccount.ID)))

	return &usecase.AuthOutput{
		Username: newAccount.Username,
		Token:    token,
		Role:     newAccount.Role.String(),
	}, nil
}

func (srv *accountService) ensureEmailUnused(ctx context.Context, email string) error {
	_, err := srv.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Email already registered", slog.String("email", email))

		return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check email uniqueness")
	}

	return nil
}

func (srv *accountService) ensureUsernameUnused(ctx context.Context, username string) error {
	_, err := srv.accountRepo.FindByUsername(ctx, username)
	if err == nil {
		srv.log(ctx).Warn("Username already taken", slog.String("username", username))

		return errors.Wrap(domainerrors.ErrUsernameAlreadyTaken, "username already taken")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check username uniqueness")
	}

	return nil
}

// Login verifies the credentials for an email and issues a bearer token.
// Unknown email and wrong password produce the same failure so callers
// cannot enumerate registered accounts.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// bcrypt is CPU-bound; the store is not involved past this point.
	if !srv.hasher.Check(input.Password, account.PasswordDigest) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenIssuer.Issue(account)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Uint64("accountID", uint64(account.ID)))

	return &usecase.AuthOutput{
		Username: account.Username,
		Token:    token,
		Role:     account.Role.String(),
	}, nil
}

// GetProfile retrieves the account behind a username.
func (srv *accountService) GetProfile(ctx context.Context, username string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return account, nil
}

// ListAccounts returns the username/role projection of every account.
// Digests never leave this layer.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*usecase.AccountSummary, error) {
	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	summaries := make([]*usecase.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, &usecase.AccountSummary{
			Username: account.Username,
			Role:     account.Role.String(),
		})
	}

	return summaries, nil
}

// UpdateRole changes an account's role. An unrecognized role is rejected
// before the store is touched, leaving the record unchanged.
func (srv *accountService) UpdateRole(ctx context.Context, username string, role string) error {
	srv.log(ctx).Info("Updating role", slog.String("username", username), slog.String("role", role))

	newRole := entity.Role(role)
	if !newRole.IsValid() {
		return errors.Wrapf(domainerrors.ErrInvalidRole, "unknown role %q", role)
	}

	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return errors.Wrap(err, "failed to find account by username")
	}

	account.Role = newRole

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account no longer exists")
		}
		srv.log(ctx).Error("Failed to update role", slog.String("username", username), slog.Any("error", err))

		return errors.Wrap(err, "failed to update role")
	}

	return nil
}

// UpdateAccountByID mutates the identity fields of the account behind a
// store-assigned id. This is the administrative path; the delivery layer
// gates it on the Admin role.
func (srv *accountService) UpdateAccountByID(ctx context.Context, id uint, input *usecase.UpdateAccountInput) error {
	srv.log(ctx).Info("Updating account by id", slog.Uint64("accountID", uint64(id)))

	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return errors.Wrap(err, "failed to find account by id")
	}

	return srv.applyAccountUpdate(ctx, account, input)
}

// UpdateAccount mutates the identity fields of the caller's own account.
// The delivery layer resolves the account from the authenticated identity,
// so a caller can never reach another account through this path.
func (srv *accountService) UpdateAccount(ctx context.Context, account *entity.Account, input *usecase.UpdateAccountInput) error {
	srv.log(ctx).Info("Updating account", slog.Uint64("accountID", uint64(account.ID)))

	return srv.applyAccountUpdate(ctx, account, input)
}

func (srv *accountService) applyAccountUpdate(ctx context.Context, account *entity.Account, input *usecase.UpdateAccountInput) error {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "username and email are required")
	}

	account.Username = input.Username
	account.FullName = input.FullName
	account.Email = input.Email

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account no longer exists")
		}
		srv.log(ctx).Error("Failed to update account", slog.Uint64("accountID", uint64(account.ID)), slog.Any("error", err))

		return errors.Wrap(err, "failed to update account")
	}

	return nil
}

// ChangePassword replaces the stored digest after verifying the current
// password. On a wrong current password the digest is left untouched.
func (srv *accountService) ChangePassword(ctx context.Context, account *entity.Account, currentPassword, newPassword string) error {
	srv.log(ctx).Info("Changing password", slog.Uint64("accountID", uint64(account.ID)))

	if !srv.hasher.Check(currentPassword, account.PasswordDigest) {
		srv.log(ctx).Warn("Current password mismatch", slog.Uint64("accountID", uint64(account.ID)))

		return errors.Wrap(domainerrors.ErrInvalidCurrentPassword, "current password mismatch")
	}

	if newPassword == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "new password is required")
	}

	digest, err := srv.hasher.Hash(newPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	account.PasswordDigest = digest

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account no longer exists")
		}
		srv.log(ctx).Error("Failed to persist new password", slog.Uint64("accountID", uint64(account.ID)), slog.Any("error", err))

		return errors.Wrap(err, "failed to persist new password")
	}

	return nil
}

// DeleteAccount removes an account permanently. There is no soft delete;
// every lookup key misses afterwards.
func (srv *accountService) DeleteAccount(ctx context.Context, account *entity.Account) error {
	srv.log(ctx).Info("Deleting account", slog.Uint64("accountID", uint64(account.ID)), slog.String("username", account.Username))

	if err := srv.accountRepo.Delete(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}
		srv.log(ctx).Error("Failed to delete account", slog.Uint64("accountID", uint64(account.ID)), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}
