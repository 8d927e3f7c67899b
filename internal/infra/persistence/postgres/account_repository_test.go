package postgres

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/persistence/model"
)

// newDryRunDB opens a connectionless GORM handle. DryRun builds statements
// without executing them, so every write matches zero rows — the same shape
// the repository sees when the target row is gone.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  "host=localhost user=gatekeeper dbname=gatekeeper",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}

func TestAccountRepository_UpdateMissingRowIsNotFound(t *testing.T) {
	repo := NewAccountRepository(newDryRunDB(t))

	// The row behind this id no longer exists (deleted concurrently). The
	// update must report the miss instead of re-inserting the record.
	account := &entity.Account{
		ID:             42,
		Username:       "alice",
		Email:          "alice@example.com",
		PasswordDigest: "digest",
		Role:           entity.RoleUser,
	}

	err := repo.Update(context.Background(), account)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_UpdateZeroIDIsNotFound(t *testing.T) {
	repo := NewAccountRepository(newDryRunDB(t))

	err := repo.Update(context.Background(), &entity.Account{Username: "alice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_UpdateNeverInserts(t *testing.T) {
	db := newDryRunDB(t)

	// Same statement the repository issues: an UPDATE keyed on the id. Save
	// would fall back to INSERT on zero matched rows; Updates cannot.
	attrs := fromAccountDomain(&entity.Account{
		ID:             42,
		Username:       "alice",
		Email:          "alice@example.com",
		PasswordDigest: "digest",
		Role:           entity.RoleUser,
	})
	stmt := db.Model(&model.AccountModel{}).
		Where("id = ?", attrs.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(attrs).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "UPDATE")
	assert.NotContains(t, sql, "INSERT")
	assert.Contains(t, sql, "WHERE id = ")
}

func TestAccountRepository_DeleteMissingRowIsNotFound(t *testing.T) {
	repo := NewAccountRepository(newDryRunDB(t))

	err := repo.Delete(context.Background(), &entity.Account{ID: 42})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}
