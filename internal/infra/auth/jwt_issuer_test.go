package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Secret:   "test_signing_key_very_long_for_testing",
		Issuer:   "gatekeeper",
		Audience: "gatekeeper-clients",
		TokenTTL: time.Hour,
	}

	return cfg
}

func TestJWTIssuer_IssueAndValidate(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, issuer)

	account := &entity.Account{
		ID:       1,
		Username: "alice",
		Email:    "alice@x.com",
		Role:     entity.RoleUser,
	}

	token, err := issuer.Issue(account)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, entity.RoleUser.String(), claims.Role)
	assert.Equal(t, "gatekeeper", claims.Issuer)
	assert.Contains(t, claims.Audience, "gatekeeper-clients")
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTIssuer_RoleClaimTracksAccountRole(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	account := &entity.Account{Username: "alice", Role: entity.RoleUser}

	token, err := issuer.Issue(account)
	require.NoError(t, err)
	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "User", claims.Role)

	// A token issued after promotion carries the new role.
	account.Role = entity.RoleAdmin
	token, err = issuer.Issue(account)
	require.NoError(t, err)
	claims, err = issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "Admin", claims.Role)
}

func TestJWTIssuer_InvalidToken(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	claims, err := issuer.Validate("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTIssuer_RejectsForeignIssuer(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.JWT.Issuer = "someone-else"
	other, err := NewJWTIssuer(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue(&entity.Account{Username: "bob", Role: entity.RoleUser})
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTIssuer_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.TokenTTL = -time.Minute
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	// Build the expired token with the same key but negative TTL.
	expired := &jwtIssuer{
		secret:   []byte(cfg.JWT.Secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		tokenTTL: cfg.JWT.TokenTTL,
	}

	token, err := expired.Issue(&entity.Account{Username: "bob", Role: entity.RoleUser})
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTIssuer_MissingSecretIsFatal(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.Secret = ""

	issuer, err := NewJWTIssuer(cfg)
	assert.Error(t, err)
	assert.Nil(t, issuer)
}
