package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gatekeeper/config"
)

func testHasherConfig(cost int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: cost},
	}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	password := "Secret1!"
	digest, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, password, digest)

	// Verify the digest can be checked
	assert.True(t, hasher.Check(password, digest))
}

func TestBcryptHasher_HashIsSaltedPerCall(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	password := "Secret1!"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Per-call salt: digest bytes differ, but both verify the same plaintext.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))
	password := "Secret1!"

	digest, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, digest))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword1!", digest))

	// Test empty password
	assert.False(t, hasher.Check("", digest))

	// A malformed digest yields mismatch, not a panic
	assert.False(t, hasher.Check(password, "invalid_digest"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(99))

	digest, err := hasher.Hash("Secret1!")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("Secret1!", digest))
}
