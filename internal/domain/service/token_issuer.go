package service

import (
	"github.com/golang-jwt/jwt/v5"

	"gatekeeper/internal/domain/entity"
)

// Claims defines the custom claims carried by issued bearer tokens.
// The subject registered claim holds the account's username.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer defines the interface for issuing and validating signed,
// time-bound bearer tokens. The account service only issues tokens;
// validation is consumed by the HTTP authentication middleware.
type TokenIssuer interface {
	// Issue creates a signed token asserting the account's username and role,
	// with the configured issuer, audience and expiration horizon.
	Issue(account *entity.Account) (string, error)

	// Validate checks the signature, issuer, audience and expiry of a token
	// string and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
