// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"
)

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
type jwtIssuer struct {
	secret   []byte        // HMAC signing key, loaded once at startup.
	issuer   string        // Value of the iss claim.
	audience string        // Value of the aud claim.
	tokenTTL time.Duration // Expiration horizon for issued tokens.
}

// NewJWTIssuer is the constructor for jwtIssuer.
// A missing signing key is a fatal configuration error: the constructor
// refuses to build the service, which aborts process startup.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt signing key must be provided")
	}

	ttl := cfg.JWT.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtIssuer{
		secret:   []byte(cfg.JWT.Secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		tokenTTL: ttl,
	}, nil
}

// Issue creates a signed bearer token asserting the account's username and role.
func (s *jwtIssuer) Issue(account *entity.Account) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Role: account.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Username,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature, issuer, audience and expiry of a token string.
func (s *jwtIssuer) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
