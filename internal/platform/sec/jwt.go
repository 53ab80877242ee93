// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a session token.
//
// # Why custom claims?
//
// By embedding the caller's name (email) and role slugs directly inside the
// token, [middleware.Authenticate] can reconstruct the caller's authority
// WITHOUT querying the database on every single API request. The trade-off
// is an accepted staleness window: revoking a role has no effect on tokens
// already issued and still inside their validity window.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Name is the identity's email — the single name claim of the set.
	Name string `json:"name"`
	// Roles holds one role slug per role the identity held at issuance.
	Roles []string `json:"roles,omitempty"`
}

// ClaimSet reconstructs the ordered claim set embedded in the token.
func (c *AuthClaims) ClaimSet() ClaimSet {
	return BuildClaims(c.Name, c.Roles)
}

// HasRole reports whether the token carries a role claim for the given slug.
func (c *AuthClaims) HasRole(slug string) bool {
	for _, role := range c.Roles {
		if role == slug {
			return true
		}
	}
	return false
}

// TokenService is the sole authority able to mint valid session tokens.
// It signs and verifies with a process-wide symmetric key (HMAC-SHA-256).
type TokenService struct {
	signingKey []byte
	issuer     string
	timeToLive time.Duration
}

// NewTokenService creates a new TokenService.
//
// An empty signing key is a fatal configuration error: the constructor
// refuses to build a service that would mint forgeable tokens. The key is
// loaded once at startup and never rotated at runtime.
func NewTokenService(signingKey, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if signingKey == "" {
		return nil, errors.New("sec: signing key must not be empty")
	}
	if timeToLive <= 0 {
		return nil, fmt.Errorf("sec: token lifetime must be positive, got %s", timeToLive)
	}

	return &TokenService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		timeToLive: timeToLive,
	}, nil
}

// Issue builds the claim set for the identity and returns a signed, opaque
// token string safe to transmit in an Authorization header.
//
// The expiry is absolute: issuance time plus the configured lifetime.
func (service *TokenService) Issue(email string, roleSlugs []string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
		},
		Name:  email,
		Roles: roleSlugs,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.signingKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a token string.
//
// It rejects tokens whose MAC does not match (tampering), tokens signed with
// an unexpected algorithm, and tokens past their expiry instant. On success
// it returns the embedded [*AuthClaims]; the caller must treat ANY failure
// as "unauthenticated" — there is no partial trust.
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.signingKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token claims")
	}

	return claims, nil
}
