// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/sec"
)

const (
	testSigningKey = "unit-test-signing-key-0123456789"
	testIssuer     = "blog.api.test"
)

func newTestTokenService(t *testing.T, timeToLive time.Duration) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSigningKey, testIssuer, timeToLive)
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService_Validation verifies the constructor rejects configurations
that would mint forgeable or stillborn tokens.
*/
func TestNewTokenService_Validation(t *testing.T) {
	tests := []struct {
		name       string
		signingKey string
		timeToLive time.Duration
		wantErr    bool
	}{
		{"valid", testSigningKey, 8 * time.Hour, false},
		{"empty_key", "", 8 * time.Hour, true},
		{"zero_ttl", testSigningKey, 0, true},
		{"negative_ttl", testSigningKey, -time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := sec.NewTokenService(tt.signingKey, testIssuer, tt.timeToLive)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, service)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, service)
			}
		})
	}
}

/*
TestTokenService_IssueVerify_RoundTrip issues a token and verifies it,
checking that the identity and role claims survive intact and in order.
*/
func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	service := newTestTokenService(t, 8*time.Hour)

	const email = "reader@example.com"
	roles := []string{"user", "author"}

	tokenString, err := service.Issue(email, roles)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := service.Verify(tokenString)
	require.NoError(t, err)

	assert.Equal(t, email, claims.Name)
	assert.Equal(t, email, claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, roles, claims.Roles)
	assert.True(t, claims.HasRole("author"))
	assert.False(t, claims.HasRole("admin"))
}

/*
TestTokenService_Verify_Tampered flips one byte of the payload segment and
expects verification to fail: the MAC covers the whole token.
*/
func TestTokenService_Verify_Tampered(t *testing.T) {
	service := newTestTokenService(t, 8*time.Hour)

	tokenString, err := service.Issue("victim@example.com", []string{"user"})
	require.NoError(t, err)

	// Flip a byte in the middle of the token (inside the payload segment).
	tampered := []byte(tokenString)
	middle := len(tampered) / 2
	if tampered[middle] == 'A' {
		tampered[middle] = 'B'
	} else {
		tampered[middle] = 'A'
	}

	_, err = service.Verify(string(tampered))
	assert.Error(t, err)
}

/*
TestTokenService_Verify_WrongKey checks that a token signed by one service
never verifies under a different key.
*/
func TestTokenService_Verify_WrongKey(t *testing.T) {
	issuingService := newTestTokenService(t, 8*time.Hour)

	otherService, err := sec.NewTokenService("a-completely-different-key", testIssuer, 8*time.Hour)
	require.NoError(t, err)

	tokenString, err := issuingService.Issue("user@example.com", nil)
	require.NoError(t, err)

	_, err = otherService.Verify(tokenString)
	assert.Error(t, err)
}

/*
TestTokenService_Verify_Expired issues a token with a lifetime short enough to
lapse inside the test and expects verification to reject it afterward.
*/
func TestTokenService_Verify_Expired(t *testing.T) {
	service := newTestTokenService(t, 1*time.Millisecond)

	tokenString, err := service.Issue("user@example.com", []string{"user"})
	require.NoError(t, err)

	// jwt/v5 applies no default leeway, so any instant past ExpiresAt fails.
	time.Sleep(10 * time.Millisecond)

	_, err = service.Verify(tokenString)
	assert.Error(t, err)
}

/*
TestTokenService_Verify_Garbage rejects strings that are not tokens at all.
*/
func TestTokenService_Verify_Garbage(t *testing.T) {
	service := newTestTokenService(t, 8*time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_a_token", "hello world"},
		{"wrong_segments", "a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}
