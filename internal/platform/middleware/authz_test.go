// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/ctxutil"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/middleware"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/sec"
)

func newTestVerifier(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService("middleware-test-key", "blog.api.test", time.Hour)
	require.NoError(t, err)
	return service
}

// okHandler records whether it was reached and which claims it saw.
type okHandler struct {
	called bool
	claims *sec.AuthClaims
}

func (h *okHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	h.called = true
	h.claims = ctxutil.GetAuthUser(request.Context())
	writer.WriteHeader(http.StatusOK)
}

/*
TestAuthenticate covers the verifier middleware: anonymous pass-through,
valid bearer tokens, and rejection of malformed or tampered credentials.
*/
func TestAuthenticate(t *testing.T) {
	verifier := newTestVerifier(t)

	validToken, err := verifier.Issue("reader@example.com", []string{"user"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		authHeader  string
		wantStatus  int
		wantReached bool
		wantClaims  bool
	}{
		{"anonymous", "", http.StatusOK, true, false},
		{"valid_token", "Bearer " + validToken, http.StatusOK, true, true},
		{"lowercase_scheme", "bearer " + validToken, http.StatusOK, true, true},
		{"wrong_scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, false, false},
		{"missing_token", "Bearer", http.StatusUnauthorized, false, false},
		{"garbage_token", "Bearer not-a-token", http.StatusUnauthorized, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downstream := &okHandler{}
			handler := middleware.Authenticate(verifier)(downstream)

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantReached, downstream.called)

			if tt.wantClaims {
				require.NotNil(t, downstream.claims)
				assert.Equal(t, "reader@example.com", downstream.claims.Name)
			} else if downstream.called {
				assert.Nil(t, downstream.claims)
			}
		})
	}
}

/*
TestRequireRole verifies the role gate: matching role claim passes, a missing
role yields 403, and an anonymous caller yields 401.
*/
func TestRequireRole(t *testing.T) {
	verifier := newTestVerifier(t)

	adminToken, err := verifier.Issue("admin@example.com", []string{"user", "admin"})
	require.NoError(t, err)

	plainToken, err := verifier.Issue("plain@example.com", []string{"user"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"admin_allowed", "Bearer " + adminToken, http.StatusOK},
		{"non_admin_forbidden", "Bearer " + plainToken, http.StatusForbidden},
		{"anonymous_unauthorized", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downstream := &okHandler{}
			handler := middleware.Authenticate(verifier)(
				middleware.RequireRole("admin")(downstream),
			)

			request := httptest.NewRequest(http.MethodDelete, "/v1/categories/some-id", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, downstream.called)
		})
	}
}

/*
TestRequireAPIKey checks the operator gate: only the exact configured key in
the configured header passes.
*/
func TestRequireAPIKey(t *testing.T) {
	gate := sec.NewAPIKeyGate("operator-secret")
	const headerName = "x-api-key"

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"valid_key", "operator-secret", http.StatusOK},
		{"wrong_key", "guess", http.StatusUnauthorized},
		{"missing_key", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downstream := &okHandler{}
			handler := middleware.RequireAPIKey(gate, headerName)(downstream)

			request := httptest.NewRequest(http.MethodGet, "/v1", nil)
			if tt.key != "" {
				request.Header.Set(headerName, tt.key)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, downstream.called)
		})
	}
}
