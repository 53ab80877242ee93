// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package sec

import "crypto/subtle"

// APIKeyGate guards operator-only endpoints with a static shared secret,
// entirely independent of the session-token scheme.
type APIKeyGate struct {
	secret []byte
}

// NewAPIKeyGate builds a gate around the configured operator secret.
//
// The secret is process-wide configuration loaded once at startup; config
// marks it required, so an empty value never reaches this constructor in a
// running server.
func NewAPIKeyGate(secret string) *APIKeyGate {
	return &APIKeyGate{secret: []byte(secret)}
}

// Check reports whether the presented key matches the configured secret.
//
// The comparison is constant-time so the gate leaks no information about
// how much of a guessed key was correct. An empty presented key, or an
// empty configured secret, always fails.
func (gate *APIKeyGate) Check(presentedKey string) bool {
	if len(gate.secret) == 0 || presentedKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare(gate.secret, []byte(presentedKey)) == 1
}
