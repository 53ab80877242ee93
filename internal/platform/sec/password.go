// Copyright (c) 2026 The Blog API Authors. All rights reserved.

// Package sec provides the cryptographic primitives of the authentication core.
//
// # Architecture
//
// This package isolates security-sensitive code (credential generation,
// password hashing, token signing, API-key comparison) from the domain logic.
// It acts as an Infrastructure service injected into the application layer
// via small interfaces ([auth.TokenProvider] and friends).
package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// bcrypt embeds a fresh random salt in every output, so hashing the same
// plaintext twice never yields the same string.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
//
// # Fail Closed
//
// A malformed or truncated stored hash makes bcrypt return an error, which
// this function reports as false — a broken record must deny access, never
// grant it. The comparison itself is constant-time inside bcrypt.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
