// Copyright (c) 2026 The Blog API Authors. All rights reserved.

// Package auth implements the identity and access-control core: account
// registration with generated credentials, credential verification, session
// token issuance, and the HTTP entry points for all of it.
//
// # Architecture
//
// Entities in this file represent the "Truth" of the identity subsystem.
// They have no dependencies on outer layers (databases, HTTP, crypto
// libraries), which keeps the core rules testable in isolation.
package auth

import (
	"time"
)

// Role is a named grant of authority, attached to users many-to-many.
//
// # Slug Stability
//
// The slug is the value embedded in issued session tokens as a role claim.
// Renaming a slug silently changes the meaning of every live token that
// references it, so slugs are treated as immutable once created.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// User represents a registered account.
//
// # Rules
//   - Email is unique (case-insensitive), enforced by the storage layer.
//   - Slug is derived deterministically from the email at registration.
//   - PasswordHash is never empty once the account exists, is produced
//     exclusively by [sec.HashPassword], and never leaves the server.
//   - The plaintext password exists only in memory during registration.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Slug         string    `json:"slug"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Image        string    `json:"image,omitempty"`
	Roles        []Role    `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleSlugs returns the slugs of the user's roles in load order.
//
// The claim set built from these preserves this order, so token contents are
// deterministic for a given loaded user.
func (user *User) RoleSlugs() []string {
	slugs := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		slugs = append(slugs, role.Slug)
	}
	return slugs
}

// HasRole reports whether the user holds a role with the given slug.
func (user *User) HasRole(slug string) bool {
	for _, role := range user.Roles {
		if role.Slug == slug {
			return true
		}
	}
	return false
}
