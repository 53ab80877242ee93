// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package auth

import (
	"context"
)

// UserRepository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresUserRepository]).
// Tests substitute an in-memory fake.
type UserRepository interface {
	// FindByEmail returns the account with the given email, with its Roles
	// eagerly loaded. The lookup is case-insensitive.
	//
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the account with the given ID, with its Roles
	// eagerly loaded.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*User, error)

	// Create persists a brand-new user account and attaches the default
	// "user" role inside the same transaction.
	//
	// Returns [apperr.Conflict] if the unique email constraint fails —
	// the storage-level constraint (not the application) is the final
	// arbiter between concurrent registrations of the same email.
	Create(ctx context.Context, user *User) error

	// UpdateImage replaces only the user's profile image reference.
	// This is separate from a general update to prevent accidental
	// overwrites of identity fields.
	UpdateImage(ctx context.Context, userID, imageURL string) error
}
