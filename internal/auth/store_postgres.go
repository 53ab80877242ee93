// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/apperr"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/dberr"
)

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create persists a new user record and links the default "user" role in a
// single transaction.
//
// # Uniqueness
//
// Email uniqueness is enforced by a unique index on lower(email). A 23505
// from that index is mapped to [apperr.Conflict] so the caller can report
// "duplicate account" distinctly from generic internal failure.
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const insertUser = `
		INSERT INTO users (id, name, email, slug, password_hash, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	const attachDefaultRole = `
		INSERT INTO users_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE slug = 'user'`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_begin_failed: %w", err)
	}
	defer func() { _ = transaction.Rollback(ctx) }()

	_, err = transaction.Exec(ctx, insertUser,
		user.ID,
		user.Name,
		user.Email,
		user.Slug,
		user.PasswordHash,
		user.Image,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "User", "Email is already registered")
	}

	if _, err := transaction.Exec(ctx, attachDefaultRole, user.ID); err != nil {
		return fmt.Errorf("postgres_user_repo_attach_role_failed: %w", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres_user_repo_commit_failed: %w", err)
	}

	return nil
}

// FindByEmail retrieves a user record by their unique email address,
// with roles eagerly loaded. The lookup is case-insensitive.
//
// # Returns
//
// Returns [*User] if found, or [apperr.NotFound] if no account exists.
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT id, name, email, slug, password_hash, image, created_at, updated_at
		FROM users
		WHERE lower(email) = lower($1)`

	user := &User{}
	err := repository.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Slug,
		&user.PasswordHash,
		&user.Image,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_email_failed: %w", err)
	}

	if err := repository.loadRoles(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// FindByID retrieves a user record by their unique ID, with roles eagerly loaded.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const query = `
		SELECT id, name, email, slug, password_hash, image, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &User{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Slug,
		&user.PasswordHash,
		&user.Image,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_id_failed: %w", err)
	}

	if err := repository.loadRoles(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateImage updates only the profile image reference for a specific user.
func (repository *PostgresUserRepository) UpdateImage(ctx context.Context, userID, imageURL string) error {
	const query = `
		UPDATE users
		SET image = $2, updated_at = $3
		WHERE id = $1`

	tag, err := repository.pool.Exec(ctx, query, userID, imageURL, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_user_repo_update_image_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

// loadRoles hydrates the user's role set in join-table insertion order.
//
// Keeping the order stable keeps the claim set — and therefore the issued
// token payload — deterministic for a given user.
func (repository *PostgresUserRepository) loadRoles(ctx context.Context, user *User) error {
	const query = `
		SELECT r.id, r.name, r.slug
		FROM roles r
		JOIN users_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY ur.attached_at, r.slug`

	rows, err := repository.pool.Query(ctx, query, user.ID)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_load_roles_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Slug); err != nil {
			return fmt.Errorf("postgres_user_repo_scan_role_failed: %w", err)
		}
		user.Roles = append(user.Roles, role)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("postgres_user_repo_iterate_roles_failed: %w", err)
	}

	return nil
}
