// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ricardo-cavalheiro/web-api/internal/auth"
	"github.com/ricardo-cavalheiro/web-api/internal/category"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/apperr"
)

// PostgresPostRepository implements PostRepository using pgx.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository creates a new PostgreSQL implementation of PostRepository.
func NewPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

// List returns one page of the flattened listing projection plus the total count.
func (repository *PostgresPostRepository) List(ctx context.Context, limit, offset int) ([]ListItem, int, error) {
	const query = `
		SELECT p.id, p.title, p.slug, p.last_updated_at,
		       c.name AS category,
		       u.name || ' (' || u.email || ')' AS author,
		       count(*) OVER() AS total
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.author_id
		ORDER BY p.last_updated_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_post_repo_list_failed: %w", err)
	}
	defer rows.Close()

	items := make([]ListItem, 0, limit)
	total := 0

	for rows.Next() {
		var item ListItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Slug,
			&item.LastUpdatedAt,
			&item.Category,
			&item.Author,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_post_repo_scan_failed: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_post_repo_iterate_failed: %w", err)
	}

	return items, total, nil
}

// FindByID returns the full post with its author (and the author's roles)
// and category hydrated.
func (repository *PostgresPostRepository) FindByID(ctx context.Context, id string) (*Post, error) {
	const query = `
		SELECT p.id, p.title, p.slug, p.summary, p.body, p.created_at, p.last_updated_at,
		       c.id, c.name, c.slug,
		       u.id, u.name, u.email, u.slug, u.image, u.created_at, u.updated_at
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1`

	result := &Post{
		Category: &category.Category{},
		Author:   &auth.User{},
	}

	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Title,
		&result.Slug,
		&result.Summary,
		&result.Body,
		&result.CreatedAt,
		&result.LastUpdatedAt,
		&result.Category.ID,
		&result.Category.Name,
		&result.Category.Slug,
		&result.Author.ID,
		&result.Author.Name,
		&result.Author.Email,
		&result.Author.Slug,
		&result.Author.Image,
		&result.Author.CreatedAt,
		&result.Author.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post")
		}
		return nil, fmt.Errorf("postgres_post_repo_find_failed: %w", err)
	}

	if err := repository.loadAuthorRoles(ctx, result.Author); err != nil {
		return nil, err
	}

	return result, nil
}

// loadAuthorRoles hydrates the author's role set for the detail view.
func (repository *PostgresPostRepository) loadAuthorRoles(ctx context.Context, author *auth.User) error {
	const query = `
		SELECT r.id, r.name, r.slug
		FROM roles r
		JOIN users_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY ur.attached_at, r.slug`

	rows, err := repository.pool.Query(ctx, query, author.ID)
	if err != nil {
		return fmt.Errorf("postgres_post_repo_load_roles_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role auth.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Slug); err != nil {
			return fmt.Errorf("postgres_post_repo_scan_role_failed: %w", err)
		}
		author.Roles = append(author.Roles, role)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("postgres_post_repo_iterate_roles_failed: %w", err)
	}

	return nil
}
