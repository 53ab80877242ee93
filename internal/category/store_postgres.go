// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/apperr"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/dberr"
)

// PostgresCategoryRepository implements CategoryRepository using pgx.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new PostgreSQL implementation of CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// List returns all categories ordered by name.
func (repository *PostgresCategoryRepository) List(ctx context.Context) ([]Category, error) {
	const query = `SELECT id, name, slug FROM categories ORDER BY name`

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_category_repo_list_failed: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug); err != nil {
			return nil, fmt.Errorf("postgres_category_repo_scan_failed: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_category_repo_iterate_failed: %w", err)
	}

	return categories, nil
}

// FindByID retrieves a category by its unique ID.
func (repository *PostgresCategoryRepository) FindByID(ctx context.Context, id string) (*Category, error) {
	const query = `SELECT id, name, slug FROM categories WHERE id = $1`

	category := &Category{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category")
		}
		return nil, fmt.Errorf("postgres_category_repo_find_failed: %w", err)
	}

	return category, nil
}

// Create persists a new category. A duplicate slug maps to [apperr.Conflict].
func (repository *PostgresCategoryRepository) Create(ctx context.Context, category *Category) error {
	const query = `INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)`

	_, err := repository.pool.Exec(ctx, query, category.ID, category.Name, category.Slug)
	if err != nil {
		return dberr.Wrap(err, "Category", "Category slug is already taken")
	}

	return nil
}

// Update replaces the name and slug of an existing category.
func (repository *PostgresCategoryRepository) Update(ctx context.Context, category *Category) error {
	const query = `UPDATE categories SET name = $2, slug = $3 WHERE id = $1`

	tag, err := repository.pool.Exec(ctx, query, category.ID, category.Name, category.Slug)
	if err != nil {
		return dberr.Wrap(err, "Category", "Category slug is already taken")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}

// Delete removes a category by ID.
func (repository *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM categories WHERE id = $1`

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_category_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}
