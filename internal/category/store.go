// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package category

import (
	"context"
)

// CategoryRepository defines the data access contract for categories.
type CategoryRepository interface {
	// List returns every category ordered by name.
	List(ctx context.Context) ([]Category, error)

	// FindByID returns the category with the given ID.
	//
	// Returns [apperr.NotFound] if it does not exist.
	FindByID(ctx context.Context, id string) (*Category, error)

	// Create persists a new category.
	//
	// Returns [apperr.Conflict] if the slug is already taken.
	Create(ctx context.Context, category *Category) error

	// Update replaces the name and slug of an existing category.
	Update(ctx context.Context, category *Category) error

	// Delete removes the category.
	//
	// Returns [apperr.NotFound] if it does not exist.
	Delete(ctx context.Context, id string) error
}

// ListCache caches the full category list for the read-heavy list endpoint.
//
// # Consistency
//
// A miss or a cache failure is never an error for the caller — the service
// falls back to the repository and repopulates. Mutations invalidate.
type ListCache interface {
	// Get returns the cached list, or (nil, false) on a miss.
	Get(ctx context.Context) ([]Category, bool)

	// Set stores the list with the configured TTL. Best-effort.
	Set(ctx context.Context, categories []Category)

	// Invalidate drops the cached list. Best-effort.
	Invalidate(ctx context.Context)
}
