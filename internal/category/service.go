// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ricardo-cavalheiro/web-api/pkg/uuidv7"
)

// Service orchestrates category reads (cache-aside) and admin mutations.
type Service struct {
	repository CategoryRepository
	cache      ListCache
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository CategoryRepository, cache ListCache, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		logger:     logger,
	}
}

// List returns all categories, serving from the cache when possible.
func (service *Service) List(ctx context.Context) ([]Category, error) {
	// ── 1. Cache Lookup ───────────────────────────────────────────────────

	if categories, hit := service.cache.Get(ctx); hit {
		return categories, nil
	}

	// ── 2. Fallback & Repopulate ──────────────────────────────────────────

	categories, err := service.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("category_service_list_failed: %w", err)
	}

	service.cache.Set(ctx, categories)

	return categories, nil
}

// GetByID returns a single category.
func (service *Service) GetByID(ctx context.Context, id string) (*Category, error) {
	category, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category_service_get_failed: %w", err)
	}
	return category, nil
}

// EditorInput holds the writable category fields.
type EditorInput struct {
	Name string
	Slug string
}

// Create persists a new category and invalidates the cached list.
func (service *Service) Create(ctx context.Context, input EditorInput) (*Category, error) {
	category := &Category{
		ID:   uuidv7.New(),
		Name: input.Name,
		Slug: strings.ToLower(input.Slug),
	}

	if err := service.repository.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("category_service_create_failed: %w", err)
	}

	service.cache.Invalidate(ctx)
	service.logger.Info("category_created", slog.String("category_id", category.ID))

	return category, nil
}

// Update replaces an existing category's fields and invalidates the cache.
func (service *Service) Update(ctx context.Context, id string, input EditorInput) (*Category, error) {
	category, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category_service_update_lookup_failed: %w", err)
	}

	category.Name = input.Name
	category.Slug = strings.ToLower(input.Slug)

	if err := service.repository.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("category_service_update_failed: %w", err)
	}

	service.cache.Invalidate(ctx)
	service.logger.Info("category_updated", slog.String("category_id", category.ID))

	return category, nil
}

// Delete removes a category and invalidates the cache.
func (service *Service) Delete(ctx context.Context, id string) (*Category, error) {
	category, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category_service_delete_lookup_failed: %w", err)
	}

	if err := service.repository.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("category_service_delete_failed: %w", err)
	}

	service.cache.Invalidate(ctx)
	service.logger.Info("category_deleted", slog.String("category_id", category.ID))

	return category, nil
}
