// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package post

import (
	"context"
	"fmt"

	"github.com/ricardo-cavalheiro/web-api/pkg/pagination"
)

// Service orchestrates the read-only post use cases.
type Service struct {
	repository PostRepository
}

// NewService constructs a new [Service].
func NewService(repository PostRepository) *Service {
	return &Service{repository: repository}
}

// List returns one page of the post listing and the pagination metadata.
func (service *Service) List(ctx context.Context, params pagination.Params) ([]ListItem, pagination.Meta, error) {
	items, total, err := service.repository.List(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("post_service_list_failed: %w", err)
	}

	return items, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// GetByID returns the full post with author and category hydrated.
func (service *Service) GetByID(ctx context.Context, id string) (*Post, error) {
	result, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("post_service_get_failed: %w", err)
	}

	// The author's credential hash is excluded from JSON already; blank it
	// anyway so the detail view never carries it in memory past this point.
	result.Author.PasswordHash = ""

	return result, nil
}
