// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package post_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardo-cavalheiro/web-api/internal/auth"
	"github.com/ricardo-cavalheiro/web-api/internal/category"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/apperr"
	"github.com/ricardo-cavalheiro/web-api/internal/post"
	"github.com/ricardo-cavalheiro/web-api/pkg/pagination"
)

// fakePostRepository serves a fixed, already-ordered listing.
type fakePostRepository struct {
	items []post.ListItem
	posts map[string]*post.Post
}

func (repo *fakePostRepository) List(ctx context.Context, limit, offset int) ([]post.ListItem, int, error) {
	total := len(repo.items)
	if offset >= total {
		return nil, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}
	return repo.items[offset:end], total, nil
}

func (repo *fakePostRepository) FindByID(ctx context.Context, id string) (*post.Post, error) {
	item, found := repo.posts[id]
	if !found {
		return nil, apperr.NotFound("Post")
	}
	copied := *item
	return &copied, nil
}

/*
TestService_List paginates a 60-item listing and checks Meta arithmetics.
*/
func TestService_List(t *testing.T) {
	repository := &fakePostRepository{}
	for i := 0; i < 60; i++ {
		repository.items = append(repository.items, post.ListItem{Title: "Post"})
	}
	service := post.NewService(repository)

	t.Run("first_page", func(t *testing.T) {
		items, meta, err := service.List(context.Background(), pagination.Params{Page: 1, Limit: 25})
		require.NoError(t, err)

		assert.Len(t, items, 25)
		assert.Equal(t, 60, meta.Total)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, 1, meta.Page)
	})

	t.Run("last_partial_page", func(t *testing.T) {
		items, meta, err := service.List(context.Background(), pagination.Params{Page: 3, Limit: 25})
		require.NoError(t, err)

		assert.Len(t, items, 10)
		assert.Equal(t, 3, meta.Page)
	})

	t.Run("page_past_end", func(t *testing.T) {
		items, meta, err := service.List(context.Background(), pagination.Params{Page: 10, Limit: 25})
		require.NoError(t, err)

		assert.Empty(t, items)
		assert.Equal(t, 60, meta.Total)
	})
}

/*
TestService_GetByID verifies hydration and that the author's credential hash
never leaves the service.
*/
func TestService_GetByID(t *testing.T) {
	repository := &fakePostRepository{
		posts: map[string]*post.Post{
			"post-1": {
				ID:    "post-1",
				Title: "Why UUIDv7",
				Slug:  "why-uuidv7",
				Body:  "Time-sortable identifiers...",
				Category: &category.Category{
					ID: "cat-1", Name: "Backend", Slug: "backend",
				},
				Author: &auth.User{
					ID:           "user-1",
					Name:         "Ana",
					Email:        "ana@example.com",
					PasswordHash: "$2a$10$should-never-escape",
				},
			},
		},
	}
	service := post.NewService(repository)

	t.Run("found", func(t *testing.T) {
		result, err := service.GetByID(context.Background(), "post-1")
		require.NoError(t, err)

		assert.Equal(t, "Why UUIDv7", result.Title)
		assert.Equal(t, "Backend", result.Category.Name)
		assert.Equal(t, "Ana", result.Author.Name)
		assert.Empty(t, result.Author.PasswordHash)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := service.GetByID(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}
