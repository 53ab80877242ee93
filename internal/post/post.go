// Copyright (c) 2026 The Blog API Authors. All rights reserved.

// Package post serves the published blog posts: a paginated listing and a
// detail view with the author and category hydrated.
package post

import (
	"time"

	"github.com/ricardo-cavalheiro/web-api/internal/auth"
	"github.com/ricardo-cavalheiro/web-api/internal/category"
)

// Post is a published article with its relations hydrated.
type Post struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	Summary       string             `json:"summary"`
	Body          string             `json:"body"`
	CreatedAt     time.Time          `json:"created_at"`
	LastUpdatedAt time.Time          `json:"last_updated_at"`
	Category      *category.Category `json:"category,omitempty"`
	Author        *auth.User         `json:"author,omitempty"`
}

// ListItem is the flattened projection used by the paginated listing.
type ListItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	Category      string    `json:"category"`
	Author        string    `json:"author"` // Rendered as "Name (email)".
}
