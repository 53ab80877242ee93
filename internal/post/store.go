// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package post

import (
	"context"
)

// PostRepository defines the read contract for published posts.
//
// Authoring and editing flows live outside this API; the repository is
// deliberately read-only.
type PostRepository interface {
	// List returns one page of the listing projection, newest first,
	// together with the total number of posts.
	List(ctx context.Context, limit, offset int) ([]ListItem, int, error)

	// FindByID returns the full post with author (roles included) and
	// category hydrated.
	//
	// Returns [apperr.NotFound] if the post does not exist.
	FindByID(ctx context.Context, id string) (*Post, error)
}
