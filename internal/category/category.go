// Copyright (c) 2026 The Blog API Authors. All rights reserved.

// Package category manages the post categories of the blog: a small,
// read-heavy reference set with full CRUD for administrators.
package category

// Category labels a group of related posts.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
