// Copyright (c) 2026 The Blog API Authors. All rights reserved.

// Package storage persists uploaded binary assets (profile images) on the
// local filesystem and exposes them by public URL.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalImageStore writes image bytes under a single directory served as
// static files, mirroring the classic wwwroot/images layout.
type LocalImageStore struct {
	directory string
	baseURL   string
}

// NewLocalImageStore ensures the target directory exists and returns a store.
func NewLocalImageStore(directory, baseURL string) (*LocalImageStore, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create image directory %s: %w", directory, err)
	}

	return &LocalImageStore{
		directory: directory,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the image bytes under fileName and returns the public URL.
//
// fileName must be a bare name (no path separators) — callers generate it
// from a UUID, never from user input.
func (store *LocalImageStore) Save(fileName string, data []byte) (string, error) {
	if fileName != filepath.Base(fileName) {
		return "", fmt.Errorf("storage: invalid image file name %q", fileName)
	}

	fullPath := filepath.Join(store.directory, fileName)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: failed to write image %s: %w", fileName, err)
	}

	return store.baseURL + "/" + fileName, nil
}
