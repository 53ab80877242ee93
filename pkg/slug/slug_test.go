// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricardo-cavalheiro/web-api/pkg/slug"
)

/*
TestFrom covers the sanitization pipeline: lowercasing, accent removal,
hyphenation, and hyphen cleanup.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Backend", "backend"},
		{"spaces", "Backend Development", "backend-development"},
		{"accents", "Programação em Go", "programacao-em-go"},
		{"special_chars", "C# & .NET!", "c-net"},
		{"multiple_separators", "a -- b", "a-b"},
		{"leading_trailing", "  hello  ", "hello"},
		{"digits", "Go 1.24 Release", "go-1-24-release"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFromEmail verifies the email-to-slug derivation used for account slugs.
*/
func TestFromEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"simple", "jane@doe.com", "jane-doe-com"},
		{"dotted_local_part", "ana.lima@example.com", "ana-lima-example-com"},
		{"uppercase", "Jane@Doe.COM", "jane-doe-com"},
		{"plus_tag", "jane+blog@doe.com", "jane-blog-doe-com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.FromEmail(tt.email))
		})
	}
}

/*
TestFromEmail_Deterministic confirms the same address always yields the same
slug, since the slug is persisted at registration time.
*/
func TestFromEmail_Deterministic(t *testing.T) {
	first := slug.FromEmail("stable@example.com")
	second := slug.FromEmail("stable@example.com")

	assert.Equal(t, first, second)
	assert.Equal(t, "stable-example-com", first)
}
