// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricardo-cavalheiro/web-api/pkg/pagination"
)

/*
TestFromRequest checks query parsing and clamping of hostile values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 25},
		{"explicit", "?page=3&limit=10", 3, 10},
		{"zero_page", "?page=0", 1, 25},
		{"negative_limit", "?limit=-5", 1, 25},
		{"excessive_limit", "?limit=5000", 1, 25},
		{"non_numeric", "?page=abc&limit=xyz", 1, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/v1/posts"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies the SQL offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 25}.Offset())
	assert.Equal(t, 25, pagination.Params{Page: 2, Limit: 25}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 25}.Offset())
}
