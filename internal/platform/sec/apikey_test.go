// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/sec"
)

/*
TestAPIKeyGate_Check verifies exact-match semantics: only the full configured
secret is accepted; prefixes, suffixes, and empty values are rejected.
*/
func TestAPIKeyGate_Check(t *testing.T) {
	gate := sec.NewAPIKeyGate("operator-secret-key")

	tests := []struct {
		name      string
		presented string
		want      bool
	}{
		{"exact_match", "operator-secret-key", true},
		{"wrong_key", "some-other-key", false},
		{"prefix_only", "operator-secret", false},
		{"with_suffix", "operator-secret-key-extra", false},
		{"case_mismatch", "Operator-Secret-Key", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Check(tt.presented))
		})
	}
}

/*
TestAPIKeyGate_EmptySecret confirms a gate built around an empty secret
rejects everything, including an empty presented key.
*/
func TestAPIKeyGate_EmptySecret(t *testing.T) {
	gate := sec.NewAPIKeyGate("")

	assert.False(t, gate.Check(""))
	assert.False(t, gate.Check("anything"))
}
