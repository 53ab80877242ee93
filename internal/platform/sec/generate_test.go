// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/sec"
)

const (
	testDigits   = "0123456789"
	testSpecials = "!@#$%&*-_=+?"
)

/*
TestGeneratePassword_Length verifies the output has exactly the requested length.
*/
func TestGeneratePassword_Length(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"single_char", 1},
		{"short", 8},
		{"registration_default", 25},
		{"long", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := sec.GeneratePassword(tt.length, true, false)
			require.NoError(t, err)
			assert.Len(t, password, tt.length)
		})
	}
}

/*
TestGeneratePassword_CharacterClasses checks the class-inclusion guarantees:
when a class is requested the output contains at least one of its characters,
and when it is not requested the output contains none.
*/
func TestGeneratePassword_CharacterClasses(t *testing.T) {
	// The generator is random, so run each scenario repeatedly.
	const iterations = 50

	t.Run("digits_requested", func(t *testing.T) {
		for i := 0; i < iterations; i++ {
			password, err := sec.GeneratePassword(25, true, false)
			require.NoError(t, err)
			assert.True(t, strings.ContainsAny(password, testDigits),
				"password %q must contain at least one digit", password)
			assert.False(t, strings.ContainsAny(password, testSpecials),
				"password %q must not contain special characters", password)
		}
	})

	t.Run("specials_requested", func(t *testing.T) {
		for i := 0; i < iterations; i++ {
			password, err := sec.GeneratePassword(25, false, true)
			require.NoError(t, err)
			assert.True(t, strings.ContainsAny(password, testSpecials),
				"password %q must contain at least one special character", password)
			assert.False(t, strings.ContainsAny(password, testDigits),
				"password %q must not contain digits", password)
		}
	})

	t.Run("letters_only", func(t *testing.T) {
		for i := 0; i < iterations; i++ {
			password, err := sec.GeneratePassword(25, false, false)
			require.NoError(t, err)
			assert.False(t, strings.ContainsAny(password, testDigits+testSpecials))
		}
	})

	t.Run("both_classes_at_minimum_length", func(t *testing.T) {
		// Length 2 with two required classes: one digit, one special, nothing else.
		for i := 0; i < iterations; i++ {
			password, err := sec.GeneratePassword(2, true, true)
			require.NoError(t, err)
			assert.True(t, strings.ContainsAny(password, testDigits))
			assert.True(t, strings.ContainsAny(password, testSpecials))
		}
	})
}

/*
TestGeneratePassword_InvalidLength verifies that non-positive or
class-insufficient lengths are rejected.
*/
func TestGeneratePassword_InvalidLength(t *testing.T) {
	tests := []struct {
		name           string
		length         int
		includeDigits  bool
		includeSpecial bool
	}{
		{"zero", 0, true, false},
		{"negative", -5, true, false},
		{"too_short_for_classes", 1, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sec.GeneratePassword(tt.length, tt.includeDigits, tt.includeSpecial)
			assert.Error(t, err)
		})
	}
}

/*
TestGeneratePassword_Uniqueness confirms consecutive invocations produce
distinct credentials. A collision across 100 draws of a 25-character random
string would indicate a broken randomness source.
*/
func TestGeneratePassword_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := sec.GeneratePassword(25, true, false)
		require.NoError(t, err)
		assert.False(t, seen[password], "duplicate password generated: %q", password)
		seen[password] = true
	}
}
