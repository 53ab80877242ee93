// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package sec

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character classes used by [GeneratePassword].
const (
	letterChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!@#$%&*-_=+?"
)

// GeneratePassword produces a random plaintext credential of exactly length
// printable characters.
//
// # Policy
//
// When includeDigits or includeSpecial is set, the output is guaranteed to
// contain at least one character of that class. The generated password is
// the only secret a new account holder receives, so the randomness source
// is crypto/rand exclusively — never math/rand.
//
// # Algorithm
//
//  1. Reserve one random character per requested class.
//  2. Fill the remaining positions from the combined alphabet.
//  3. Shuffle (Fisher–Yates over crypto/rand) so the reserved characters
//     do not sit at predictable positions.
func GeneratePassword(length int, includeDigits, includeSpecial bool) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("sec: password length must be positive, got %d", length)
	}

	alphabet := letterChars
	var reserved []string
	if includeDigits {
		alphabet += digitChars
		reserved = append(reserved, digitChars)
	}
	if includeSpecial {
		alphabet += specialChars
		reserved = append(reserved, specialChars)
	}

	if length < len(reserved) {
		return "", fmt.Errorf("sec: password length %d cannot satisfy %d required character classes", length, len(reserved))
	}

	password := make([]byte, 0, length)

	// 1. One guaranteed character per requested class
	for _, class := range reserved {
		ch, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	// 2. Fill the rest from the full alphabet
	for len(password) < length {
		ch, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	// 3. Shuffle so class-guaranteed characters land at random positions
	for i := len(password) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

// randomChar picks a uniformly random character from the given set.
func randomChar(set string) (byte, error) {
	index, err := randomIndex(len(set))
	if err != nil {
		return 0, err
	}
	return set[index], nil
}

// randomIndex returns a uniform random int in [0, bound) from crypto/rand.
func randomIndex(bound int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(bound)))
	if err != nil {
		return 0, fmt.Errorf("sec: random source unavailable: %w", err)
	}
	return int(n.Int64()), nil
}
