// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package sec

// Claim types recognized by the authorization layer.
const (
	// ClaimTypeName identifies the authenticated caller (their email).
	ClaimTypeName = "name"

	// ClaimTypeRole grants membership of one role, identified by its slug.
	ClaimTypeRole = "role"
)

// Claim is a single (type, value) fact about an authenticated caller.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ClaimSet is an ordered set of claims derived from a user record.
//
// It is built fresh on every token issuance and on every verified request,
// and is never persisted.
type ClaimSet []Claim

// BuildClaims derives the claim set for an identity: exactly one name claim
// (the email) followed by one role claim per role slug, preserving the input
// order of the slugs.
//
// # Purity
//
// No I/O and no failure path — an identity without roles yields a claim set
// containing only the name claim.
func BuildClaims(email string, roleSlugs []string) ClaimSet {
	claims := make(ClaimSet, 0, 1+len(roleSlugs))
	claims = append(claims, Claim{Type: ClaimTypeName, Value: email})

	for _, slug := range roleSlugs {
		claims = append(claims, Claim{Type: ClaimTypeRole, Value: slug})
	}

	return claims
}

// Name returns the value of the name claim, or "" if the set is malformed.
func (cs ClaimSet) Name() string {
	for _, claim := range cs {
		if claim.Type == ClaimTypeName {
			return claim.Value
		}
	}
	return ""
}

// Roles returns the role slugs in the order they appear in the set.
func (cs ClaimSet) Roles() []string {
	roles := make([]string, 0, len(cs))
	for _, claim := range cs {
		if claim.Type == ClaimTypeRole {
			roles = append(roles, claim.Value)
		}
	}
	return roles
}

// HasRole reports whether the set contains a role claim with the given slug.
func (cs ClaimSet) HasRole(slug string) bool {
	for _, claim := range cs {
		if claim.Type == ClaimTypeRole && claim.Value == slug {
			return true
		}
	}
	return false
}
