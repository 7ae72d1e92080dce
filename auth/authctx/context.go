// Package authctx propagates the authenticated identity through a
// context.Context.
//
// Middleware stores the profile produced by a successful authentication;
// handlers downstream read it back without threading it through call
// signatures.
//
// Usage:
//
//	// Store the profile (typically in middleware)
//	ctx = authctx.Set(ctx, profile)
//
//	// Retrieve the profile (in handlers)
//	profile, ok := authctx.Get(ctx)
//	profile := authctx.MustGet(ctx) // panics if missing
package authctx

import (
	"context"
	"errors"

	"github.com/kbukum/authkit/auth/identity"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

// profileKey is the single key used to store the profile in context.
var profileKey = contextKey{}

// ErrNoProfile is returned when no profile is stored in the context.
var ErrNoProfile = errors.New("authctx: no profile in context")

// Set stores the authenticated profile in the context.
func Set(ctx context.Context, profile *identity.Profile) context.Context {
	return context.WithValue(ctx, profileKey, profile)
}

// Get retrieves the authenticated profile from the context.
// Returns the profile and true if present, or nil and false otherwise.
func Get(ctx context.Context) (*identity.Profile, bool) {
	profile, ok := ctx.Value(profileKey).(*identity.Profile)
	if !ok || profile == nil {
		return nil, false
	}
	return profile, true
}

// MustGet retrieves the authenticated profile from the context.
// Panics if no profile is present. Use in handlers where authentication
// middleware guarantees the profile exists.
func MustGet(ctx context.Context) *identity.Profile {
	profile, ok := Get(ctx)
	if !ok {
		panic("authctx: no profile in context")
	}
	return profile
}

// GetOrError retrieves the authenticated profile from the context.
// Returns ErrNoProfile if no profile is present.
func GetOrError(ctx context.Context) (*identity.Profile, error) {
	profile, ok := Get(ctx)
	if !ok {
		return nil, ErrNoProfile
	}
	return profile, nil
}

// Subject returns the authenticated subject identifier, or "" when the
// context carries no profile.
func Subject(ctx context.Context) string {
	profile, ok := Get(ctx)
	if !ok {
		return ""
	}
	return profile.ID
}
