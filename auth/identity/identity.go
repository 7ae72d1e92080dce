// Package identity maps verified token claims onto a canonical profile.
package identity

import (
	"errors"
	"fmt"
)

// ProviderJWT is the provider tag attached to profiles produced from
// bearer tokens.
const ProviderJWT = "JWT"

// DefaultSubjectClaim is the claim consulted for the canonical identity
// when no other claim name is configured.
const DefaultSubjectClaim = "sub"

// ErrMissingSubject indicates the configured subject claim is absent from
// the claims map, empty, or present with a non-string value.
var ErrMissingSubject = errors.New("identity: missing subject claim")

// Profile is the canonical identity record produced after successful
// authentication. A fresh Profile is built on every verification; callers
// must not share or mutate one across requests.
type Profile struct {
	// ID uniquely identifies the subject. Taken from the subject claim.
	ID string `json:"id"`

	// DisplayName is a human-readable name, defaulting to ID.
	DisplayName string `json:"display_name"`

	// Provider tags the authentication method that produced this profile.
	Provider string `json:"provider"`

	// Attributes holds extension attributes added by an Enricher.
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Enricher augments a freshly built profile with extension attributes
// drawn from the full claims map. Enrichers must only add Attributes;
// ID, DisplayName and Provider are fixed by the mapper.
type Enricher func(p *Profile, claims map[string]any)

// Mapper builds profiles from claims maps.
type Mapper struct {
	// SubjectClaim is the claim treated as the canonical identity.
	// Empty means DefaultSubjectClaim.
	SubjectClaim string

	// Enrich, if non-nil, runs after the profile is built.
	Enrich Enricher
}

// Profile builds the canonical profile for the given claims. The subject
// claim must be present and hold a non-empty string.
func (m Mapper) Profile(claims map[string]any) (*Profile, error) {
	name := m.SubjectClaim
	if name == "" {
		name = DefaultSubjectClaim
	}

	subject, ok := claims[name].(string)
	if !ok || subject == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingSubject, name)
	}

	p := &Profile{
		ID:          subject,
		DisplayName: subject,
		Provider:    ProviderJWT,
		Attributes:  make(map[string]any),
	}
	if m.Enrich != nil {
		m.Enrich(p, claims)
	}
	return p, nil
}
