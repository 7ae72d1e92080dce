package identity

import (
	"errors"
	"testing"
)

func TestMapper_Defaults(t *testing.T) {
	p, err := Mapper{}.Profile(map[string]any{"sub": "alice"})
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if p.ID != "alice" || p.DisplayName != "alice" {
		t.Fatalf("expected id and display name %q, got %+v", "alice", p)
	}
	if p.Provider != ProviderJWT {
		t.Fatalf("expected provider %q, got %q", ProviderJWT, p.Provider)
	}
}

func TestMapper_CustomSubjectClaim(t *testing.T) {
	m := Mapper{SubjectClaim: "email"}
	p, err := m.Profile(map[string]any{"sub": "ignored", "email": "a@b.c"})
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if p.ID != "a@b.c" {
		t.Fatalf("expected id from email claim, got %q", p.ID)
	}
}

func TestMapper_MissingSubject(t *testing.T) {
	cases := []map[string]any{
		{},
		{"name": "alice", "role": "admin"},
		{"sub": 42},          // wrong type
		{"sub": nil},         // explicit null
		{"sub": ""},          // empty subject carries no identity
		{"sub": []any{"x"}},  // wrong type
		{"SUB": "alice"},     // claim names are case-sensitive
	}
	for _, claims := range cases {
		if _, err := (Mapper{}).Profile(claims); !errors.Is(err, ErrMissingSubject) {
			t.Fatalf("claims %+v: expected ErrMissingSubject, got %v", claims, err)
		}
	}
}

func TestMapper_Enricher(t *testing.T) {
	m := Mapper{
		Enrich: func(p *Profile, claims map[string]any) {
			if role, ok := claims["role"].(string); ok {
				p.Attributes["role"] = role
			}
		},
	}
	p, err := m.Profile(map[string]any{"sub": "alice", "role": "admin"})
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if p.Attributes["role"] != "admin" {
		t.Fatalf("expected enriched role, got %+v", p.Attributes)
	}
	if p.ID != "alice" || p.DisplayName != "alice" || p.Provider != ProviderJWT {
		t.Fatalf("enricher must not change core fields: %+v", p)
	}
}
