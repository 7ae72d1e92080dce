package auth

import (
	"context"
	"testing"
)

func testRegistry(t *testing.T) (*Registry, *Authenticator, *Authenticator) {
	t.Helper()
	jwtAuth := newAuthenticator(t, Config{Scheme: "JWT"}, VerifierFunc(acceptAll))
	keyAuth := newAuthenticator(t, Config{Scheme: "APIKey"}, VerifierFunc(acceptAll))

	reg := NewRegistry()
	reg.Register(jwtAuth)
	reg.Register(keyAuth)
	return reg, jwtAuth, keyAuth
}

func TestRegistry_GetByScheme(t *testing.T) {
	reg, jwtAuth, _ := testRegistry(t)

	got, ok := reg.Get("JWT")
	if !ok || got != jwtAuth {
		t.Fatalf("expected registered JWT authenticator, got %v ok=%v", got, ok)
	}
	if _, ok := reg.Get("Basic"); ok {
		t.Fatal("unregistered scheme must not resolve")
	}
}

func TestRegistry_MustGetPanics(t *testing.T) {
	reg, _, _ := testRegistry(t)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unregistered scheme")
		}
	}()
	reg.MustGet("Basic")
}

func TestRegistry_Schemes(t *testing.T) {
	reg, _, _ := testRegistry(t)
	schemes := reg.Schemes()
	if len(schemes) != 2 {
		t.Fatalf("expected 2 schemes, got %v", schemes)
	}
	// Sorted regardless of registration order.
	if schemes[0] != "APIKey" || schemes[1] != "JWT" {
		t.Fatalf("expected sorted schemes [APIKey JWT], got %v", schemes)
	}
}

func TestRegistry_Dispatch(t *testing.T) {
	reg, _, _ := testRegistry(t)
	cred := mintToken(t, map[string]any{"sub": "alice"})

	res := reg.Authenticate(context.Background(), Request{Scheme: "JWT", Credential: cred})
	if res.Outcome != Success {
		t.Fatalf("expected Success via JWT authenticator, got %v", res.Outcome)
	}

	res = reg.Authenticate(context.Background(), Request{Scheme: "APIKey", Credential: cred})
	if res.Outcome != Success {
		t.Fatalf("expected Success via APIKey authenticator, got %v", res.Outcome)
	}

	res = reg.Authenticate(context.Background(), Request{Scheme: "Basic", Credential: cred})
	if res.Outcome != Pass {
		t.Fatalf("expected Pass for unknown scheme, got %v", res.Outcome)
	}
}

func TestRegistry_Replace(t *testing.T) {
	reg, _, _ := testRegistry(t)
	replacement := newAuthenticator(t, Config{Scheme: "JWT"}, VerifierFunc(acceptAll))
	reg.Register(replacement)

	got, _ := reg.Get("JWT")
	if got != replacement {
		t.Fatal("expected replacement authenticator")
	}
	if len(reg.Schemes()) != 2 {
		t.Fatalf("replacement must not add a scheme: %v", reg.Schemes())
	}
}
