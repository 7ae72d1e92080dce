package authctx

import (
	"context"
	"testing"

	"github.com/kbukum/authkit/auth/identity"
)

func TestSetGet(t *testing.T) {
	profile := &identity.Profile{ID: "alice", DisplayName: "alice", Provider: identity.ProviderJWT}
	ctx := Set(context.Background(), profile)

	got, ok := Get(ctx)
	if !ok || got != profile {
		t.Fatalf("Get() = %v, %v; want stored profile", got, ok)
	}
	if Subject(ctx) != "alice" {
		t.Fatalf("Subject() = %q, want alice", Subject(ctx))
	}
}

func TestGetMissing(t *testing.T) {
	if _, ok := Get(context.Background()); ok {
		t.Fatal("Get() on empty context must report missing")
	}
	if Subject(context.Background()) != "" {
		t.Fatal("Subject() on empty context must be empty")
	}
	if _, err := GetOrError(context.Background()); err != ErrNoProfile {
		t.Fatalf("GetOrError() error = %v, want ErrNoProfile", err)
	}
}

func TestMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing profile")
		}
	}()
	MustGet(context.Background())
}
