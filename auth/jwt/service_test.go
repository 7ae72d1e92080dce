package jwt

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

func newTestService(t *testing.T, cfg Config) *Service {
	t.Helper()
	svc, err := NewService(&cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestService_GenerateAndVerify(t *testing.T) {
	svc := newTestService(t, Config{Secret: "test-secret"})

	token, err := svc.Generate("alice", map[string]any{"role": "admin"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three-segment token, got %q", token)
	}

	if err := svc.Verify(context.Background(), token); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}

func TestService_VerifyRejectsWrongSecret(t *testing.T) {
	svc := newTestService(t, Config{Secret: "test-secret"})
	other := newTestService(t, Config{Secret: "other-secret"})

	token, err := svc.Generate("alice", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := other.Verify(context.Background(), token); err == nil {
		t.Fatal("expected verification failure for wrong secret")
	}
}

func TestService_VerifyRejectsTampered(t *testing.T) {
	svc := newTestService(t, Config{Secret: "test-secret"})

	token, err := svc.Generate("alice", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if err := svc.Verify(context.Background(), tampered); err == nil {
		t.Fatal("expected verification failure for tampered signature")
	}
}

func TestService_VerifyRejectsExpired(t *testing.T) {
	svc := newTestService(t, Config{Secret: "test-secret", TokenTTL: -time.Minute})

	token, err := svc.Generate("alice", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := svc.Verify(context.Background(), token); err == nil {
		t.Fatal("expected verification failure for expired token")
	}
}

func TestService_VerifyRejectsUnsigned(t *testing.T) {
	svc := newTestService(t, Config{Secret: "test-secret"})

	unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{
		"sub": "alice",
		"exp": gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	if err := svc.Verify(context.Background(), token); err == nil {
		t.Fatal("expected verification failure for alg=none token")
	}
}

func TestService_IssuerAndAudience(t *testing.T) {
	issuing := newTestService(t, Config{
		Secret:   "test-secret",
		Issuer:   "authkit-test",
		Audience: []string{"api"},
	})
	token, err := issuing.Generate("alice", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := issuing.Verify(context.Background(), token); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	strict := newTestService(t, Config{
		Secret:   "test-secret",
		Issuer:   "another-issuer",
		Audience: []string{"api"},
	})
	if err := strict.Verify(context.Background(), token); err == nil {
		t.Fatal("expected verification failure for issuer mismatch")
	}
}

func TestService_ECDSA(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}
	svc := newTestService(t, Config{Method: ES256, PrivateKey: key})

	token, err := svc.Generate("alice", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := svc.Verify(context.Background(), token); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	// An HMAC token must not pass an ECDSA verifier even if it parses.
	hmac := newTestService(t, Config{Secret: "test-secret"})
	hmacToken, err := hmac.Generate("alice", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := svc.Verify(context.Background(), hmacToken); err == nil {
		t.Fatal("expected verification failure for algorithm mismatch")
	}
}

func TestConfig_Validate(t *testing.T) {
	if _, err := NewService(&Config{}); err == nil {
		t.Fatal("expected error for missing HMAC secret")
	}
	if _, err := NewService(&Config{Method: RS256}); err == nil {
		t.Fatal("expected error for missing RSA key")
	}
	if _, err := NewService(&Config{Method: "XX512", Secret: "s"}); err == nil {
		t.Fatal("expected error for unsupported method")
	}
}
