package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEncodeSegment_RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		[]byte(`{"sub":"alice"}`),
		{0x00, 0xff, 0xfe, 0x3f, 0x7f},
		bytes.Repeat([]byte{0xfb, 0xef}, 33),
	}
	for _, in := range cases {
		enc := EncodeSegment(in)
		if strings.ContainsAny(enc, "+/=") {
			t.Fatalf("EncodeSegment(%v) produced forbidden characters: %q", in, enc)
		}
		out, err := DecodeSegment(enc)
		if err != nil {
			t.Fatalf("DecodeSegment(%q) failed: %v", enc, err)
		}
		if !bytes.Equal(in, out) {
			t.Fatalf("round trip mismatch: in=%v out=%v", in, out)
		}
	}
}

func TestDecodeSegment_AcceptsPadded(t *testing.T) {
	// Callers occasionally hand us segments that still carry '=' padding.
	out, err := DecodeSegment("YWJj")
	if err != nil {
		t.Fatalf("DecodeSegment failed: %v", err)
	}
	if string(out) != "abc" {
		t.Fatalf("expected %q, got %q", "abc", out)
	}
}

func TestDecodeSegment_InvalidInput(t *testing.T) {
	for _, in := range []string{"a", "ab!cd", "a+b/c", "%%%%"} {
		if _, err := DecodeSegment(in); !errors.Is(err, ErrDecode) {
			t.Fatalf("DecodeSegment(%q): expected ErrDecode, got %v", in, err)
		}
	}
}

func claimsSegment(t *testing.T, claims map[string]any) string {
	t.Helper()
	b, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	return EncodeSegment(b)
}

func TestParseClaims_Signed(t *testing.T) {
	header := EncodeSegment([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := claimsSegment(t, map[string]any{"sub": "alice", "role": "admin"})
	raw := header + "." + payload + "." + EncodeSegment([]byte("sig"))

	claims, err := ParseClaims(raw)
	if err != nil {
		t.Fatalf("ParseClaims failed: %v", err)
	}
	if claims["sub"] != "alice" || claims["role"] != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseClaims_Unsigned(t *testing.T) {
	header := EncodeSegment([]byte(`{"alg":"none"}`))
	payload := claimsSegment(t, map[string]any{"sub": "bob"})

	claims, err := ParseClaims(header + "." + payload)
	if err != nil {
		t.Fatalf("ParseClaims failed: %v", err)
	}
	if claims["sub"] != "bob" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseClaims_SegmentCount(t *testing.T) {
	seg := claimsSegment(t, map[string]any{"sub": "x"})
	for _, raw := range []string{
		seg,
		seg + "." + seg + "." + seg + "." + seg,
	} {
		if _, err := ParseClaims(raw); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("ParseClaims(%q): expected ErrMalformedToken, got %v", raw, err)
		}
	}
}

func TestParseClaims_BadPayload(t *testing.T) {
	header := EncodeSegment([]byte(`{"alg":"none"}`))

	// Not base64url.
	if _, err := ParseClaims(header + ".!!!!"); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}

	// Decodes, but is not a JSON object.
	for _, payload := range [][]byte{
		[]byte(`"just a string"`),
		[]byte(`[1,2,3]`),
		[]byte(`42`),
		[]byte(`null`),
		[]byte(`{"truncated":`),
	} {
		raw := header + "." + EncodeSegment(payload)
		if _, err := ParseClaims(raw); !errors.Is(err, ErrMalformedClaims) {
			t.Fatalf("payload %s: expected ErrMalformedClaims, got %v", payload, err)
		}
	}
}
