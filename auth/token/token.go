// Package token handles the wire format of compact bearer tokens: the
// base64url segment codec and claims extraction.
//
// Parsing here is deliberately independent of signature verification. A
// verifier proves a token is authentic; this package only answers what the
// token says. See the auth package for how the two are combined.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedToken indicates the token does not have the expected
	// 2 (unsigned) or 3 (signed) dot-separated segments.
	ErrMalformedToken = errors.New("token: malformed token")

	// ErrDecode indicates a segment is not valid base64url.
	ErrDecode = errors.New("token: invalid base64url segment")

	// ErrMalformedClaims indicates the claims segment did not decode to a
	// JSON object.
	ErrMalformedClaims = errors.New("token: malformed claims payload")
)

// EncodeSegment encodes bytes as unpadded base64url, the encoding used for
// each token segment. The output never contains '+', '/' or '='.
func EncodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeSegment decodes a base64url token segment. Padding is restored
// before decoding, so both padded and unpadded input are accepted.
func DecodeSegment(s string) ([]byte, error) {
	if n := len(s) % 4; n != 0 {
		s += strings.Repeat("=", 4-n)
	}
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}

// ParseClaims extracts the claims map from a compact token without
// verifying its signature. Valid tokens carry exactly two segments
// (unsigned) or three segments (header.claims.signature); the claims are
// always the second segment.
func ParseClaims(raw string) (map[string]any, error) {
	segments := strings.Split(raw, ".")
	if len(segments) != 2 && len(segments) != 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 segments, got %d", ErrMalformedToken, len(segments))
	}

	payload, err := DecodeSegment(segments[1])
	if err != nil {
		return nil, err
	}

	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedClaims, err)
	}
	if claims == nil {
		return nil, fmt.Errorf("%w: null payload", ErrMalformedClaims)
	}
	return claims, nil
}
