// Package jwt provides an auth.Verifier backed by golang-jwt.
//
// The service proves that a token's signature matches the configured key
// and that its registered time/issuer/audience claims hold. It returns
// nothing beyond pass/fail; the engine extracts claims separately.
//
// Usage:
//
//	svc, err := jwt.NewService(&jwt.Config{Secret: "shared-secret"})
//	authn, err := auth.New(&auth.Config{}, svc)
//
// The service can also mint tokens, which keeps test setups and simple
// issuers out of the business of assembling registered claims by hand.
package jwt

import (
	"context"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kbukum/authkit/auth"
)

// Service verifies and mints signed JWTs.
type Service struct {
	cfg Config
}

var _ auth.Verifier = (*Service)(nil)

// NewService creates a new JWT service.
func NewService(cfg *Config) (*Service, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: *cfg}, nil
}

// Verify implements auth.Verifier. It checks the signature, expiry and,
// when configured, issuer and audience.
func (s *Service) Verify(_ context.Context, tokenString string) error {
	token, err := gojwt.Parse(tokenString, s.keyFunc, s.parserOptions()...)
	if err != nil {
		return fmt.Errorf("jwt: verify token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("jwt: invalid token")
	}
	return nil
}

// Generate creates a signed token for the given subject. Registered
// claims (jti, iat, exp, and configured iss/aud) are filled in; extra
// claims are merged on top and win on collision.
func (s *Service) Generate(subject string, extra map[string]any) (string, error) {
	now := time.Now()
	claims := gojwt.MapClaims{
		"sub": subject,
		"jti": uuid.NewString(),
		"iat": gojwt.NewNumericDate(now),
		"exp": gojwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}
	if s.cfg.Issuer != "" {
		claims["iss"] = s.cfg.Issuer
	}
	if len(s.cfg.Audience) > 0 {
		claims["aud"] = s.cfg.Audience[0]
	}
	for k, v := range extra {
		claims[k] = v
	}

	token := gojwt.NewWithClaims(s.cfg.signingMethod(), claims)
	signed, err := token.SignedString(s.cfg.signKey())
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// keyFunc is the jwt.Keyfunc used during token parsing.
func (s *Service) keyFunc(token *gojwt.Token) (interface{}, error) {
	expected := s.cfg.signingMethod()
	if token.Method.Alg() != expected.Alg() {
		return nil, fmt.Errorf("jwt: unexpected signing method: %s", token.Method.Alg())
	}
	return s.cfg.verifyKey(), nil
}

// parserOptions returns jwt.ParserOption based on config.
func (s *Service) parserOptions() []gojwt.ParserOption {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{s.cfg.signingMethod().Alg()}),
		gojwt.WithExpirationRequired(),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.cfg.Issuer))
	}
	if len(s.cfg.Audience) > 0 {
		opts = append(opts, gojwt.WithAudience(s.cfg.Audience[0]))
	}
	if s.cfg.Leeway > 0 {
		opts = append(opts, gojwt.WithLeeway(s.cfg.Leeway))
	}
	return opts
}
