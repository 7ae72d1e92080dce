package jwt

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// SigningMethod defines supported JWT signing algorithms.
type SigningMethod string

const (
	HS256 SigningMethod = "HS256"
	HS384 SigningMethod = "HS384"
	HS512 SigningMethod = "HS512"
	RS256 SigningMethod = "RS256"
	RS384 SigningMethod = "RS384"
	RS512 SigningMethod = "RS512"
	ES256 SigningMethod = "ES256"
	ES384 SigningMethod = "ES384"
	ES512 SigningMethod = "ES512"
)

// Config configures the JWT verification service.
type Config struct {
	// Secret is the HMAC key (required for HS* methods).
	Secret string `yaml:"secret" mapstructure:"secret"`

	// PrivateKey is the RSA or ECDSA private key, needed only when the
	// service also mints tokens with RS*/ES* methods. Set programmatically.
	PrivateKey interface{} `yaml:"-" mapstructure:"-"`

	// PublicKey is the RSA or ECDSA public key for verification.
	// If not set, it is derived from PrivateKey. Set programmatically.
	PublicKey interface{} `yaml:"-" mapstructure:"-"`

	// Method is the signing algorithm (default: HS256).
	Method SigningMethod `yaml:"method" mapstructure:"method"`

	// Issuer is the expected "iss" claim (optional).
	Issuer string `yaml:"issuer" mapstructure:"issuer"`

	// Audience is the expected "aud" claim (optional).
	Audience []string `yaml:"audience" mapstructure:"audience"`

	// TokenTTL is the lifetime of minted tokens (default: 15m).
	TokenTTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`

	// Leeway tolerated on time-based claims during verification.
	Leeway time.Duration `yaml:"leeway" mapstructure:"leeway"`
}

// Configured reports whether the config carries any key material.
func (c *Config) Configured() bool {
	return c.Secret != "" || c.PrivateKey != nil || c.PublicKey != nil
}

// applyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) applyDefaults() {
	if c.Method == "" {
		c.Method = HS256
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 15 * time.Minute
	}
}

// validate checks required fields based on the signing method.
func (c *Config) validate() error {
	switch c.Method {
	case HS256, HS384, HS512:
		if c.Secret == "" {
			return errors.New("jwt: secret is required for HMAC signing methods")
		}
	case RS256, RS384, RS512:
		if c.PublicKey == nil && c.PrivateKey == nil {
			return errors.New("jwt: a key is required for RSA signing methods")
		}
		if c.PrivateKey != nil {
			if _, ok := c.PrivateKey.(*rsa.PrivateKey); !ok {
				return errors.New("jwt: private key must be *rsa.PrivateKey for RSA signing methods")
			}
		}
	case ES256, ES384, ES512:
		if c.PublicKey == nil && c.PrivateKey == nil {
			return errors.New("jwt: a key is required for ECDSA signing methods")
		}
		if c.PrivateKey != nil {
			if _, ok := c.PrivateKey.(*ecdsa.PrivateKey); !ok {
				return errors.New("jwt: private key must be *ecdsa.PrivateKey for ECDSA signing methods")
			}
		}
	default:
		return errors.New("jwt: unsupported signing method: " + string(c.Method))
	}
	return nil
}

// signingMethod returns the golang-jwt SigningMethod instance.
func (c *Config) signingMethod() gojwt.SigningMethod {
	switch c.Method {
	case HS384:
		return gojwt.SigningMethodHS384
	case HS512:
		return gojwt.SigningMethodHS512
	case RS256:
		return gojwt.SigningMethodRS256
	case RS384:
		return gojwt.SigningMethodRS384
	case RS512:
		return gojwt.SigningMethodRS512
	case ES256:
		return gojwt.SigningMethodES256
	case ES384:
		return gojwt.SigningMethodES384
	case ES512:
		return gojwt.SigningMethodES512
	default:
		return gojwt.SigningMethodHS256
	}
}

// signKey returns the key used for signing tokens.
func (c *Config) signKey() interface{} {
	switch c.Method {
	case HS256, HS384, HS512:
		return []byte(c.Secret)
	default:
		return c.PrivateKey
	}
}

// verifyKey returns the key used for verifying tokens.
func (c *Config) verifyKey() interface{} {
	switch c.Method {
	case HS256, HS384, HS512:
		return []byte(c.Secret)
	case RS256, RS384, RS512:
		if c.PublicKey != nil {
			return c.PublicKey
		}
		if pk, ok := c.PrivateKey.(*rsa.PrivateKey); ok {
			return &pk.PublicKey
		}
		return c.PrivateKey
	case ES256, ES384, ES512:
		if c.PublicKey != nil {
			return c.PublicKey
		}
		if pk, ok := c.PrivateKey.(*ecdsa.PrivateKey); ok {
			return &pk.PublicKey
		}
		return c.PrivateKey
	default:
		return []byte(c.Secret)
	}
}
