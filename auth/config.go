package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/kbukum/authkit/auth/identity"
)

// DefaultScheme is the scheme marker this authenticator answers to unless
// configured otherwise.
const DefaultScheme = "JWT"

// Config holds the per-authenticator settings. It is fixed at
// construction; the engine holds no other mutable state besides the
// shared credential cache.
type Config struct {
	// Scheme is this authenticator's name. Requests whose scheme marker
	// differs (case-sensitive) get the Pass outcome. Default: "JWT".
	Scheme string `mapstructure:"scheme"`

	// SubjectClaim is the claim treated as the canonical identity.
	// Default: "sub".
	SubjectClaim string `mapstructure:"subject_claim"`

	// TTL bounds how long a cached profile may be reused without
	// re-verifying the token. Zero means cache forever.
	TTL time.Duration `mapstructure:"ttl"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Scheme == "" {
		c.Scheme = DefaultScheme
	}
	if c.SubjectClaim == "" {
		c.SubjectClaim = identity.DefaultSubjectClaim
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.TTL < 0 {
		return errors.New("auth: ttl must not be negative")
	}
	return nil
}

// Describe returns a human-readable one-liner for the startup summary.
// Example: "JWT subject=sub ttl=5m0s"
func (c *Config) Describe() string {
	ttl := "forever"
	if c.TTL > 0 {
		ttl = c.TTL.String()
	}
	return fmt.Sprintf("%s subject=%s ttl=%s", c.Scheme, c.SubjectClaim, ttl)
}
