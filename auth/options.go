package auth

import (
	"time"

	"github.com/kbukum/authkit/auth/identity"
	"github.com/kbukum/authkit/cache"
	"github.com/kbukum/authkit/logger"
)

// Option configures an Authenticator during creation.
type Option func(*Authenticator)

// WithCache sets the credential cache. If not set, an in-process
// cache.Memory is used.
func WithCache(s cache.Store) Option {
	return func(a *Authenticator) {
		a.store = s
	}
}

// WithEnricher sets the optional profile enrichment hook, invoked with
// each freshly built profile and the full claims map. Enrichers may only
// add extension attributes.
func WithEnricher(fn identity.Enricher) Option {
	return func(a *Authenticator) {
		a.mapper.Enrich = fn
	}
}

// WithLogger sets the operator log channel. If not set, a default logger
// is created.
func WithLogger(l *logger.Logger) Option {
	return func(a *Authenticator) {
		a.log = l
	}
}

// WithTimeFunc replaces the clock used for cache freshness decisions.
// Intended for tests.
func WithTimeFunc(now func() time.Time) Option {
	return func(a *Authenticator) {
		a.now = now
	}
}
