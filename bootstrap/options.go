package bootstrap

import (
	"time"

	"github.com/kbukum/authkit/auth"
	"github.com/kbukum/authkit/cache"
	"github.com/kbukum/authkit/logger"
)

// Option configures the App during creation.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	logger          *logger.Logger
	verifier        auth.Verifier
	store           cache.Store
	gracefulTimeout *time.Duration
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is built from the config's Logging section.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) { o.logger = l }
}

// WithVerifier overrides the token verifier. If not set, a JWT verifier
// is built from the config's JWT section.
func WithVerifier(v auth.Verifier) Option {
	return func(o *appOptions) { o.verifier = v }
}

// WithStore overrides the credential cache store. If not set, the store
// comes from the config's Cache section, or falls back to the in-process
// cache.
func WithStore(s cache.Store) Option {
	return func(o *appOptions) { o.store = s }
}

// WithGracefulTimeout sets the maximum duration for graceful shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) { o.gracefulTimeout = &d }
}
