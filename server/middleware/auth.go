package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/authkit/auth"
	"github.com/kbukum/authkit/auth/authctx"
	"github.com/kbukum/authkit/errors"
	"github.com/kbukum/authkit/observability"
)

// AuthConfig configures the authentication middleware.
type AuthConfig struct {
	// Scheme is the scheme marker attached to requests flowing through
	// this middleware. Defaults to the authenticator's own scheme, so
	// guarded routes never see a Pass outcome.
	Scheme string
	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string
	// Optional lets unauthenticated requests through without a profile
	// instead of rejecting them. Failures are still rejected.
	Optional bool
	// Metrics, when set, records outcome counters and cache statistics.
	Metrics *observability.AuthMetrics
}

// Auth returns a Gin middleware that authenticates the Authorization
// header against the given authenticator. On success the profile is
// stored in the request context; on failure the request is rejected
// with a structured 401 body. A Pass outcome means the route's scheme
// marker names a different authenticator, so the request continues
// unauthenticated.
func Auth(a *auth.Authenticator, cfg AuthConfig) gin.HandlerFunc {
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = a.Scheme()
	}

	return func(c *gin.Context) {
		for _, skip := range cfg.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, skip) {
				c.Next()
				return
			}
		}

		ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanAuthenticate)
		defer span.End()

		start := time.Now()
		res := a.Authenticate(ctx, auth.Request{
			Scheme:     scheme,
			Credential: c.GetHeader("Authorization"),
		})
		if cfg.Metrics != nil {
			cfg.Metrics.RecordOutcome(ctx, scheme, res.Outcome.String(), time.Since(start))
			recordCacheMetrics(ctx, cfg.Metrics, scheme, res)
		}

		switch res.Outcome {
		case auth.Success:
			c.Request = c.Request.WithContext(authctx.Set(ctx, res.Profile))
			c.Set("profile", res.Profile)
			c.Set("user_id", res.Profile.ID)
			c.Next()
		case auth.Pass:
			if cfg.Optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				errors.Unauthorized("").ToResponse())
		default:
			status := res.Status
			if status == 0 {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, errors.InvalidToken().ToResponse())
		}
	}
}

// recordCacheMetrics counts cache hits and misses for successful
// attempts. Pass and Failure outcomes never produce a profile, so the
// cache counters only track requests that ended with an identity.
func recordCacheMetrics(ctx context.Context, m *observability.AuthMetrics, scheme string, res auth.Result) {
	if res.Outcome != auth.Success {
		return
	}
	if res.CacheHit {
		m.RecordCacheHit(ctx, scheme)
		return
	}
	m.RecordCacheMiss(ctx, scheme)
}

// RegistryAuth returns a Gin middleware that dispatches through a
// scheme registry. The schemeFunc derives the scheme marker from the
// request; routes whose marker matches no registered authenticator get
// the Pass outcome and continue unauthenticated.
func RegistryAuth(reg *auth.Registry, schemeFunc func(*gin.Context) string, cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, skip := range cfg.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, skip) {
				c.Next()
				return
			}
		}

		scheme := cfg.Scheme
		if schemeFunc != nil {
			scheme = schemeFunc(c)
		}

		ctx := c.Request.Context()
		start := time.Now()
		res := reg.Authenticate(ctx, auth.Request{
			Scheme:     scheme,
			Credential: c.GetHeader("Authorization"),
		})
		if cfg.Metrics != nil {
			cfg.Metrics.RecordOutcome(ctx, scheme, res.Outcome.String(), time.Since(start))
			recordCacheMetrics(ctx, cfg.Metrics, scheme, res)
		}

		switch res.Outcome {
		case auth.Success:
			c.Request = c.Request.WithContext(authctx.Set(ctx, res.Profile))
			c.Set("profile", res.Profile)
			c.Set("user_id", res.Profile.ID)
			c.Next()
		case auth.Pass:
			c.Next()
		default:
			status := res.Status
			if status == 0 {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, errors.InvalidToken().ToResponse())
		}
	}
}
