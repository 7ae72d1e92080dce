package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kbukum/authkit/auth/identity"
	"github.com/kbukum/authkit/auth/token"
	"github.com/kbukum/authkit/cache"
	"github.com/kbukum/authkit/logger"
)

// Outcome classifies the terminal result of an authentication attempt.
type Outcome int

const (
	// Failure: this authenticator owned the request's scheme but could
	// not produce an identity.
	Failure Outcome = iota
	// Success: the token was trusted and a profile produced.
	Success
	// Pass: the request's scheme marker names a different authenticator.
	// Not an error; another authenticator may handle the request.
	Pass
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Pass:
		return "pass"
	default:
		return "failure"
	}
}

// Request carries the two inbound attributes the engine consumes: the
// scheme marker supplied by the routing layer, and the credential value,
// either a bare token or "Bearer <token>".
type Request struct {
	Scheme     string
	Credential string
}

// Result is the terminal state of one authentication attempt. Profile is
// non-nil exactly when Outcome is Success. CacheHit reports whether the
// profile came from the credential cache rather than a fresh
// verification. Status and Details are hints for the transport layer and
// are typically empty; failure causes go to the operator log, not to the
// caller.
type Result struct {
	Outcome  Outcome
	Profile  *identity.Profile
	CacheHit bool
	Status   int
	Details  map[string]string
}

// Callbacks receives exactly one call per authentication attempt.
type Callbacks struct {
	OnSuccess func(p *identity.Profile)
	OnFailure func(status int, details map[string]string)
	OnPass    func(status int, details map[string]string)
}

// Authenticator is the per-request authentication engine. It is immutable
// after construction and safe for concurrent use; the credential cache is
// the only shared mutable state, and no lock is held across the Verify
// call.
type Authenticator struct {
	cfg      Config
	verifier Verifier
	mapper   identity.Mapper
	store    cache.Store
	log      *logger.Logger
	now      func() time.Time
}

// New creates an Authenticator for the given configuration and verifier.
func New(cfg *Config, verifier Verifier, opts ...Option) (*Authenticator, error) {
	if verifier == nil {
		return nil, errors.New("auth: verifier is required")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Authenticator{
		cfg:      *cfg,
		verifier: verifier,
		mapper:   identity.Mapper{SubjectClaim: cfg.SubjectClaim},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.store == nil {
		a.store = cache.NewMemory()
	}
	if a.log == nil {
		a.log = logger.NewDefault("authkit")
	}
	a.log = a.log.WithComponent("auth")
	return a, nil
}

// Scheme returns the scheme marker this authenticator answers to.
func (a *Authenticator) Scheme() string {
	return a.cfg.Scheme
}

// Authenticate runs the pipeline for one request and returns its single
// terminal outcome.
func (a *Authenticator) Authenticate(ctx context.Context, req Request) Result {
	if req.Scheme != a.cfg.Scheme {
		return Result{Outcome: Pass}
	}

	if req.Credential == "" {
		a.log.Debug("no credential supplied", logger.Fields(
			logger.FieldScheme, a.cfg.Scheme,
		))
		return Result{Outcome: Failure}
	}

	tok := normalizeToken(req.Credential)

	if p := a.cached(ctx, tok); p != nil {
		return Result{Outcome: Success, Profile: p, CacheHit: true}
	}

	if err := a.verifier.Verify(ctx, tok); err != nil {
		a.log.Info("token verification failed", logger.Fields(
			logger.FieldScheme, a.cfg.Scheme,
			logger.FieldError, err.Error(),
		))
		return Result{Outcome: Failure}
	}

	claims, err := token.ParseClaims(tok)
	if err != nil {
		a.log.Error("token claims are malformed", logger.Fields(
			logger.FieldScheme, a.cfg.Scheme,
			logger.FieldError, err.Error(),
		))
		return Result{Outcome: Failure}
	}

	profile, err := a.mapper.Profile(claims)
	if err != nil {
		a.log.Warn("token has no usable subject", logger.Fields(
			logger.FieldScheme, a.cfg.Scheme,
			logger.FieldError, err.Error(),
		))
		return Result{Outcome: Failure}
	}

	// Unconditional overwrite: a concurrent verification of the same
	// token may also write, and last writer wins.
	entry := cache.Entry{Profile: profile, CreatedAt: a.now()}
	if err := a.store.Save(ctx, tok, entry); err != nil {
		a.log.Warn("credential cache store failed", logger.Fields(
			logger.FieldError, err.Error(),
		))
	}

	return Result{Outcome: Success, Profile: profile}
}

// AuthenticateWith runs the pipeline and delivers the outcome through
// exactly one of the callbacks.
func (a *Authenticator) AuthenticateWith(ctx context.Context, req Request, cb Callbacks) {
	res := a.Authenticate(ctx, req)
	switch res.Outcome {
	case Success:
		if cb.OnSuccess != nil {
			cb.OnSuccess(res.Profile)
		}
	case Pass:
		if cb.OnPass != nil {
			cb.OnPass(res.Status, res.Details)
		}
	default:
		if cb.OnFailure != nil {
			cb.OnFailure(res.Status, res.Details)
		}
	}
}

// cached returns the previously validated profile for tok if the cache
// holds a fresh entry. Staleness is a read-time check against the stored
// timestamp: expired entries are treated as a miss but left in place,
// to be overwritten by the next successful verification.
func (a *Authenticator) cached(ctx context.Context, tok string) *identity.Profile {
	entry, err := a.store.Lookup(ctx, tok)
	if err != nil {
		a.log.Warn("credential cache lookup failed", logger.Fields(
			logger.FieldError, err.Error(),
		))
		return nil
	}
	if entry == nil || entry.Profile == nil {
		return nil
	}
	if a.cfg.TTL > 0 && !a.now().Before(entry.CreatedAt.Add(a.cfg.TTL)) {
		return nil
	}
	return entry.Profile
}

// normalizeToken strips a literal "Bearer" prefix followed by whitespace.
// Anything else is used verbatim as the token.
func normalizeToken(credential string) string {
	rest, ok := strings.CutPrefix(credential, "Bearer")
	if !ok {
		return credential
	}
	trimmed := strings.TrimLeft(rest, " \t")
	if len(trimmed) == len(rest) {
		// "Bearer" not followed by whitespace: not a prefix.
		return credential
	}
	return trimmed
}
