package auth

import "context"

// Verifier proves the authenticity of a token. Implementations check the
// signature (and whatever schema constraints they enforce) and return nil
// for a trustworthy token. The engine never interprets the error beyond
// "failure"; the cause only reaches the operator log.
//
// Verification may be slow (remote key sets, JWKS refresh); the engine
// calls it without holding any lock, so concurrent requests for the same
// token may verify independently. That is safe because verification is
// idempotent and side-effect-free.
//
// Implementations:
//   - jwt.Service — validates signed JWTs via golang-jwt
//   - VerifierFunc — wraps any function, e.g. for opaque token introspection
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

// VerifierFunc adapts an ordinary function to the Verifier interface.
// This is the simplest way to plug in a custom verification capability:
//
//	v := auth.VerifierFunc(func(ctx context.Context, token string) error {
//	    return myIntrospection(ctx, token)
//	})
type VerifierFunc func(ctx context.Context, token string) error

// Verify implements Verifier.
func (f VerifierFunc) Verify(ctx context.Context, token string) error {
	return f(ctx, token)
}
