// Package auth authenticates requests that present a bearer token.
//
// This is the credential-validation-and-cache core of authkit
// (github.com/kbukum/authkit) with focused subpackages:
//
//   - auth/token    — segment codec and claims extraction for compact tokens
//   - auth/identity — claims-to-profile mapping with an optional enrichment hook
//   - auth/jwt      — a Verifier implementation built on golang-jwt
//   - auth/authctx  — request context propagation for authenticated profiles
//
// The top-level package provides the Authenticator engine and its
// contracts:
//
//   - Verifier — proves a token's signature is authentic, nothing more
//   - Authenticator — the per-request pipeline: scheme check, token
//     extraction, cache lookup, verification, claims decode, profile
//     build, cache store
//   - Registry — named authenticators by scheme, for composing several
//     credential types behind one dispatch point
//
// Every request ends in exactly one of three outcomes. Success carries
// the profile. Failure means this authenticator owned the request's
// scheme but could not produce an identity. Pass means the request's
// scheme marker names some other authenticator; it is not an error.
//
// Validated profiles are cached by raw token string. Within the
// configured TTL a repeated token is served from the cache without
// re-running signature verification; past the TTL the entry is simply
// ignored and overwritten by the next successful verification. Why a
// credential failed is written to the operator log only; callers see
// just the outcome.
//
// All packages follow the same conventions as the rest of the kit:
// Config structs with ApplyDefaults()/Validate(), constructor functions,
// and mapstructure tags for config file loading.
package auth
