// Package errors provides the structured error type returned to HTTP
// clients by the authkit middleware.
//
// Authentication failures are deliberately opaque: the engine logs the
// underlying cause and the middleware responds with a generic AppError.
// The machine-readable code and HTTP status make the response usable by
// clients without leaking why a credential was rejected.
package errors
