// Package validation provides input validation for authkit configuration
// and handler payloads.
//
// It supports struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type LoginRequest struct {
//	    Token string `validate:"required"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("scheme", scheme).OneOf("scheme", scheme, []string{"JWT"})
//	err := v.Validate()
package validation
