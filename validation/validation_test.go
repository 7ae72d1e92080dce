package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/authkit/errors"
)

func TestValidatorRequired(t *testing.T) {
	if New().Required("name", "alice").HasErrors() {
		t.Error("expected no errors for valid input")
	}
	if !New().Required("name", "").HasErrors() {
		t.Error("expected error for empty required field")
	}
	if !New().Required("name", "   ").HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	if v := New().RequiredUUID("id", uuid.New().String()); v.HasErrors() {
		t.Errorf("expected no errors for valid UUID, got %v", v.Errors())
	}
	if !New().RequiredUUID("id", "").HasErrors() {
		t.Error("expected error for empty UUID")
	}
	if !New().RequiredUUID("id", "not-a-uuid").HasErrors() {
		t.Error("expected error for invalid UUID")
	}
	if !New().RequiredUUID("id", uuid.Nil.String()).HasErrors() {
		t.Error("expected error for nil UUID")
	}
}

func TestValidatorLengthAndOneOf(t *testing.T) {
	v := New().
		MinLength("secret", "ab", 8).
		MaxLength("name", strings.Repeat("x", 300), 255).
		OneOf("scheme", "Basic", []string{"JWT", "APIKey"})
	if len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %v", v.Errors())
	}
	if New().OneOf("scheme", "", []string{"JWT"}).HasErrors() {
		t.Error("empty value must skip OneOf")
	}
}

func TestValidatorValidate(t *testing.T) {
	if err := New().Required("name", "alice").Validate(); err != nil {
		t.Fatalf("expected nil for clean validator, got %v", err)
	}

	appErr := New().Required("name", "").Custom(false, "ttl", "must not be negative").Validate()
	if appErr == nil {
		t.Fatal("expected error")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected invalid input code, got %v", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "name: is required") ||
		!strings.Contains(appErr.Message, "ttl: must not be negative") {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
	if appErr.Details["fields"] == nil {
		t.Error("expected field details")
	}
}

func TestValidateStruct(t *testing.T) {
	type loginRequest struct {
		Token  string `json:"token" validate:"required"`
		Scheme string `json:"scheme" validate:"omitempty,oneof=JWT APIKey"`
	}

	if err := Validate(loginRequest{Token: "abc", Scheme: "JWT"}); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}

	err := Validate(loginRequest{Scheme: "Basic"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if !strings.Contains(appErr.Message, "token: is required") {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
	if !strings.Contains(appErr.Message, "scheme: must be one of") {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}
