package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

var validate = validator.New()

// ValidateEmail reports whether the address is well formed.
func ValidateEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidatePassword enforces the minimum-length credential policy.
func ValidatePassword(password string) bool {
	return len(password) >= minPasswordLength
}

// ValidateTitle rejects empty or whitespace-only titles.
func ValidateTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}
