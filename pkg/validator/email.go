package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyEmail indicates the email address is empty
	ErrEmptyEmail = errors.New("email address cannot be empty")

	// ErrInvalidEmail indicates the email address is not shaped like
	// local@domain.tld
	ErrInvalidEmail = errors.New("email address format is invalid")
)

// emailRegex enforces a pragmatic local@domain.tld shape. This stricter
// check is applied on the agent tool path only; the HTTP path requires
// presence alone.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// EmailValidator handles email address shape validation.
type EmailValidator struct{}

// NewEmailValidator creates a new email validator instance
func NewEmailValidator() *EmailValidator {
	return &EmailValidator{}
}

// Validate checks the email address shape. Returns the trimmed address.
func (v *EmailValidator) Validate(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", ErrEmptyEmail
	}

	if !emailRegex.MatchString(trimmed) {
		return "", ErrInvalidEmail
	}

	return trimmed, nil
}

// IsValid is a convenience method that returns true if email is valid
func (v *EmailValidator) IsValid(email string) bool {
	_, err := v.Validate(email)
	return err == nil
}
