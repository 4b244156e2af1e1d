package validator

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrEmptyPhone indicates the phone number is empty
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrInvalidLength indicates the phone number is not 10 digits
	ErrInvalidLength = errors.New("phone number must be exactly 10 digits")
)

// nonDigitRegex matches every character that is not a decimal digit.
var nonDigitRegex = regexp.MustCompile(`\D`)

// PhoneValidator handles phone number normalization and validation.
type PhoneValidator struct{}

// NewPhoneValidator creates a new phone validator instance
func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{}
}

// Validate validates a phone number.
// Accepts format: 5551234567 or 555 123 4567 or 555-123-4567
// Returns the sanitized phone number (digits only) and error if invalid.
// A number is valid iff exactly 10 digits remain after sanitizing.
func (v *PhoneValidator) Validate(phone string) (string, error) {
	if phone == "" {
		return "", ErrEmptyPhone
	}

	sanitized := v.Sanitize(phone)

	if len(sanitized) != 10 {
		return "", ErrInvalidLength
	}

	return sanitized, nil
}

// Sanitize removes every non-digit character from the phone number.
// Sanitize is idempotent: sanitizing a sanitized number is a no-op.
func (v *PhoneValidator) Sanitize(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// Format formats a phone number in the standard display format: XXX XXX XXXX
func (v *PhoneValidator) Format(phone string) (string, error) {
	sanitized, err := v.Validate(phone)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s %s",
		sanitized[0:3],
		sanitized[3:6],
		sanitized[6:10],
	), nil
}

// IsValid is a convenience method that returns true if phone is valid
func (v *PhoneValidator) IsValid(phone string) bool {
	_, err := v.Validate(phone)
	return err == nil
}
