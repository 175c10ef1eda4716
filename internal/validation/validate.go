// Package validation checks user-supplied registration and contact fields
// before they reach storage.
package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern is intentionally loose: one @, no spaces, a dot in the
// domain part. Real validation happens when mail bounces.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PhonePattern accepts digits with an optional leading plus.
var PhonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

const (
	// MinPasswordLen is the minimum password length
	MinPasswordLen = 8
	// MaxNameLen is the maximum length of a name field
	MaxNameLen = 100
)

// ValidateName checks a required name field (first/last name of a user
// or contact). label names the field in the error message.
func ValidateName(label, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", label)
	}
	if len(value) > MaxNameLen {
		return fmt.Errorf("%s must not exceed %d characters", label, MaxNameLen)
	}
	return nil
}

// ValidateEmail checks email format.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}

// ValidatePhone checks phone format: 7-15 digits, optional leading +.
func ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("phone is required")
	}
	if !PhonePattern.MatchString(phone) {
		return fmt.Errorf("phone must be 7-15 digits")
	}
	return nil
}

// ValidatePassword checks minimum password requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}
