package auth

import (
	"regexp"
	"strings"
)

// minPasswordLength matches the minimum the account schema has always enforced.
const minPasswordLength = 6

// emailPattern accepts local@domain with optional dot/dash separators and a
// dotted extension of 2-3 letters.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// normalizeEmail canonicalizes an email for storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupInput is the unvalidated draft of a new account.
type SignupInput struct {
	Name            string
	Email           string
	TargetRole      string
	ExperienceLevel string
	Password        string
}

// validate checks the draft before any store interaction. It returns a
// ValidationError so the boundary layer can answer with a 400.
func (in SignupInput) validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.TargetRole) == "" ||
		strings.TrimSpace(in.ExperienceLevel) == "" ||
		in.Password == "" {
		return validationError("All fields are required")
	}
	if !emailPattern.MatchString(normalizeEmail(in.Email)) {
		return validationError("Please enter a valid email address")
	}
	if len(in.Password) < minPasswordLength {
		return validationError("Password must be at least 6 characters")
	}
	return nil
}
