package auth

import "errors"

// ErrInvalidCredentials covers both unknown email and wrong password.
// Callers must not be able to tell the two apart, so the same sentinel (and
// the same response shape upstream) is used for both.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrDuplicateEmail indicates the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// ValidationError reports user-correctable input problems.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationError(msg string) error {
	return &ValidationError{Msg: msg}
}
