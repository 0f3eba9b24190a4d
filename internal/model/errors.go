package model

import "errors"

// Error taxonomy shared by services and endpoints. Services return these
// (possibly wrapped with fmt.Errorf and %w); the endpoint layer maps them to
// HTTP statuses and never lets storage detail through.
var (
	// ErrUnauthenticated: no credential was presented for a protected action.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrAccessDenied: a credential was presented but the actor lacks the
	// role or ownership the action requires.
	ErrAccessDenied = errors.New("access denied")
	// ErrNotFound: the target row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: uniqueness violation (username/email already taken).
	ErrConflict = errors.New("already exists")
	// ErrValidation: missing or malformed input fields.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidCredentials: login failed; deliberately silent about whether
	// the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
