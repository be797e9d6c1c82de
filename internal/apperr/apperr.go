// Package apperr defines the error taxonomy shared by the repository, the
// auth client and the screens. Every failure a screen can surface is one of
// these four kinds; anything else is a bug.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a todo id no longer exists on the backend, e.g.
// after a concurrent delete. Callers may treat a delete that fails with
// ErrNotFound as already done.
var ErrNotFound = errors.New("not found")

// ValidationError is detected client-side, before any network call is made.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Validation builds a ValidationError for a named form field.
func Validation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AuthError carries a backend failure code from the auth endpoints.
type AuthError struct {
	Code string
	Msg  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth (%s): %s", e.Code, e.Msg)
}

// Backend failure codes surfaced by the auth endpoints.
const (
	CodeUserNotFound   = "auth/user-not-found"
	CodeWrongPassword  = "auth/wrong-password"
	CodeEmailInUse     = "auth/email-already-in-use"
	CodeInvalidEmail   = "auth/invalid-email"
	CodeNetworkFailure = "auth/network-request-failed"
)

var authMessages = map[string]string{
	CodeUserNotFound:   "No account found for that email.",
	CodeWrongPassword:  "Wrong password.",
	CodeEmailInUse:     "That email is already registered. Use another one.",
	CodeInvalidEmail:   "That email address is not valid.",
	CodeNetworkFailure: "Network problem. Check your connection.",
}

// Auth builds an AuthError for a backend code, mapping known codes to fixed
// user-facing messages and falling back to the backend's own for the rest.
func Auth(code, fallback string) error {
	if msg, ok := authMessages[code]; ok {
		return &AuthError{Code: code, Msg: msg}
	}
	if fallback == "" {
		fallback = "Sign-in failed."
	}
	return &AuthError{Code: code, Msg: fallback}
}

// TransportError wraps a network or backend-unreachable failure. The original
// cause stays available through Unwrap for logging.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: backend unreachable: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Transport wraps err as a TransportError for the named operation.
func Transport(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// UserMessage renders err as the single notice a screen shows. Validation and
// auth errors already carry user-facing text; everything else gets a generic
// line so internals never leak into the UI.
func UserMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Msg
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Msg
	}
	if errors.Is(err, ErrNotFound) {
		return "That item no longer exists."
	}
	if IsTransport(err) {
		return "Could not reach the server. Try again."
	}
	return "Something went wrong. Try again."
}
