package auth

import (
	"errors"
	"net/http"
)

// ErrorKind is the closed set of identity failures surfaced to callers.
// Raw provider/store errors never leave this package; they are mapped to
// one of these kinds with a human-readable message.
type ErrorKind string

const (
	KindInvalidCredentials  ErrorKind = "invalid_credentials"
	KindAccountNotFound     ErrorKind = "account_not_found"
	KindEmailAlreadyInUse   ErrorKind = "email_already_in_use"
	KindInvalidEmailFormat  ErrorKind = "invalid_email_format"
	KindWeakPassword        ErrorKind = "weak_password"
	KindRateLimited         ErrorKind = "rate_limited"
	KindOperationNotAllowed ErrorKind = "operation_not_allowed"
	KindUnknown             ErrorKind = "unknown"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

var kindMessages = map[ErrorKind]string{
	KindInvalidCredentials:  "Invalid email or password",
	KindAccountNotFound:     "No account found with this email",
	KindEmailAlreadyInUse:   "An account with this email already exists",
	KindInvalidEmailFormat:  "Invalid email format",
	KindWeakPassword:        "Password should be at least 6 characters",
	KindRateLimited:         "Too many failed attempts. Please try again later",
	KindOperationNotAllowed: "Email/password accounts are not enabled",
	KindUnknown:             "Authentication failed",
}

// ErrKind builds the user-facing error for a kind.
func ErrKind(kind ErrorKind) *Error {
	msg, ok := kindMessages[kind]
	if !ok {
		kind, msg = KindUnknown, kindMessages[KindUnknown]
	}
	return &Error{Kind: kind, Message: msg}
}

// KindOf extracts the kind from an error, Unknown when it is not ours.
func KindOf(err error) ErrorKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func statusForKind(kind ErrorKind) int {
	switch kind {
	case KindInvalidCredentials, KindAccountNotFound:
		return http.StatusUnauthorized
	case KindEmailAlreadyInUse:
		return http.StatusConflict
	case KindInvalidEmailFormat, KindWeakPassword:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindOperationNotAllowed:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondAuthError(w http.ResponseWriter, err error) {
	kind := KindOf(err)
	http.Error(w, ErrKind(kind).Message, statusForKind(kind))
}
