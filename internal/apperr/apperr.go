// Package apperr defines the error kinds surfaced at form and panel
// boundaries. Every failure a handler can show inline is one of these.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	// DataUnavailable: a row-store call failed or returned an error.
	DataUnavailable Kind = "data_unavailable"
	// AnalyticsUnavailable: the analytics API returned non-2xx, failed on the
	// network, or answered with a payload of the wrong shape.
	AnalyticsUnavailable Kind = "analytics_unavailable"
	// ValidationFailure: a required field is missing or malformed, or an
	// invite code did not resolve.
	ValidationFailure Kind = "validation_failure"
	// AuthFailure: credentials rejected.
	AuthFailure Kind = "auth_failure"
	NotFound    Kind = "not_found"
	// PaymentUnavailable: the payment provider could not be reached.
	PaymentUnavailable Kind = "payment_unavailable"
	// NotificationUnavailable: push delivery failed for every recipient.
	NotificationUnavailable Kind = "notification_unavailable"
)

// Error carries a Kind, a user-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by Kind, so errors.Is(err, apperr.New(k, "")) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Kind == e.Kind
	}
	return false
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Data(message string, err error) *Error      { return Wrap(DataUnavailable, message, err) }
func Analytics(message string, err error) *Error { return Wrap(AnalyticsUnavailable, message, err) }
func Validation(message string) *Error           { return New(ValidationFailure, message) }
func Auth(message string) *Error                 { return New(AuthFailure, message) }

// KindOf returns the Kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err (or anything it wraps) has the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the user-facing message for err. Unknown errors get a
// generic message so internals never leak into a response body.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong"
}

// Status maps an error to the HTTP status used when the error ends a request.
func Status(err error) int {
	switch KindOf(err) {
	case ValidationFailure:
		return http.StatusBadRequest
	case AuthFailure:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case DataUnavailable:
		return http.StatusServiceUnavailable
	case AnalyticsUnavailable, PaymentUnavailable, NotificationUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
