package service

import "errors"

// ErrorKind classifies failures surfaced to the view layer.
type ErrorKind string

// Error kinds. Configuration errors are fatal for every search until the
// credential is fixed; the rest are recoverable by the user.
const (
	KindConfiguration ErrorKind = "configuration"
	KindInput         ErrorKind = "input"
	KindLocation      ErrorKind = "location"
	KindService       ErrorKind = "service"
)

// User-facing messages.
const (
	MessageMissingCredential  = "API key is missing. Please set the API_KEY environment variable."
	MessageServiceUnavailable = "Failed to fetch barber shops. The API may be unavailable or the request failed."
	MessageEmptyQuery         = "Please enter a location to search."
	MessageUnexpected         = "An unexpected error occurred."
)

// Error carries a message that is safe to show to end users. The wrapped
// cause is only meant for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface and never includes the cause.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrMissingCredential is returned when no API credential is configured.
var ErrMissingCredential = &Error{Kind: KindConfiguration, Message: MessageMissingCredential}

// ErrEmptyQuery is returned for blank free-text queries.
var ErrEmptyQuery = &Error{Kind: KindInput, Message: MessageEmptyQuery}

// KindOf reports the kind of err, or an empty kind when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// UserMessage returns the message that may be shown for err.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return MessageUnexpected
}
