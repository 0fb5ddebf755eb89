package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a run failure. Every error that reaches the
// entrypoint boundary carries exactly one kind, which determines how the
// failure is rendered in the output envelope.
type ErrorKind string

const (
	// KindNotFound indicates the environment file does not exist.
	KindNotFound ErrorKind = "not-found"

	// KindMissingConfig indicates a required key (API_KEY) is absent or
	// empty in the environment file.
	KindMissingConfig ErrorKind = "missing-config"

	// KindHTTPStatus indicates the API answered with a non-2xx status.
	// The RunError carries the numeric code in StatusCode.
	KindHTTPStatus ErrorKind = "http-status"

	// KindNetwork indicates a transport-level failure: DNS resolution,
	// connection refused, TLS handshake, connection reset.
	KindNetwork ErrorKind = "network"

	// KindTimeout indicates the request exceeded its deadline.
	KindTimeout ErrorKind = "timeout"

	// KindParse indicates the response body was not valid JSON.
	KindParse ErrorKind = "parse"

	// KindUnknown is the catch-all for failures that fit no other kind.
	KindUnknown ErrorKind = "unknown"
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// RunError is the single error type used throughout the CLI. It pairs a
// classification (Kind) with a human-readable message and, for HTTP status
// failures, the numeric status code.
//
// The entrypoint converts every RunError into a printed JSON envelope;
// nothing propagates past it as an uncaught fault.
type RunError struct {
	// Kind classifies the failure for envelope rendering.
	Kind ErrorKind

	// StatusCode holds the HTTP status for KindHTTPStatus errors.
	// Zero for all other kinds.
	StatusCode int

	// Message is the human-readable failure description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the message, optionally
// followed by the underlying error.
func (e *RunError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError creates a RunError with the given kind and message.
func NewRunError(kind ErrorKind, message string) *RunError {
	return &RunError{Kind: kind, Message: message}
}

// WrapRunError creates a RunError that wraps an existing error.
func WrapRunError(kind ErrorKind, message string, err error) *RunError {
	return &RunError{Kind: kind, Message: message, Err: err}
}

// NewHTTPStatusError creates a KindHTTPStatus RunError carrying the
// numeric status code from a non-2xx API response.
func NewHTTPStatusError(statusCode int) *RunError {
	return &RunError{
		Kind:       KindHTTPStatus,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("API returned status %d", statusCode),
	}
}

// KindOf extracts the ErrorKind from an error chain. Errors that are not
// RunErrors (or do not wrap one) are classified as KindUnknown.
func KindOf(err error) ErrorKind {
	var re *RunError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}
