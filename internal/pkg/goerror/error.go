package goerror

import (
	"fmt"
	"net/http"
)

// Code is a stable identifier for the failure classes this service reports.
type Code int

const (
	// CodeInternal represents an internal or unspecified error.
	CodeInternal Code = iota
	// CodeParse indicates a malformed or unreadable request body.
	CodeParse
	// CodeConfiguration indicates the mail transport is missing required settings.
	CodeConfiguration
	// CodeTransport indicates a network, auth or send failure during delivery.
	CodeTransport
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeParse:
		return "ERROR_CODE_PARSE"
	case CodeConfiguration:
		return "ERROR_CODE_CONFIGURATION"
	case CodeTransport:
		return "ERROR_CODE_TRANSPORT"
	case CodeInternal:
		return "ERROR_CODE_INTERNAL"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying cause while also carrying a user-facing message
// and a stable error code.
type Error struct {
	err  error
	msg  string
	code Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for logging.
func (e *Error) String() string {
	return fmt.Sprintf("Code: %s, Message: %s, Underlying Error: %v", e.code.String(), e.msg, e.err)
}

// Msg returns the user-facing error message.
func (e *Error) Msg() string {
	if e.msg != "" {
		return e.msg
	}

	return e.Error()
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error to an HTTP status code. Every failure class is
// reported as 500 so callers observe one uniform outcome for a failed submission.
func (e *Error) StatusCode() int {
	return http.StatusInternalServerError
}

func new(err error, msg string, code Code) error {
	return &Error{err: err, msg: msg, code: code}
}

// NewServer creates an internal error with the provided cause.
func NewServer(err error) error {
	return new(err, "Internal server error", CodeInternal)
}

// NewParse creates a parse error for an unreadable or malformed request body.
func NewParse(err error) error {
	return new(err, fmt.Sprintf("invalid JSON body: %v", err), CodeParse)
}

// NewConfiguration creates a configuration error with the specified message.
func NewConfiguration(msg string) error {
	return new(nil, msg, CodeConfiguration)
}

// NewTransport creates a transport error wrapping the delivery failure.
func NewTransport(err error) error {
	return new(err, fmt.Sprintf("mail delivery failed: %v", err), CodeTransport)
}
