package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors covering the API's failure taxonomy. The message of
// ErrInvalidCredentials is shared by the "no such account" and "wrong
// password" paths so responses never reveal which one happened.
var (
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "Improper Credentials")
	ErrConflict           = New("CONFLICT", http.StatusConflict, "User already exists")
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "Invalid credentials")
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized, "Invalid token")
	ErrTokenMissing       = New("TOKEN_MISSING", http.StatusUnauthorized, "Token is missing")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "Resource not found")
	ErrConfiguration      = New("CONFIGURATION_ERROR", http.StatusInternalServerError, "JWT secret not configured")
	ErrProcessing         = New("PROCESSING_ERROR", http.StatusInternalServerError, "Error processing Excel file")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "Internal Server Error")
)

// FromError normalises any error into an *Error. Unknown errors become 500s
// so stack traces and driver details never leak to the client.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
