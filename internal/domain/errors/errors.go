// Package errors defines the application-level error model. Every error that
// crosses the usecase boundary is one of these, so the HTTP layer can map it
// to a status code and body without inspecting storage internals.
package errors

import (
	"net/http"
	"strings"

	"ladle/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. The messages double as the HTTP response bodies,
// so they mirror the wording the API has always used.
var (
	// ErrMissingCredentials rejects a signup with an empty username or password.
	ErrMissingCredentials = NewBaseError(
		http.StatusUnprocessableEntity,
		"MISSING_CREDENTIALS",
		"Username and password required",
	)

	// ErrUsernameTaken is the uniqueness conflict on signup. The API reports
	// conflicts as 422 rather than 409.
	ErrUsernameTaken = NewBaseError(
		http.StatusUnprocessableEntity,
		"USERNAME_TAKEN",
		"Username already exists",
	)

	// ErrInvalidCredentials covers both unknown usernames and failed password
	// checks, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
	)

	// ErrNoActiveSession is returned by logout when the presented token does
	// not resolve to a live session.
	ErrNoActiveSession = NewBaseError(
		http.StatusUnauthorized,
		"NO_ACTIVE_SESSION",
		"No active session",
	)

	// ErrUnauthorized is the generic authentication failure for protected
	// resources.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
	)

	// ErrInvalidCredentialInput guards the hasher against empty plaintext.
	// Signup validation fires first, so hitting this means a programming error
	// upstream, but it still maps to a 422 rather than a 500.
	ErrInvalidCredentialInput = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CREDENTIAL_INPUT",
		"Password must not be empty",
	)

	// ErrRecipeNotFound covers both missing rows and rows owned by another
	// user, so existence does not leak across accounts.
	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"Recipe not found",
	)

	// ErrInternal is the generic request-fatal server error.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// ValidationErrors carries every violation found for a single request. The
// checks all run before persistence and none short-circuits, so the caller
// receives the complete list in one response.
type ValidationErrors struct {
	messages []string
}

// NewValidationErrors creates a ValidationErrors from the collected messages.
func NewValidationErrors(messages ...string) *ValidationErrors {
	return &ValidationErrors{messages: messages}
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	return strings.Join(e.messages, "; ")
}

// HTTPCode returns the HTTP status code.
func (e *ValidationErrors) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code.
func (e *ValidationErrors) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-facing error message.
func (e *ValidationErrors) Message() string {
	return e.Error()
}

// Messages returns the individual violation messages in the order the checks
// ran.
func (e *ValidationErrors) Messages() []string {
	return e.messages
}
