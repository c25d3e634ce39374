package errors

import (
	"fmt"
	"net/http"

	"trajmatch/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so detailed
// copies made by WithDetails still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Trajectory errors
	ErrInvalidPoint = NewBaseError(
		http.StatusBadRequest,
		"INVALID_POINT",
		"invalid trajectory point",
		"",
	)

	ErrPointNotFound = NewBaseError(
		http.StatusNotFound,
		"POINT_NOT_FOUND",
		"trajectory index out of range",
		"",
	)

	// Simulation errors
	ErrInsufficientData = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_DATA",
		"not enough simulation data",
		"",
	)

	ErrMatchRequestFailed = NewBaseError(
		http.StatusBadGateway,
		"MATCH_REQUEST_FAILED",
		"map matching request failed",
		"",
	)

	ErrUnresolvedConnectionGap = NewBaseError(
		http.StatusConflict,
		"UNRESOLVED_CONNECTION_GAP",
		"connection subroute not found",
		"",
	)

	// Route errors
	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"no route found with that name",
		"",
	)

	ErrRouteNameRequired = NewBaseError(
		http.StatusBadRequest,
		"ROUTE_NAME_REQUIRED",
		"please enter a route name",
		"",
	)

	ErrEmptyRoute = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ROUTE",
		"please add markers to save the route",
		"",
	)

	// Run monitor errors
	ErrRunNotFound = NewBaseError(
		http.StatusNotFound,
		"RUN_NOT_FOUND",
		"no simulation run seen with that id",
		"",
	)

	ErrInvalidEvent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EVENT",
		"malformed simulation event",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// MatchRequestError reports a failed map matching call for one trajectory index.
type MatchRequestError struct {
	Index int
	err   error
}

// NewMatchRequestError wraps the transport, status or decode failure for index.
func NewMatchRequestError(index int, cause error) *MatchRequestError {
	return &MatchRequestError{Index: index, err: cause}
}

func (e *MatchRequestError) Error() string {
	return fmt.Sprintf("map matching request for index %d failed: %v", e.Index, e.err)
}

func (e *MatchRequestError) Unwrap() error {
	return e.err
}

func (e *MatchRequestError) Is(target error) bool {
	return target == ErrMatchRequestFailed
}

func (e *MatchRequestError) HTTPCode() int {
	return ErrMatchRequestFailed.HTTPCode()
}

func (e *MatchRequestError) ErrorCode() string {
	return ErrMatchRequestFailed.ErrorCode()
}

func (e *MatchRequestError) Message() string {
	return ErrMatchRequestFailed.Message()
}

func (e *MatchRequestError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

// ConnectionGapError reports a subroute that could not be bridged to the frontier.
// It is informational: the run continues without the dropped subroute.
type ConnectionGapError struct {
	RequestIdx int
	StartIdx   int
	EndIdx     int
}

func (e *ConnectionGapError) Error() string {
	return fmt.Sprintf("connection subroute not found for start_idx %d (subroute %d-%d, request %d)",
		e.StartIdx, e.StartIdx, e.EndIdx, e.RequestIdx)
}

func (e *ConnectionGapError) Is(target error) bool {
	return target == ErrUnresolvedConnectionGap
}

func (e *ConnectionGapError) HTTPCode() int {
	return ErrUnresolvedConnectionGap.HTTPCode()
}

func (e *ConnectionGapError) ErrorCode() string {
	return ErrUnresolvedConnectionGap.ErrorCode()
}

func (e *ConnectionGapError) Message() string {
	return ErrUnresolvedConnectionGap.Message()
}

func (e *ConnectionGapError) Details() string {
	return e.Error()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "storage operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
