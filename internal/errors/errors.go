package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Task errors
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodePersistence = "PERSISTENCE_ERROR"

	// Request errors
	ErrCodeInvalidInput = "INVALID_INPUT"

	// Service errors
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// AppError represents a coded application error
type AppError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewAppError creates a new AppError
func NewAppError(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewAppErrorWithDetails creates a new AppError with details
func NewAppErrorWithDetails(code, message string, details interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Wrap creates a new AppError carrying cause
func Wrap(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// Kind sentinels, usable with errors.Is
var (
	ErrValidation         = NewAppError(ErrCodeValidation, "validation failed")
	ErrNotFound           = NewAppError(ErrCodeNotFound, "resource not found")
	ErrPersistence        = NewAppError(ErrCodePersistence, "persistence failure")
	ErrInvalidInput       = NewAppError(ErrCodeInvalidInput, "invalid request body")
	ErrInternalError      = NewAppError(ErrCodeInternalError, "internal error")
	ErrServiceUnavailable = NewAppError(ErrCodeServiceUnavailable, "service temporarily unavailable")
)

// Validation creates a ValidationError
func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message)
}

// NotFound creates a NotFoundError
func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message)
}

// Persistence creates a PersistenceError wrapping cause
func Persistence(message string, cause error) *AppError {
	return Wrap(ErrCodePersistence, message, cause)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	return stderrors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}

// IsPersistence reports whether err is a PersistenceError
func IsPersistence(err error) bool {
	return stderrors.Is(err, ErrPersistence)
}

// CodeOf returns the code of the first AppError in err's chain
func CodeOf(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// StatusFor maps an error to its HTTP status
func StatusFor(err error) int {
	switch CodeOf(err) {
	case ErrCodeValidation, ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *AppError) {
	c.JSON(statusCode, err)
}

// Respond renders any error. Persistence and internal failures hide their cause;
// other kinds carry the full wrapped message in details.
func Respond(c *gin.Context, err error) {
	status := StatusFor(err)

	var appErr *AppError
	if !stderrors.As(err, &appErr) || status == http.StatusInternalServerError {
		InternalError(c, "")
		return
	}
	resp := NewAppErrorWithDetails(appErr.Code, appErr.Message, appErr.Details)
	if resp.Details == nil && err.Error() != appErr.Error() {
		// keep the context added by wrapping, e.g. the failing position in a batch
		resp.Details = err.Error()
	}
	RespondWithError(c, status, resp)
}

// Helper functions for common error responses

// NotFoundResponse sends a 404 response
func NotFoundResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAppError(ErrCodeNotFound, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAppError(ErrCodeInvalidInput, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAppError(ErrCodeInternalError, message))
}
