package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code and message,
// so wrapped copies still match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap returns a copy of base carrying err. Sentinels are never mutated.
func Wrap(base *Error, err error) *Error {
	return &Error{Code: base.Code, Message: base.Message, Err: err}
}

// Withf returns a copy of base with a formatted message.
func Withf(base *Error, format string, args ...interface{}) *Error {
	return &Error{Code: base.Code, Message: fmt.Sprintf(format, args...)}
}

// Common error types
var (
	ErrBadRequest         = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized       = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden          = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound           = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer     = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrServiceUnavailable = New(http.StatusServiceUnavailable, "Service unavailable", nil)
)

// Database error types
var (
	ErrDatabaseConnection = New(http.StatusServiceUnavailable, "Database connection error", nil)
	ErrDatabaseQuery      = New(http.StatusInternalServerError, "Database query error", nil)
)

// Validation error types
var (
	ErrValidation   = New(http.StatusUnprocessableEntity, "Validation error", nil)
	ErrInvalidInput = New(http.StatusBadRequest, "Invalid input", nil)
)

// Authentication error types
var (
	ErrInvalidToken = New(http.StatusUnauthorized, "Invalid token", nil)
)

// StatusCode returns the HTTP status carried by err, or 500.
func StatusCode(err error) int {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// ErrorMiddleware renders the last error attached to the gin context.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *Error
		if !stderrors.As(err, &appErr) {
			appErr = Wrap(ErrInternalServer, err)
		}

		c.AbortWithStatusJSON(appErr.Code, gin.H{"error": appErr.Message})
	}
}
