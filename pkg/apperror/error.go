package apperror

import (
	"fmt"
	"net/http"
)

// AppError is the single error type crossing the usecase boundary. Code maps
// straight to the HTTP status; Module/Method/Subject are trace context for
// server-side logging and are never serialized to clients.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Module  string `json:"-"`
	Method  string `json:"-"`
	Subject string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Trace attaches logging context to the error and returns it so constructors
// can be chained at the raise site.
func (e *AppError) Trace(module, method string, subject any) *AppError {
	e.Module = module
	e.Method = method
	e.Subject = fmt.Sprint(subject)
	return e
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation covers schema and business-rule violations (e.g. password
// confirmation mismatch).
func Validation(message string) *AppError {
	return New(http.StatusUnprocessableEntity, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

// Internal wraps an unexpected lower-layer failure. The wrapped error is
// logged server-side only; message is what the client sees.
func Internal(message string, err error) *AppError {
	if message == "" {
		message = "An unexpected error occurred. Please try again later."
	}
	return New(http.StatusInternalServerError, message, err)
}
