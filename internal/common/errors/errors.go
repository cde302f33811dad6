package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode classifies an application error for HTTP mapping and logging.
type ErrorCode string

const (
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeBadSignature ErrorCode = "BAD_SIGNATURE"
	ErrCodeExpired      ErrorCode = "EXPIRED"

	// Anti-cheat rejections of a structurally valid ride proof.
	ErrCodeAntiCheat ErrorCode = "ANTICHEAT_REJECTED"

	// A ride proof whose hash has already been awarded.
	ErrCodeAlreadyClaimed ErrorCode = "ALREADY_CLAIMED"

	// Document store failure. Reported to callers as an opaque message.
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"
)

// AppError is a typed application error. Message carries the wire slug
// returned to clients (e.g. "bad_signature"); Cause is internal only.
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error code onto the response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidation, ErrCodeAntiCheat:
		return http.StatusBadRequest
	case ErrCodeUnauthorized, ErrCodeBadSignature, ErrCodeExpired:
		return http.StatusUnauthorized
	case ErrCodeAlreadyClaimed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsInternal reports whether the error must be hidden behind an opaque
// message at the HTTP boundary.
func (e *AppError) IsInternal() bool {
	return e.Code == ErrCodeInternal || e.Code == ErrCodeStorage
}

func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// NewValidationError reports a malformed or out-of-range request field.
func NewValidationError(message string) *AppError {
	return New(ErrCodeValidation, message)
}

func NewUnauthorizedError(message string) *AppError {
	return New(ErrCodeUnauthorized, message)
}

// NewStorageError wraps a document store failure. The slug stays generic so
// nothing about the storage backend leaks to the caller.
func NewStorageError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStorage, "storage_failed").WithDetail("operation", operation)
}

// AsAppError extracts an *AppError from err, if it is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
