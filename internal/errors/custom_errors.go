package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinel errors shared by the stores and the composition service. Callers
// match them with errors.Is; MapError turns them into AppErrors.
var (
	ErrConstraintViolation = stderrors.New("constraint violation")
	ErrNotFound            = stderrors.New("not found")
	ErrPartialWrite        = stderrors.New("partial write inconsistency")
	ErrInvalidInput        = stderrors.New("invalid input")
	ErrInvalidID           = stderrors.New("invalid identifier")
	ErrEntityBusy          = stderrors.New("entity is locked by another request")
	ErrUnauthorized        = stderrors.New("unauthorized")
	ErrForbidden           = stderrors.New("forbidden")
	ErrEmailTaken          = stderrors.New("email already registered")
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// PartialWriteError records which stores diverged during a composed write.
type PartialWriteError struct {
	Operation  string
	PropertyID string
	Cause      error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("%s property %s left stores inconsistent: %v", e.Operation, e.PropertyID, e.Cause)
}

func (e *PartialWriteError) Unwrap() []error {
	return []error{ErrPartialWrite, e.Cause}
}

// Common error codes
const (
	ErrCodePropertyNotFound    = "PROPERTY_NOT_FOUND"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited         = "RATE_LIMITED"
	ErrCodeInvalidParameters   = "INVALID_PARAMETERS"
	ErrCodeConstraintViolation = "CONSTRAINT_VIOLATION"
	ErrCodePartialWrite        = "PARTIAL_WRITE"
	ErrCodeEntityBusy          = "ENTITY_BUSY"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeEmailTaken          = "EMAIL_TAKEN"
	ErrCodeInternal            = "INTERNAL_ERROR"
)
