package errors

import (
	"context"
	stderrors "errors"
	"net/http"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()
	build := func(userMessage, code string, status int) *AppError {
		return NewAppError(technicalMessage, userMessage, code, status, err)
	}

	// Partial writes are checked first: they may also wrap a constraint or
	// store error from the failed step.
	switch {
	case stderrors.Is(err, ErrPartialWrite):
		return build(MsgPartialWrite, ErrCodePartialWrite, http.StatusInternalServerError)
	case stderrors.Is(err, ErrInvalidInput), stderrors.Is(err, ErrInvalidID):
		return build(MsgInvalidParameters, ErrCodeInvalidParameters, http.StatusBadRequest)
	case stderrors.Is(err, ErrNotFound):
		return build(MsgPropertyNotFound, ErrCodePropertyNotFound, http.StatusNotFound)
	case stderrors.Is(err, ErrConstraintViolation):
		return build(MsgConstraintViolation, ErrCodeConstraintViolation, http.StatusConflict)
	case stderrors.Is(err, ErrEmailTaken):
		return build(MsgEmailTaken, ErrCodeEmailTaken, http.StatusConflict)
	case stderrors.Is(err, ErrEntityBusy):
		return build(MsgEntityBusy, ErrCodeEntityBusy, http.StatusConflict)
	case stderrors.Is(err, ErrUnauthorized):
		return build(MsgUnauthorized, ErrCodeUnauthorized, http.StatusUnauthorized)
	case stderrors.Is(err, ErrForbidden):
		return build(MsgForbidden, ErrCodeForbidden, http.StatusForbidden)
	case stderrors.Is(err, context.DeadlineExceeded):
		return build(MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusServiceUnavailable)
	default:
		return build(MsgInternalError, ErrCodeInternal, http.StatusInternalServerError)
	}
}
