package shared

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// AppError carries the HTTP-facing outcome of a failed operation. Services
// return AppErrors; the HTTP layer maps them to responses and everything
// else to a generic internal error, so store internals never leak out.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, err error, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Err: err}
}

func NewBadRequestError(err error, message string) *AppError {
	return NewAppError(http.StatusBadRequest, err, message)
}

func NewUnauthorizedError(err error, message string) *AppError {
	return NewAppError(http.StatusUnauthorized, err, message)
}

func NewForbiddenError(err error, message string) *AppError {
	return NewAppError(http.StatusForbidden, err, message)
}

func NewNotFoundError(err error, message string) *AppError {
	return NewAppError(http.StatusNotFound, err, message)
}

func NewConflictError(err error, message string) *AppError {
	return NewAppError(http.StatusConflict, err, message)
}

func NewInternalError(err error, message string) *AppError {
	return NewAppError(http.StatusInternalServerError, err, message)
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// FromDBError is the single boundary where store-level constraint signals
// become semantic outcomes. Callers with different semantics for a given
// violation (e.g. a missing challenge foreign key is a 404, not a 400)
// check errors.Is themselves before falling back here.
func FromDBError(err error, message string) *AppError {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewNotFoundError(err, message)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewConflictError(err, message)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NewBadRequestError(err, message)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return NewBadRequestError(err, message)
	default:
		return NewInternalError(err, message)
	}
}
