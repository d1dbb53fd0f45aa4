package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument  = "invalid_argument"
	categoryNotFound         = "not_found"
	categoryResourceConflict = "resource_conflict"
	categoryInternal         = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"

	internalMessage = "internal error"
)

var httpStatusByCategory = map[string]int{
	categoryInvalidArgument:  http.StatusBadRequest,
	categoryNotFound:         http.StatusNotFound,
	categoryResourceConflict: http.StatusConflict,
	categoryInternal:         http.StatusInternalServerError,
}

// ServiceError is the error every package returns across its boundary. Code is stable and owned
// by the package that raises it (FLT_, SRC_, PIP_, STR_, RND_, RPT_, SYS_).
type ServiceError struct {
	Category       string
	Code           string
	Message        string // safe to show to users
	Cause          error
	HttpStatusCode int
}

func newError(category, code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       category,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: httpStatusByCategory[category],
	}
}

func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return newError(categoryInvalidArgument, code, message, cause)
}

func NewNotFoundError(code, message string, cause error) *ServiceError {
	return newError(categoryNotFound, code, message, cause)
}

func NewResourceConflictError(code, message string, cause error) *ServiceError {
	return newError(categoryResourceConflict, code, message, cause)
}

// NewInternalError hides the cause behind a generic message; the cause is still logged and
// printed by Error.
func NewInternalError(code string, cause error) *ServiceError {
	return newError(categoryInternal, code, internalMessage, cause)
}

func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func (e *ServiceError) Error() string {
	if e.IsInternalError() && e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

// AsServiceError finds the first ServiceError in err's chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return nil, false
	}
	return svcErr, true
}

// CodeOf returns "" for nil and SYS_9001 for errors that carry no code.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	svcErr, ok := AsServiceError(err)
	if !ok {
		return errorCodeInternalUndefined
	}
	return svcErr.Code
}
