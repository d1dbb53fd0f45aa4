package http

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeInvalidStatusCode = "RPT_1000"
	codeStatusNotReported = "RPT_1001"
)

// errInvalidStatusCode returns an error when the status path parameter is not a number.
func errInvalidStatusCode(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidStatusCode,
		fmt.Sprintf("invalid status code %q: expected an integer between 0 and 65535", value), cause)
}

// errStatusNotReported returns an error when no accepted request carried the status code.
func errStatusNotReported(status string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeStatusNotReported, fmt.Sprintf("status %s does not appear in the report", status), nil)
}
