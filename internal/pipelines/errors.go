package pipelines

import (
	"errors"
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeInternalSourceReadFailed = "PIP_9000"
)

// errInvalidEncoding marks a line that is not valid UTF-8. It is counted as a skipped line.
var errInvalidEncoding = errors.New("line is not valid UTF-8")

// errInternalSourceReadFailed returns an error when the line source keeps failing to read.
func errInternalSourceReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceReadFailed, fmt.Errorf("sourceReadFailed: %w", cause))
}
