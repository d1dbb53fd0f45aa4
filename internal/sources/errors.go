package sources

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeSourceNotFound       = "SRC_1000"
	codeInternalSourceFailed = "SRC_9000"
)

// errSourceNotFound returns an error when the input log does not exist.
func errSourceNotFound(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSourceNotFound, fmt.Sprintf("input log %q not found", name), cause)
}

// errInternalSourceFailed returns an error when the input log exists but cannot be opened.
func errInternalSourceFailed(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceFailed, fmt.Errorf("openSource %s: %w", name, cause))
}
