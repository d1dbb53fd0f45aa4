package stores

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeInvalidRunID        = "STR_1000"
	codeReportNotFound      = "STR_1001"
	codeReportAlreadyExists = "STR_1002"
	codeInternalStoreFailed = "STR_9000"
)

// errInvalidRunID returns an error when a run id is not a ULID.
func errInvalidRunID(runID string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRunID, fmt.Sprintf("invalid run id %q", runID), nil)
}

// errReportNotFound returns an error when no report was archived under the run id.
func errReportNotFound(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("report %s not found", runID), cause)
}

// errReportAlreadyExists returns an error when a report was already archived under the run id.
func errReportAlreadyExists(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyExists, fmt.Sprintf("report %s already exists", runID), cause)
}

// errInternalStoreFailed returns an error when the underlying storage fails.
func errInternalStoreFailed(op string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreFailed, fmt.Errorf("%s: %w", op, cause))
}
