package filters

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeInvalidDateTime = "FLT_1000"
	codeInvalidTopN     = "FLT_1001"
)

// errInvalidDateTime returns an error when a --from/--to value is not "YYYY-MM-DD HH:MM".
func errInvalidDateTime(flag, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDateTime,
		fmt.Sprintf("invalid %s datetime %q: expected format YYYY-MM-DD HH:MM", flag, value), cause)
}

// errInvalidTopN returns an error when the requested number of top IPs is below 1.
func errInvalidTopN(topN int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTopN,
		fmt.Sprintf("invalid top IP count %d: must be at least 1", topN), cause)
}
