package renderers

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeUnknownFormat = "RND_1000"
)

// errUnknownFormat returns an error when no renderer exists for the requested output format.
func errUnknownFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownFormat,
		fmt.Sprintf("unknown output format %q: expected %s or %s", format, FormatJSON, FormatTable), nil)
}
