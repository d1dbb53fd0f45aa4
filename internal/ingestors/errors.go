package ingestors

import (
	"errors"
	"fmt"
)

// ErrLineRejected is wrapped by every parse failure. Callers only need errors.Is; the wrapped
// message says which field failed and is meant for debug logs.
var ErrLineRejected = errors.New("line rejected")

func errRejected(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLineRejected, fmt.Sprintf(format, args...))
}
