package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used for run ids and request ids.
var NewULID = func() string {
	return ulid.Make().String()
}

// IsValid reports whether id is a canonical ULID string.
func IsValid(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
