package util

import "github.com/oklog/ulid/v2"

// NewULID generates a new ULID string, used as the run identifier for a
// batch so its log lines and summary can be correlated.
func NewULID() string {
	return ulid.Make().String()
}
