// Package ringerr defines the construction-error taxonomy shared by clock,
// shm, ringcfg, and benchlog: resource-acquisition failures that must be
// reported before any partially-built object escapes to the caller.
package ringerr

import "fmt"

// Code identifies the class of a ConstructionError without requiring the
// caller to parse the wrapped message.
type Code string

const (
	CodeNameCollision     Code = "name_collision"
	CodePermissionDenied  Code = "permission_denied"
	CodeSizeMismatch      Code = "size_mismatch"
	CodeUpdaterSpawn      Code = "updater_spawn_failed"
	CodeSourceUnavailable Code = "clock_source_unavailable"
	CodeConfigDecode      Code = "config_decode_failed"
	CodeStoreUnavailable  Code = "store_unavailable"
)

// ConstructionError wraps a fatal failure raised while building a ring,
// clock, or shared-memory segment. It always carries a stable Code a
// caller can switch on, plus the underlying cause for logging.
type ConstructionError struct {
	Code Code
	Op   string
	Err  error
}

func New(code Code, op string, err error) *ConstructionError {
	return &ConstructionError{Code: code, Op: op, Err: err}
}

func (e *ConstructionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
