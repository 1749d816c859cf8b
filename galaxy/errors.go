package galaxy

import (
	"errors"
	"fmt"
)

// ErrRepairExhausted is returned when the connectivity validator cannot reach
// every sector within its bounded number of repair passes. It indicates a
// topology generator defect and is always fatal.
var ErrRepairExhausted = errors.New("connectivity repair passes exhausted")

// ErrUnreachable is returned by pathfinder queries when no path exists
// between the requested sectors. It should never occur on a validated
// universe.
var ErrUnreachable = errors.New("no path between sectors")

// ErrSectorNotFound is returned by queries referencing a sector id outside
// the generated universe.
var ErrSectorNotFound = errors.New("sector not found")

// ConfigError reports an invalid generation parameter. Configuration errors
// are detected before any generation work begins and are never retried.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid generation config: %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
