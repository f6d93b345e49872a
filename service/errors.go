package service

import (
	"errors"
	"fmt"
)

// ErrNoFamily is returned when a caller explicitly requests family scope but
// does not belong to any family. There is no meaningful partial result
// without a resolved scope, so the whole projection call fails.
var ErrNoFamily = errors.New("user does not belong to a family")

// ConfigurationError reports a stored commitment whose definition cannot be
// expanded (unknown interval unit, non-positive interval count, day of month
// out of range). The offending commitment contributes no occurrences; the
// projection run itself proceeds.
type ConfigurationError struct {
	SourceID string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid commitment configuration for %s: %s", e.SourceID, e.Reason)
}
