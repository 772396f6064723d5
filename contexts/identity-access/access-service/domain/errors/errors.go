package errors

import (
	"errors"
	"fmt"
)

// Deny taxonomy. Every denial is a typed value callers branch on with
// errors.Is; the module never collapses one reason into another.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrOrgNotFound     = errors.New("organization not found")
	ErrForbidden       = errors.New("forbidden")
	ErrFeatureDisabled = errors.New("feature disabled")
	ErrConfigMissing   = errors.New("single-organization configuration missing")
	ErrInvalidScope    = errors.New("invalid scope")
	ErrUnknownRole     = errors.New("unknown role")
)

// ResolutionError marks an adapter failure or timeout. It is not a
// privilege decision: callers must never treat it as FORBIDDEN, and the
// HTTP layer maps it to a gateway failure rather than a deny status.
type ResolutionError struct {
	Op  string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolution failed in %s: %v", e.Op, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NewResolution wraps an adapter failure with the operation that hit it.
func NewResolution(op string, err error) error {
	return &ResolutionError{Op: op, Err: err}
}

// IsResolution reports whether err is an adapter failure rather than a deny.
func IsResolution(err error) bool {
	var re *ResolutionError
	return errors.As(err, &re)
}
