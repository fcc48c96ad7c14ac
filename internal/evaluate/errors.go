package evaluate

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound indicates evaluate was called for a user with no
// stored profile. Profiles are only created through explicit enrollment,
// never implicitly at evaluation time.
var ErrProfileNotFound = errors.New("profile not found")

// PersistenceError indicates the profile store failed to read or write.
// The evaluator does not retry; the caller owns user-facing messaging.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
