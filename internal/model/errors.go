package model

import (
	"errors"
	"fmt"
)

// ErrDataError is matched by every *DataError through errors.Is.
var ErrDataError = errors.New("data error")

// ErrMissingCounters marks a comparison that fell back to identifiers only.
var ErrMissingCounters = errors.New("missing counters")

// DataError reports a malformed snapshot or policy. It is fatal for the
// comparison and carries every problem found.
type DataError struct {
	Suite string
	Err   error
}

// NewDataError wraps err as a DataError for suite.
func NewDataError(suite string, err error) *DataError {
	return &DataError{Suite: suite, Err: err}
}

func (e *DataError) Error() string {
	if e.Suite == "" {
		return fmt.Sprintf("data error: %v", e.Err)
	}

	return fmt.Sprintf("data error in %q snapshot: %v", e.Suite, e.Err)
}

// Unwrap returns the underlying problem.
func (e *DataError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDataError) succeed for any DataError.
func (e *DataError) Is(target error) bool {
	return target == ErrDataError
}
