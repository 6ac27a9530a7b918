package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups that reference an unknown task id.
var ErrNotFound = errors.New("task not found")

// ValidationError reports user input that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CorruptionError reports a persisted snapshot that could not be decoded.
type CorruptionError struct {
	Key string
	Err error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("stored %q is corrupted: %v", e.Key, e.Err)
}

func (e *CorruptionError) Unwrap() error {
	return e.Err
}
