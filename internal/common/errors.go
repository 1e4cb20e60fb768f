package common

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors used across the pipeline.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// ExtractionError marks an unreadable or corrupt source file.
type ExtractionError struct {
	Key   string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for %s: %v", e.Key, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// ModelInvocationError wraps a failed vision-model call. Transient failures
// (timeouts, rate limits, size limits) are retry-eligible; permanent ones
// (unsupported format, auth/config) are not.
type ModelInvocationError struct {
	Transient bool
	Status    int // HTTP status when applicable, 0 otherwise
	Cause     error
}

func (e *ModelInvocationError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	if e.Status > 0 {
		return fmt.Sprintf("model invocation failed (%s, status %d): %v", kind, e.Status, e.Cause)
	}
	return fmt.Sprintf("model invocation failed (%s): %v", kind, e.Cause)
}

func (e *ModelInvocationError) Unwrap() error { return e.Cause }

// MalformedResponseError means the sanitizer could not recover a structured
// payload from the model's raw text. Raw is kept for operator diagnostics.
type MalformedResponseError struct {
	Raw   string
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("no structured payload in model response (%d bytes): %v", len(e.Raw), e.Cause)
}

func (e *MalformedResponseError) Unwrap() error { return e.Cause }

// ValidationError marks a schema or invariant violation on extracted data.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// PersistenceConflictError marks a natural-key race at the persistence
// boundary. It is resolved internally by upsert retry, never surfaced.
type PersistenceConflictError struct {
	Key   string
	Cause error
}

func (e *PersistenceConflictError) Error() string {
	return fmt.Sprintf("natural-key conflict on %s: %v", e.Key, e.Cause)
}

func (e *PersistenceConflictError) Unwrap() error { return e.Cause }

// IsTransient reports whether err is retry-eligible: a transient model
// invocation failure or a deadline expiry on an external call.
func IsTransient(err error) bool {
	var mie *ModelInvocationError
	if errors.As(err, &mie) {
		return mie.Transient
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// WrapError annotates err with a message, preserving the chain.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
