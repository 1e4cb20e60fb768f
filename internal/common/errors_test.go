package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transient model error", &ModelInvocationError{Transient: true, Status: 429}, true},
		{"permanent model error", &ModelInvocationError{Transient: false, Status: 401}, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped transient", fmt.Errorf("invoke: %w", &ModelInvocationError{Transient: true}), true},
		{"extraction error", &ExtractionError{Key: "a.pdf", Cause: errors.New("bad")}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	cause := errors.New("root cause")

	assert.ErrorIs(t, &ExtractionError{Key: "x", Cause: cause}, cause)
	assert.ErrorIs(t, &ModelInvocationError{Cause: cause}, cause)
	assert.ErrorIs(t, &MalformedResponseError{Raw: "{}", Cause: cause}, cause)
	assert.ErrorIs(t, &PersistenceConflictError{Key: "k", Cause: cause}, cause)
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "context"))

	err := WrapError(ErrNotFound, "lookup competition")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "lookup competition")
}
