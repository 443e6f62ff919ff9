package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubEntity is a minimal Entity for protocol-level tests.
type stubEntity struct {
	ID uuid.UUID
}

func (s stubEntity) EntityID() uuid.UUID { return s.ID }

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrScheduleNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", ErrScheduleNotFound)))

	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(errors.New("something else")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrUsernameExists))
	assert.True(t, IsDuplicateError(ErrEmailExists))

	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreErrorUnwrap(t *testing.T) {
	t.Parallel()

	wrapped := NewStoreError("schedule", "update", "merge failed", ErrScheduleNotFound)

	assert.ErrorIs(t, wrapped, ErrScheduleNotFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Contains(t, wrapped.Error(), "update operation on schedule failed")
}
