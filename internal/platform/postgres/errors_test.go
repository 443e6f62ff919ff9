package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/schedulizer/schedulizer-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows becomes not found", sql.ErrNoRows, store.ErrNotFound},
		{"wrapped no rows becomes not found",
			fmt.Errorf("query: %w", sql.ErrNoRows), store.ErrNotFound},
		{"unique violation becomes duplicate",
			pgError("23505", "users_username_key"), store.ErrDuplicate},
		{"foreign key violation becomes invalid entity",
			pgError("23503", "fk_something"), store.ErrInvalidEntity},
		{"check violation becomes invalid entity",
			pgError("23514", "chk_something"), store.ErrInvalidEntity},
		{"not null violation becomes invalid entity",
			pgError("23502", ""), store.ErrInvalidEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			got := MapError(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}

	t.Run("unknown errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		unknown := errors.New("connection reset")
		assert.Equal(t, unknown, MapError(unknown))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("insert: %w", pgError("23505", "users_email_key"))

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "users_email_key"))
	assert.False(t, IsUniqueViolation(err, "users_username_key"))
	assert.False(t, IsUniqueViolation(errors.New("other"), ""))
	assert.False(t, IsUniqueViolation(sql.ErrNoRows, ""))
}
