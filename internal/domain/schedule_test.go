package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedule(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("valid schedule", func(t *testing.T) {
		t.Parallel()
		schedule, err := NewSchedule("standup", start, &end, "daily sync")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, schedule.ID)
		assert.Equal(t, "standup", schedule.Name)
		assert.Equal(t, start, schedule.Start)
		require.NotNil(t, schedule.End)
		assert.Equal(t, end, *schedule.End)
		assert.False(t, schedule.CreatedAt.IsZero())
	})

	t.Run("open-ended schedule", func(t *testing.T) {
		t.Parallel()
		schedule, err := NewSchedule("standup", start, nil, "")
		require.NoError(t, err)
		assert.Nil(t, schedule.End)
	})

	t.Run("end equal to start is allowed", func(t *testing.T) {
		t.Parallel()
		same := start
		_, err := NewSchedule("standup", start, &same, "")
		assert.NoError(t, err)
	})

	tests := []struct {
		name     string
		schedule func() (*Schedule, error)
		wantErr  error
	}{
		{"empty name", func() (*Schedule, error) {
			return NewSchedule("", start, nil, "")
		}, ErrEmptyScheduleName},
		{"whitespace name", func() (*Schedule, error) {
			return NewSchedule("  \t", start, nil, "")
		}, ErrEmptyScheduleName},
		{"zero start", func() (*Schedule, error) {
			return NewSchedule("standup", time.Time{}, nil, "")
		}, ErrEmptyStart},
		{"end before start", func() (*Schedule, error) {
			early := start.Add(-time.Minute)
			return NewSchedule("standup", start, &early, "")
		}, ErrEndBeforeStart},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			_, err := tc.schedule()
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSchedulePatchJSONContainsOnlySetFields(t *testing.T) {
	t.Parallel()

	name := "renamed"
	patch := SchedulePatch{Name: &name}

	raw, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"renamed"}`, string(raw))

	raw, err = json.Marshal(SchedulePatch{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}
