package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Schedule validation errors. All wrap ErrValidation so the transport
// layer classifies them uniformly.
var (
	ErrEmptyScheduleID   = fmt.Errorf("%w: schedule ID cannot be empty", ErrValidation)
	ErrEmptyScheduleName = fmt.Errorf("%w: schedule name cannot be empty", ErrValidation)
	ErrEmptyStart        = fmt.Errorf("%w: schedule start time cannot be empty", ErrValidation)
	ErrEndBeforeStart    = fmt.Errorf("%w: schedule end time cannot be before its start time", ErrValidation)
)

// Schedule represents a single scheduled event.
type Schedule struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
	Desc      string     `json:"desc,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SchedulePatch describes a partial update of a Schedule. Nil fields are
// left untouched by the store; its JSON form therefore contains exactly the
// fields the caller wants changed.
type SchedulePatch struct {
	Name  *string    `json:"name,omitempty"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
	Desc  *string    `json:"desc,omitempty"`
}

// NewSchedule creates a new Schedule with a generated ID and timestamps.
// Returns an error if validation fails.
func NewSchedule(name string, start time.Time, end *time.Time, desc string) (*Schedule, error) {
	now := time.Now().UTC()
	schedule := &Schedule{
		ID:        uuid.New(),
		Name:      name,
		Start:     start,
		End:       end,
		Desc:      desc,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	return schedule, nil
}

// Validate checks if the Schedule has valid data.
func (s *Schedule) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptyScheduleID
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyScheduleName
	}
	if s.Start.IsZero() {
		return ErrEmptyStart
	}
	if s.End != nil && s.End.Before(s.Start) {
		return ErrEndBeforeStart
	}
	return nil
}

// EntityID returns the schedule's unique identifier.
func (s Schedule) EntityID() uuid.UUID { return s.ID }
