package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// ScheduleStore persists schedules as JSONB documents.
type ScheduleStore struct {
	*ResourceStore[domain.Schedule, domain.SchedulePatch]
}

// Ensure ScheduleStore implements the full schedule storage surface.
var _ store.ScheduleRepository = (*ScheduleStore)(nil)

// NewScheduleStore creates a PostgreSQL-backed schedule store.
func NewScheduleStore(db *sql.DB, log *slog.Logger) *ScheduleStore {
	return &ScheduleStore{
		ResourceStore: NewResourceStore[domain.Schedule, domain.SchedulePatch](db, ResourceStoreConfig{
			Table:      "schedules",
			Entity:     "schedule",
			NotFound:   store.ErrScheduleNotFound,
			Searchable: []string{"name", "start", "end", "desc"},
			Sortable:   []string{"name", "start", "end", "desc", "created_at"},
		}, log),
	}
}
