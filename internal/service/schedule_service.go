package service

import (
	"context"

	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// ScheduleService is the business-logic layer for schedules: generic CRUD
// plus the exploration protocol.
type ScheduleService struct {
	*Resource[domain.Schedule, domain.SchedulePatch]

	repo store.ScheduleRepository
}

// NewScheduleService creates a ScheduleService over the given repository.
func NewScheduleService(repo store.ScheduleRepository) *ScheduleService {
	return &ScheduleService{
		Resource: NewResource[domain.Schedule, domain.SchedulePatch](repo),
		repo:     repo,
	}
}

// Explore runs a filtered, sorted, paginated listing over schedules.
func (s *ScheduleService) Explore(
	ctx context.Context,
	req store.ExplorationRequest,
) (*store.ExplorationResult[domain.Schedule], error) {
	return s.repo.Explore(ctx, req)
}
