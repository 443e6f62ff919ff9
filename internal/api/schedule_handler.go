package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/service"
)

// ScheduleHandler serves the schedules resource: generic CRUD plus
// exploration.
type ScheduleHandler struct {
	*ResourceHandler[domain.Schedule, domain.SchedulePatch]

	schedules *service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler over the given service.
func NewScheduleHandler(schedules *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		ResourceHandler: NewResourceHandler[domain.Schedule, domain.SchedulePatch](
			schedules, decodeCreateSchedule, decodeUpdateSchedule),
		schedules: schedules,
	}
}

// Explore handles POST /schedules/explore.
func (h *ScheduleHandler) Explore(w http.ResponseWriter, r *http.Request) {
	handleExplore(w, r, h.validate, h.schedules)
}

func decodeCreateSchedule(r *http.Request, v *validator.Validate) (*domain.Schedule, error) {
	var req CreateScheduleRequest
	if err := DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	if err := v.Struct(req); err != nil {
		return nil, err
	}
	return domain.NewSchedule(req.Name, req.Start, req.End, req.Desc)
}

func decodeUpdateSchedule(r *http.Request, v *validator.Validate) (uuid.UUID, domain.SchedulePatch, error) {
	var req UpdateScheduleRequest
	if err := DecodeJSON(r, &req); err != nil {
		return uuid.Nil, domain.SchedulePatch{}, err
	}
	if err := v.Struct(req); err != nil {
		return uuid.Nil, domain.SchedulePatch{}, err
	}
	return req.ID, domain.SchedulePatch{
		Name:  req.Name,
		Start: req.Start,
		End:   req.End,
		Desc:  req.Desc,
	}, nil
}
