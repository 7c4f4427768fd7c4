package availability

import (
	"context"
	"time"

	"stayquote/internal/app/dto"
	"stayquote/internal/app/queries"
	domainavailability "stayquote/internal/domain/availability"
)

const getCalendarKey = "availability.calendar"

type GetCalendarQuery struct {
	PropertyID string
	Year       int
	Month      time.Month
}

func (q GetCalendarQuery) Key() string { return getCalendarKey }

type GetCalendarHandler struct {
	Repo domainavailability.Repository
	Now  func() time.Time
}

func (h *GetCalendarHandler) Handle(ctx context.Context, q GetCalendarQuery) (dto.Calendar, error) {
	cal, err := h.Repo.Calendar(ctx, domainavailability.PropertyID(q.PropertyID))
	if err != nil {
		return dto.Calendar{}, err
	}
	return dto.MapCalendar(cal, q.Year, q.Month, h.now()), nil
}

func (h *GetCalendarHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

var _ queries.Handler[GetCalendarQuery, dto.Calendar] = (*GetCalendarHandler)(nil)
