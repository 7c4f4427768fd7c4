package memory

import (
	"context"
	"sync"

	domainavailability "stayquote/internal/domain/availability"
)

// CalendarRepository is an in-memory rate-calendar store used for tests
// and local runs.
type CalendarRepository struct {
	mu    sync.RWMutex
	items map[domainavailability.PropertyID]*domainavailability.RateCalendar
}

func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{
		items: make(map[domainavailability.PropertyID]*domainavailability.RateCalendar),
	}
}

// Calendar returns the stored calendar or ErrCalendarNotFound.
func (r *CalendarRepository) Calendar(ctx context.Context, id domainavailability.PropertyID) (*domainavailability.RateCalendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cal, ok := r.items[id]
	if !ok {
		return nil, domainavailability.ErrCalendarNotFound
	}
	return cal, nil
}

// Save stores/updates a calendar entry.
func (r *CalendarRepository) Save(ctx context.Context, cal *domainavailability.RateCalendar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cal.Version++
	r.items[cal.PropertyID] = cal
	return nil
}

var _ domainavailability.Repository = (*CalendarRepository)(nil)
