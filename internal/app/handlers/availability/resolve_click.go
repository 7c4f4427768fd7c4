package availability

import (
	"context"
	"time"

	"stayquote/internal/app/dto"
	"stayquote/internal/app/queries"
	domainavailability "stayquote/internal/domain/availability"
)

const resolveClickKey = "availability.resolve_click"

// ResolveClickQuery applies one date click to a caller-held selection.
// The selector itself stays stateless on the server: the client posts
// its current check-in/check-out pair and receives the next state plus
// a verdict when the click was rejected.
type ResolveClickQuery struct {
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	Clicked    time.Time
	Hover      time.Time
}

func (q ResolveClickQuery) Key() string { return resolveClickKey }

type ResolveClickHandler struct {
	Repo domainavailability.Repository
	Now  func() time.Time
}

func (h *ResolveClickHandler) Handle(ctx context.Context, q ResolveClickQuery) (dto.Selection, error) {
	cal, err := h.Repo.Calendar(ctx, domainavailability.PropertyID(q.PropertyID))
	if err != nil {
		return dto.Selection{}, err
	}

	sel := domainavailability.NewSelector(cal, h.now())
	sel.Restore(q.CheckIn, q.CheckOut)
	if !q.Hover.IsZero() {
		sel.Hover(q.Hover)
	}
	res := sel.Click(q.Clicked)
	return dto.MapSelection(cal.PropertyID, sel, res), nil
}

func (h *ResolveClickHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

var _ queries.Handler[ResolveClickQuery, dto.Selection] = (*ResolveClickHandler)(nil)
