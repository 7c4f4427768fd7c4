package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainavailability "stayquote/internal/domain/availability"
	"stayquote/internal/domain/shared/money"
	"stayquote/internal/infra/storage/memory"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seededRepo(t *testing.T) *memory.CalendarRepository {
	t.Helper()
	repo := memory.NewCalendarRepository()
	cal := domainavailability.NewCalendar("prop-1", money.Must(100000, "USD"), 2, 0)
	cal.Blocked = []domainavailability.BlockedDate{
		{Date: day(2024, 6, 10), Reason: domainavailability.ReasonBooked},
	}
	require.NoError(t, repo.Save(context.Background(), cal))
	return repo
}

func fixedNow() time.Time { return day(2024, 6, 1) }

func TestResolveClickStartsSelection(t *testing.T) {
	h := &ResolveClickHandler{Repo: seededRepo(t), Now: fixedNow}

	sel, err := h.Handle(context.Background(), ResolveClickQuery{
		PropertyID: "prop-1",
		Clicked:    day(2024, 6, 12),
	})
	require.NoError(t, err)
	assert.True(t, sel.OK)
	assert.Equal(t, "2024-06-12", sel.CheckIn)
	assert.Empty(t, sel.CheckOut)
	assert.Equal(t, string(domainavailability.AwaitingCheckOut), sel.Phase)
}

func TestResolveClickBookedDateLeavesStateUnchanged(t *testing.T) {
	h := &ResolveClickHandler{Repo: seededRepo(t), Now: fixedNow}

	sel, err := h.Handle(context.Background(), ResolveClickQuery{
		PropertyID: "prop-1",
		Clicked:    day(2024, 6, 10),
	})
	require.NoError(t, err)
	assert.False(t, sel.OK)
	assert.Equal(t, string(domainavailability.RejectBlocked), sel.Reason)
	assert.Empty(t, sel.CheckIn, "check-in stays unset after a rejected click")
}

func TestResolveClickCompletesRange(t *testing.T) {
	h := &ResolveClickHandler{Repo: seededRepo(t), Now: fixedNow}

	sel, err := h.Handle(context.Background(), ResolveClickQuery{
		PropertyID: "prop-1",
		CheckIn:    day(2024, 6, 12),
		Clicked:    day(2024, 6, 15),
	})
	require.NoError(t, err)
	assert.True(t, sel.OK)
	assert.Equal(t, "2024-06-12", sel.CheckIn)
	assert.Equal(t, "2024-06-15", sel.CheckOut)
	assert.Equal(t, 3, sel.Nights)
}

func TestResolveClickMinStayRejection(t *testing.T) {
	h := &ResolveClickHandler{Repo: seededRepo(t), Now: fixedNow}

	sel, err := h.Handle(context.Background(), ResolveClickQuery{
		PropertyID: "prop-1",
		CheckIn:    day(2024, 6, 12),
		Clicked:    day(2024, 6, 13),
	})
	require.NoError(t, err)
	assert.False(t, sel.OK)
	assert.Equal(t, string(domainavailability.RejectBelowMinStay), sel.Reason)
	assert.Equal(t, "2024-06-12", sel.CheckIn)
	assert.Empty(t, sel.CheckOut)
}

func TestResolveClickUnknownProperty(t *testing.T) {
	h := &ResolveClickHandler{Repo: seededRepo(t), Now: fixedNow}

	_, err := h.Handle(context.Background(), ResolveClickQuery{
		PropertyID: "prop-unknown",
		Clicked:    day(2024, 6, 12),
	})
	assert.ErrorIs(t, err, domainavailability.ErrCalendarNotFound)
}

func TestGetCalendarMonthView(t *testing.T) {
	h := &GetCalendarHandler{Repo: seededRepo(t), Now: fixedNow}

	cal, err := h.Handle(context.Background(), GetCalendarQuery{
		PropertyID: "prop-1",
		Year:       2024,
		Month:      time.June,
	})
	require.NoError(t, err)
	assert.Equal(t, "prop-1", cal.PropertyID)
	assert.Equal(t, "2024-06", cal.Month)
	assert.Equal(t, 2, cal.MinStay)
	require.Len(t, cal.Days, 30)
	assert.True(t, cal.Days[9].Blocked, "June 10th is booked")
	assert.Equal(t, "BOOKED", cal.Days[9].Reason)
	assert.False(t, cal.Days[11].Blocked)
}
