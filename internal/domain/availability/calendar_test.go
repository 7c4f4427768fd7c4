package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayquote/internal/domain/shared/daterange"
	"stayquote/internal/domain/shared/money"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestCalendar() *RateCalendar {
	return NewCalendar("prop-1", money.Must(100000, "USD"), 2, 30)
}

func TestIsDateBlockedPastDates(t *testing.T) {
	cal := newTestCalendar()
	today := day(2026, 6, 15)

	assert.True(t, cal.IsDateBlocked(day(2026, 6, 14), today))
	assert.False(t, cal.IsDateBlocked(day(2026, 6, 15), today), "today itself is selectable")
	assert.False(t, cal.IsDateBlocked(day(2026, 6, 16), today))
}

func TestIsDateBlockedEntries(t *testing.T) {
	cal := newTestCalendar()
	cal.Blocked = []BlockedDate{
		{Date: day(2026, 6, 20), Reason: ReasonBooked},
		{Date: day(2026, 6, 21), Reason: ReasonAvailable},
		// duplicate entry for the 21st; the first one wins
		{Date: day(2026, 6, 21), Reason: ReasonBooked},
	}
	today := day(2026, 6, 15)

	assert.True(t, cal.IsDateBlocked(day(2026, 6, 20), today))
	assert.False(t, cal.IsDateBlocked(day(2026, 6, 21), today), "AVAILABLE override unblocks the day")
	assert.False(t, cal.IsDateBlocked(day(2026, 6, 22), today))
}

func TestNightlyPriceOverride(t *testing.T) {
	cal := newTestCalendar()
	cal.Overrides = []RateOverride{
		{Date: day(2026, 6, 20), Nightly: money.Must(150000, "USD"), Special: true},
	}

	assert.Equal(t, int64(150000), cal.NightlyPrice(day(2026, 6, 20)).Amount)
	assert.Equal(t, int64(100000), cal.NightlyPrice(day(2026, 6, 21)).Amount)
}

func TestFreeForStay(t *testing.T) {
	cal := newTestCalendar()
	cal.Blocked = []BlockedDate{{Date: day(2026, 6, 20), Reason: ReasonBooked}}
	today := day(2026, 6, 15)

	free, _ := daterange.New(day(2026, 6, 16), day(2026, 6, 19))
	assert.True(t, cal.FreeForStay(free, today))

	crossing, _ := daterange.New(day(2026, 6, 18), day(2026, 6, 22))
	assert.False(t, cal.FreeForStay(crossing, today))

	// Checkout on the blocked day is fine; the blocked day is no night
	// of the stay.
	ending, _ := daterange.New(day(2026, 6, 18), day(2026, 6, 20))
	assert.True(t, cal.FreeForStay(ending, today))
}

func TestBlockDatesRecordsEvent(t *testing.T) {
	cal := newTestCalendar()
	now := day(2026, 6, 15)

	cal.BlockDates([]time.Time{day(2026, 7, 1), day(2026, 7, 2)}, ReasonHostBlock, now)
	require.Len(t, cal.Blocked, 2)

	evts := cal.PendingEvents()
	require.Len(t, evts, 1)
	assert.Equal(t, "calendar.blocked", evts[0].EventName())
	assert.Equal(t, "prop-1", evts[0].AggregateID())

	// Re-blocking the same day keeps the first entry and raises nothing.
	cal.ClearEvents()
	cal.BlockDates([]time.Time{day(2026, 7, 1)}, ReasonBooked, now)
	assert.Len(t, cal.Blocked, 2)
	assert.Empty(t, cal.PendingEvents())
}

func TestReleaseDate(t *testing.T) {
	cal := newTestCalendar()
	now := day(2026, 6, 15)
	cal.BlockDates([]time.Time{day(2026, 7, 1)}, ReasonHostBlock, now)
	cal.ClearEvents()

	require.NoError(t, cal.ReleaseDate(day(2026, 7, 1), now))
	assert.Empty(t, cal.Blocked)
	evts := cal.PendingEvents()
	require.Len(t, evts, 1)
	assert.Equal(t, "calendar.released", evts[0].EventName())

	assert.ErrorIs(t, cal.ReleaseDate(day(2026, 7, 1), now), ErrDateNotBlocked)
}

func TestSetRatesValidation(t *testing.T) {
	cal := newTestCalendar()
	now := day(2026, 6, 15)

	assert.ErrorIs(t, cal.SetBaseRate(money.Must(-1, "USD"), now), ErrNegativeRate)
	require.NoError(t, cal.SetBaseRate(money.Must(120000, "USD"), now))
	assert.Equal(t, int64(120000), cal.BaseNightly.Amount)

	err := cal.SetOverrides([]RateOverride{{Date: day(2026, 7, 1), Nightly: money.Must(-5, "USD")}}, now)
	assert.ErrorIs(t, err, ErrNegativeRate)
}

func TestMonthView(t *testing.T) {
	cal := newTestCalendar()
	cal.Blocked = []BlockedDate{{Date: day(2026, 6, 20), Reason: ReasonBooked}}
	cal.Overrides = []RateOverride{{Date: day(2026, 6, 25), Nightly: money.Must(140000, "USD"), Special: true}}
	today := day(2026, 6, 15)

	days := cal.MonthView(2026, time.June, today)
	require.Len(t, days, 30)

	assert.True(t, days[0].Blocked, "June 1st is past")
	assert.Equal(t, ReasonUnavailable, days[0].Reason)
	assert.False(t, days[14].Blocked, "today is selectable")

	assert.True(t, days[19].Blocked)
	assert.Equal(t, ReasonBooked, days[19].Reason)

	assert.Equal(t, int64(140000), days[24].Nightly.Amount)
	assert.True(t, days[24].Special)
	assert.Equal(t, int64(100000), days[25].Nightly.Amount)
}
