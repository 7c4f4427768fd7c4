package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayquote/internal/domain/shared/money"
)

func newTestSelector(minStay, maxStay int, blocked ...time.Time) *Selector {
	cal := NewCalendar("prop-1", money.Must(100000, "USD"), minStay, maxStay)
	for _, d := range blocked {
		cal.Blocked = append(cal.Blocked, BlockedDate{Date: d, Reason: ReasonBooked})
	}
	return NewSelector(cal, day(2026, 6, 1))
}

func TestClickSetsCheckInThenCheckOut(t *testing.T) {
	sel := newTestSelector(1, 0)

	res := sel.Click(day(2026, 6, 10))
	require.True(t, res.OK)
	assert.Equal(t, AwaitingCheckOut, sel.Phase())

	res = sel.Click(day(2026, 6, 13))
	require.True(t, res.OK)
	assert.Equal(t, AwaitingCheckIn, sel.Phase())

	r, ok := sel.Range()
	require.True(t, ok)
	assert.Equal(t, 3, r.Nights())
}

func TestClickBlockedDateIsRejected(t *testing.T) {
	booked := day(2026, 6, 10)
	sel := newTestSelector(1, 0, booked)

	res := sel.Click(booked)
	assert.False(t, res.OK)
	assert.Equal(t, RejectBlocked, res.Reason)
	_, ok := sel.CheckIn()
	assert.False(t, ok, "rejected click must not set a check-in")
}

func TestClickPastDateIsRejected(t *testing.T) {
	sel := newTestSelector(1, 0)

	res := sel.Click(day(2026, 5, 31))
	assert.False(t, res.OK)
	assert.Equal(t, RejectBlocked, res.Reason)
}

func TestClickEarlierDateRestartsSelection(t *testing.T) {
	sel := newTestSelector(1, 0)
	require.True(t, sel.Click(day(2026, 6, 10)).OK)

	res := sel.Click(day(2026, 6, 8))
	require.True(t, res.OK)
	assert.Equal(t, AwaitingCheckOut, sel.Phase())
	in, _ := sel.CheckIn()
	assert.Equal(t, day(2026, 6, 8), in)
	_, ok := sel.CheckOut()
	assert.False(t, ok)
}

func TestMinStayRejectionKeepsState(t *testing.T) {
	sel := newTestSelector(3, 0)
	require.True(t, sel.Click(day(2026, 6, 10)).OK)

	res := sel.Click(day(2026, 6, 12)) // 2 nights < 3
	assert.False(t, res.OK)
	assert.Equal(t, RejectBelowMinStay, res.Reason)
	assert.Equal(t, AwaitingCheckOut, sel.Phase())
	_, ok := sel.CheckOut()
	assert.False(t, ok)

	// Same-day click is zero nights, also below any minimum.
	res = sel.Click(day(2026, 6, 10))
	assert.False(t, res.OK)
	assert.Equal(t, RejectBelowMinStay, res.Reason)

	require.True(t, sel.Click(day(2026, 6, 13)).OK)
	r, ok := sel.Range()
	require.True(t, ok)
	assert.Equal(t, 3, r.Nights())
}

func TestMaxStayRejection(t *testing.T) {
	sel := newTestSelector(1, 5)
	require.True(t, sel.Click(day(2026, 6, 10)).OK)

	res := sel.Click(day(2026, 6, 20))
	assert.False(t, res.OK)
	assert.Equal(t, RejectAboveMaxStay, res.Reason)

	require.True(t, sel.Click(day(2026, 6, 15)).OK)
}

func TestCompletedRangeRestartsOnNextClick(t *testing.T) {
	sel := newTestSelector(1, 0)
	require.True(t, sel.Click(day(2026, 6, 10)).OK)
	require.True(t, sel.Click(day(2026, 6, 12)).OK)

	// Range is complete; a new click begins a fresh selection.
	require.True(t, sel.Click(day(2026, 6, 20)).OK)
	assert.Equal(t, AwaitingCheckOut, sel.Phase())
	in, _ := sel.CheckIn()
	assert.Equal(t, day(2026, 6, 20), in)
	_, ok := sel.CheckOut()
	assert.False(t, ok)
}

func TestRangeOrderingInvariant(t *testing.T) {
	sel := newTestSelector(1, 0)
	clicks := []time.Time{
		day(2026, 6, 10), day(2026, 6, 8), day(2026, 6, 8), // restart + same-day reject
		day(2026, 6, 14), day(2026, 6, 3), day(2026, 6, 5),
	}
	for _, c := range clicks {
		sel.Click(c)
		if r, ok := sel.Range(); ok {
			assert.True(t, r.CheckOut.After(r.CheckIn), "committed range must be ordered")
		}
	}
}

func TestHoverPreview(t *testing.T) {
	sel := newTestSelector(1, 0)
	require.True(t, sel.Click(day(2026, 6, 10)).OK)

	sel.Hover(day(2026, 6, 14))
	assert.True(t, sel.InRange(day(2026, 6, 12)))
	assert.False(t, sel.InRange(day(2026, 6, 10)), "bounds are exclusive")
	assert.False(t, sel.InRange(day(2026, 6, 14)))

	// Committing a checkout clears the hover and pins the range.
	require.True(t, sel.Click(day(2026, 6, 13)).OK)
	assert.True(t, sel.InRange(day(2026, 6, 12)))
	assert.False(t, sel.InRange(day(2026, 6, 13)))
}

func TestClearResetsSelection(t *testing.T) {
	sel := newTestSelector(1, 0)
	require.True(t, sel.Click(day(2026, 6, 10)).OK)
	sel.Clear()

	assert.Equal(t, AwaitingCheckIn, sel.Phase())
	_, ok := sel.CheckIn()
	assert.False(t, ok)
	assert.False(t, sel.InRange(day(2026, 6, 11)))
}

func TestRestore(t *testing.T) {
	sel := newTestSelector(1, 0)

	sel.Restore(day(2026, 6, 10), time.Time{})
	assert.Equal(t, AwaitingCheckOut, sel.Phase())

	sel.Restore(day(2026, 6, 10), day(2026, 6, 13))
	assert.Equal(t, AwaitingCheckIn, sel.Phase())
	r, ok := sel.Range()
	require.True(t, ok)
	assert.Equal(t, 3, r.Nights())

	// Inverted input degrades to a check-in only selection.
	sel.Restore(day(2026, 6, 10), day(2026, 6, 9))
	assert.Equal(t, AwaitingCheckOut, sel.Phase())
	_, ok = sel.CheckOut()
	assert.False(t, ok)
}
