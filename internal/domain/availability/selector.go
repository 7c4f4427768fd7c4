package availability

import (
	"time"

	"stayquote/internal/domain/shared/daterange"
)

// Phase is the selector's position in the two-click flow.
type Phase string

const (
	AwaitingCheckIn  Phase = "AWAITING_CHECK_IN"
	AwaitingCheckOut Phase = "AWAITING_CHECK_OUT"
)

// RejectReason explains why a click left the selection untouched.
type RejectReason string

const (
	RejectBlocked      RejectReason = "blocked"
	RejectBelowMinStay RejectReason = "below_min_stay"
	RejectAboveMaxStay RejectReason = "above_max_stay"
)

// ClickResult is the discriminated outcome of a date click. Rejections
// are not errors: the selection simply did not change, and Reason says
// why so the caller can surface it.
type ClickResult struct {
	OK     bool
	Reason RejectReason
}

// Selector is the two-click check-in/check-out state machine over a
// rate calendar. It is caller-owned, single-session state; every
// transition is validated against the calendar's blocked days and the
// property's stay limits.
type Selector struct {
	cal   *RateCalendar
	today time.Time

	phase    Phase
	checkIn  time.Time
	checkOut time.Time
	hover    time.Time
}

func NewSelector(cal *RateCalendar, now time.Time) *Selector {
	return &Selector{cal: cal, today: daterange.DayOf(now), phase: AwaitingCheckIn}
}

func (s *Selector) Phase() Phase { return s.phase }

// Range returns the committed range once both ends are set.
func (s *Selector) Range() (daterange.DateRange, bool) {
	if s.checkIn.IsZero() || s.checkOut.IsZero() {
		return daterange.DateRange{}, false
	}
	return daterange.DateRange{CheckIn: s.checkIn, CheckOut: s.checkOut}, true
}

func (s *Selector) CheckIn() (time.Time, bool)  { return s.checkIn, !s.checkIn.IsZero() }
func (s *Selector) CheckOut() (time.Time, bool) { return s.checkOut, !s.checkOut.IsZero() }

// Click advances the state machine by one date click.
//
// A click on a blocked day is rejected. While awaiting a check-in the
// day becomes the new check-in. While awaiting a check-out, a day
// before the current check-in restarts the selection from that day;
// otherwise the stay length is validated against the property's
// min/max stay and on success the range is committed, returning the
// selector to the awaiting-check-in phase.
func (s *Selector) Click(date time.Time) ClickResult {
	date = daterange.DayOf(date)
	if s.cal.IsDateBlocked(date, s.today) {
		return ClickResult{OK: false, Reason: RejectBlocked}
	}

	if s.phase == AwaitingCheckIn {
		s.checkIn = date
		s.checkOut = time.Time{}
		s.phase = AwaitingCheckOut
		return ClickResult{OK: true}
	}

	if date.Before(s.checkIn) {
		// Restart the selection from the earlier day.
		s.checkIn = date
		s.checkOut = time.Time{}
		return ClickResult{OK: true}
	}

	nights := daterange.DaysBetween(s.checkIn, date)
	if nights < s.cal.MinStay {
		return ClickResult{OK: false, Reason: RejectBelowMinStay}
	}
	if s.cal.MaxStay > 0 && nights > s.cal.MaxStay {
		return ClickResult{OK: false, Reason: RejectAboveMaxStay}
	}

	s.checkOut = date
	s.phase = AwaitingCheckIn
	s.hover = time.Time{}
	return ClickResult{OK: true}
}

// Hover updates the preview date used by InRange while a check-out is
// still pending. It never affects committed state.
func (s *Selector) Hover(date time.Time) {
	s.hover = daterange.DayOf(date)
}

// InRange reports whether the day sits strictly inside the selected
// range, extending live to the hovered day while the check-out is
// unselected.
func (s *Selector) InRange(date time.Time) bool {
	if s.checkIn.IsZero() {
		return false
	}
	end := s.checkOut
	if end.IsZero() {
		end = s.hover
	}
	if end.IsZero() {
		return false
	}
	date = daterange.DayOf(date)
	return date.After(s.checkIn) && date.Before(end)
}

// Clear resets the selection to empty.
func (s *Selector) Clear() {
	s.checkIn = time.Time{}
	s.checkOut = time.Time{}
	s.hover = time.Time{}
	s.phase = AwaitingCheckIn
}

// Restore rebuilds selector state from a previously returned selection,
// used by the stateless click-resolution endpoint. Invalid combinations
// degrade to an empty selection.
func (s *Selector) Restore(checkIn, checkOut time.Time) {
	s.Clear()
	if checkIn.IsZero() {
		return
	}
	s.checkIn = daterange.DayOf(checkIn)
	s.phase = AwaitingCheckOut
	if checkOut.IsZero() {
		return
	}
	checkOut = daterange.DayOf(checkOut)
	if !checkOut.After(s.checkIn) {
		return
	}
	s.checkOut = checkOut
	s.phase = AwaitingCheckIn
}
