package availability

import (
	"context"
	"errors"
	"time"

	"stayquote/internal/domain/shared/daterange"
	"stayquote/internal/domain/shared/events"
	"stayquote/internal/domain/shared/money"
)

var (
	ErrCalendarNotFound = errors.New("availability: calendar not found")
	ErrDateNotBlocked   = errors.New("availability: date is not blocked")
	ErrNegativeRate     = errors.New("availability: nightly rate cannot be negative")
)

type PropertyID string

type BlockReason string

const (
	ReasonBooked      BlockReason = "BOOKED"
	ReasonHostBlock   BlockReason = "HOST_BLOCK"
	ReasonUnavailable BlockReason = "UNAVAILABLE"
	// ReasonAvailable marks an explicit availability override; an entry
	// carrying it never blocks the date.
	ReasonAvailable BlockReason = "AVAILABLE"
)

type BlockedDate struct {
	Date   time.Time
	Reason BlockReason
}

// RateOverride supersedes the base nightly rate for one calendar day.
type RateOverride struct {
	Date    time.Time
	Nightly money.Money
	Special bool
}

// RateCalendar is the per-property aggregate the engine consumes: the
// base nightly rate, per-date overrides, blocked days, stay limits and
// fee knobs.
type RateCalendar struct {
	PropertyID  PropertyID
	BaseNightly money.Money
	Overrides   []RateOverride
	Blocked     []BlockedDate

	MinStay int
	MaxStay int // 0 means unbounded

	CleaningFee       money.Money
	ServiceFeePercent float64
	TaxPercent        float64

	Version int64
	events.EventRecorder
}

type Repository interface {
	Calendar(ctx context.Context, id PropertyID) (*RateCalendar, error)
	Save(ctx context.Context, cal *RateCalendar) error
}

func NewCalendar(id PropertyID, baseNightly money.Money, minStay, maxStay int) *RateCalendar {
	if minStay < 1 {
		minStay = 1
	}
	return &RateCalendar{
		PropertyID:        id,
		BaseNightly:       baseNightly,
		MinStay:           minStay,
		MaxStay:           maxStay,
		ServiceFeePercent: 10,
		TaxPercent:        5,
		CleaningFee:       money.Money{Amount: 0, Currency: baseNightly.Currency},
	}
}

// IsDateBlocked reports whether a day cannot be selected: every day
// before today is blocked, and otherwise the first entry for the day
// decides (an AVAILABLE entry overrides later ones).
func (c *RateCalendar) IsDateBlocked(date, today time.Time) bool {
	date = daterange.DayOf(date)
	if date.Before(daterange.DayOf(today)) {
		return true
	}
	for _, b := range c.Blocked {
		if daterange.SameDay(b.Date, date) {
			return b.Reason != ReasonAvailable
		}
	}
	return false
}

// NightlyPrice returns the override rate for the day when present,
// otherwise the base nightly rate.
func (c *RateCalendar) NightlyPrice(date time.Time) money.Money {
	for _, o := range c.Overrides {
		if daterange.SameDay(o.Date, date) {
			return o.Nightly
		}
	}
	return c.BaseNightly
}

// FreeForStay reports whether every night of the range is selectable.
func (c *RateCalendar) FreeForStay(r daterange.DateRange, today time.Time) bool {
	for d := r.CheckIn; d.Before(r.CheckOut); d = d.AddDate(0, 0, 1) {
		if c.IsDateBlocked(d, today) {
			return false
		}
	}
	return true
}

// BlockDates marks the given days unavailable. Days already carrying a
// blocking entry are left as they are (first entry stays authoritative).
func (c *RateCalendar) BlockDates(dates []time.Time, reason BlockReason, now time.Time) {
	if reason == "" {
		reason = ReasonHostBlock
	}
	var blocked []time.Time
	for _, d := range dates {
		d = daterange.DayOf(d)
		if c.hasEntry(d) {
			continue
		}
		c.Blocked = append(c.Blocked, BlockedDate{Date: d, Reason: reason})
		blocked = append(blocked, d)
	}
	if len(blocked) > 0 {
		c.Record(DatesBlockedEvent(c.PropertyID, blocked, reason, now))
	}
}

// ReleaseDate removes every entry for the day, making it selectable
// again (unless it is in the past).
func (c *RateCalendar) ReleaseDate(date, now time.Time) error {
	date = daterange.DayOf(date)
	kept := c.Blocked[:0]
	released := false
	for _, b := range c.Blocked {
		if daterange.SameDay(b.Date, date) {
			released = true
			continue
		}
		kept = append(kept, b)
	}
	if !released {
		return ErrDateNotBlocked
	}
	c.Blocked = kept
	c.Record(DateReleasedEvent(c.PropertyID, date, now))
	return nil
}

func (c *RateCalendar) SetBaseRate(nightly money.Money, now time.Time) error {
	if nightly.Amount < 0 {
		return ErrNegativeRate
	}
	c.BaseNightly = nightly
	c.Record(RatesChangedEvent(c.PropertyID, now))
	return nil
}

// SetOverrides replaces the per-date rate overrides wholesale.
func (c *RateCalendar) SetOverrides(overrides []RateOverride, now time.Time) error {
	for _, o := range overrides {
		if o.Nightly.Amount < 0 {
			return ErrNegativeRate
		}
	}
	normalized := make([]RateOverride, 0, len(overrides))
	for _, o := range overrides {
		o.Date = daterange.DayOf(o.Date)
		normalized = append(normalized, o)
	}
	c.Overrides = normalized
	c.Record(RatesChangedEvent(c.PropertyID, now))
	return nil
}

func (c *RateCalendar) hasEntry(date time.Time) bool {
	for _, b := range c.Blocked {
		if daterange.SameDay(b.Date, date) {
			return true
		}
	}
	return false
}

// DayStatus is one day of the month view handed to the calendar UI.
type DayStatus struct {
	Date    time.Time
	Nightly money.Money
	Blocked bool
	Reason  BlockReason
	Special bool
}

// MonthView renders the selectable state and nightly price for every
// day of the given month.
func (c *RateCalendar) MonthView(year int, month time.Month, today time.Time) []DayStatus {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	days := make([]DayStatus, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		status := DayStatus{
			Date:    d,
			Nightly: c.NightlyPrice(d),
			Blocked: c.IsDateBlocked(d, today),
		}
		for _, b := range c.Blocked {
			if daterange.SameDay(b.Date, d) {
				status.Reason = b.Reason
				break
			}
		}
		if status.Blocked && status.Reason == "" {
			status.Reason = ReasonUnavailable // past date
		}
		for _, o := range c.Overrides {
			if daterange.SameDay(o.Date, d) {
				status.Special = o.Special
				break
			}
		}
		days = append(days, status)
	}
	return days
}
