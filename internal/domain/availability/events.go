package availability

import "time"

type DatesBlocked struct {
	PropertyID string
	Dates      []time.Time
	Reason     BlockReason
	At         time.Time
}

func (e DatesBlocked) EventName() string     { return "calendar.blocked" }
func (e DatesBlocked) AggregateID() string   { return e.PropertyID }
func (e DatesBlocked) OccurredAt() time.Time { return e.At }

type DateReleased struct {
	PropertyID string
	Date       time.Time
	At         time.Time
}

func (e DateReleased) EventName() string     { return "calendar.released" }
func (e DateReleased) AggregateID() string   { return e.PropertyID }
func (e DateReleased) OccurredAt() time.Time { return e.At }

type RatesChanged struct {
	PropertyID string
	At         time.Time
}

func (e RatesChanged) EventName() string     { return "calendar.rates_changed" }
func (e RatesChanged) AggregateID() string   { return e.PropertyID }
func (e RatesChanged) OccurredAt() time.Time { return e.At }

func DatesBlockedEvent(id PropertyID, dates []time.Time, reason BlockReason, at time.Time) DatesBlocked {
	return DatesBlocked{PropertyID: string(id), Dates: dates, Reason: reason, At: at}
}

func DateReleasedEvent(id PropertyID, date, at time.Time) DateReleased {
	return DateReleased{PropertyID: string(id), Date: date, At: at}
}

func RatesChangedEvent(id PropertyID, at time.Time) RatesChanged {
	return RatesChanged{PropertyID: string(id), At: at}
}
