package pricing

import "time"

// QuoteIssued is raised whenever a price breakdown is handed to a
// guest; downstream consumers use it for demand analytics.
type QuoteIssued struct {
	QuoteID    string
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	TotalCents int64
	Currency   string
	At         time.Time
}

func (e QuoteIssued) EventName() string     { return "quote.issued" }
func (e QuoteIssued) AggregateID() string   { return e.PropertyID }
func (e QuoteIssued) OccurredAt() time.Time { return e.At }
