package dto

import (
	"time"

	"stayquote/internal/domain/availability"
)

// Selection is the stateless click-resolution view: the caller posts
// its current selection plus the clicked day and gets the next state
// back, with a verdict for rejected clicks.
type Selection struct {
	PropertyID string `json:"property_id"`
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
	Phase      string `json:"phase"`
	Nights     int    `json:"nights,omitempty"`
	OK         bool   `json:"ok"`
	Reason     string `json:"reason,omitempty"`
}

func MapSelection(id availability.PropertyID, s *availability.Selector, res availability.ClickResult) Selection {
	out := Selection{
		PropertyID: string(id),
		Phase:      string(s.Phase()),
		OK:         res.OK,
		Reason:     string(res.Reason),
	}
	if in, ok := s.CheckIn(); ok {
		out.CheckIn = in.Format(dayFormat)
	}
	if outDate, ok := s.CheckOut(); ok {
		out.CheckOut = outDate.Format(dayFormat)
	}
	if r, ok := s.Range(); ok {
		out.Nights = r.Nights()
	}
	return out
}

// ParseDay parses a YYYY-MM-DD day; the zero time flags an absent value.
func ParseDay(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dayFormat, raw)
}
