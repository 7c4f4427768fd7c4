package dto

import (
	"time"

	"stayquote/internal/domain/availability"
)

type CalendarDay struct {
	Date         string `json:"date"`
	NightlyCents int64  `json:"nightly_cents"`
	Blocked      bool   `json:"blocked"`
	Reason       string `json:"reason,omitempty"`
	Special      bool   `json:"special,omitempty"`
}

type Calendar struct {
	PropertyID string        `json:"property_id"`
	Month      string        `json:"month"`
	Currency   string        `json:"currency"`
	MinStay    int           `json:"min_stay"`
	MaxStay    int           `json:"max_stay,omitempty"`
	Days       []CalendarDay `json:"days"`
}

const dayFormat = "2006-01-02"

func MapCalendar(cal *availability.RateCalendar, year int, month time.Month, today time.Time) Calendar {
	if cal == nil {
		return Calendar{}
	}
	view := cal.MonthView(year, month, today)
	days := make([]CalendarDay, 0, len(view))
	for _, d := range view {
		days = append(days, CalendarDay{
			Date:         d.Date.Format(dayFormat),
			NightlyCents: d.Nightly.Amount,
			Blocked:      d.Blocked,
			Reason:       string(d.Reason),
			Special:      d.Special,
		})
	}
	return Calendar{
		PropertyID: string(cal.PropertyID),
		Month:      time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		Currency:   cal.BaseNightly.Currency,
		MinStay:    cal.MinStay,
		MaxStay:    cal.MaxStay,
		Days:       days,
	}
}
