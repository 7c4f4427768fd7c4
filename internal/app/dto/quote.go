package dto

import (
	"stayquote/internal/domain/pricing"
)

type QuoteDiscount struct {
	Percent float64 `json:"percent"`
	Cents   int64   `json:"cents"`
	Label   string  `json:"label"`
}

type QuoteNextTier struct {
	Label        string  `json:"label"`
	Percent      float64 `json:"percent"`
	NightsNeeded int     `json:"nights_needed"`
}

// Quote is the checkout-summary view of a price breakdown. Subtotal is
// pre-discount so the UI can show "original − discount" before fees.
type Quote struct {
	QuoteID          string         `json:"quote_id"`
	PropertyID       string         `json:"property_id"`
	CheckIn          string         `json:"check_in"`
	CheckOut         string         `json:"check_out"`
	Nights           int            `json:"nights"`
	Currency         string         `json:"currency"`
	NightlyCents     int64          `json:"nightly_cents"`
	SubtotalCents    int64          `json:"subtotal_cents"`
	Discount         *QuoteDiscount `json:"discount,omitempty"`
	CleaningFeeCents int64          `json:"cleaning_fee_cents"`
	ServiceFeeCents  int64          `json:"service_fee_cents"`
	TaxCents         int64          `json:"tax_cents"`
	TotalCents       int64          `json:"total_cents"`
	NextTier         *QuoteNextTier `json:"next_tier,omitempty"`
}

func MapQuote(quoteID, propertyID string, checkIn, checkOut string, b pricing.Breakdown, tiers []pricing.DiscountTier) Quote {
	q := Quote{
		QuoteID:          quoteID,
		PropertyID:       propertyID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Nights:           b.Nights,
		Currency:         b.Subtotal.Currency,
		NightlyCents:     b.Nightly.Amount,
		SubtotalCents:    b.Subtotal.Amount,
		CleaningFeeCents: b.CleaningFee.Amount,
		ServiceFeeCents:  b.ServiceFee.Amount,
		TaxCents:         b.Taxes.Amount,
		TotalCents:       b.Total.Amount,
	}
	if b.Discount != nil {
		q.Discount = &QuoteDiscount{
			Percent: b.Discount.Percent,
			Cents:   b.Discount.Amount.Amount,
			Label:   b.Discount.Label,
		}
	}
	if tier, needed, ok := pricing.NextTier(b.Nights, tiers); ok {
		q.NextTier = &QuoteNextTier{Label: tier.Label, Percent: tier.Percent, NightsNeeded: needed}
	}
	return q
}
