package pricing

import (
	"context"
	"errors"

	"stayquote/internal/domain/availability"
	"stayquote/internal/domain/shared/daterange"
	"stayquote/internal/domain/shared/money"
)

var ErrCalendarMissing = errors.New("pricing: rate calendar missing")

type QuoteInput struct {
	Calendar *availability.RateCalendar
	Range    daterange.DateRange
	Tiers    []DiscountTier // nil means DefaultTiers
}

// Calculator prices a committed stay against a rate calendar.
type Calculator interface {
	Quote(ctx context.Context, input QuoteInput) (Breakdown, error)
}

// Engine is the deterministic calculator: per-night prices (base or
// override) summed into the subtotal, long-stay discount by tier, then
// the fee formula. No I/O, no hidden state.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) Quote(ctx context.Context, input QuoteInput) (Breakdown, error) {
	cal := input.Calendar
	if cal == nil {
		return Breakdown{}, ErrCalendarMissing
	}

	tiers := input.Tiers
	if tiers == nil {
		tiers = DefaultTiers()
	}

	nights := input.Range.Nights()
	subtotal := money.Money{Amount: 0, Currency: cal.BaseNightly.Currency}
	for d := input.Range.CheckIn; d.Before(input.Range.CheckOut); d = d.AddDate(0, 0, 1) {
		subtotal, _ = subtotal.Add(cal.NightlyPrice(d))
	}

	fees := FeePolicy{
		CleaningFee:       cal.CleaningFee,
		ServiceFeePercent: cal.ServiceFeePercent,
		TaxPercent:        cal.TaxPercent,
	}
	return Compose(cal.BaseNightly, nights, subtotal, tiers, fees), nil
}

var _ Calculator = (*Engine)(nil)
