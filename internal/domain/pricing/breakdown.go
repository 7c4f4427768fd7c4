package pricing

import (
	"errors"

	"stayquote/internal/domain/shared/money"
)

var ErrCurrencyUnset = errors.New("pricing: currency must be defined")

// FeePolicy holds the fee and tax knobs applied on top of the
// discounted subtotal.
type FeePolicy struct {
	CleaningFee       money.Money
	ServiceFeePercent float64
	TaxPercent        float64
}

// DefaultFeePolicy matches the marketplace defaults: 10% service fee,
// 5% tax, no cleaning fee.
func DefaultFeePolicy(currency string) FeePolicy {
	return FeePolicy{
		CleaningFee:       money.Money{Amount: 0, Currency: currency},
		ServiceFeePercent: 10,
		TaxPercent:        5,
	}
}

// AppliedDiscount is the display-facing slice of a discount result.
type AppliedDiscount struct {
	Percent float64
	Amount  money.Money
	Label   string
}

// Breakdown is the itemized price computation for a stay. Subtotal is
// the pre-discount sum of per-night prices; Total is what the guest
// pays. It is always recomputed fresh from inputs, never mutated.
type Breakdown struct {
	Nights      int
	Nightly     money.Money
	Subtotal    money.Money
	Discount    *AppliedDiscount
	CleaningFee money.Money
	ServiceFee  money.Money
	Taxes       money.Money
	Total       money.Money
}

// Compose runs the fee formula over a pre-discount subtotal:
//
//	discounted = subtotal - discount
//	serviceFee = discounted * serviceFeePercent
//	taxable    = discounted + serviceFee + cleaningFee
//	taxes      = taxable * taxPercent
//	total      = taxable + taxes
//
// The cleaning fee is never discounted but is taxed. Pure and total
// over its domain; nights = 0 produces a zero-valued breakdown.
func Compose(nightly money.Money, nights int, subtotal money.Money, tiers []DiscountTier, fees FeePolicy) Breakdown {
	discount := DiscountOn(subtotal, nights, tiers)

	discounted := discount.FinalPrice
	serviceFee := discounted.Percent(fees.ServiceFeePercent)

	cleaning := fees.CleaningFee
	if cleaning.Currency == "" {
		cleaning = money.Money{Amount: 0, Currency: subtotal.Currency}
	}
	taxable, _ := discounted.Add(serviceFee)
	taxable, _ = taxable.Add(cleaning)
	taxes := taxable.Percent(fees.TaxPercent)
	total, _ := taxable.Add(taxes)

	b := Breakdown{
		Nights:      nights,
		Nightly:     nightly,
		Subtotal:    subtotal,
		CleaningFee: cleaning,
		ServiceFee:  serviceFee,
		Taxes:       taxes,
		Total:       total,
	}
	if discount.Applied() {
		b.Discount = &AppliedDiscount{
			Percent: discount.Percent,
			Amount:  discount.DiscountAmount,
			Label:   discount.Tier.Label,
		}
	}
	return b
}

// FlatBreakdown prices every night at the same rate. Convenience for
// callers without per-date overrides.
func FlatBreakdown(nightly money.Money, nights int, tiers []DiscountTier, fees FeePolicy) Breakdown {
	return Compose(nightly, nights, nightly.Multiply(int64(nights)), tiers, fees)
}

func (b Breakdown) Validate() error {
	if b.Subtotal.Currency == "" {
		return ErrCurrencyUnset
	}
	return nil
}

// DiscountAmount is a nil-safe accessor for the applied discount.
func (b Breakdown) DiscountAmount() money.Money {
	if b.Discount == nil {
		return money.Money{Amount: 0, Currency: b.Subtotal.Currency}
	}
	return b.Discount.Amount
}
