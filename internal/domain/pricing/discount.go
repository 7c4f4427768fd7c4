package pricing

import "stayquote/internal/domain/shared/money"

// DiscountTier maps a closed night-count interval [MinNights, MaxNights]
// to a percentage reduction. MaxNights = 0 leaves the interval open at
// the top.
type DiscountTier struct {
	MinNights int
	MaxNights int
	Percent   float64
	Label     string
}

// Contains reports whether the night count falls inside the tier.
func (t DiscountTier) Contains(nights int) bool {
	if nights < t.MinNights {
		return false
	}
	return t.MaxNights == 0 || nights <= t.MaxNights
}

// DefaultTiers is the canonical long-stay discount schedule.
func DefaultTiers() []DiscountTier {
	return []DiscountTier{
		{MinNights: 7, MaxNights: 13, Percent: 10, Label: "Weekly Discount"},
		{MinNights: 14, MaxNights: 29, Percent: 15, Label: "Bi-weekly Discount"},
		{MinNights: 30, MaxNights: 0, Percent: 20, Label: "Monthly Discount"},
	}
}

// DiscountResult carries the outcome of a long-stay discount lookup.
type DiscountResult struct {
	OriginalPrice  money.Money
	DiscountAmount money.Money
	FinalPrice     money.Money
	Percent        float64
	Tier           *DiscountTier
}

func (r DiscountResult) Applied() bool { return r.Tier != nil }

// LongStayDiscount prices nights at the flat nightly rate and applies
// the first tier (in table order) containing the night count. Tables
// are expected to be non-overlapping and ordered by ascending
// MinNights; if a caller-supplied table overlaps, the first match wins.
func LongStayDiscount(nightly money.Money, nights int, tiers []DiscountTier) DiscountResult {
	original := nightly.Multiply(int64(nights))
	return DiscountOn(original, nights, tiers)
}

// DiscountOn applies the matching tier's percentage to an already
// computed pre-discount subtotal. This is the single discount path used
// by the breakdown composer, so override-priced nights discount the
// same way flat-priced ones do.
func DiscountOn(subtotal money.Money, nights int, tiers []DiscountTier) DiscountResult {
	result := DiscountResult{
		OriginalPrice:  subtotal,
		DiscountAmount: money.Money{Amount: 0, Currency: subtotal.Currency},
		FinalPrice:     subtotal,
	}
	for i := range tiers {
		if !tiers[i].Contains(nights) {
			continue
		}
		tier := tiers[i]
		result.Tier = &tier
		result.Percent = tier.Percent
		result.DiscountAmount = subtotal.Percent(tier.Percent)
		result.FinalPrice, _ = subtotal.Sub(result.DiscountAmount)
		break
	}
	return result
}

// NextTier finds the first tier the night count has not reached yet and
// how many more nights would qualify. Used for incentive messaging
// only, never for pricing.
func NextTier(nights int, tiers []DiscountTier) (DiscountTier, int, bool) {
	for _, t := range tiers {
		if nights < t.MinNights {
			return t, t.MinNights - nights, true
		}
	}
	return DiscountTier{}, 0, false
}

// BestTier returns the highest-percent tier containing the night count.
// The default calculation path does not use it; it exists for UI hints
// on overlapping custom tables.
func BestTier(nights int, tiers []DiscountTier) (DiscountTier, bool) {
	var best DiscountTier
	found := false
	for _, t := range tiers {
		if t.Contains(nights) && (!found || t.Percent > best.Percent) {
			best = t
			found = true
		}
	}
	return best, found
}
