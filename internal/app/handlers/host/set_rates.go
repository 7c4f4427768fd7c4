package host

import (
	"context"
	"time"

	"stayquote/internal/app/commands"
	"stayquote/internal/app/policies"
	domainavailability "stayquote/internal/domain/availability"
	"stayquote/internal/domain/shared/money"
)

const setRatesKey = "host.set_rates"

type RateOverrideInput struct {
	Date    time.Time
	Cents   int64
	Special bool
}

// SetRatesCommand updates a property's nightly pricing. Zero
// BaseNightlyCents leaves the base rate untouched; a nil Overrides
// slice leaves overrides untouched, an empty one clears them.
type SetRatesCommand struct {
	PropertyID       string
	BaseNightlyCents int64
	Overrides        []RateOverrideInput
}

func (c SetRatesCommand) Key() string { return setRatesKey }

type SetRatesHandler struct {
	Repo      domainavailability.Repository
	Publisher policies.EventPublisher
	Now       func() time.Time
}

func (h *SetRatesHandler) Handle(ctx context.Context, cmd SetRatesCommand) (struct{}, error) {
	cal, err := h.Repo.Calendar(ctx, domainavailability.PropertyID(cmd.PropertyID))
	if err != nil {
		return struct{}{}, err
	}
	now := h.now()
	currency := cal.BaseNightly.Currency

	if cmd.BaseNightlyCents > 0 {
		if err := cal.SetBaseRate(money.Money{Amount: cmd.BaseNightlyCents, Currency: currency}, now); err != nil {
			return struct{}{}, err
		}
	}
	if cmd.Overrides != nil {
		overrides := make([]domainavailability.RateOverride, 0, len(cmd.Overrides))
		for _, o := range cmd.Overrides {
			overrides = append(overrides, domainavailability.RateOverride{
				Date:    o.Date,
				Nightly: money.Money{Amount: o.Cents, Currency: currency},
				Special: o.Special,
			})
		}
		if err := cal.SetOverrides(overrides, now); err != nil {
			return struct{}{}, err
		}
	}
	if err := h.Repo.Save(ctx, cal); err != nil {
		return struct{}{}, err
	}
	if err := policies.PublishRecorded(ctx, h.Publisher, cal); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, nil
}

func (h *SetRatesHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

var _ commands.Handler[SetRatesCommand, struct{}] = (*SetRatesHandler)(nil)
