package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stayquote/internal/app/dto"
	"stayquote/internal/app/policies"
	"stayquote/internal/app/queries"
	domainavailability "stayquote/internal/domain/availability"
	domainpricing "stayquote/internal/domain/pricing"
	"stayquote/internal/domain/shared/daterange"
	"stayquote/internal/domain/shared/events"
)

const getQuoteKey = "quote.get"

var (
	ErrDatesUnavailable = errors.New("quote: requested dates are not available")
	ErrStayTooShort     = errors.New("quote: stay is below the minimum")
	ErrStayTooLong      = errors.New("quote: stay exceeds the maximum")
)

// Cache keeps recently issued quotes; a nil cache disables caching.
// The engine is cheap enough to run per request, so the cache is a
// performance layer only, never required for correctness.
type Cache interface {
	Get(ctx context.Context, key string) (dto.Quote, bool, error)
	Set(ctx context.Context, key string, q dto.Quote) error
}

type GetQuoteQuery struct {
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
}

func (q GetQuoteQuery) Key() string { return getQuoteKey }

type GetQuoteHandler struct {
	Repo       domainavailability.Repository
	Calculator domainpricing.Calculator
	Tiers      []domainpricing.DiscountTier // nil means defaults
	Cache      Cache
	Publisher  policies.EventPublisher
	Now        func() time.Time
}

func (h *GetQuoteHandler) Handle(ctx context.Context, q GetQuoteQuery) (dto.Quote, error) {
	stay, err := daterange.New(q.CheckIn, q.CheckOut)
	if err != nil {
		return dto.Quote{}, err
	}

	cacheKey := quoteCacheKey(q.PropertyID, stay)
	if h.Cache != nil {
		if cached, ok, err := h.Cache.Get(ctx, cacheKey); err == nil && ok {
			return cached, nil
		}
	}

	cal, err := h.Repo.Calendar(ctx, domainavailability.PropertyID(q.PropertyID))
	if err != nil {
		return dto.Quote{}, err
	}

	now := h.now()
	nights := stay.Nights()
	if nights < cal.MinStay {
		return dto.Quote{}, ErrStayTooShort
	}
	if cal.MaxStay > 0 && nights > cal.MaxStay {
		return dto.Quote{}, ErrStayTooLong
	}
	if !cal.FreeForStay(stay, now) {
		return dto.Quote{}, ErrDatesUnavailable
	}

	tiers := h.Tiers
	if tiers == nil {
		tiers = domainpricing.DefaultTiers()
	}
	breakdown, err := h.Calculator.Quote(ctx, domainpricing.QuoteInput{
		Calendar: cal,
		Range:    stay,
		Tiers:    tiers,
	})
	if err != nil {
		return dto.Quote{}, err
	}

	quoteID := uuid.NewString()
	out := dto.MapQuote(quoteID, q.PropertyID, stay.CheckIn.Format("2006-01-02"), stay.CheckOut.Format("2006-01-02"), breakdown, tiers)

	if h.Publisher != nil {
		issued := domainpricing.QuoteIssued{
			QuoteID:    quoteID,
			PropertyID: q.PropertyID,
			CheckIn:    stay.CheckIn,
			CheckOut:   stay.CheckOut,
			Nights:     nights,
			TotalCents: breakdown.Total.Amount,
			Currency:   breakdown.Total.Currency,
			At:         now,
		}
		// Quote issuance must not fail on publisher trouble.
		_ = h.Publisher.PublishEvents(ctx, []events.DomainEvent{issued})
	}
	if h.Cache != nil {
		_ = h.Cache.Set(ctx, cacheKey, out)
	}
	return out, nil
}

func (h *GetQuoteHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func quoteCacheKey(propertyID string, stay daterange.DateRange) string {
	return fmt.Sprintf("stayquote:quote:%s:%s:%s", propertyID, stay.CheckIn.Format("2006-01-02"), stay.CheckOut.Format("2006-01-02"))
}

var _ queries.Handler[GetQuoteQuery, dto.Quote] = (*GetQuoteHandler)(nil)
