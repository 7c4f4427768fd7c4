package host

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainavailability "stayquote/internal/domain/availability"
	"stayquote/internal/domain/shared/events"
	"stayquote/internal/domain/shared/money"
	"stayquote/internal/infra/storage/memory"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type capturingPublisher struct {
	published []events.DomainEvent
}

func (p *capturingPublisher) PublishEvents(ctx context.Context, evts []events.DomainEvent) error {
	p.published = append(p.published, evts...)
	return nil
}

func seeded(t *testing.T) (*memory.CalendarRepository, *capturingPublisher) {
	t.Helper()
	repo := memory.NewCalendarRepository()
	cal := domainavailability.NewCalendar("prop-1", money.Must(100000, "USD"), 1, 0)
	require.NoError(t, repo.Save(context.Background(), cal))
	return repo, &capturingPublisher{}
}

func TestBlockDatesCommand(t *testing.T) {
	repo, pub := seeded(t)
	h := &BlockDatesHandler{Repo: repo, Publisher: pub, Now: func() time.Time { return day(2026, 6, 1) }}

	res, err := h.Handle(context.Background(), BlockDatesCommand{
		PropertyID: "prop-1",
		Dates:      []time.Time{day(2026, 7, 1), day(2026, 7, 2)},
		Reason:     "HOST_BLOCK",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Blocked)

	cal, err := repo.Calendar(context.Background(), "prop-1")
	require.NoError(t, err)
	assert.True(t, cal.IsDateBlocked(day(2026, 7, 1), day(2026, 6, 1)))
	assert.Empty(t, cal.PendingEvents(), "events drained after publish")

	require.Len(t, pub.published, 1)
	assert.Equal(t, "calendar.blocked", pub.published[0].EventName())
}

func TestReleaseDateCommand(t *testing.T) {
	repo, pub := seeded(t)
	now := func() time.Time { return day(2026, 6, 1) }
	block := &BlockDatesHandler{Repo: repo, Publisher: pub, Now: now}
	release := &ReleaseDateHandler{Repo: repo, Publisher: pub, Now: now}

	_, err := block.Handle(context.Background(), BlockDatesCommand{
		PropertyID: "prop-1",
		Dates:      []time.Time{day(2026, 7, 1)},
	})
	require.NoError(t, err)

	_, err = release.Handle(context.Background(), ReleaseDateCommand{PropertyID: "prop-1", Date: day(2026, 7, 1)})
	require.NoError(t, err)

	cal, err := repo.Calendar(context.Background(), "prop-1")
	require.NoError(t, err)
	assert.False(t, cal.IsDateBlocked(day(2026, 7, 1), day(2026, 6, 1)))

	_, err = release.Handle(context.Background(), ReleaseDateCommand{PropertyID: "prop-1", Date: day(2026, 7, 1)})
	assert.ErrorIs(t, err, domainavailability.ErrDateNotBlocked)
}

func TestSetRatesCommand(t *testing.T) {
	repo, pub := seeded(t)
	h := &SetRatesHandler{Repo: repo, Publisher: pub, Now: func() time.Time { return day(2026, 6, 1) }}

	_, err := h.Handle(context.Background(), SetRatesCommand{
		PropertyID:       "prop-1",
		BaseNightlyCents: 120000,
		Overrides: []RateOverrideInput{
			{Date: day(2026, 7, 4), Cents: 180000, Special: true},
		},
	})
	require.NoError(t, err)

	cal, err := repo.Calendar(context.Background(), "prop-1")
	require.NoError(t, err)
	assert.Equal(t, int64(120000), cal.BaseNightly.Amount)
	assert.Equal(t, int64(180000), cal.NightlyPrice(day(2026, 7, 4)).Amount)
	assert.Equal(t, int64(120000), cal.NightlyPrice(day(2026, 7, 5)).Amount)

	// Two rate changes recorded, base then overrides.
	require.Len(t, pub.published, 2)
	assert.Equal(t, "calendar.rates_changed", pub.published[0].EventName())
}

func TestSetRatesRejectsNegativeOverride(t *testing.T) {
	repo, pub := seeded(t)
	h := &SetRatesHandler{Repo: repo, Publisher: pub, Now: func() time.Time { return day(2026, 6, 1) }}

	_, err := h.Handle(context.Background(), SetRatesCommand{
		PropertyID: "prop-1",
		Overrides:  []RateOverrideInput{{Date: day(2026, 7, 4), Cents: -1}},
	})
	assert.ErrorIs(t, err, domainavailability.ErrNegativeRate)
	assert.Empty(t, pub.published)
}
