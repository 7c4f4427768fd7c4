package policies

import (
	"context"

	"stayquote/internal/domain/shared/events"
)

// EventPublisher forwards domain events raised by aggregates to the
// outside world. A nil publisher is a valid no-op.
type EventPublisher interface {
	PublishEvents(ctx context.Context, evts []events.DomainEvent) error
}

// PublishRecorded drains an aggregate's pending events into the
// publisher, tolerating a missing one.
func PublishRecorded(ctx context.Context, pub EventPublisher, rec interface {
	PendingEvents() []events.DomainEvent
	ClearEvents()
}) error {
	evts := rec.PendingEvents()
	rec.ClearEvents()
	if pub == nil || len(evts) == 0 {
		return nil
	}
	return pub.PublishEvents(ctx, evts)
}
