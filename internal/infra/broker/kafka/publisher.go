package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"stayquote/internal/app/policies"
	"stayquote/internal/domain/shared/events"
)

// EventPublisher adapts the sync producer into the application's
// EventPublisher port, serializing domain events as JSON envelopes.
type EventPublisher struct {
	Producer    *Producer
	TopicPrefix string
	Logger      *slog.Logger
}

type eventEnvelope struct {
	Name        string `json:"name"`
	AggregateID string `json:"aggregate_id"`
	OccurredAt  string `json:"occurred_at"`
	Payload     any    `json:"payload"`
}

func (p *EventPublisher) PublishEvents(ctx context.Context, evts []events.DomainEvent) error {
	for _, evt := range evts {
		envelope := eventEnvelope{
			Name:        evt.EventName(),
			AggregateID: evt.AggregateID(),
			OccurredAt:  evt.OccurredAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
			Payload:     evt,
		}
		payload, err := json.Marshal(envelope)
		if err != nil {
			return err
		}
		topic := p.TopicPrefix + topicFor(evt.EventName())
		if err := p.Producer.Publish(ctx, topic, evt.AggregateID(), payload, map[string]string{"event": evt.EventName()}); err != nil {
			if p.Logger != nil {
				p.Logger.Error("event publish failed", "event", evt.EventName(), "topic", topic, "error", err)
			}
			return err
		}
	}
	return nil
}

// topicFor maps event names onto coarse topics: "calendar.blocked"
// lands on "calendar", "quote.issued" on "quotes".
func topicFor(eventName string) string {
	switch {
	case len(eventName) >= 5 && eventName[:5] == "quote":
		return "quotes"
	default:
		return "calendar"
	}
}

var _ policies.EventPublisher = (*EventPublisher)(nil)
