package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"stayquote/internal/app/dto"
	quoteapp "stayquote/internal/app/handlers/quote"
)

// QuoteCache stores issued quotes under short-lived keys so hot
// properties do not reprice identical stays on every request.
type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuoteCache(client *redis.Client, ttl time.Duration) *QuoteCache {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &QuoteCache{client: client, ttl: ttl}
}

func (c *QuoteCache) Get(ctx context.Context, key string) (dto.Quote, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dto.Quote{}, false, nil
		}
		return dto.Quote{}, false, err
	}
	var q dto.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return dto.Quote{}, false, err
	}
	return q, true, nil
}

func (c *QuoteCache) Set(ctx context.Context, key string, q dto.Quote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

var _ quoteapp.Cache = (*QuoteCache)(nil)
