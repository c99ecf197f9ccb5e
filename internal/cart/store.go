package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chocomarket/chocomarket-backend/pkg/logger"
	"github.com/chocomarket/chocomarket-backend/pkg/redis"
)

// Store persists cart snapshots keyed by cart token. Every mutation
// rewrites the full snapshot; there is no incremental diffing.
type Store interface {
	Load(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, token string, cart *Cart) error
	Delete(ctx context.Context, token string) error
}

type snapshotClient interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartSnapshotKey(token string) string
}

type redisStore struct {
	client snapshotClient
	ttl    time.Duration
	logg   *logger.Logger
}

// NewRedisStore builds a snapshot store on top of the shared Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration, logg *logger.Logger) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &redisStore{client: client, ttl: ttl, logg: logg}, nil
}

func newStoreWithClient(client snapshotClient, ttl time.Duration, logg *logger.Logger) Store {
	return &redisStore{client: client, ttl: ttl, logg: logg}
}

// Load reads the snapshot for the token. A missing key or a snapshot that
// fails to parse both hydrate as an empty cart; corrupt state never
// propagates to the caller.
func (s *redisStore) Load(ctx context.Context, token string) (*Cart, error) {
	raw, err := s.client.Get(ctx, s.client.CartSnapshotKey(token))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewCart(nil), nil
		}
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logg.Warn(ctx, "cart snapshot unparseable, starting empty")
		return NewCart(nil), nil
	}
	return NewCart(lines), nil
}

// Save rewrites the full snapshot for the token.
func (s *redisStore) Save(ctx context.Context, token string, cart *Cart) error {
	payload, err := json.Marshal(cart.Lines())
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartSnapshotKey(token), payload, s.ttl); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// Delete drops the snapshot for the token.
func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.client.CartSnapshotKey(token)); err != nil {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}
