package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Service wraps the Redis coordination used across replicas: webhook event
// dedupe keys and sweep run locks. Handlers stay idempotent without it; the
// keys only save redundant work.
type Service struct {
	rdb *redis.Client
}

func NewService(rdb *redis.Client) *Service {
	return &Service{rdb: rdb}
}

func Connect(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// SeenEvent reports whether a webhook event id was already fully handled.
func (s *Service) SeenEvent(ctx context.Context, eventId string) (bool, error) {
	if s == nil || s.rdb == nil {
		// no redis configured, fall through to the idempotent handlers
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, fmt.Sprintf("stripe_event:%s", eventId)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkEventHandled records a fully processed event id. The key is written
// only after the handler succeeded, so a crash mid-handler leaves it unset
// and the redelivery runs the idempotent handler again.
func (s *Service) MarkEventHandled(ctx context.Context, eventId string) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Set(ctx, fmt.Sprintf("stripe_event:%s", eventId), "handled", 72*time.Hour).Err()
}

// AcquireSweepLock ensures only one replica runs a named sweep per window.
func (s *Service) AcquireSweepLock(ctx context.Context, name string, window time.Duration) (bool, error) {
	if s == nil || s.rdb == nil {
		return true, nil
	}
	suffix := time.Now().Format("2006-01-02-15:04")
	key := fmt.Sprintf("sweep_lock:%s:%s", name, suffix)
	return s.rdb.SetNX(ctx, key, "running", window).Result()
}
