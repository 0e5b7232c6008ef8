// Package results keeps recent job results in Redis so the status endpoint
// can serve them after the synchronous response is gone. Jobs never fail
// because of this store.
package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"ytscribe/types"
)

// Store is a thin Redis wrapper holding one JSON result per request id.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStoreFromEnv creates a Store using environment variables
// REDIS_ADDR, REDIS_PASS, RESULT_TTL_SECONDS (optional, default 24h).
// An empty REDIS_ADDR disables the store: (nil, nil) is returned.
func NewStoreFromEnv() (*Store, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	ttl := 24 * time.Hour
	if t := os.Getenv("RESULT_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &Store{client: client, ttl: ttl}, nil
}

// Save stores the result under its request id with the configured TTL.
func (s *Store) Save(ctx context.Context, result types.JobResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(result.RequestID), data, s.ttl).Err()
}

// Get returns the stored result, or nil when none is cached.
func (s *Store) Get(ctx context.Context, requestID string) (*types.JobResult, error) {
	data, err := s.client.Get(ctx, key(requestID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result types.JobResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func key(requestID string) string {
	return "ytscribe:results:" + requestID
}
