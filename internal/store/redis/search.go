package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultSearchTTL is the default TTL for cached search results.
	// Fares move fast; anything older is stale enough to re-fetch.
	DefaultSearchTTL = 15 * time.Minute
)

// Store handles Redis operations for the search result cache.
// All operations are best-effort: a nil client turns every call into a
// no-op so the service keeps answering when Redis is down or disabled.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// CacheSearch stores a rendered search response under its request hash
func (s *Store) CacheSearch(ctx context.Context, hash string, payload []byte, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Set(ctx, SearchKey(hash), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache search: %w", err)
	}
	return nil
}

// GetCachedSearch retrieves a cached search response.
// A cache miss returns (nil, nil).
func (s *Store) GetCachedSearch(ctx context.Context, hash string) ([]byte, error) {
	if s.client == nil {
		return nil, nil
	}
	payload, err := s.client.Get(ctx, SearchKey(hash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get cached search: %w", err)
	}
	return payload, nil
}

// InvalidateSearch removes a cached search response
func (s *Store) InvalidateSearch(ctx context.Context, hash string) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Del(ctx, SearchKey(hash)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate search: %w", err)
	}
	return nil
}

// FlushSearches removes all cached search responses
func (s *Store) FlushSearches(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	iter := s.client.Scan(ctx, 0, KeyPrefixSearch+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete search key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush searches: %w", err)
	}
	return nil
}
