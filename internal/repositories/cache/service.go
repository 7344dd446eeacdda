// Package cache provides the redis-backed cache layer. Only offers are
// cached: they are read-only to this service. Reservations and payments are
// never cached because redemption correctness depends on the store's atomic
// update, not on any in-memory view.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gatepass/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent from the cache.
var ErrCacheMiss = errors.New("cache miss")

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

func (s *CacheService) GetOffer(ctx context.Context, id uint) (*models.Offer, error) {
	val, err := s.client.Get(ctx, offerKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get offer %d: %w", id, err)
	}

	var offer models.Offer
	if err := json.Unmarshal([]byte(val), &offer); err != nil {
		return nil, fmt.Errorf("unmarshal cached offer %d: %w", id, err)
	}
	return &offer, nil
}

func (s *CacheService) SetOffer(ctx context.Context, offer *models.Offer) error {
	data, err := json.Marshal(offer)
	if err != nil {
		return fmt.Errorf("marshal offer %d: %w", offer.ID, err)
	}
	return s.client.Set(ctx, offerKey(offer.ID), data, s.ttl).Err()
}

func (s *CacheService) InvalidateOffer(ctx context.Context, id uint) error {
	return s.client.Del(ctx, offerKey(id)).Err()
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

func offerKey(id uint) string {
	return fmt.Sprintf("offer:%d", id)
}
