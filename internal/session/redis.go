package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"megacitycab/internal/models"
	"megacitycab/internal/utils"
	"megacitycab/pkg/cache"
)

// kv is the part of cache.RedisCache the store needs.
type kv interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

type RedisStore struct {
	cache kv
}

func NewRedisStore(c *cache.RedisCache) *RedisStore {
	return &RedisStore{cache: c}
}

func (s *RedisStore) key(id string) string {
	return utils.CacheSessionPrefix + id
}

func (s *RedisStore) Save(ctx context.Context, id string, creds *models.Credentials, ttl time.Duration) error {
	if err := s.cache.Set(ctx, s.key(id), creds, ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (*models.Credentials, error) {
	var creds models.Credentials
	err := s.cache.Get(ctx, s.key(id), &creds)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &creds, nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, s.key(id)); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
