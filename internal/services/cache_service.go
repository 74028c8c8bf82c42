package services

import (
	"context"
	"errors"
	"time"

	"megacitycab/pkg/cache"
)

type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// ErrCacheMiss is the miss sentinel every CacheService returns.
var ErrCacheMiss = cache.ErrCacheMiss

// NoopCache is used when Redis is disabled; it always misses.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string, dest interface{}) error {
	return ErrCacheMiss
}

func (NoopCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func isCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}
