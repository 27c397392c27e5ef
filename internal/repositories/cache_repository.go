package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss - ключа нет в кеше.
var ErrCacheMiss = errors.New("cache miss")

type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
}

// NoopCacheRepository используется, когда Redis не настроен: всегда промах.
type NoopCacheRepository struct{}

func NewNoopCacheRepository() CacheRepositoryInterface { return NoopCacheRepository{} }

func (NoopCacheRepository) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (NoopCacheRepository) Get(context.Context, string) (string, error) { return "", ErrCacheMiss }

func (NoopCacheRepository) Del(context.Context, ...string) error { return nil }
