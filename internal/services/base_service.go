package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"inspection-system/internal/repositories"
	"inspection-system/pkg/utils"
)

type BaseService struct {
	cache  repositories.CacheRepositoryInterface
	logger *zap.Logger
}

func NewBaseService(cache repositories.CacheRepositoryInterface, logger *zap.Logger) *BaseService {
	if cache == nil {
		cache = repositories.NewNoopCacheRepository()
	}
	return &BaseService{cache: cache, logger: logger}
}

// Caller возвращает пользователя и компанию из контекста. Без компании запрос не обслуживается.
func (s *BaseService) Caller(ctx context.Context) (userID, companyID int64, err error) {
	companyID, err = utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		s.logger.Warn("Компания вызывающего не найдена в контексте", zap.Error(err))
		return 0, 0, err
	}
	userID, _ = utils.GetUserIDFromCtx(ctx)
	return userID, companyID, nil
}

// CacheGet получает данные из кэша. Ошибки Redis считаются промахом.
func (s *BaseService) CacheGet(ctx context.Context, key string, dest interface{}) bool {
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repositories.ErrCacheMiss) {
			s.logger.Warn("Ошибка чтения кэша", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		s.logger.Warn("Повреждённая запись в кэше", zap.String("key", key), zap.Error(err))
		return false
	}
	s.logger.Debug("Данные получены из кэша", zap.String("key", key))
	return true
}

func (s *BaseService) CacheSet(ctx context.Context, key string, data interface{}, ttl time.Duration) {
	serialized, err := json.Marshal(data)
	if err != nil {
		s.logger.Warn("Не удалось сериализовать данные для кэша", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, serialized, ttl); err != nil {
		s.logger.Warn("Ошибка записи в кэш", zap.String("key", key), zap.Error(err))
	}
}

func (s *BaseService) CacheDel(ctx context.Context, keys ...string) {
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.logger.Warn("Ошибка удаления из кэша", zap.Strings("keys", keys), zap.Error(err))
	}
}
