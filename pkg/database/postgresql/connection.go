package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const connectRetryDelay = 2 * time.Second

// ConnectDB создаёт пул и ждёт, пока база ответит на ping (до attempts попыток).
func ConnectDB(ctx context.Context, dsn string, attempts int, logger *zap.Logger) (*pgxpool.Pool, error) {
	if attempts < 1 {
		attempts = 1
	}

	dbpool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания пула соединений к БД: %w", err)
	}

	for i := 1; i <= attempts; i++ {
		err = dbpool.Ping(ctx)
		if err == nil {
			logger.Info("✅ Подключено к PostgreSQL", zap.Int("attempt", i))
			return dbpool, nil
		}
		logger.Warn("Не удалось пинговать БД",
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			dbpool.Close()
			return nil, ctx.Err()
		case <-time.After(connectRetryDelay):
		}
	}

	dbpool.Close()
	return nil, fmt.Errorf("не удалось подключиться к БД после %d попыток: %w", attempts, err)
}
