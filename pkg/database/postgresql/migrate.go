package postgresql

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Migrate накатывает goose-миграции из fsys поверх пула.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, logger *zap.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(fsys)
	goose.SetLogger(&gooseLogger{logger: logger.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("не удалось применить миграции: %w", err)
	}
	return nil
}

type gooseLogger struct {
	logger *zap.SugaredLogger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) { l.logger.Infof(format, v...) }
func (l *gooseLogger) Fatalf(format string, v ...interface{}) { l.logger.Fatalf(format, v...) }
