package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"inspection-system/pkg/contextkeys"
)

// Querier - общее у *pgxpool.Pool и pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// querierFromCtx возвращает транзакцию, открытую TxManager, или storage, если её нет.
func querierFromCtx(ctx context.Context, storage Querier) Querier {
	if tx, ok := ctx.Value(contextkeys.TxKey).(pgx.Tx); ok && tx != nil {
		return tx
	}
	return storage
}
