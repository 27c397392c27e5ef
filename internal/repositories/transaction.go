package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"inspection-system/pkg/contextkeys"
)

type TxManagerInterface interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type TxManager struct {
	pool txBeginner
}

func NewTxManager(pool txBeginner) TxManagerInterface {
	return &TxManager{pool: pool}
}

// RunInTransaction выполняет fn в одной транзакции READ COMMITTED. Транзакция кладётся в
// контекст, репозитории берут её оттуда. Если транзакция уже открыта, fn выполняется в ней.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(contextkeys.TxKey).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				err = fmt.Errorf("ошибка при коммите транзакции: %w", err)
			}
		}
	}()

	err = fn(context.WithValue(ctx, contextkeys.TxKey, tx))
	return err
}
