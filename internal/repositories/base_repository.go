package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ByID - условие по первичному ключу.
func ByID(id int64) sq.Eq {
	return sq.Eq{"id": id}
}

// BaseRepository - типизированный CRUD над одной таблицей. Условия только на равенство.
// Поля T сопоставляются с колонками по тегу db.
type BaseRepository[T any] struct {
	storage Querier
	table   string
}

func NewBaseRepository[T any](storage Querier, table string) *BaseRepository[T] {
	return &BaseRepository[T]{storage: storage, table: table}
}

func (r *BaseRepository[T]) Table() string { return r.table }

func (r *BaseRepository[T]) Create(ctx context.Context, values map[string]interface{}) (*T, error) {
	query, args, err := psql.Insert(r.table).SetMap(values).Suffix("RETURNING *").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: сборка insert: %w", r.table, err)
	}

	row, err := r.collectOne(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%s: insert не вернул строку", r.table)
	}
	return row, nil
}

// Update возвращает nil без ошибки, если ни одна строка не подошла под cond.
func (r *BaseRepository[T]) Update(ctx context.Context, cond sq.Eq, values map[string]interface{}) (*T, error) {
	query, args, err := psql.Update(r.table).SetMap(values).Where(cond).Suffix("RETURNING *").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: сборка update: %w", r.table, err)
	}
	return r.collectOne(ctx, query, args)
}

// Delete возвращает число удалённых строк.
func (r *BaseRepository[T]) Delete(ctx context.Context, cond sq.Eq) (int64, error) {
	query, args, err := psql.Delete(r.table).Where(cond).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: сборка delete: %w", r.table, err)
	}

	tag, err := querierFromCtx(ctx, r.storage).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: delete: %w", r.table, err)
	}
	return tag.RowsAffected(), nil
}

func (r *BaseRepository[T]) Find(ctx context.Context, cond sq.Eq, fields ...string) ([]T, error) {
	query, args, err := r.selectBuilder(cond, fields).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: сборка select: %w", r.table, err)
	}

	rows, err := querierFromCtx(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: select: %w", r.table, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("%s: scan: %w", r.table, err)
	}
	return items, nil
}

// FindOne возвращает nil без ошибки, если строки нет.
func (r *BaseRepository[T]) FindOne(ctx context.Context, cond sq.Eq, fields ...string) (*T, error) {
	query, args, err := r.selectBuilder(cond, fields).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: сборка select: %w", r.table, err)
	}
	return r.collectOne(ctx, query, args)
}

func (r *BaseRepository[T]) Exist(ctx context.Context, cond sq.Eq) (bool, error) {
	sub, args, err := psql.Select("1").From(r.table).Where(cond).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: сборка exists: %w", r.table, err)
	}

	var exists bool
	err = querierFromCtx(ctx, r.storage).QueryRow(ctx, "SELECT EXISTS("+sub+")", args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: exists: %w", r.table, err)
	}
	return exists, nil
}

func (r *BaseRepository[T]) selectBuilder(cond sq.Eq, fields []string) sq.SelectBuilder {
	if len(fields) == 0 {
		fields = []string{"*"}
	}
	return psql.Select(fields...).From(r.table).Where(cond)
}

func (r *BaseRepository[T]) collectOne(ctx context.Context, query string, args []interface{}) (*T, error) {
	rows, err := querierFromCtx(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.table, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("%s: scan: %w", r.table, err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}
