package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"inspection-system/internal/entities"
)

const objectTable = "company_objects"

type ObjectRepositoryInterface interface {
	ExistsInCompany(ctx context.Context, companyID, id int64) (bool, error)
	FindByID(ctx context.Context, companyID, id int64) (*entities.CompanyObjectView, error)
}

type ObjectRepository struct {
	storage Querier
	base    *BaseRepository[entities.CompanyObject]
}

func NewObjectRepository(storage Querier) ObjectRepositoryInterface {
	return &ObjectRepository{
		storage: storage,
		base:    NewBaseRepository[entities.CompanyObject](storage, objectTable),
	}
}

func (r *ObjectRepository) ExistsInCompany(ctx context.Context, companyID, id int64) (bool, error) {
	return r.base.Exist(ctx, sq.Eq{"id": id, "company_id": companyID})
}

// FindByID возвращает объект с названием города.
func (r *ObjectRepository) FindByID(ctx context.Context, companyID, id int64) (*entities.CompanyObjectView, error) {
	query, args, err := psql.Select(
		"co.id", "co.company_id", "co.city_id", "co.name", "co.address",
		"co.created_at", "co.updated_at", "c.name AS city_name",
	).From(objectTable + " co").
		Join("cities c ON c.id = co.city_id").
		Where(sq.Eq{"co.id": id, "co.company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := querierFromCtx(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения объекта: %w", err)
	}
	object, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entities.CompanyObjectView])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования объекта: %w", err)
	}
	return object, nil
}
