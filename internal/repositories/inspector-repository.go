package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"inspection-system/internal/entities"
)

const inspectorTable = "company_inspectors"

type InspectorRepositoryInterface interface {
	ExistsApproved(ctx context.Context, companyID, id int64) (bool, error)
	FindProfile(ctx context.Context, companyID, id int64) (*entities.InspectorProfile, error)
}

type InspectorRepository struct {
	storage Querier
	base    *BaseRepository[entities.CompanyInspector]
}

func NewInspectorRepository(storage Querier) InspectorRepositoryInterface {
	return &InspectorRepository{
		storage: storage,
		base:    NewBaseRepository[entities.CompanyInspector](storage, inspectorTable),
	}
}

func (r *InspectorRepository) ExistsApproved(ctx context.Context, companyID, id int64) (bool, error) {
	return r.base.Exist(ctx, sq.Eq{
		"id":         id,
		"company_id": companyID,
		"status":     string(entities.InspectorApproved),
	})
}

func (r *InspectorRepository) FindProfile(ctx context.Context, companyID, id int64) (*entities.InspectorProfile, error) {
	query, args, err := psql.Select(
		"ci.id", "ci.company_id",
		"TRIM(ci.last_name || ' ' || ci.first_name) AS full_name",
		"ci.email", "ci.status",
	).From(inspectorTable + " ci").
		Where(sq.Eq{"ci.id": id, "ci.company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := querierFromCtx(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения инспектора: %w", err)
	}
	profile, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entities.InspectorProfile])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования инспектора: %w", err)
	}
	return profile, nil
}
