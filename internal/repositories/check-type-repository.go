package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"inspection-system/internal/entities"
)

const checkTypeTable = "check_types"

type CheckTypeRepositoryInterface interface {
	ExistsInCompany(ctx context.Context, companyID, id int64) (bool, error)
	FindByID(ctx context.Context, companyID, id int64) (*entities.CheckType, error)
}

type CheckTypeRepository struct {
	base *BaseRepository[entities.CheckType]
}

func NewCheckTypeRepository(storage Querier) CheckTypeRepositoryInterface {
	return &CheckTypeRepository{base: NewBaseRepository[entities.CheckType](storage, checkTypeTable)}
}

func (r *CheckTypeRepository) ExistsInCompany(ctx context.Context, companyID, id int64) (bool, error) {
	return r.base.Exist(ctx, sq.Eq{"id": id, "company_id": companyID})
}

func (r *CheckTypeRepository) FindByID(ctx context.Context, companyID, id int64) (*entities.CheckType, error) {
	return r.base.FindOne(ctx, sq.Eq{"id": id, "company_id": companyID})
}
