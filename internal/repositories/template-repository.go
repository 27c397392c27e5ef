package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"inspection-system/internal/entities"
)

const templateTable = "templates"

type TemplateRepositoryInterface interface {
	ExistsInCompany(ctx context.Context, companyID, id int64) (bool, error)
	// ExistsForCheckType проверяет, что шаблон компании привязан к checkTypeID.
	ExistsForCheckType(ctx context.Context, companyID, id, checkTypeID int64) (bool, error)
}

type TemplateRepository struct {
	base *BaseRepository[entities.Template]
}

func NewTemplateRepository(storage Querier) TemplateRepositoryInterface {
	return &TemplateRepository{base: NewBaseRepository[entities.Template](storage, templateTable)}
}

func (r *TemplateRepository) ExistsInCompany(ctx context.Context, companyID, id int64) (bool, error) {
	return r.base.Exist(ctx, sq.Eq{"id": id, "company_id": companyID})
}

func (r *TemplateRepository) ExistsForCheckType(ctx context.Context, companyID, id, checkTypeID int64) (bool, error) {
	return r.base.Exist(ctx, sq.Eq{"id": id, "company_id": companyID, "check_type_id": checkTypeID})
}
