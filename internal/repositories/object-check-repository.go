package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"inspection-system/internal/entities"
	db "inspection-system/internal/infrastructure/bd"
	"inspection-system/pkg/types"
)

const objectCheckTable = "object_checks"

// Ключи сортировки списка проверок и колонки, на которые они отображаются.
var objectCheckSortMap = map[string]string{
	"id":                 "oc.id",
	"date_of_inspection": "oc.date_of_inspection",
	"status":             "oc.status",
	"created_at":         "oc.created_at",
	"updated_at":         "oc.updated_at",
	"template_name":      "t.name",
	"check_type_name":    "ct.name",
	"inspector_name":     "inspector_name",
}

const DefaultObjectCheckSort = "date_of_inspection"

type ObjectCheckRepositoryInterface interface {
	Create(ctx context.Context, check entities.NewObjectCheck) (*entities.ObjectCheck, error)
	Update(ctx context.Context, companyID, objectID, id int64, values map[string]interface{}) (*entities.ObjectCheck, error)
	Delete(ctx context.Context, companyID, objectID, id int64) (int64, error)
	FindOne(ctx context.Context, companyID, objectID, id int64) (*entities.ObjectCheck, error)
	FindView(ctx context.Context, companyID, objectID, id int64) (*entities.ObjectCheckView, error)
	FindByPage(ctx context.Context, companyID, objectID int64, params types.ListParams) ([]entities.ObjectCheckView, uint64, error)
	FindAllViews(ctx context.Context, companyID, objectID int64) ([]entities.ObjectCheckView, error)
}

type ObjectCheckRepository struct {
	storage Querier
	base    *BaseRepository[entities.ObjectCheck]
}

func NewObjectCheckRepository(storage Querier) ObjectCheckRepositoryInterface {
	return &ObjectCheckRepository{
		storage: storage,
		base:    NewBaseRepository[entities.ObjectCheck](storage, objectCheckTable),
	}
}

func scopeCond(companyID, objectID, id int64) sq.Eq {
	return sq.Eq{"id": id, "company_id": companyID, "object_id": objectID}
}

func (r *ObjectCheckRepository) Create(ctx context.Context, check entities.NewObjectCheck) (*entities.ObjectCheck, error) {
	return r.base.Create(ctx, map[string]interface{}{
		"company_id":         check.CompanyID,
		"object_id":          check.ObjectID,
		"template_id":        check.TemplateID,
		"check_type_id":      check.CheckTypeID,
		"inspector_id":       check.InspectorID,
		"status":             string(check.Status),
		"link_url":           check.LinkURL,
		"date_of_inspection": check.DateOfInspection,
	})
}

// Update возвращает nil, если строки нет.
func (r *ObjectCheckRepository) Update(ctx context.Context, companyID, objectID, id int64, values map[string]interface{}) (*entities.ObjectCheck, error) {
	return r.base.Update(ctx, scopeCond(companyID, objectID, id), values)
}

func (r *ObjectCheckRepository) Delete(ctx context.Context, companyID, objectID, id int64) (int64, error) {
	return r.base.Delete(ctx, scopeCond(companyID, objectID, id))
}

func (r *ObjectCheckRepository) FindOne(ctx context.Context, companyID, objectID, id int64) (*entities.ObjectCheck, error) {
	return r.base.FindOne(ctx, scopeCond(companyID, objectID, id))
}

func viewSelect() sq.SelectBuilder {
	return psql.Select(
		"oc.id", "oc.company_id", "oc.object_id", "oc.template_id", "oc.check_type_id",
		"oc.inspector_id", "oc.status", "oc.link_url", "oc.date_of_inspection", "oc.comments",
		"oc.created_at", "oc.updated_at",
		"co.name AS object_name",
		"t.name AS template_name",
		"ct.name AS check_type_name",
		"CASE WHEN ci.id IS NULL THEN NULL ELSE TRIM(ci.last_name || ' ' || ci.first_name) END AS inspector_name",
	).From(objectCheckTable + " oc").
		Join("company_objects co ON co.id = oc.object_id").
		Join("templates t ON t.id = oc.template_id").
		Join("check_types ct ON ct.id = oc.check_type_id").
		LeftJoin("company_inspectors ci ON ci.id = oc.inspector_id")
}

func viewScope(companyID, objectID int64) sq.Eq {
	return sq.Eq{"oc.company_id": companyID, "oc.object_id": objectID}
}

func (r *ObjectCheckRepository) FindView(ctx context.Context, companyID, objectID, id int64) (*entities.ObjectCheckView, error) {
	query, args, err := viewSelect().
		Where(viewScope(companyID, objectID)).
		Where(sq.Eq{"oc.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	views, err := r.collectViews(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}

// FindByPage возвращает страницу проверок объекта и общее число проверок без учёта LIMIT/OFFSET.
func (r *ObjectCheckRepository) FindByPage(ctx context.Context, companyID, objectID int64, params types.ListParams) ([]entities.ObjectCheckView, uint64, error) {
	params.WithPagination = true
	query, args, err := BuildObjectCheckListQuery(companyID, objectID, params).ToSql()
	if err != nil {
		return nil, 0, err
	}

	views, err := r.collectViews(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From(objectCheckTable + " oc").
		Where(viewScope(companyID, objectID)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := querierFromCtx(ctx, r.storage).QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета проверок: %w", err)
	}
	return views, total, nil
}

// FindAllViews - все проверки объекта без пагинации, для выгрузки.
func (r *ObjectCheckRepository) FindAllViews(ctx context.Context, companyID, objectID int64) ([]entities.ObjectCheckView, error) {
	query, args, err := BuildObjectCheckListQuery(companyID, objectID, types.ListParams{}).ToSql()
	if err != nil {
		return nil, err
	}
	return r.collectViews(ctx, query, args)
}

// BuildObjectCheckListQuery собирает выборку проверок объекта с сортировкой из белого списка.
func BuildObjectCheckListQuery(companyID, objectID int64, params types.ListParams) sq.SelectBuilder {
	builder := viewSelect().Where(viewScope(companyID, objectID))
	return db.ApplyListParams(builder, params, objectCheckSortMap, DefaultObjectCheckSort, "oc.id")
}

func (r *ObjectCheckRepository) collectViews(ctx context.Context, query string, args []interface{}) ([]entities.ObjectCheckView, error) {
	rows, err := querierFromCtx(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения проверок: %w", err)
	}
	views, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.ObjectCheckView])
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования проверок: %w", err)
	}
	return views, nil
}
