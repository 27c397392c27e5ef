package dto

import (
	"github.com/aarondl/null/v8"

	"inspection-system/internal/entities"
	"inspection-system/pkg/types"
)

const DateLayout = "2006-01-02"

type CreateObjectCheckDTO struct {
	Date        string `json:"date" validate:"required,inspection_date"`
	CheckTypeID int64  `json:"check_type_id" validate:"required,gt=0"`
	TemplateID  int64  `json:"template_id" validate:"required,gt=0"`
	// 0 - инспектор не назначен.
	InspectorID int64 `json:"inspector_id" validate:"gte=0"`
}

// InspectorRef переводит сентинел 0 в null.
func (d CreateObjectCheckDTO) InspectorRef() null.Int64 {
	return inspectorRef(d.InspectorID)
}

// UpdateObjectCheckDTO - PATCH-тело. Остальные поля запроса отбрасываются при биндинге.
type UpdateObjectCheckDTO struct {
	CheckTypeID *int64 `json:"check_type_id" validate:"omitempty,gt=0"`
	TemplateID  *int64 `json:"template_id" validate:"omitempty,gt=0"`
	// Невалиден, если поле не передано или равно null; 0 снимает инспектора.
	InspectorID null.Int64 `json:"inspector_id" validate:"omitempty,gte=0"`
}

func (d UpdateObjectCheckDTO) ToPatch() entities.ObjectCheckPatch {
	patch := entities.ObjectCheckPatch{
		CheckTypeID: d.CheckTypeID,
		TemplateID:  d.TemplateID,
	}
	if d.InspectorID.Valid {
		ref := inspectorRef(d.InspectorID.Int64)
		patch.InspectorID = &ref
	}
	return patch
}

func inspectorRef(id int64) null.Int64 {
	if id == 0 {
		return null.Int64{}
	}
	return null.Int64From(id)
}

type ListObjectChecksQuery struct {
	Page      int    `query:"page" validate:"omitempty,gte=1"`
	PerPage   int    `query:"per_page" validate:"omitempty,gte=1"`
	Sort      string `query:"sort" validate:"omitempty,oneof=id date_of_inspection status created_at updated_at template_name check_type_name inspector_name"`
	Direction string `query:"direction" validate:"sort_direction"`
}

type ObjectCheckDTO struct {
	ID               int64       `json:"id"`
	ObjectID         int64       `json:"object_id"`
	ObjectName       string      `json:"object_name"`
	TemplateID       int64       `json:"template_id"`
	TemplateName     string      `json:"template_name"`
	CheckTypeID      int64       `json:"check_type_id"`
	CheckTypeName    string      `json:"check_type_name"`
	InspectorID      null.Int64  `json:"inspector_id"`
	InspectorName    null.String `json:"inspector_name"`
	Status           string      `json:"status"`
	Comments         null.String `json:"comments"`
	LinkURL          string      `json:"link_url"`
	DateOfInspection string      `json:"date_of_inspection"`
	CreatedAt        string      `json:"created_at"`
	UpdatedAt        string      `json:"updated_at"`
}

func NewObjectCheckDTO(view entities.ObjectCheckView) ObjectCheckDTO {
	status := view.CheckStatus()
	return ObjectCheckDTO{
		ID:               view.ID,
		ObjectID:         view.ObjectID,
		ObjectName:       view.ObjectName,
		TemplateID:       view.TemplateID,
		TemplateName:     view.TemplateName,
		CheckTypeID:      view.CheckTypeID,
		CheckTypeName:    view.CheckTypeName,
		InspectorID:      view.InspectorID,
		InspectorName:    view.InspectorName,
		Status:           string(status.Code),
		Comments:         status.Comment,
		LinkURL:          view.LinkURL,
		DateOfInspection: view.DateOfInspection.UTC().Format(DateLayout),
		CreatedAt:        view.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt:        view.UpdatedAt.Local().Format("2006-01-02 15:04:05"),
	}
}

// ObjectCheckListDTO - тело ответа списка: checks и поля PageInfo на одном уровне.
type ObjectCheckListDTO struct {
	Checks []ObjectCheckDTO `json:"checks"`
	types.PageInfo
}
