package entities

import (
	"errors"
	"time"

	"github.com/aarondl/null/v8"
)

type StatusCode string

const (
	StatusAppointed StatusCode = "appointed"
	StatusChecking  StatusCode = "checking"
	StatusFulfilled StatusCode = "fulfilled"
	StatusRefusal   StatusCode = "refusal"
	StatusRevision  StatusCode = "revision"
)

var (
	ErrUnknownStatus           = errors.New("unknown check status")
	ErrRevisionCommentRequired = errors.New("revision status requires a comment")
	ErrStatusCommentNotAllowed = errors.New("only revision status carries a comment")
)

func (s StatusCode) IsValid() bool {
	switch s {
	case StatusAppointed, StatusChecking, StatusFulfilled, StatusRefusal, StatusRevision:
		return true
	}
	return false
}

// CheckStatus - статус проверки. Comment заполнен только у StatusRevision.
type CheckStatus struct {
	Code    StatusCode
	Comment null.String
}

func NewCheckStatus(code StatusCode, comment string) (CheckStatus, error) {
	if !code.IsValid() {
		return CheckStatus{}, ErrUnknownStatus
	}
	if code == StatusRevision {
		if comment == "" {
			return CheckStatus{}, ErrRevisionCommentRequired
		}
		return CheckStatus{Code: code, Comment: null.StringFrom(comment)}, nil
	}
	if comment != "" {
		return CheckStatus{}, ErrStatusCommentNotAllowed
	}
	return CheckStatus{Code: code}, nil
}

// ObjectCheck - строка таблицы object_checks.
type ObjectCheck struct {
	ID               int64       `json:"id" db:"id"`
	CompanyID        int64       `json:"company_id" db:"company_id"`
	ObjectID         int64       `json:"object_id" db:"object_id"`
	TemplateID       int64       `json:"template_id" db:"template_id"`
	CheckTypeID      int64       `json:"check_type_id" db:"check_type_id"`
	InspectorID      null.Int64  `json:"inspector_id" db:"inspector_id"`
	Status           StatusCode  `json:"status" db:"status"`
	LinkURL          string      `json:"link_url" db:"link_url"`
	DateOfInspection time.Time   `json:"date_of_inspection" db:"date_of_inspection"`
	Comments         null.String `json:"comments" db:"comments"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at" db:"updated_at"`
}

func (c ObjectCheck) CheckStatus() CheckStatus {
	if c.Status == StatusRevision {
		return CheckStatus{Code: c.Status, Comment: c.Comments}
	}
	return CheckStatus{Code: c.Status}
}

// ObjectCheckView - проверка вместе с названиями объекта, шаблона, типа и именем инспектора.
type ObjectCheckView struct {
	ObjectCheck
	ObjectName    string      `json:"object_name" db:"object_name"`
	TemplateName  string      `json:"template_name" db:"template_name"`
	CheckTypeName string      `json:"check_type_name" db:"check_type_name"`
	InspectorName null.String `json:"inspector_name" db:"inspector_name"`
}

// NewObjectCheck - данные для вставки; InspectorID невалиден, если инспектор не назначен.
type NewObjectCheck struct {
	CompanyID        int64
	ObjectID         int64
	TemplateID       int64
	CheckTypeID      int64
	InspectorID      null.Int64
	Status           StatusCode
	LinkURL          string
	DateOfInspection time.Time
}

// ObjectCheckPatch - разрешённые для PATCH поля. nil - поле не передано.
// InspectorID с Valid == false снимает инспектора.
type ObjectCheckPatch struct {
	CheckTypeID *int64
	TemplateID  *int64
	InspectorID *null.Int64
}

func (p ObjectCheckPatch) IsEmpty() bool {
	return p.CheckTypeID == nil && p.TemplateID == nil && p.InspectorID == nil
}

// Values превращает патч в набор колонок для UPDATE.
func (p ObjectCheckPatch) Values(updatedAt time.Time) map[string]interface{} {
	values := map[string]interface{}{"updated_at": updatedAt}
	if p.CheckTypeID != nil {
		values["check_type_id"] = *p.CheckTypeID
	}
	if p.TemplateID != nil {
		values["template_id"] = *p.TemplateID
	}
	if p.InspectorID != nil {
		values["inspector_id"] = *p.InspectorID
	}
	return values
}
