package entities

import "inspection-system/pkg/types"

// Template - шаблон проверки, привязан к одному типу проверки компании.
type Template struct {
	ID          int64  `json:"id" db:"id"`
	CompanyID   int64  `json:"company_id" db:"company_id"`
	CheckTypeID int64  `json:"check_type_id" db:"check_type_id"`
	Name        string `json:"name" db:"name"`
	types.BaseEntity
}
