package entities

import "inspection-system/pkg/types"

// CompanyObject - объект (локация) компании, на который назначаются проверки.
type CompanyObject struct {
	ID        int64  `json:"id" db:"id"`
	CompanyID int64  `json:"company_id" db:"company_id"`
	CityID    int64  `json:"city_id" db:"city_id"`
	Name      string `json:"name" db:"name"`
	Address   string `json:"address" db:"address"`
	types.BaseEntity
}

type CompanyObjectView struct {
	CompanyObject
	CityName string `json:"city_name" db:"city_name"`
}
