package entities

import "inspection-system/pkg/types"

type InspectorStatus string

const (
	InspectorInvited  InspectorStatus = "invited"
	InspectorApproved InspectorStatus = "approved"
	InspectorRejected InspectorStatus = "rejected"
)

type CompanyInspector struct {
	ID        int64           `json:"id" db:"id"`
	CompanyID int64           `json:"company_id" db:"company_id"`
	FirstName string          `json:"first_name" db:"first_name"`
	LastName  string          `json:"last_name" db:"last_name"`
	Email     string          `json:"email" db:"email"`
	Status    InspectorStatus `json:"status" db:"status"`
	types.BaseEntity
}

// InspectorProfile - инспектор вместе с отображаемым именем.
type InspectorProfile struct {
	ID        int64           `json:"id" db:"id"`
	CompanyID int64           `json:"company_id" db:"company_id"`
	FullName  string          `json:"full_name" db:"full_name"`
	Email     string          `json:"email" db:"email"`
	Status    InspectorStatus `json:"status" db:"status"`
}
