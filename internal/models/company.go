package models

import (
	"gorm.io/datatypes"
)

// Company is the singleton profile of the business issuing invoices
type Company struct {
	ID        string                      `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string                      `gorm:"not null" json:"name"`
	Address   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"address"`
	GSTIN     string                      `gorm:"column:gstin" json:"gstin"`
	State     string                      `json:"state"`
	StateCode string                      `gorm:"column:state_code" json:"state_code"`
}

// TableName specifies the table name for Company
func (Company) TableName() string {
	return "companies"
}

// Persisted reports whether the profile has an identity in the backend
func (c *Company) Persisted() bool {
	return c.ID != ""
}

// Columns returns the at-rest representation used for updates
func (c *Company) Columns() map[string]interface{} {
	return map[string]interface{}{
		"name":       c.Name,
		"address":    datatypes.JSONSlice[string](cloneStrings(c.Address)),
		"gstin":      c.GSTIN,
		"state":      c.State,
		"state_code": c.StateCode,
	}
}

// Clone returns a deep copy of the company
func (c Company) Clone() Company {
	c.Address = cloneStrings(c.Address)
	return c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
