package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Party is a customer or vendor referenced by invoices and ledger entries
type Party struct {
	ID        string                      `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string                      `gorm:"not null" json:"name"`
	Email     *string                     `json:"email,omitempty"`
	Address   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"address"`
	District  string                      `json:"district"`
	State     string                      `json:"state"`
	StateCode string                      `gorm:"column:state_code" json:"state_code"`
	GSTIN     *string                     `gorm:"column:gstin" json:"gstin,omitempty"`
	CreatedAt time.Time                   `gorm:"index" json:"-"`
}

// TableName specifies the table name for Party
func (Party) TableName() string {
	return "parties"
}

// UnknownParty is what readers show for a reference that no longer resolves
func UnknownParty() Party {
	return Party{Name: "Unknown", Address: datatypes.JSONSlice[string]{}}
}

// Clone returns a deep copy of the party
func (p Party) Clone() Party {
	p.Address = cloneStrings(p.Address)
	p.Email = cloneString(p.Email)
	p.GSTIN = cloneString(p.GSTIN)
	return p
}

// UpdatePartyRequest carries the fields of a partial party update.
// Nil fields are left untouched.
type UpdatePartyRequest struct {
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Address   *[]string `json:"address,omitempty"`
	District  *string   `json:"district,omitempty"`
	State     *string   `json:"state,omitempty"`
	StateCode *string   `json:"state_code,omitempty"`
	GSTIN     *string   `json:"gstin,omitempty"`
}

// Empty reports whether no field is set
func (r *UpdatePartyRequest) Empty() bool {
	return len(r.Columns()) == 0
}

// Columns maps the provided fields to their at-rest column names.
// Empty optional strings are stored as NULL.
func (r *UpdatePartyRequest) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if r.Name != nil {
		cols["name"] = *r.Name
	}
	if r.Email != nil {
		cols["email"] = nullable(*r.Email)
	}
	if r.Address != nil {
		cols["address"] = datatypes.JSONSlice[string](cloneStrings(*r.Address))
	}
	if r.District != nil {
		cols["district"] = *r.District
	}
	if r.State != nil {
		cols["state"] = *r.State
	}
	if r.StateCode != nil {
		cols["state_code"] = *r.StateCode
	}
	if r.GSTIN != nil {
		cols["gstin"] = nullable(*r.GSTIN)
	}
	return cols
}

// ApplyTo merges the provided fields into p
func (r *UpdatePartyRequest) ApplyTo(p *Party) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Email != nil {
		p.Email = nullable(*r.Email)
	}
	if r.Address != nil {
		p.Address = cloneStrings(*r.Address)
	}
	if r.District != nil {
		p.District = *r.District
	}
	if r.State != nil {
		p.State = *r.State
	}
	if r.StateCode != nil {
		p.StateCode = *r.StateCode
	}
	if r.GSTIN != nil {
		p.GSTIN = nullable(*r.GSTIN)
	}
}

// SplitAddress turns free text into trimmed, non-empty address lines
func SplitAddress(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
