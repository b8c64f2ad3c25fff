package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenancy links a tenant to a room for a lease period
type Tenancy struct {
	BaseModel
	RoomID       uuid.UUID     `json:"room_id" gorm:"type:uuid;not null;index"`
	Room         *Room         `json:"room,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	TenantID     uuid.UUID     `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Tenant       *User         `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	StartDate    time.Time     `json:"start_date" gorm:"type:date;not null"`
	EndDate      *time.Time    `json:"end_date" gorm:"type:date"`
	Deposit      float64       `json:"deposit" gorm:"type:numeric(12,2);not null"`
	BaseRent     float64       `json:"base_rent" gorm:"type:numeric(12,2);not null"`
	Status       TenancyStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	ContractFile string        `json:"contract_file" gorm:"size:500"`
	Notes        string        `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Tenancy
func (Tenancy) TableName() string {
	return "tenancies"
}

func (t *Tenancy) AuditModelName() string { return "Tenancy" }
func (t *Tenancy) AuditObjectID() string  { return t.ID.String() }

func (t *Tenancy) String() string {
	room := t.RoomID.String()
	if t.Room != nil {
		room = t.Room.String()
	}
	tenant := t.TenantID.String()
	if t.Tenant != nil {
		tenant = t.Tenant.DisplayName()
	}
	return tenant + " @ " + room
}

// IsActive reports whether the tenancy is in the active state
func (t *Tenancy) IsActive() bool {
	return t.Status == TenancyStatusActive
}

// DaysRemaining returns whole days until the end date, floored at zero, or nil without an end date
func (t *Tenancy) DaysRemaining(today time.Time) *int {
	if t.EndDate == nil {
		return nil
	}
	days := int(DateOnly(*t.EndDate).Sub(DateOnly(today)).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}
