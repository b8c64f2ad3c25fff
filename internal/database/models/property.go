package models

import (
	"github.com/google/uuid"
)

// Property represents a building owned by a landlord
type Property struct {
	BaseModel
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Owner       *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Name        string    `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Address     string    `json:"address" gorm:"size:500"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image" gorm:"size:500"`
	Rooms       []Room    `json:"rooms,omitempty" gorm:"foreignKey:BuildingID"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}

func (p *Property) AuditModelName() string { return "Property" }
func (p *Property) AuditObjectID() string  { return p.ID.String() }
func (p *Property) String() string         { return p.Name }

// Room represents a rentable unit in a property
type Room struct {
	BaseModel
	BuildingID  uuid.UUID  `json:"building_id" gorm:"type:uuid;not null;uniqueIndex:idx_rooms_building_number"`
	Building    *Property  `json:"building,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	RoomNumber  string     `json:"room_number" gorm:"not null;size:50;uniqueIndex:idx_rooms_building_number" validate:"required,max=50"`
	Floor       int        `json:"floor" gorm:"not null"`
	Area        *float64   `json:"area" gorm:"type:numeric(8,2)"`
	BaseRent    float64    `json:"base_rent" gorm:"type:numeric(12,2);not null"`
	Status      RoomStatus `json:"status" gorm:"type:varchar(20);not null;default:'vacant';index"`
	Description string     `json:"description" gorm:"type:text"`
	Image       string     `json:"image" gorm:"size:500"`
}

// TableName returns the table name for Room
func (Room) TableName() string {
	return "rooms"
}

func (r *Room) AuditModelName() string { return "Room" }
func (r *Room) AuditObjectID() string  { return r.ID.String() }

func (r *Room) String() string {
	if r.Building != nil {
		return r.Building.Name + " - " + r.RoomNumber
	}
	return r.RoomNumber
}

// ServicePrice is a per-property unit price for a utility or service
type ServicePrice struct {
	BaseModel
	PropertyID  uuid.UUID   `json:"property_id" gorm:"type:uuid;not null;uniqueIndex:idx_prices_property_type"`
	Property    *Property   `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	ServiceType ServiceType `json:"service_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_prices_property_type"`
	Name        string      `json:"name" gorm:"size:100"`
	UnitPrice   float64     `json:"unit_price" gorm:"type:numeric(12,2);not null"`
	Unit        string      `json:"unit" gorm:"size:20"`
	IsRecurring bool        `json:"is_recurring" gorm:"not null"`
}

// TableName returns the table name for ServicePrice
func (ServicePrice) TableName() string {
	return "service_prices"
}

// DisplayName returns the custom name for "other" services, otherwise the type label
func (p *ServicePrice) DisplayName() string {
	if p.ServiceType == ServiceTypeOther && p.Name != "" {
		return p.Name
	}
	return p.ServiceType.Label()
}
