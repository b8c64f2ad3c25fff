package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// MeterReading records electricity and water meter values for a room and period
type MeterReading struct {
	BaseModel
	RoomID         uuid.UUID       `json:"room_id" gorm:"type:uuid;not null;uniqueIndex:idx_meter_room_period"`
	Room           *Room           `json:"room,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Period         string          `json:"period" gorm:"not null;size:7;uniqueIndex:idx_meter_room_period"`
	ElectricityOld *float64        `json:"electricity_old" gorm:"type:numeric(12,2)"`
	ElectricityNew *float64        `json:"electricity_new" gorm:"type:numeric(12,2)"`
	WaterOld       *float64        `json:"water_old" gorm:"type:numeric(12,2)"`
	WaterNew       *float64        `json:"water_new" gorm:"type:numeric(12,2)"`
	Source         MeterSource     `json:"source" gorm:"type:varchar(10);not null;default:'manual'"`
	OCRImage       string          `json:"ocr_image" gorm:"size:500"`
	OCRPayload     json.RawMessage `json:"ocr_payload" gorm:"type:jsonb"`
	Notes          string          `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for MeterReading
func (MeterReading) TableName() string {
	return "meter_readings"
}

func (m *MeterReading) AuditModelName() string { return "MeterReading" }
func (m *MeterReading) AuditObjectID() string  { return m.ID.String() }
func (m *MeterReading) String() string         { return "Meter " + m.Period }

// ElectricityUsage returns new minus old when both values are present
func (m *MeterReading) ElectricityUsage() *float64 {
	return usage(m.ElectricityOld, m.ElectricityNew)
}

// WaterUsage returns new minus old when both values are present
func (m *MeterReading) WaterUsage() *float64 {
	return usage(m.WaterOld, m.WaterNew)
}

func usage(old, new *float64) *float64 {
	if old == nil || new == nil {
		return nil
	}
	v := RoundMoney(*new - *old)
	return &v
}
