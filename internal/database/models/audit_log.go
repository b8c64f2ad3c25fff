package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of a change or access event
type AuditLog struct {
	BaseModel
	UserID     *uuid.UUID      `json:"user_id" gorm:"type:uuid;index"`
	User       *User           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	ActionType AuditAction     `json:"action_type" gorm:"type:varchar(20);not null;index"`
	ModelName  string          `json:"model_name" gorm:"size:100;index"`
	ObjectID   string          `json:"object_id" gorm:"size:64;index"`
	ObjectRepr string          `json:"object_repr" gorm:"size:255"`
	Changes    json.RawMessage `json:"changes" gorm:"type:jsonb"`
	IPAddress  string          `json:"ip_address" gorm:"size:45"`
	UserAgent  string          `json:"user_agent" gorm:"size:500"`
	Metadata   json.RawMessage `json:"metadata" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
