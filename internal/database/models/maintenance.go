package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRequest is a repair request raised for a room
type MaintenanceRequest struct {
	BaseModel
	RoomID              uuid.UUID               `json:"room_id" gorm:"type:uuid;not null;index"`
	Room                *Room                   `json:"room,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	RequesterID         uuid.UUID               `json:"requester_id" gorm:"type:uuid;not null;index"`
	Requester           *User                   `json:"requester,omitempty" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	Title               string                  `json:"title" gorm:"not null;size:200"`
	Description         string                  `json:"description" gorm:"type:text"`
	Category            MaintenanceCategory     `json:"category" gorm:"type:varchar(20);not null;default:'other'"`
	AIPredictedCategory string                  `json:"ai_predicted_category" gorm:"size:20"`
	AIConfidence        *float64                `json:"ai_confidence"`
	Status              MaintenanceStatus       `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	AssigneeID          *uuid.UUID              `json:"assignee_id" gorm:"type:uuid;index"`
	Assignee            *User                   `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	ResolvedAt          *time.Time              `json:"resolved_at"`
	ResolutionNote      string                  `json:"resolution_note" gorm:"type:text"`
	Attachments         []MaintenanceAttachment `json:"attachments,omitempty" gorm:"foreignKey:RequestID"`
}

// TableName returns the table name for MaintenanceRequest
func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

func (m *MaintenanceRequest) AuditModelName() string { return "MaintenanceRequest" }
func (m *MaintenanceRequest) AuditObjectID() string  { return m.ID.String() }
func (m *MaintenanceRequest) String() string         { return m.Title }

// MaintenanceAttachment is a file attached to a maintenance request
type MaintenanceAttachment struct {
	BaseModel
	RequestID uuid.UUID           `json:"request_id" gorm:"type:uuid;not null;index"`
	Request   *MaintenanceRequest `json:"-" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
	File      string              `json:"file" gorm:"not null;size:500"`
}

// TableName returns the table name for MaintenanceAttachment
func (MaintenanceAttachment) TableName() string {
	return "maintenance_attachments"
}
