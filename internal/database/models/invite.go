package models

import (
	"time"

	"github.com/google/uuid"
)

// Invite is a token-based onboarding offer for a tenant
type Invite struct {
	BaseModel
	PropertyID   uuid.UUID    `json:"property_id" gorm:"type:uuid;not null;index"`
	Property     *Property    `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	RoomID       *uuid.UUID   `json:"room_id" gorm:"type:uuid;index"`
	Room         *Room        `json:"room,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:SET NULL"`
	Email        string       `json:"email" gorm:"size:254;index"`
	Phone        string       `json:"phone" gorm:"size:20;index"`
	Token        string       `json:"token" gorm:"uniqueIndex;not null;size:64"`
	Role         UserRole     `json:"role" gorm:"type:varchar(20);not null;default:'tenant'"`
	Status       InviteStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ContractFile string       `json:"contract_file" gorm:"size:500"`
	ExpiresAt    time.Time    `json:"expires_at" gorm:"not null"`
}

// TableName returns the table name for Invite
func (Invite) TableName() string {
	return "invites"
}

func (i *Invite) AuditModelName() string { return "Invite" }
func (i *Invite) AuditObjectID() string  { return i.ID.String() }

func (i *Invite) String() string {
	if i.Email != "" {
		return "Invite " + i.Email
	}
	return "Invite " + i.Phone
}

// IsExpired reports whether the invite's expiry time has passed
func (i *Invite) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
