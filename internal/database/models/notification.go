package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification templates
const (
	TemplateInvoiceCreated           = "invoice.created"
	TemplateInvoiceIssued            = "invoice.issued"
	TemplateInvoiceOverdue           = "invoice.overdue"
	TemplatePaymentReceived          = "payment.received"
	TemplatePaymentFailed            = "payment.failed"
	TemplatePaymentCreated           = "payment.created"
	TemplateMaintenanceCreated       = "maintenance.created"
	TemplateMaintenanceAssigned      = "maintenance.assigned"
	TemplateMaintenanceStatusChanged = "maintenance.status_changed"
	TemplateInviteSent               = "invite.sent"
	TemplateInviteReceived           = "invite.received"
	TemplateInviteAccepted           = "invite.accepted"
	TemplateInviteRejected           = "invite.rejected"
	TemplateMeterReadingSubmitted    = "meter_reading.submitted"
	TemplateTenancyCreated           = "tenancy.created"
)

var templatePriorities = map[string]NotificationPriority{
	TemplateInvoiceCreated:           PriorityNormal,
	TemplateInvoiceIssued:            PriorityNormal,
	TemplateInvoiceOverdue:           PriorityUrgent,
	TemplatePaymentReceived:          PriorityNormal,
	TemplatePaymentFailed:            PriorityHigh,
	TemplatePaymentCreated:           PriorityNormal,
	TemplateMaintenanceCreated:       PriorityHigh,
	TemplateMaintenanceAssigned:      PriorityNormal,
	TemplateMaintenanceStatusChanged: PriorityNormal,
	TemplateInviteSent:               PriorityLow,
	TemplateInviteReceived:           PriorityNormal,
	TemplateInviteAccepted:           PriorityNormal,
	TemplateInviteRejected:           PriorityNormal,
	TemplateMeterReadingSubmitted:    PriorityLow,
	TemplateTenancyCreated:           PriorityNormal,
}

// DefaultPriority returns the configured priority for a template, normal when unknown
func DefaultPriority(template string) NotificationPriority {
	if p, ok := templatePriorities[template]; ok {
		return p
	}
	return PriorityNormal
}

// Notification is a message delivered to a user
type Notification struct {
	BaseModel
	UserID            uuid.UUID            `json:"user_id" gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	User              *User                `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Channel           NotificationChannel  `json:"channel" gorm:"type:varchar(10);not null;default:'inapp'"`
	Template          string               `json:"template" gorm:"not null;size:100;index"`
	Payload           json.RawMessage      `json:"payload" gorm:"type:jsonb"`
	SentAt            *time.Time           `json:"sent_at"`
	IsRead            bool                 `json:"is_read" gorm:"not null;index:idx_notifications_user_read"`
	ReadAt            *time.Time           `json:"read_at"`
	Priority          NotificationPriority `json:"priority" gorm:"type:varchar(10);not null;default:'normal'"`
	RelatedObjectType string               `json:"related_object_type" gorm:"size:50;index"`
	RelatedObjectID   string               `json:"related_object_id" gorm:"size:64"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
