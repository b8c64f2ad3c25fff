package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Payment is money received against an invoice
type Payment struct {
	BaseModel
	InvoiceID   uuid.UUID     `json:"invoice_id" gorm:"type:uuid;not null;index"`
	Invoice     *Invoice      `json:"-" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Amount      float64       `json:"amount" gorm:"type:numeric(12,2);not null"`
	Method      PaymentMethod `json:"method" gorm:"type:varchar(20);not null;default:'cash'"`
	Status      PaymentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ProviderRef string        `json:"provider_ref" gorm:"size:100"`
	Note        string        `json:"note" gorm:"type:text"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) AuditModelName() string { return "Payment" }
func (p *Payment) AuditObjectID() string  { return p.ID.String() }

func (p *Payment) String() string {
	return fmt.Sprintf("Payment %.2f (%s)", p.Amount, p.Status)
}
