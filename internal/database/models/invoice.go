package models

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
)

// Invoice is a monthly bill for a tenancy
type Invoice struct {
	BaseModel
	TenancyID   uuid.UUID     `json:"tenancy_id" gorm:"type:uuid;not null;uniqueIndex:idx_invoices_tenancy_period"`
	Tenancy     *Tenancy      `json:"tenancy,omitempty" gorm:"foreignKey:TenancyID;constraint:OnDelete:CASCADE"`
	Period      string        `json:"period" gorm:"not null;size:7;uniqueIndex:idx_invoices_tenancy_period;index"`
	TotalAmount float64       `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	AmountDue   float64       `json:"amount_due" gorm:"type:numeric(12,2);not null"`
	Status      InvoiceStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	DueDate     *time.Time    `json:"due_date" gorm:"type:date;index"`
	IssuedAt    *time.Time    `json:"issued_at"`
	PaidAt      *time.Time    `json:"paid_at"`
	Notes       string        `json:"notes" gorm:"type:text"`
	Lines       []InvoiceLine `json:"lines,omitempty" gorm:"foreignKey:InvoiceID"`
	Payments    []Payment     `json:"-" gorm:"foreignKey:InvoiceID"`
}

// TableName returns the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) AuditModelName() string { return "Invoice" }
func (i *Invoice) AuditObjectID() string  { return i.ID.String() }
func (i *Invoice) String() string         { return "Invoice " + i.Period + " (" + i.ID.String()[:8] + ")" }

// IsOverdue reports whether the due date has passed without full payment
func (i *Invoice) IsOverdue(today time.Time) bool {
	if i.DueDate == nil || i.Status == InvoiceStatusPaid {
		return false
	}
	return DateOnly(today).After(DateOnly(*i.DueDate))
}

// ApplyPayments derives status, amount due, and paid timestamp from the completed payment total
func (i *Invoice) ApplyPayments(totalPaid float64, now time.Time) {
	totalPaid = RoundMoney(totalPaid)
	i.AmountDue = RoundMoney(i.TotalAmount - totalPaid)

	switch {
	case totalPaid >= RoundMoney(i.TotalAmount):
		i.Status = InvoiceStatusPaid
		if i.PaidAt == nil {
			paidAt := now
			i.PaidAt = &paidAt
		}
	case totalPaid > 0:
		i.Status = InvoiceStatusPartial
		i.PaidAt = nil
	default:
		if i.Status != InvoiceStatusDraft {
			if i.DueDate != nil && DateOnly(*i.DueDate).Before(DateOnly(now)) {
				i.Status = InvoiceStatusOverdue
			} else {
				i.Status = InvoiceStatusPending
			}
		}
		i.PaidAt = nil
	}
}

// InvoiceLine is a single charge on an invoice
type InvoiceLine struct {
	BaseModel
	InvoiceID   uuid.UUID       `json:"invoice_id" gorm:"type:uuid;not null;index"`
	Invoice     *Invoice        `json:"-" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	ItemType    LineItemType    `json:"item_type" gorm:"type:varchar(20);not null"`
	Description string          `json:"description" gorm:"size:255"`
	Quantity    float64         `json:"quantity" gorm:"type:numeric(12,2);not null"`
	UnitPrice   float64         `json:"unit_price" gorm:"type:numeric(12,2);not null"`
	Amount      float64         `json:"amount" gorm:"type:numeric(12,2);not null"`
	Meta        json.RawMessage `json:"meta" gorm:"type:jsonb"`
}

// TableName returns the table name for InvoiceLine
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}

func (l *InvoiceLine) AuditModelName() string { return "InvoiceLine" }
func (l *InvoiceLine) AuditObjectID() string  { return l.ID.String() }
func (l *InvoiceLine) String() string         { return string(l.ItemType) + ": " + l.Description }

// RoundMoney rounds an amount to two decimal places
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
