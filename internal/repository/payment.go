package repository

import (
	"context"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentFilter narrows payment listings
type PaymentFilter struct {
	InvoiceID *uuid.UUID
	Status    models.PaymentStatus
	Method    models.PaymentMethod
}

var paymentOrdering = map[string]string{
	"created_at": "created_at",
	"amount":     "amount",
}

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	if v.IsSuperuser {
		return db
	}
	return db.Where("invoice_id IN (?)", visibleInvoiceIDs(db, v))
}

// Create creates a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Omit("Invoice").Create(payment).Error
}

// GetVisible retrieves a payment when its invoice is within v's scope
func (r *PaymentRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	q := r.visible(r.db.WithContext(ctx).Model(&models.Payment{}), v)
	if err := q.First(&payment, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrPaymentNotFound, nil)
	}
	return &payment, nil
}

// List returns the payments visible to v
func (r *PaymentRepository) List(ctx context.Context, v Viewer, filter PaymentFilter, opts ListOptions) ([]models.Payment, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.Payment{}), v)
	if filter.InvoiceID != nil {
		q = q.Where("invoice_id = ?", *filter.InvoiceID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Method != "" {
		q = q.Where("method = ?", filter.Method)
	}
	q = q.Scopes(searchScope(opts.Search, "provider_ref", "note"))

	return paginate[models.Payment](q, opts, orderBy(opts.Ordering, paymentOrdering, "created_at DESC"))
}

// Update saves all payment fields
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Omit("Invoice").Save(payment).Error
}

// Delete removes a payment
func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Payment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}

// SumCompleted totals the completed payments of an invoice
func (r *PaymentRepository) SumCompleted(ctx context.Context, invoiceID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("invoice_id = ? AND status = ?", invoiceID, models.PaymentStatusCompleted).
		Scan(&total).Error
	return models.RoundMoney(total), err
}
