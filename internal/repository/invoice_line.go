package repository

import (
	"context"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var invoiceLineOrdering = map[string]string{
	"created_at": "created_at",
	"amount":     "amount",
	"item_type":  "item_type",
}

// InvoiceLineRepository handles database operations for invoice lines
type InvoiceLineRepository struct {
	db *gorm.DB
}

// NewInvoiceLineRepository creates a new invoice line repository
func NewInvoiceLineRepository(db *gorm.DB) *InvoiceLineRepository {
	return &InvoiceLineRepository{db: db}
}

func (r *InvoiceLineRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	if v.IsSuperuser {
		return db
	}
	return db.Where("invoice_id IN (?)", visibleInvoiceIDs(db, v))
}

// Create creates a new invoice line
func (r *InvoiceLineRepository) Create(ctx context.Context, line *models.InvoiceLine) error {
	return r.db.WithContext(ctx).Omit("Invoice").Create(line).Error
}

// GetVisible retrieves a line when its invoice is within v's scope
func (r *InvoiceLineRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.InvoiceLine, error) {
	var line models.InvoiceLine
	q := r.visible(r.db.WithContext(ctx).Model(&models.InvoiceLine{}), v)
	if err := q.First(&line, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrInvoiceLineNotFound, nil)
	}
	return &line, nil
}

// List returns the invoice lines visible to v, optionally for one invoice
func (r *InvoiceLineRepository) List(ctx context.Context, v Viewer, invoiceID *uuid.UUID, opts ListOptions) ([]models.InvoiceLine, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.InvoiceLine{}), v)
	if invoiceID != nil {
		q = q.Where("invoice_id = ?", *invoiceID)
	}
	q = q.Scopes(searchScope(opts.Search, "description"))

	return paginate[models.InvoiceLine](q, opts, orderBy(opts.Ordering, invoiceLineOrdering, "created_at ASC"))
}

// Update saves all line fields
func (r *InvoiceLineRepository) Update(ctx context.Context, line *models.InvoiceLine) error {
	return r.db.WithContext(ctx).Omit("Invoice").Save(line).Error
}

// Delete removes an invoice line
func (r *InvoiceLineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.InvoiceLine{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInvoiceLineNotFound
	}
	return nil
}
