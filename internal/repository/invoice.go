package repository

import (
	"context"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceFilter narrows invoice listings
type InvoiceFilter struct {
	Statuses   []models.InvoiceStatus
	Period     string
	PeriodGTE  string
	PeriodLTE  string
	PropertyID *uuid.UUID
	TenancyID  *uuid.UUID
}

// PaymentTotal aggregates the completed payments of one invoice
type PaymentTotal struct {
	Total float64
	Count int64
}

var invoiceOrdering = map[string]string{
	"period":       "invoices.period",
	"due_date":     "invoices.due_date",
	"created_at":   "invoices.created_at",
	"total_amount": "invoices.total_amount",
}

var invoicePreloads = []string{"Tenancy.Room.Building", "Tenancy.Tenant", "Lines"}

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	if v.IsSuperuser {
		return db
	}
	return db.Where("invoices.tenancy_id IN (?)", visibleTenancyIDs(db, v))
}

func (r *InvoiceRepository) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range invoicePreloads {
		db = db.Preload(p)
	}
	return db
}

// Create creates a new invoice together with its lines
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	err := r.db.WithContext(ctx).Omit("Tenancy", "Payments").Create(invoice).Error
	return translate(err, nil, apperrors.ErrInvoiceExists)
}

// GetByID retrieves an invoice with its relations, without visibility checks
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.withPreloads(r.db.WithContext(ctx)).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrInvoiceNotFound, nil)
	}
	return &invoice, nil
}

// GetVisible retrieves an invoice when it is within v's scope
func (r *InvoiceRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	q := r.withPreloads(r.visible(r.db.WithContext(ctx).Model(&models.Invoice{}), v))
	if err := q.First(&invoice, "invoices.id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrInvoiceNotFound, nil)
	}
	return &invoice, nil
}

// List returns the invoices visible to v
func (r *InvoiceRepository) List(ctx context.Context, v Viewer, filter InvoiceFilter, opts ListOptions) ([]models.Invoice, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.Invoice{}), v).
		Joins("JOIN tenancies ON tenancies.id = invoices.tenancy_id").
		Joins("JOIN rooms ON rooms.id = tenancies.room_id")

	if len(filter.Statuses) > 0 {
		q = q.Where("invoices.status IN ?", filter.Statuses)
	}
	if filter.Period != "" {
		q = q.Where("invoices.period = ?", filter.Period)
	}
	if filter.PeriodGTE != "" {
		q = q.Where("invoices.period >= ?", filter.PeriodGTE)
	}
	if filter.PeriodLTE != "" {
		q = q.Where("invoices.period <= ?", filter.PeriodLTE)
	}
	if filter.PropertyID != nil {
		q = q.Where("rooms.building_id = ?", *filter.PropertyID)
	}
	if filter.TenancyID != nil {
		q = q.Where("invoices.tenancy_id = ?", *filter.TenancyID)
	}
	q = q.Scopes(searchScope(opts.Search, "rooms.room_number", "invoices.period", "invoices.notes"))

	return paginate[models.Invoice](q, opts, orderBy(opts.Ordering, invoiceOrdering, "invoices.created_at DESC"), invoicePreloads...)
}

// Update saves the invoice's own columns; lines are managed separately
func (r *InvoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	err := r.db.WithContext(ctx).Omit("Tenancy", "Lines", "Payments").Save(invoice).Error
	return translate(err, nil, apperrors.ErrInvoiceExists)
}

// Delete removes an invoice; lines and payments cascade
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInvoiceNotFound
	}
	return nil
}

// PeriodTaken reports whether the tenancy already has an invoice for period
func (r *InvoiceRepository) PeriodTaken(ctx context.Context, tenancyID uuid.UUID, period string, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("tenancy_id = ? AND period = ? AND id <> ?", tenancyID, period, excludeID))
}

// PaymentTotals sums completed payments per invoice in one query
func (r *InvoiceRepository) PaymentTotals(ctx context.Context, invoiceIDs []uuid.UUID) (map[uuid.UUID]PaymentTotal, error) {
	out := make(map[uuid.UUID]PaymentTotal, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		InvoiceID uuid.UUID
		Total     float64
		Count     int64
	}
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Select("invoice_id, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("invoice_id IN ? AND status = ?", invoiceIDs, models.PaymentStatusCompleted).
		Group("invoice_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.InvoiceID] = PaymentTotal{Total: models.RoundMoney(row.Total), Count: row.Count}
	}
	return out, nil
}

// ListOverdueCandidates returns unpaid issued invoices whose due date is before today
func (r *InvoiceRepository) ListOverdueCandidates(ctx context.Context, today time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Tenancy.Room.Building").
		Preload("Tenancy.Tenant").
		Where("due_date IS NOT NULL AND due_date < ?", models.DateOnly(today)).
		Where("status IN ?", []models.InvoiceStatus{
			models.InvoiceStatusPending,
			models.InvoiceStatusPartial,
			models.InvoiceStatusOverdue,
		}).
		Order("due_date ASC").
		Find(&invoices).Error
	return invoices, err
}
