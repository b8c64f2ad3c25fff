package service

import (
	"context"
	"fmt"
	"time"

	"rental-management-backend/internal/database/models"
	"rental-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PaymentService handles business logic for payments and keeps invoice status in sync
type PaymentService struct {
	repo      repository.PaymentRepositoryInterface
	invoices  repository.InvoiceRepositoryInterface
	tx        repository.Transactor
	audit     AuditorInterface
	notifier  NotifierInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewPaymentService creates a new payment service
func NewPaymentService(repo repository.PaymentRepositoryInterface, invoices repository.InvoiceRepositoryInterface,
	tx repository.Transactor, audit AuditorInterface, notifier NotifierInterface, validator *validator.Validate) *PaymentService {
	return &PaymentService{
		repo:      repo,
		invoices:  invoices,
		tx:        tx,
		audit:     audit,
		notifier:  notifier,
		validator: validator,
		now:       time.Now,
	}
}

var _ PaymentServiceInterface = (*PaymentService)(nil)

// SetClock overrides the time source
func (s *PaymentService) SetClock(now func() time.Time) { s.now = now }

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	Invoice     uuid.UUID            `json:"invoice" validate:"required"`
	Amount      float64              `json:"amount" validate:"gt=0"`
	Method      models.PaymentMethod `json:"method" validate:"omitempty,oneof=cash bank_transfer momo vnpay other"`
	Status      models.PaymentStatus `json:"status" validate:"omitempty,oneof=pending completed failed refunded"`
	ProviderRef string               `json:"provider_ref" validate:"max=100"`
	Note        string               `json:"note"`
}

// UpdatePaymentRequest represents a partial payment update
type UpdatePaymentRequest struct {
	Amount      *float64              `json:"amount" validate:"omitempty,gt=0"`
	Method      *models.PaymentMethod `json:"method" validate:"omitempty,oneof=cash bank_transfer momo vnpay other"`
	Status      *models.PaymentStatus `json:"status" validate:"omitempty,oneof=pending completed failed refunded"`
	ProviderRef *string               `json:"provider_ref" validate:"omitempty,max=100"`
	Note        *string               `json:"note"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID          uuid.UUID            `json:"id"`
	Invoice     uuid.UUID            `json:"invoice"`
	Amount      float64              `json:"amount"`
	Method      models.PaymentMethod `json:"method"`
	Status      models.PaymentStatus `json:"status"`
	ProviderRef string               `json:"provider_ref"`
	Note        string               `json:"note"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// PaymentQuery holds the filters of the payment listing
type PaymentQuery struct {
	ListParams
	Invoice string
	Status  string
	Method  string
}

// syncInvoice recomputes the invoice's amount due and status from its completed payments
func (s *PaymentService) syncInvoice(ctx context.Context, repos *repository.Repositories, invoice *models.Invoice) error {
	paid, err := repos.Payments.SumCompleted(ctx, invoice.ID)
	if err != nil {
		return fmt.Errorf("failed to sum payments: %w", err)
	}
	invoice.ApplyPayments(paid, s.now())
	if err := repos.Invoices.Update(ctx, invoice); err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	return nil
}

// Create records a payment against a visible invoice
func (s *PaymentService) Create(ctx context.Context, actor *models.User, req *CreatePaymentRequest) (*PaymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	invoice, err := s.invoices.GetVisible(ctx, viewerOf(actor), req.Invoice)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		InvoiceID:   invoice.ID,
		Amount:      models.RoundMoney(req.Amount),
		Method:      models.PaymentMethodCash,
		Status:      models.PaymentStatusPending,
		ProviderRef: req.ProviderRef,
		Note:        req.Note,
	}
	if req.Method != "" {
		payment.Method = req.Method
	}
	if req.Status != "" {
		payment.Status = req.Status
	}

	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return s.syncInvoice(ctx, repos, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogCreate(ctx, actor, payment)
	s.notifier.PaymentCreated(ctx, payment, invoice)

	return toPaymentResponse(payment), nil
}

// Get returns a visible payment
func (s *PaymentService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// List returns the payments visible to the actor
func (s *PaymentService) List(ctx context.Context, actor *models.User, q PaymentQuery) (*ListResponse[PaymentResponse], error) {
	filter := repository.PaymentFilter{
		Status: models.PaymentStatus(q.Status),
		Method: models.PaymentMethod(q.Method),
	}
	var err error
	if filter.InvoiceID, err = parseUUIDFilter("invoice", q.Invoice); err != nil {
		return nil, err
	}

	payments, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	items := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, *toPaymentResponse(&payments[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update and notifies on completed or failed transitions
func (s *PaymentService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdatePaymentRequest) (*PaymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	payment, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	invoice, err := s.invoices.GetByID(ctx, payment.InvoiceID)
	if err != nil {
		return nil, err
	}
	before := s.audit.Snapshot(payment)
	oldStatus := payment.Status

	if req.Amount != nil {
		payment.Amount = models.RoundMoney(*req.Amount)
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.Status != nil {
		payment.Status = *req.Status
	}
	if req.ProviderRef != nil {
		payment.ProviderRef = *req.ProviderRef
	}
	if req.Note != nil {
		payment.Note = *req.Note
	}

	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Payments.Update(ctx, payment); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}
		return s.syncInvoice(ctx, repos, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogUpdate(ctx, actor, before, payment)
	if payment.Status != oldStatus {
		switch payment.Status {
		case models.PaymentStatusCompleted:
			s.notifier.PaymentReceived(ctx, payment, invoice)
		case models.PaymentStatusFailed:
			s.notifier.PaymentFailed(ctx, payment, invoice)
		}
	}

	return toPaymentResponse(payment), nil
}

// Delete removes a payment and recomputes its invoice
func (s *PaymentService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	payment, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	invoice, err := s.invoices.GetByID(ctx, payment.InvoiceID)
	if err != nil {
		return err
	}

	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Payments.Delete(ctx, payment.ID); err != nil {
			return err
		}
		return s.syncInvoice(ctx, repos, invoice)
	})
	if err != nil {
		return err
	}
	s.audit.LogDelete(ctx, actor, payment)
	return nil
}

func toPaymentResponse(p *models.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID,
		Invoice:     p.InvoiceID,
		Amount:      p.Amount,
		Method:      p.Method,
		Status:      p.Status,
		ProviderRef: p.ProviderRef,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
