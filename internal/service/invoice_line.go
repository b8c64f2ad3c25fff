package service

import (
	"context"
	"encoding/json"
	"fmt"

	"rental-management-backend/internal/database/models"
	"rental-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InvoiceLineService handles business logic for individual invoice lines
type InvoiceLineService struct {
	repo      repository.InvoiceLineRepositoryInterface
	invoices  repository.InvoiceRepositoryInterface
	audit     AuditorInterface
	validator *validator.Validate
}

// NewInvoiceLineService creates a new invoice line service
func NewInvoiceLineService(repo repository.InvoiceLineRepositoryInterface, invoices repository.InvoiceRepositoryInterface,
	audit AuditorInterface, validator *validator.Validate) *InvoiceLineService {
	return &InvoiceLineService{
		repo:      repo,
		invoices:  invoices,
		audit:     audit,
		validator: validator,
	}
}

var _ InvoiceLineServiceInterface = (*InvoiceLineService)(nil)

// CreateInvoiceLineRequest represents the request to add a line to an invoice
type CreateInvoiceLineRequest struct {
	Invoice uuid.UUID `json:"invoice" validate:"required"`
	InvoiceLineInput
}

// UpdateInvoiceLineRequest represents a partial invoice line update
type UpdateInvoiceLineRequest struct {
	ItemType    *models.LineItemType `json:"item_type" validate:"omitempty,oneof=rent deposit electricity water internet cleaning service adjustment"`
	Description *string              `json:"description" validate:"omitempty,max=255"`
	Quantity    *float64             `json:"quantity"`
	UnitPrice   *float64             `json:"unit_price"`
	Amount      *float64             `json:"amount"`
	Meta        json.RawMessage      `json:"meta" swaggertype:"object"`
}

// InvoiceLineQuery holds the filters of the invoice line listing
type InvoiceLineQuery struct {
	ListParams
	Invoice string
}

// Create adds a line to an invoice the actor manages
func (s *InvoiceLineService) Create(ctx context.Context, actor *models.User, req *CreateInvoiceLineRequest) (*InvoiceLineResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	if err := requireLandlord(actor); err != nil {
		return nil, err
	}
	invoice, err := s.invoices.GetVisible(ctx, viewerOf(actor), req.Invoice)
	if err != nil {
		return nil, err
	}

	line := buildLine(req.InvoiceLineInput)
	line.InvoiceID = invoice.ID
	if err := s.repo.Create(ctx, &line); err != nil {
		return nil, fmt.Errorf("failed to create invoice line: %w", err)
	}
	s.audit.LogCreate(ctx, actor, &line)

	resp := toInvoiceLineResponse(&line)
	return &resp, nil
}

// Get returns a visible invoice line
func (s *InvoiceLineService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*InvoiceLineResponse, error) {
	line, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceLineResponse(line)
	return &resp, nil
}

// List returns the invoice lines visible to the actor
func (s *InvoiceLineService) List(ctx context.Context, actor *models.User, q InvoiceLineQuery) (*ListResponse[InvoiceLineResponse], error) {
	invoiceID, err := parseUUIDFilter("invoice", q.Invoice)
	if err != nil {
		return nil, err
	}
	lines, total, err := s.repo.List(ctx, viewerOf(actor), invoiceID, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice lines: %w", err)
	}
	items := make([]InvoiceLineResponse, 0, len(lines))
	for i := range lines {
		items = append(items, toInvoiceLineResponse(&lines[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update to a line the actor manages
func (s *InvoiceLineService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateInvoiceLineRequest) (*InvoiceLineResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	if err := requireLandlord(actor); err != nil {
		return nil, err
	}
	line, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	before := s.audit.Snapshot(line)

	if req.ItemType != nil {
		line.ItemType = *req.ItemType
	}
	if req.Description != nil {
		line.Description = *req.Description
	}
	if req.Quantity != nil {
		line.Quantity = models.RoundMoney(*req.Quantity)
	}
	if req.UnitPrice != nil {
		line.UnitPrice = models.RoundMoney(*req.UnitPrice)
	}
	if req.Amount != nil {
		line.Amount = models.RoundMoney(*req.Amount)
	}
	if req.Meta != nil {
		line.Meta = req.Meta
	}

	if err := s.repo.Update(ctx, line); err != nil {
		return nil, fmt.Errorf("failed to update invoice line: %w", err)
	}
	s.audit.LogUpdate(ctx, actor, before, line)

	resp := toInvoiceLineResponse(line)
	return &resp, nil
}

// Delete removes a line the actor manages
func (s *InvoiceLineService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if err := requireLandlord(actor); err != nil {
		return err
	}
	line, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogDelete(ctx, actor, line)
	return nil
}
