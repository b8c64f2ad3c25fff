package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/logger"
	"rental-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InvoiceService handles business logic for invoices
type InvoiceService struct {
	repo      repository.InvoiceRepositoryInterface
	tenancies repository.TenancyRepositoryInterface
	audit     AuditorInterface
	notifier  NotifierInterface
	validator *validator.Validate
	fonts     PDFFonts
	now       func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo repository.InvoiceRepositoryInterface, tenancies repository.TenancyRepositoryInterface,
	audit AuditorInterface, notifier NotifierInterface, validator *validator.Validate) *InvoiceService {
	return &InvoiceService{
		repo:      repo,
		tenancies: tenancies,
		audit:     audit,
		notifier:  notifier,
		validator: validator,
		now:       time.Now,
	}
}

var _ InvoiceServiceInterface = (*InvoiceService)(nil)

// SetClock overrides the time source
func (s *InvoiceService) SetClock(now func() time.Time) { s.now = now }

// InvoiceLineInput is one nested line of an invoice create request
type InvoiceLineInput struct {
	ItemType    models.LineItemType `json:"item_type" validate:"required,oneof=rent deposit electricity water internet cleaning service adjustment"`
	Description string              `json:"description" validate:"max=255"`
	Quantity    *float64            `json:"quantity" validate:"required"`
	UnitPrice   *float64            `json:"unit_price" validate:"required"`
	Amount      *float64            `json:"amount" validate:"required"`
	Meta        json.RawMessage     `json:"meta" swaggertype:"object"`
}

// CreateInvoiceRequest represents the request to create an invoice
type CreateInvoiceRequest struct {
	Tenancy     uuid.UUID            `json:"tenancy" validate:"required"`
	Period      string               `json:"period" validate:"required"`
	TotalAmount *float64             `json:"total_amount" validate:"omitempty,gte=0"`
	AmountDue   *float64             `json:"amount_due"`
	Status      models.InvoiceStatus `json:"status" validate:"omitempty,oneof=draft pending partial paid overdue"`
	DueDate     *string              `json:"due_date"`
	Notes       string               `json:"notes"`
	Lines       []InvoiceLineInput   `json:"lines"`
}

// UpdateInvoiceRequest represents a partial invoice update
type UpdateInvoiceRequest struct {
	Period      *string               `json:"period"`
	TotalAmount *float64              `json:"total_amount" validate:"omitempty,gte=0"`
	AmountDue   *float64              `json:"amount_due"`
	Status      *models.InvoiceStatus `json:"status" validate:"omitempty,oneof=draft pending partial paid overdue"`
	DueDate     *string               `json:"due_date"`
	Notes       *string               `json:"notes"`
}

// InvoiceLineResponse represents an invoice line in API responses
type InvoiceLineResponse struct {
	ID              uuid.UUID           `json:"id"`
	Invoice         uuid.UUID           `json:"invoice"`
	ItemType        models.LineItemType `json:"item_type"`
	ItemTypeDisplay string              `json:"item_type_display"`
	Description     string              `json:"description"`
	Quantity        float64             `json:"quantity"`
	UnitPrice       float64             `json:"unit_price"`
	Amount          float64             `json:"amount"`
	Meta            json.RawMessage     `json:"meta" swaggertype:"object"`
}

// InvoiceTenancyDetail is the nested tenancy of an invoice
type InvoiceTenancyDetail struct {
	ID       uuid.UUID        `json:"id"`
	Room     *RoomBrief       `json:"room"`
	Tenant   *TenantSummary   `json:"tenant"`
	Property *PropertySummary `json:"property"`
}

// RoomBrief is the minimal room shown on invoices
type RoomBrief struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"room_number"`
	Floor      int       `json:"floor"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID            uuid.UUID             `json:"id"`
	Tenancy       uuid.UUID             `json:"tenancy"`
	TenancyDetail *InvoiceTenancyDetail `json:"tenancy_detail"`
	Period        string                `json:"period"`
	TotalAmount   float64               `json:"total_amount"`
	AmountDue     float64               `json:"amount_due"`
	TotalPaid     float64               `json:"total_paid"`
	PaymentCount  int64                 `json:"payment_count"`
	Status        models.InvoiceStatus  `json:"status"`
	StatusDisplay string                `json:"status_display"`
	IsOverdue     bool                  `json:"is_overdue"`
	IssuedAt      *time.Time            `json:"issued_at"`
	DueDate       *string               `json:"due_date"`
	PaidAt        *time.Time            `json:"paid_at"`
	Notes         string                `json:"notes"`
	RoomNumber    string                `json:"room_number"`
	PropertyName  string                `json:"property_name"`
	TenantName    string                `json:"tenant_name"`
	Lines         []InvoiceLineResponse `json:"lines"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// InvoiceQuery holds the filters of the invoice listing
type InvoiceQuery struct {
	ListParams
	Status    string
	Period    string
	PeriodGTE string
	PeriodLTE string
	Property  string
	Tenancy   string
}

// OverdueCandidate describes one invoice picked up by the overdue check
type OverdueCandidate struct {
	InvoiceID   uuid.UUID
	Period      string
	DueDate     string
	TenantEmail string
}

// OverdueCheckResult summarises an overdue check run
type OverdueCheckResult struct {
	Checked    int                `json:"checked"`
	Notified   int                `json:"notified"`
	Errors     int                `json:"errors"`
	DryRun     bool               `json:"dry_run"`
	Candidates []OverdueCandidate `json:"-"`
}

var invoiceStatusLabels = map[models.InvoiceStatus]string{
	models.InvoiceStatusDraft:   "Draft",
	models.InvoiceStatusPending: "Pending",
	models.InvoiceStatusPartial: "Partially paid",
	models.InvoiceStatusPaid:    "Paid",
	models.InvoiceStatusOverdue: "Overdue",
}

var lineItemLabels = map[models.LineItemType]string{
	models.LineItemRent:        "Rent",
	models.LineItemDeposit:     "Deposit",
	models.LineItemElectricity: "Electricity",
	models.LineItemWater:       "Water",
	models.LineItemInternet:    "Internet",
	models.LineItemCleaning:    "Cleaning",
	models.LineItemService:     "Other service",
	models.LineItemAdjustment:  "Adjustment",
}

// validateLines checks every nested line and reports problems as lines[i].field
func (s *InvoiceService) validateLines(lines []InvoiceLineInput) error {
	fe := apperrors.FieldErrors{}
	for i := range lines {
		if err := s.validator.Struct(&lines[i]); err != nil {
			nested, ok := apperrors.AsFieldErrors(validationErrors(err, fmt.Sprintf("lines[%d].", i)))
			if !ok {
				return err
			}
			for field, msgs := range nested {
				for _, msg := range msgs {
					fe.Add(field, msg)
				}
			}
		}
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

func buildLine(in InvoiceLineInput) models.InvoiceLine {
	line := models.InvoiceLine{
		ItemType:    in.ItemType,
		Description: in.Description,
		Quantity:    1,
		Meta:        in.Meta,
	}
	if in.Quantity != nil {
		line.Quantity = models.RoundMoney(*in.Quantity)
	}
	if in.UnitPrice != nil {
		line.UnitPrice = models.RoundMoney(*in.UnitPrice)
	}
	if in.Amount != nil {
		line.Amount = models.RoundMoney(*in.Amount)
	}
	return line
}

// manageableTenancy loads a tenancy the actor may bill
func (s *InvoiceService) manageableTenancy(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Tenancy, error) {
	if err := requireLandlord(actor); err != nil {
		return nil, err
	}
	tenancy, err := s.tenancies.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	return tenancy, nil
}

// Create issues a new invoice with its nested lines
func (s *InvoiceService) Create(ctx context.Context, actor *models.User, req *CreateInvoiceRequest) (*InvoiceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	if err := s.validateLines(req.Lines); err != nil {
		return nil, err
	}
	period := strings.TrimSpace(req.Period)
	if !validPeriod(period) {
		return nil, apperrors.ErrInvalidPeriodFormat
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return nil, dateError("due_date")
	}

	tenancy, err := s.manageableTenancy(ctx, actor, req.Tenancy)
	if err != nil {
		return nil, err
	}
	taken, err := s.repo.PeriodTaken(ctx, tenancy.ID, period, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check invoice period: %w", err)
	}
	if taken {
		return nil, apperrors.ErrInvoiceExists
	}

	invoice := &models.Invoice{
		TenancyID: tenancy.ID,
		Period:    period,
		Status:    models.InvoiceStatusDraft,
		DueDate:   dueDate,
		Notes:     req.Notes,
	}
	if req.Status != "" {
		invoice.Status = req.Status
	}

	var sum float64
	for _, in := range req.Lines {
		line := buildLine(in)
		sum += line.Amount
		invoice.Lines = append(invoice.Lines, line)
	}
	invoice.TotalAmount = models.RoundMoney(sum)
	if req.TotalAmount != nil {
		invoice.TotalAmount = models.RoundMoney(*req.TotalAmount)
	}
	invoice.AmountDue = invoice.TotalAmount
	if req.AmountDue != nil {
		invoice.AmountDue = models.RoundMoney(*req.AmountDue)
	}
	if invoice.Status != models.InvoiceStatusDraft {
		issued := s.now()
		invoice.IssuedAt = &issued
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	invoice.Tenancy = tenancy

	s.audit.LogCreate(ctx, actor, invoice)
	s.notifier.InvoiceCreated(ctx, invoice)

	return s.toResponse(invoice, repository.PaymentTotal{}), nil
}

// Get returns a visible invoice
func (s *InvoiceService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.PaymentTotals(ctx, []uuid.UUID{invoice.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load payment totals: %w", err)
	}
	return s.toResponse(invoice, totals[invoice.ID]), nil
}

// List returns the invoices visible to the actor
func (s *InvoiceService) List(ctx context.Context, actor *models.User, q InvoiceQuery) (*ListResponse[InvoiceResponse], error) {
	filter := repository.InvoiceFilter{
		Period:    strings.TrimSpace(q.Period),
		PeriodGTE: strings.TrimSpace(q.PeriodGTE),
		PeriodLTE: strings.TrimSpace(q.PeriodLTE),
	}
	for _, st := range splitList(q.Status) {
		status := models.InvoiceStatus(st)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	var err error
	if filter.PropertyID, err = parseUUIDFilter("property", q.Property); err != nil {
		return nil, err
	}
	if filter.TenancyID, err = parseUUIDFilter("tenancy", q.Tenancy); err != nil {
		return nil, err
	}

	invoices, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}
	totals, err := s.repo.PaymentTotals(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment totals: %w", err)
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, *s.toResponse(&invoices[i], totals[invoices[i].ID]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update; moving a draft to pending issues the invoice
func (s *InvoiceService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateInvoiceRequest) (*InvoiceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	if err := requireLandlord(actor); err != nil {
		return nil, err
	}
	invoice, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	before := s.audit.Snapshot(invoice)
	oldStatus := invoice.Status

	if req.Period != nil {
		period := strings.TrimSpace(*req.Period)
		if !validPeriod(period) {
			return nil, apperrors.ErrInvalidPeriodFormat
		}
		if period != invoice.Period {
			taken, err := s.repo.PeriodTaken(ctx, invoice.TenancyID, period, invoice.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check invoice period: %w", err)
			}
			if taken {
				return nil, apperrors.ErrInvoiceExists
			}
		}
		invoice.Period = period
	}
	if req.DueDate != nil {
		due, err := parseOptionalDate(req.DueDate)
		if err != nil {
			return nil, dateError("due_date")
		}
		invoice.DueDate = due
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if req.Status != nil {
		invoice.Status = *req.Status
	}

	totals, err := s.repo.PaymentTotals(ctx, []uuid.UUID{invoice.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load payment totals: %w", err)
	}
	if req.TotalAmount != nil {
		invoice.TotalAmount = models.RoundMoney(*req.TotalAmount)
		invoice.AmountDue = models.RoundMoney(invoice.TotalAmount - totals[invoice.ID].Total)
	}
	if req.AmountDue != nil {
		invoice.AmountDue = models.RoundMoney(*req.AmountDue)
	}

	issued := oldStatus == models.InvoiceStatusDraft && invoice.Status == models.InvoiceStatusPending
	if issued && invoice.IssuedAt == nil {
		at := s.now()
		invoice.IssuedAt = &at
	}

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	s.audit.LogUpdate(ctx, actor, before, invoice)
	if issued {
		s.notifier.InvoiceIssued(ctx, invoice)
	}

	return s.toResponse(invoice, totals[invoice.ID]), nil
}

// Delete removes an invoice the actor manages
func (s *InvoiceService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if err := requireLandlord(actor); err != nil {
		return err
	}
	invoice, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogDelete(ctx, actor, invoice)
	return nil
}

// CheckOverdue marks unpaid invoices past their due date as overdue and alerts tenant and landlord
func (s *InvoiceService) CheckOverdue(ctx context.Context, dryRun bool) (*OverdueCheckResult, error) {
	log := logger.WithContext(ctx).WithField("dry_run", dryRun)

	invoices, err := s.repo.ListOverdueCandidates(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue invoices: %w", err)
	}

	result := &OverdueCheckResult{Checked: len(invoices), DryRun: dryRun}
	for i := range invoices {
		inv := &invoices[i]
		candidate := OverdueCandidate{InvoiceID: inv.ID, Period: inv.Period, DueDate: stringOrEmpty(formatDate(inv.DueDate))}
		if inv.Tenancy != nil && inv.Tenancy.Tenant != nil {
			candidate.TenantEmail = inv.Tenancy.Tenant.Email
		}
		result.Candidates = append(result.Candidates, candidate)
		if dryRun {
			continue
		}

		if inv.Status != models.InvoiceStatusOverdue {
			inv.Status = models.InvoiceStatusOverdue
			if err := s.repo.Update(ctx, inv); err != nil {
				result.Errors++
				log.WithError(err).WithField("invoice_id", inv.ID).Error("failed to mark invoice overdue")
				continue
			}
		}
		if err := s.notifier.InvoiceOverdue(ctx, inv); err != nil {
			result.Errors++
			log.WithError(err).WithField("invoice_id", inv.ID).Warn("failed to send overdue notification")
			continue
		}
		result.Notified++
	}

	log.WithFields(map[string]interface{}{
		"checked":  result.Checked,
		"notified": result.Notified,
		"errors":   result.Errors,
	}).Info("overdue invoice check finished")
	return result, nil
}

func (s *InvoiceService) toResponse(inv *models.Invoice, totals repository.PaymentTotal) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:            inv.ID,
		Tenancy:       inv.TenancyID,
		Period:        inv.Period,
		TotalAmount:   inv.TotalAmount,
		AmountDue:     inv.AmountDue,
		TotalPaid:     totals.Total,
		PaymentCount:  totals.Count,
		Status:        inv.Status,
		StatusDisplay: invoiceStatusLabels[inv.Status],
		IsOverdue:     inv.IsOverdue(s.now()),
		IssuedAt:      inv.IssuedAt,
		DueDate:       formatDate(inv.DueDate),
		PaidAt:        inv.PaidAt,
		Notes:         inv.Notes,
		Lines:         make([]InvoiceLineResponse, 0, len(inv.Lines)),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	for i := range inv.Lines {
		resp.Lines = append(resp.Lines, toInvoiceLineResponse(&inv.Lines[i]))
	}

	if t := inv.Tenancy; t != nil {
		detail := &InvoiceTenancyDetail{ID: t.ID}
		if t.Room != nil {
			detail.Room = &RoomBrief{ID: t.Room.ID, RoomNumber: t.Room.RoomNumber, Floor: t.Room.Floor}
			resp.RoomNumber = t.Room.RoomNumber
			if b := t.Room.Building; b != nil {
				detail.Property = &PropertySummary{ID: b.ID, Name: b.Name, Address: b.Address}
				resp.PropertyName = b.Name
			}
		}
		if t.Tenant != nil {
			detail.Tenant = toTenantSummary(t.Tenant)
			resp.TenantName = t.Tenant.DisplayName()
		}
		resp.TenancyDetail = detail
	}
	return resp
}

func toInvoiceLineResponse(l *models.InvoiceLine) InvoiceLineResponse {
	return InvoiceLineResponse{
		ID:              l.ID,
		Invoice:         l.InvoiceID,
		ItemType:        l.ItemType,
		ItemTypeDisplay: lineItemLabels[l.ItemType],
		Description:     l.Description,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		Amount:          l.Amount,
		Meta:            l.Meta,
	}
}
