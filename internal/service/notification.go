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
	"rental-management-backend/internal/mailer"
	"rental-management-backend/internal/repository"

	"github.com/google/uuid"
)

var emailSubjects = map[string]string{
	models.TemplateInvoiceOverdue:     "Invoice overdue",
	models.TemplatePaymentFailed:      "Payment failed",
	models.TemplateMaintenanceCreated: "New maintenance request",
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID                uuid.UUID                   `json:"id"`
	UserID            uuid.UUID                   `json:"user_id"`
	Channel           models.NotificationChannel  `json:"channel"`
	Template          string                      `json:"template"`
	Payload           json.RawMessage             `json:"payload" swaggertype:"object"`
	SentAt            *time.Time                  `json:"sent_at"`
	IsRead            bool                        `json:"is_read"`
	ReadAt            *time.Time                  `json:"read_at"`
	Priority          models.NotificationPriority `json:"priority"`
	RelatedObjectType string                      `json:"related_object_type"`
	RelatedObjectID   string                      `json:"related_object_id"`
	CreatedAt         time.Time                   `json:"created_at"`
}

// NotificationQuery holds the filters of the notification listing
type NotificationQuery struct {
	ListParams
	User              string
	Channel           string
	Template          string
	IsRead            string
	Priority          string
	RelatedObjectType string
}

// NotificationService stores in-app notifications, mails the urgent ones and serves the inbox endpoints
type NotificationService struct {
	repo   repository.NotificationRepositoryInterface
	users  repository.UserRepositoryInterface
	mailer mailer.Mailer
	now    func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface, users repository.UserRepositoryInterface, m mailer.Mailer) *NotificationService {
	if m == nil {
		m = mailer.NoopMailer{}
	}
	return &NotificationService{repo: repo, users: users, mailer: m, now: time.Now}
}

var (
	_ NotificationServiceInterface = (*NotificationService)(nil)
	_ NotifierInterface            = (*NotificationService)(nil)
)

// SetClock overrides the time source
func (s *NotificationService) SetClock(now func() time.Time) { s.now = now }

const relatedInvite = "invite"

type related struct {
	kind string
	id   uuid.UUID
}

// notify stores one in-app notification and, for high and urgent templates, an emailed copy
func (s *NotificationService) notify(ctx context.Context, userID uuid.UUID, template string, payload map[string]interface{},
	priority models.NotificationPriority, rel related) error {

	if userID == uuid.Nil {
		return nil
	}
	if priority == "" {
		priority = models.DefaultPriority(template)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}

	now := s.now()
	n := &models.Notification{
		UserID:            userID,
		Channel:           models.ChannelInApp,
		Template:          template,
		Payload:           body,
		SentAt:            &now,
		Priority:          priority,
		RelatedObjectType: rel.kind,
	}
	if rel.id != uuid.Nil {
		n.RelatedObjectID = rel.id.String()
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if priority == models.PriorityUrgent || priority == models.PriorityHigh {
		s.email(ctx, n, payload)
	}
	return nil
}

func (s *NotificationService) email(ctx context.Context, inapp *models.Notification, payload map[string]interface{}) {
	if !s.mailer.Enabled() {
		return
	}
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{"template": inapp.Template, "user_id": inapp.UserID})

	user, err := s.users.GetByID(ctx, inapp.UserID)
	if err != nil {
		log.WithError(err).Warn("failed to load notification recipient")
		return
	}

	subject, ok := emailSubjects[inapp.Template]
	if !ok {
		subject = inapp.Template
	}
	msg := mailer.Message{
		ToEmail:   user.Email,
		ToName:    user.FullName,
		Subject:   subject,
		PlainText: plainTextBody(subject, payload),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.WithError(err).Warn("failed to email notification")
		return
	}

	sentAt := s.now()
	emailed := &models.Notification{
		UserID:            inapp.UserID,
		Channel:           models.ChannelEmail,
		Template:          inapp.Template,
		Payload:           inapp.Payload,
		SentAt:            &sentAt,
		Priority:          inapp.Priority,
		RelatedObjectType: inapp.RelatedObjectType,
		RelatedObjectID:   inapp.RelatedObjectID,
	}
	if err := s.repo.Create(ctx, emailed); err != nil {
		log.WithError(err).Warn("failed to record emailed notification")
	}
}

func plainTextBody(subject string, payload map[string]interface{}) string {
	var b strings.Builder
	b.WriteString(subject)
	b.WriteString("\n\n")
	for _, key := range []string{"period", "room_number", "amount", "due_date", "title", "category"} {
		if v, ok := payload[key]; ok && v != nil {
			fmt.Fprintf(&b, "%s: %v\n", strings.ReplaceAll(key, "_", " "), v)
		}
	}
	return b.String()
}

// swallow logs notification failures without propagating them
func (s *NotificationService) swallow(ctx context.Context, template string, err error) {
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("template", template).Warn("notification failed")
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", models.RoundMoney(v))
}

func roomNumber(room *models.Room) interface{} {
	if room == nil {
		return nil
	}
	return room.RoomNumber
}

func ownerOfRoom(room *models.Room) uuid.UUID {
	if room == nil || room.Building == nil {
		return uuid.Nil
	}
	return room.Building.OwnerID
}

func invoiceRoom(inv *models.Invoice) *models.Room {
	if inv.Tenancy == nil {
		return nil
	}
	return inv.Tenancy.Room
}

func invoiceTenantID(inv *models.Invoice) uuid.UUID {
	if inv.Tenancy == nil {
		return uuid.Nil
	}
	return inv.Tenancy.TenantID
}

// InvoiceCreated tells the tenant about a new invoice
func (s *NotificationService) InvoiceCreated(ctx context.Context, inv *models.Invoice) {
	payload := map[string]interface{}{
		"invoice_id":  inv.ID.String(),
		"period":      inv.Period,
		"amount":      money(inv.TotalAmount),
		"room_number": roomNumber(invoiceRoom(inv)),
	}
	s.swallow(ctx, models.TemplateInvoiceCreated,
		s.notify(ctx, invoiceTenantID(inv), models.TemplateInvoiceCreated, payload, "", related{"invoice", inv.ID}))
}

// InvoiceIssued tells the tenant an invoice moved out of draft
func (s *NotificationService) InvoiceIssued(ctx context.Context, inv *models.Invoice) {
	payload := map[string]interface{}{
		"invoice_id":  inv.ID.String(),
		"period":      inv.Period,
		"amount":      money(inv.TotalAmount),
		"due_date":    formatDate(inv.DueDate),
		"room_number": roomNumber(invoiceRoom(inv)),
	}
	s.swallow(ctx, models.TemplateInvoiceIssued,
		s.notify(ctx, invoiceTenantID(inv), models.TemplateInvoiceIssued, payload, "", related{"invoice", inv.ID}))
}

// InvoiceOverdue alerts tenant and landlord; the error is returned so batch jobs can count failures
func (s *NotificationService) InvoiceOverdue(ctx context.Context, inv *models.Invoice) error {
	payload := map[string]interface{}{
		"invoice_id":  inv.ID.String(),
		"period":      inv.Period,
		"amount":      money(inv.AmountDue),
		"due_date":    formatDate(inv.DueDate),
		"room_number": roomNumber(invoiceRoom(inv)),
	}
	rel := related{"invoice", inv.ID}
	if err := s.notify(ctx, invoiceTenantID(inv), models.TemplateInvoiceOverdue, payload, "", rel); err != nil {
		return err
	}
	return s.notify(ctx, ownerOfRoom(invoiceRoom(inv)), models.TemplateInvoiceOverdue, payload, "", rel)
}

func (s *NotificationService) paymentEvent(ctx context.Context, template string, p *models.Payment, inv *models.Invoice) {
	payload := map[string]interface{}{
		"payment_id": p.ID.String(),
		"invoice_id": inv.ID.String(),
		"amount":     money(p.Amount),
		"method":     p.Method,
		"period":     inv.Period,
	}
	if template != models.TemplatePaymentFailed {
		payload["room_number"] = roomNumber(invoiceRoom(inv))
		if inv.Tenancy != nil && inv.Tenancy.Tenant != nil {
			payload["tenant_name"] = inv.Tenancy.Tenant.DisplayName()
		}
	}
	rel := related{"payment", p.ID}
	s.swallow(ctx, template, s.notify(ctx, invoiceTenantID(inv), template, payload, "", rel))
	s.swallow(ctx, template, s.notify(ctx, ownerOfRoom(invoiceRoom(inv)), template, payload, "", rel))
}

// PaymentCreated tells tenant and landlord that a payment was recorded
func (s *NotificationService) PaymentCreated(ctx context.Context, p *models.Payment, inv *models.Invoice) {
	s.paymentEvent(ctx, models.TemplatePaymentCreated, p, inv)
}

// PaymentReceived tells tenant and landlord that a payment completed
func (s *NotificationService) PaymentReceived(ctx context.Context, p *models.Payment, inv *models.Invoice) {
	s.paymentEvent(ctx, models.TemplatePaymentReceived, p, inv)
}

// PaymentFailed tells tenant and landlord that a payment failed
func (s *NotificationService) PaymentFailed(ctx context.Context, p *models.Payment, inv *models.Invoice) {
	s.paymentEvent(ctx, models.TemplatePaymentFailed, p, inv)
}

// MaintenanceCreated tells the landlord about a new request
func (s *NotificationService) MaintenanceCreated(ctx context.Context, req *models.MaintenanceRequest) {
	payload := map[string]interface{}{
		"request_id":  req.ID.String(),
		"title":       req.Title,
		"category":    req.Category,
		"room_number": roomNumber(req.Room),
	}
	if req.Requester != nil {
		payload["requester_name"] = req.Requester.FullName
	}
	s.swallow(ctx, models.TemplateMaintenanceCreated,
		s.notify(ctx, ownerOfRoom(req.Room), models.TemplateMaintenanceCreated, payload, "", related{"maintenancerequest", req.ID}))
}

// MaintenanceAssigned tells the requester and the assignee about an assignment
func (s *NotificationService) MaintenanceAssigned(ctx context.Context, req *models.MaintenanceRequest) {
	payload := map[string]interface{}{
		"request_id":  req.ID.String(),
		"title":       req.Title,
		"category":    req.Category,
		"room_number": roomNumber(req.Room),
	}
	rel := related{"maintenancerequest", req.ID}
	s.swallow(ctx, models.TemplateMaintenanceAssigned,
		s.notify(ctx, req.RequesterID, models.TemplateMaintenanceAssigned, payload, "", rel))
	if req.AssigneeID != nil {
		s.swallow(ctx, models.TemplateMaintenanceAssigned,
			s.notify(ctx, *req.AssigneeID, models.TemplateMaintenanceAssigned, payload, "", rel))
	}
}

// MaintenanceStatusChanged tells requester and landlord about a status transition
func (s *NotificationService) MaintenanceStatusChanged(ctx context.Context, req *models.MaintenanceRequest, oldStatus models.MaintenanceStatus) {
	payload := map[string]interface{}{
		"request_id":  req.ID.String(),
		"title":       req.Title,
		"old_status":  oldStatus,
		"new_status":  req.Status,
		"room_number": roomNumber(req.Room),
	}
	rel := related{"maintenancerequest", req.ID}
	s.swallow(ctx, models.TemplateMaintenanceStatusChanged,
		s.notify(ctx, req.RequesterID, models.TemplateMaintenanceStatusChanged, payload, "", rel))
	s.swallow(ctx, models.TemplateMaintenanceStatusChanged,
		s.notify(ctx, ownerOfRoom(req.Room), models.TemplateMaintenanceStatusChanged, payload, "", rel))
}

func inviteNames(inv *models.Invite) (interface{}, interface{}) {
	var property interface{}
	if inv.Property != nil {
		property = inv.Property.Name
	}
	return property, roomNumber(inv.Room)
}

func inviteOwner(inv *models.Invite) uuid.UUID {
	if inv.Property == nil {
		return uuid.Nil
	}
	return inv.Property.OwnerID
}

// InviteSent confirms the invite to the landlord and delivers the token to the invited tenant
func (s *NotificationService) InviteSent(ctx context.Context, inv *models.Invite, tenant *models.User) {
	property, room := inviteNames(inv)
	rel := related{relatedInvite, inv.ID}
	payload := map[string]interface{}{
		"invite_id":     inv.ID.String(),
		"email":         inv.Email,
		"phone":         inv.Phone,
		"room_number":   room,
		"property_name": property,
	}
	s.swallow(ctx, models.TemplateInviteSent,
		s.notify(ctx, inviteOwner(inv), models.TemplateInviteSent, payload, models.PriorityLow, rel))

	if tenant == nil {
		return
	}
	tenantPayload := map[string]interface{}{
		"invite_id":     inv.ID.String(),
		"property_name": property,
		"room_number":   room,
		"token":         inv.Token,
	}
	s.swallow(ctx, models.TemplateInviteReceived,
		s.notify(ctx, tenant.ID, models.TemplateInviteReceived, tenantPayload, models.PriorityNormal, rel))
}

func (s *NotificationService) inviteAnswered(ctx context.Context, template string, inv *models.Invite) {
	_, room := inviteNames(inv)
	payload := map[string]interface{}{
		"invite_id":   inv.ID.String(),
		"email":       inv.Email,
		"phone":       inv.Phone,
		"room_number": room,
	}
	s.swallow(ctx, template, s.notify(ctx, inviteOwner(inv), template, payload, "", related{relatedInvite, inv.ID}))
}

// InviteAccepted tells the landlord an invite was accepted
func (s *NotificationService) InviteAccepted(ctx context.Context, inv *models.Invite) {
	s.inviteAnswered(ctx, models.TemplateInviteAccepted, inv)
}

// InviteRejected tells the landlord an invite was rejected
func (s *NotificationService) InviteRejected(ctx context.Context, inv *models.Invite) {
	s.inviteAnswered(ctx, models.TemplateInviteRejected, inv)
}

// MeterReadingSubmitted tells the room's active tenant about a new reading
func (s *NotificationService) MeterReadingSubmitted(ctx context.Context, reading *models.MeterReading, tenantID uuid.UUID) {
	payload := map[string]interface{}{
		"reading_id":        reading.ID.String(),
		"period":            reading.Period,
		"room_number":       roomNumber(reading.Room),
		"electricity_usage": usageString(reading.ElectricityUsage()),
		"water_usage":       usageString(reading.WaterUsage()),
	}
	s.swallow(ctx, models.TemplateMeterReadingSubmitted,
		s.notify(ctx, tenantID, models.TemplateMeterReadingSubmitted, payload, models.PriorityLow, related{"meterreading", reading.ID}))
}

func usageString(v *float64) interface{} {
	if v == nil || *v == 0 {
		return nil
	}
	return money(*v)
}

// TenancyCreated tells tenant and landlord about a new tenancy
func (s *NotificationService) TenancyCreated(ctx context.Context, t *models.Tenancy) {
	payload := map[string]interface{}{
		"tenancy_id":  t.ID.String(),
		"room_number": roomNumber(t.Room),
		"start_date":  formatDate(&t.StartDate),
		"base_rent":   money(t.BaseRent),
	}
	rel := related{"tenancy", t.ID}
	s.swallow(ctx, models.TemplateTenancyCreated, s.notify(ctx, t.TenantID, models.TemplateTenancyCreated, payload, "", rel))
	s.swallow(ctx, models.TemplateTenancyCreated, s.notify(ctx, ownerOfRoom(t.Room), models.TemplateTenancyCreated, payload, "", rel))
}

// MarkInviteRead marks the user's unread notifications about one invite as read
func (s *NotificationService) MarkInviteRead(ctx context.Context, userID, inviteID uuid.UUID) {
	if _, err := s.repo.MarkRelatedRead(ctx, userID, relatedInvite, inviteID.String(), s.now()); err != nil {
		s.swallow(ctx, models.TemplateInviteReceived, err)
	}
}

// List returns the notifications visible to actor
func (s *NotificationService) List(ctx context.Context, actor *models.User, q NotificationQuery) (*ListResponse[NotificationResponse], error) {
	filter := repository.NotificationFilter{
		Channel:           models.NotificationChannel(q.Channel),
		Template:          q.Template,
		Priority:          models.NotificationPriority(q.Priority),
		RelatedObjectType: q.RelatedObjectType,
	}
	var err error
	if filter.UserID, err = parseUUIDFilter("user", q.User); err != nil {
		return nil, err
	}
	if q.IsRead != "" {
		read := q.IsRead == "true" || q.IsRead == "1"
		filter.IsRead = &read
	}
	return s.list(ctx, actor, filter, q.ListParams)
}

// My returns the actor's own notifications regardless of superuser status
func (s *NotificationService) My(ctx context.Context, actor *models.User, params ListParams) (*ListResponse[NotificationResponse], error) {
	return s.list(ctx, actor, repository.NotificationFilter{UserID: &actor.ID}, params)
}

func (s *NotificationService) list(ctx context.Context, actor *models.User, filter repository.NotificationFilter, params ListParams) (*ListResponse[NotificationResponse], error) {
	items, total, err := s.repo.List(ctx, viewerOf(actor), filter, params.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	out := make([]NotificationResponse, 0, len(items))
	for i := range items {
		out = append(out, toNotificationResponse(&items[i]))
	}
	return newListResponse(out, total, params), nil
}

// Get returns one visible notification
func (s *NotificationService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	resp := toNotificationResponse(n)
	return &resp, nil
}

// Delete removes one visible notification
func (s *NotificationService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if _, err := s.repo.GetVisible(ctx, viewerOf(actor), id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// MarkRead flags a notification as read
func (s *NotificationService) MarkRead(ctx context.Context, actor *models.User, id uuid.UUID) (*NotificationResponse, error) {
	return s.setRead(ctx, actor, id, true)
}

// MarkUnread clears the read flag of a notification
func (s *NotificationService) MarkUnread(ctx context.Context, actor *models.User, id uuid.UUID) (*NotificationResponse, error) {
	return s.setRead(ctx, actor, id, false)
}

func (s *NotificationService) setRead(ctx context.Context, actor *models.User, id uuid.UUID, read bool) (*NotificationResponse, error) {
	n, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	if read && !n.IsRead {
		now := s.now()
		n.IsRead, n.ReadAt = true, &now
	} else if !read {
		n.IsRead, n.ReadAt = false, nil
	}
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}
	resp := toNotificationResponse(n)
	return &resp, nil
}

// MarkAllRead marks all of the actor's unread notifications as read
func (s *NotificationService) MarkAllRead(ctx context.Context, actor *models.User) (int64, error) {
	count, err := s.repo.MarkAllRead(ctx, actor.ID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return count, nil
}

// UnreadCount returns the number of unread notifications of the actor
func (s *NotificationService) UnreadCount(ctx context.Context, actor *models.User) (int64, error) {
	if actor == nil {
		return 0, apperrors.NewAuthenticationError("authentication required")
	}
	return s.repo.UnreadCount(ctx, actor.ID)
}

func toNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                n.ID,
		UserID:            n.UserID,
		Channel:           n.Channel,
		Template:          n.Template,
		Payload:           n.Payload,
		SentAt:            n.SentAt,
		IsRead:            n.IsRead,
		ReadAt:            n.ReadAt,
		Priority:          n.Priority,
		RelatedObjectType: n.RelatedObjectType,
		RelatedObjectID:   n.RelatedObjectID,
		CreatedAt:         n.CreatedAt,
	}
}
