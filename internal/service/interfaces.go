package service

import (
	"context"

	"rental-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuditorInterface records mutations of auditable models
type AuditorInterface interface {
	Snapshot(obj models.Auditable) Snapshot
	LogCreate(ctx context.Context, actor *models.User, obj models.Auditable)
	LogUpdate(ctx context.Context, actor *models.User, before Snapshot, obj models.Auditable)
	LogDelete(ctx context.Context, actor *models.User, obj models.Auditable)
	LogAction(ctx context.Context, actor *models.User, action models.AuditAction, obj models.Auditable, metadata map[string]interface{})
}

// AuditServiceInterface defines the read side of the audit log
type AuditServiceInterface interface {
	AuditorInterface
	List(ctx context.Context, actor *models.User, q AuditLogQuery) (*ListResponse[AuditLogResponse], error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*AuditLogResponse, error)
}

// NotifierInterface emits domain notifications; implementations never fail the caller
type NotifierInterface interface {
	InvoiceCreated(ctx context.Context, inv *models.Invoice)
	InvoiceIssued(ctx context.Context, inv *models.Invoice)
	InvoiceOverdue(ctx context.Context, inv *models.Invoice) error
	PaymentCreated(ctx context.Context, p *models.Payment, inv *models.Invoice)
	PaymentReceived(ctx context.Context, p *models.Payment, inv *models.Invoice)
	PaymentFailed(ctx context.Context, p *models.Payment, inv *models.Invoice)
	MaintenanceCreated(ctx context.Context, req *models.MaintenanceRequest)
	MaintenanceAssigned(ctx context.Context, req *models.MaintenanceRequest)
	MaintenanceStatusChanged(ctx context.Context, req *models.MaintenanceRequest, oldStatus models.MaintenanceStatus)
	InviteSent(ctx context.Context, inv *models.Invite, tenant *models.User)
	InviteAccepted(ctx context.Context, inv *models.Invite)
	InviteRejected(ctx context.Context, inv *models.Invite)
	MeterReadingSubmitted(ctx context.Context, reading *models.MeterReading, tenantID uuid.UUID)
	TenancyCreated(ctx context.Context, t *models.Tenancy)
	MarkInviteRead(ctx context.Context, userID, inviteID uuid.UUID)
}

// NotificationServiceInterface defines the interface for the notification inbox
type NotificationServiceInterface interface {
	List(ctx context.Context, actor *models.User, q NotificationQuery) (*ListResponse[NotificationResponse], error)
	My(ctx context.Context, actor *models.User, params ListParams) (*ListResponse[NotificationResponse], error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*NotificationResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
	MarkRead(ctx context.Context, actor *models.User, id uuid.UUID) (*NotificationResponse, error)
	MarkUnread(ctx context.Context, actor *models.User, id uuid.UUID) (*NotificationResponse, error)
	MarkAllRead(ctx context.Context, actor *models.User) (int64, error)
	UnreadCount(ctx context.Context, actor *models.User) (int64, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Me(ctx context.Context, actor *models.User) (*UserResponse, error)
	UpdateMe(ctx context.Context, actor *models.User, req *UpdateProfileRequest) (*UserResponse, error)
	List(ctx context.Context, actor *models.User, q UserQuery) (*ListResponse[UserResponse], error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*UserResponse, error)
}

// PropertyServiceInterface defines the interface for property service
type PropertyServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreatePropertyRequest) (*PropertyResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*PropertyResponse, error)
	List(ctx context.Context, actor *models.User, q PropertyQuery) (*ListResponse[PropertyResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdatePropertyRequest) (*PropertyResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// RoomServiceInterface defines the interface for room service
type RoomServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreateRoomRequest) (*RoomResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*RoomResponse, error)
	List(ctx context.Context, actor *models.User, q RoomQuery) (*ListResponse[RoomResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateRoomRequest) (*RoomResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// ServicePriceServiceInterface defines the interface for service price service
type ServicePriceServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreateServicePriceRequest) (*ServicePriceResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*ServicePriceResponse, error)
	List(ctx context.Context, actor *models.User, q ServicePriceQuery) (*ListResponse[ServicePriceResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateServicePriceRequest) (*ServicePriceResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// TenancyServiceInterface defines the interface for tenancy service
type TenancyServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreateTenancyRequest) (*TenancyResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*TenancyResponse, error)
	List(ctx context.Context, actor *models.User, q TenancyQuery) (*ListResponse[TenancyResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateTenancyRequest) (*TenancyResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// InvoiceServiceInterface defines the interface for invoice service
type InvoiceServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreateInvoiceRequest) (*InvoiceResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*InvoiceResponse, error)
	List(ctx context.Context, actor *models.User, q InvoiceQuery) (*ListResponse[InvoiceResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateInvoiceRequest) (*InvoiceResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
	PDF(ctx context.Context, actor *models.User, id uuid.UUID) (*InvoiceDocument, error)
	CheckOverdue(ctx context.Context, dryRun bool) (*OverdueCheckResult, error)
}

// InvoiceLineServiceInterface defines the interface for invoice line service
type InvoiceLineServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreateInvoiceLineRequest) (*InvoiceLineResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*InvoiceLineResponse, error)
	List(ctx context.Context, actor *models.User, q InvoiceLineQuery) (*ListResponse[InvoiceLineResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateInvoiceLineRequest) (*InvoiceLineResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// PaymentServiceInterface defines the interface for payment service
type PaymentServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreatePaymentRequest) (*PaymentResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*PaymentResponse, error)
	List(ctx context.Context, actor *models.User, q PaymentQuery) (*ListResponse[PaymentResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdatePaymentRequest) (*PaymentResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// MaintenanceServiceInterface defines the interface for maintenance requests and their attachments
type MaintenanceServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreateMaintenanceRequest) (*MaintenanceResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*MaintenanceResponse, error)
	List(ctx context.Context, actor *models.User, q MaintenanceQuery) (*ListResponse[MaintenanceResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateMaintenanceRequest) (*MaintenanceResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
	CreateAttachment(ctx context.Context, actor *models.User, req *CreateAttachmentRequest) (*AttachmentResponse, error)
	GetAttachment(ctx context.Context, actor *models.User, id uuid.UUID) (*AttachmentResponse, error)
	ListAttachments(ctx context.Context, actor *models.User, q AttachmentQuery) (*ListResponse[AttachmentResponse], error)
	DeleteAttachment(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// MeterReadingServiceInterface defines the interface for meter reading service
type MeterReadingServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreateMeterReadingRequest) (*MeterReadingResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*MeterReadingResponse, error)
	List(ctx context.Context, actor *models.User, q MeterReadingQuery) (*ListResponse[MeterReadingResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateMeterReadingRequest) (*MeterReadingResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// InviteServiceInterface defines the interface for invite service
type InviteServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreateInviteRequest) (*InviteResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*InviteResponse, error)
	List(ctx context.Context, actor *models.User, q InviteQuery) (*ListResponse[InviteResponse], error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateInviteRequest) (*InviteResponse, error)
	Accept(ctx context.Context, actor *models.User, req *AcceptInviteRequest) (*InviteResponse, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// BankServiceInterface defines the interface for the bank directory and payment QR links
type BankServiceInterface interface {
	Banks(ctx context.Context) (*BanksResponse, error)
	QRCode(ctx context.Context, actor *models.User, req QRCodeRequest) (*QRCodeResponse, error)
}

// FileServiceInterface defines the interface for uploaded files
type FileServiceInterface interface {
	Upload(ctx context.Context, actor *models.User, req *UploadFileRequest) (*FileResponse, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*FileResponse, error)
	List(ctx context.Context, actor *models.User, q FileQuery) (*ListResponse[FileResponse], error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}
