package repository

import (
	"context"
	"time"

	"rental-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	List(ctx context.Context, v Viewer, filter UserFilter, opts ListOptions) ([]models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	PhoneTaken(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error)
}

// RefreshTokenRepositoryInterface defines the interface for refresh token storage
type RefreshTokenRepositoryInterface interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// PropertyRepositoryInterface defines the interface for property repository operations
type PropertyRepositoryInterface interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Property, error)
	List(ctx context.Context, v Viewer, filter PropertyFilter, opts ListOptions) ([]models.Property, int64, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	RoomStats(ctx context.Context, propertyIDs []uuid.UUID) (map[uuid.UUID]RoomStats, error)
}

// RoomRepositoryInterface defines the interface for room repository operations
type RoomRepositoryInterface interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error)
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Room, error)
	List(ctx context.Context, v Viewer, filter RoomFilter, opts ListOptions) ([]models.Room, int64, error)
	Update(ctx context.Context, room *models.Room) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.RoomStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	NumberTaken(ctx context.Context, buildingID uuid.UUID, number string, excludeID uuid.UUID) (bool, error)
}

// ServicePriceRepositoryInterface defines the interface for service price repository operations
type ServicePriceRepositoryInterface interface {
	Create(ctx context.Context, price *models.ServicePrice) error
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.ServicePrice, error)
	List(ctx context.Context, v Viewer, filter ServicePriceFilter, opts ListOptions) ([]models.ServicePrice, int64, error)
	Update(ctx context.Context, price *models.ServicePrice) error
	Delete(ctx context.Context, id uuid.UUID) error
	TypeTaken(ctx context.Context, propertyID uuid.UUID, serviceType models.ServiceType, excludeID uuid.UUID) (bool, error)
}

// TenancyRepositoryInterface defines the interface for tenancy repository operations
type TenancyRepositoryInterface interface {
	Create(ctx context.Context, tenancy *models.Tenancy) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenancy, error)
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Tenancy, error)
	List(ctx context.Context, v Viewer, filter TenancyFilter, opts ListOptions) ([]models.Tenancy, int64, error)
	Update(ctx context.Context, tenancy *models.Tenancy) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindActive(ctx context.Context, roomID, tenantID uuid.UUID) (*models.Tenancy, error)
	ActiveForRoom(ctx context.Context, roomID uuid.UUID) (*models.Tenancy, error)
}

// InvoiceRepositoryInterface defines the interface for invoice repository operations
type InvoiceRepositoryInterface interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Invoice, error)
	List(ctx context.Context, v Viewer, filter InvoiceFilter, opts ListOptions) ([]models.Invoice, int64, error)
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	PeriodTaken(ctx context.Context, tenancyID uuid.UUID, period string, excludeID uuid.UUID) (bool, error)
	PaymentTotals(ctx context.Context, invoiceIDs []uuid.UUID) (map[uuid.UUID]PaymentTotal, error)
	ListOverdueCandidates(ctx context.Context, today time.Time) ([]models.Invoice, error)
}

// InvoiceLineRepositoryInterface defines the interface for invoice line repository operations
type InvoiceLineRepositoryInterface interface {
	Create(ctx context.Context, line *models.InvoiceLine) error
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.InvoiceLine, error)
	List(ctx context.Context, v Viewer, invoiceID *uuid.UUID, opts ListOptions) ([]models.InvoiceLine, int64, error)
	Update(ctx context.Context, line *models.InvoiceLine) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context, v Viewer, filter PaymentFilter, opts ListOptions) ([]models.Payment, int64, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumCompleted(ctx context.Context, invoiceID uuid.UUID) (float64, error)
}

// MaintenanceRepositoryInterface defines the interface for maintenance repository operations
type MaintenanceRepositoryInterface interface {
	Create(ctx context.Context, req *models.MaintenanceRequest) error
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.MaintenanceRequest, error)
	List(ctx context.Context, v Viewer, filter MaintenanceFilter, opts ListOptions) ([]models.MaintenanceRequest, int64, error)
	Update(ctx context.Context, req *models.MaintenanceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreateAttachment(ctx context.Context, att *models.MaintenanceAttachment) error
	GetVisibleAttachment(ctx context.Context, v Viewer, id uuid.UUID) (*models.MaintenanceAttachment, error)
	ListAttachments(ctx context.Context, v Viewer, requestID *uuid.UUID, opts ListOptions) ([]models.MaintenanceAttachment, int64, error)
	DeleteAttachment(ctx context.Context, id uuid.UUID) error
}

// MeterReadingRepositoryInterface defines the interface for meter reading repository operations
type MeterReadingRepositoryInterface interface {
	Create(ctx context.Context, reading *models.MeterReading) error
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.MeterReading, error)
	List(ctx context.Context, v Viewer, filter MeterReadingFilter, opts ListOptions) ([]models.MeterReading, int64, error)
	Update(ctx context.Context, reading *models.MeterReading) error
	Delete(ctx context.Context, id uuid.UUID) error
	PeriodTaken(ctx context.Context, roomID uuid.UUID, period string, excludeID uuid.UUID) (bool, error)
}

// InviteRepositoryInterface defines the interface for invite repository operations
type InviteRepositoryInterface interface {
	Create(ctx context.Context, invite *models.Invite) error
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Invite, error)
	GetByToken(ctx context.Context, token string) (*models.Invite, error)
	List(ctx context.Context, v Viewer, filter InviteFilter, opts ListOptions) ([]models.Invite, int64, error)
	Update(ctx context.Context, invite *models.Invite) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *models.Notification) error
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Notification, error)
	List(ctx context.Context, v Viewer, filter NotificationFilter, opts ListOptions) ([]models.Notification, int64, error)
	Update(ctx context.Context, n *models.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	MarkRelatedRead(ctx context.Context, userID uuid.UUID, objectType, objectID string, at time.Time) (int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AuditLog, error)
	List(ctx context.Context, filter AuditLogFilter, opts ListOptions) ([]models.AuditLog, int64, error)
}

// FileAssetRepositoryInterface defines the interface for file asset repository operations
type FileAssetRepositoryInterface interface {
	Create(ctx context.Context, asset *models.FileAsset) error
	GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.FileAsset, error)
	List(ctx context.Context, v Viewer, purpose models.FilePurpose, opts ListOptions) ([]models.FileAsset, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
