package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every repository over one connection or transaction
type Repositories struct {
	Users         UserRepositoryInterface
	RefreshTokens RefreshTokenRepositoryInterface
	Properties    PropertyRepositoryInterface
	Rooms         RoomRepositoryInterface
	ServicePrices ServicePriceRepositoryInterface
	Tenancies     TenancyRepositoryInterface
	Invoices      InvoiceRepositoryInterface
	InvoiceLines  InvoiceLineRepositoryInterface
	Payments      PaymentRepositoryInterface
	Maintenance   MaintenanceRepositoryInterface
	MeterReadings MeterReadingRepositoryInterface
	Invites       InviteRepositoryInterface
	Notifications NotificationRepositoryInterface
	AuditLogs     AuditLogRepositoryInterface
	FileAssets    FileAssetRepositoryInterface
}

// NewRepositories wires all repositories onto db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		RefreshTokens: NewRefreshTokenRepository(db),
		Properties:    NewPropertyRepository(db),
		Rooms:         NewRoomRepository(db),
		ServicePrices: NewServicePriceRepository(db),
		Tenancies:     NewTenancyRepository(db),
		Invoices:      NewInvoiceRepository(db),
		InvoiceLines:  NewInvoiceLineRepository(db),
		Payments:      NewPaymentRepository(db),
		Maintenance:   NewMaintenanceRepository(db),
		MeterReadings: NewMeterReadingRepository(db),
		Invites:       NewInviteRepository(db),
		Notifications: NewNotificationRepository(db),
		AuditLogs:     NewAuditLogRepository(db),
		FileAssets:    NewFileAssetRepository(db),
	}
}

// Transactor runs a unit of work atomically
type Transactor interface {
	Transaction(ctx context.Context, fn func(repos *Repositories) error) error
}

// GormTransactor implements Transactor on a gorm connection
type GormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor for db
func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// Transaction commits when fn returns nil and rolls back otherwise
func (t *GormTransactor) Transaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
