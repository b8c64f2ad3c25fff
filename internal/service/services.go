package service

import (
	"rental-management-backend/internal/config"
	"rental-management-backend/internal/mailer"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/storage"

	"github.com/go-playground/validator/v10"
)

// Services groups every domain service sharing one set of repositories
type Services struct {
	Audit         *AuditService
	Notifications *NotificationService
	Users         *UserService
	Properties    *PropertyService
	Rooms         *RoomService
	ServicePrices *ServicePriceService
	Tenancies     *TenancyService
	Invoices      *InvoiceService
	InvoiceLines  *InvoiceLineService
	Payments      *PaymentService
	Maintenance   *MaintenanceService
	MeterReadings *MeterReadingService
	Invites       *InviteService
	Banks         *BankService
	Files         *FileService
}

// NewServices wires the domain services
func NewServices(cfg *config.Config, repos *repository.Repositories, tx repository.Transactor,
	m mailer.Mailer, store storage.Storage, v *validator.Validate) *Services {
	audit := NewAuditService(repos.AuditLogs)
	notifications := NewNotificationService(repos.Notifications, repos.Users, m)
	invoices := NewInvoiceService(repos.Invoices, repos.Tenancies, audit, notifications, v)
	invoices.SetPDFFonts(PDFFonts{Regular: cfg.PDFFontPath, Bold: cfg.PDFBoldFontPath})

	return &Services{
		Audit:         audit,
		Notifications: notifications,
		Users:         NewUserService(repos.Users, v),
		Properties:    NewPropertyService(repos.Properties, audit, v),
		Rooms:         NewRoomService(repos.Rooms, repos.Properties, audit, v),
		ServicePrices: NewServicePriceService(repos.ServicePrices, repos.Properties, v),
		Tenancies:     NewTenancyService(repos.Tenancies, repos.Rooms, repos.Users, tx, audit, notifications, v),
		Invoices:      invoices,
		InvoiceLines:  NewInvoiceLineService(repos.InvoiceLines, repos.Invoices, audit, v),
		Payments:      NewPaymentService(repos.Payments, repos.Invoices, tx, audit, notifications, v),
		Maintenance:   NewMaintenanceService(repos.Maintenance, repos.Rooms, repos.Tenancies, repos.Users, audit, notifications, v),
		MeterReadings: NewMeterReadingService(repos.MeterReadings, repos.Rooms, repos.Tenancies, audit, notifications, v),
		Invites:       NewInviteService(repos.Invites, repos.Properties, repos.Rooms, repos.Users, tx, audit, notifications, v),
		Banks:         NewBankService(cfg, repos.Invoices, repos.Users),
		Files:         NewFileService(repos.FileAssets, store),
	}
}
