package routes

import (
	"fmt"
	"net/http"
	"strings"

	"rental-management-backend/internal/api/handlers"
	"rental-management-backend/internal/api/middleware"
	"rental-management-backend/internal/auth"
	"rental-management-backend/internal/config"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies carries what the router needs
type Dependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Repos    *repository.Repositories
	Services *service.Services
	Storage  storage.Storage
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps *Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	svc := deps.Services

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(cfg.SlowRequestThreshold))
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestInfo())

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), deps.Repos.Users, deps.Repos.RefreshTokens,
		svc.Audit, service.NewValidator())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	healthHandler := handlers.NewHealthHandler(deps.DB, Version)
	userHandler := handlers.NewUserHandler(svc.Users)
	propertyHandler := handlers.NewPropertyHandler(svc.Properties)
	roomHandler := handlers.NewRoomHandler(svc.Rooms)
	priceHandler := handlers.NewServicePriceHandler(svc.ServicePrices)
	tenancyHandler := handlers.NewTenancyHandler(svc.Tenancies)
	invoiceHandler := handlers.NewInvoiceHandler(svc.Invoices)
	invoiceLineHandler := handlers.NewInvoiceLineHandler(svc.InvoiceLines)
	paymentHandler := handlers.NewPaymentHandler(svc.Payments)
	maintenanceHandler := handlers.NewMaintenanceHandler(svc.Maintenance)
	meterReadingHandler := handlers.NewMeterReadingHandler(svc.MeterReadings)
	inviteHandler := handlers.NewInviteHandler(svc.Invites)
	notificationHandler := handlers.NewNotificationHandler(svc.Notifications)
	auditLogHandler := handlers.NewAuditLogHandler(svc.Audit)
	fileHandler := handlers.NewFileHandler(svc.Files)
	bankHandler := handlers.NewBankHandler(svc.Banks)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if local, ok := deps.Storage.(*storage.Local); ok {
		mediaURL := "/" + strings.Trim(cfg.MediaURL, "/")
		router.StaticFS(mediaURL, http.Dir(local.Root()))
	}

	v1 := router.Group("/api/v1")

	// Public routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/register/landlord", authHandler.RegisterLandlord)
		authGroup.POST("/token", authHandler.Login)
		authGroup.POST("/web/token", authHandler.Login)
		authGroup.POST("/token/refresh", authHandler.Refresh)
	}
	v1.GET("/banks", bankHandler.ListBanks)

	// Everything below requires a bearer token
	api := v1.Group("")
	api.Use(authMiddleware.RequireAuth())
	{
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", userHandler.GetMe)
		api.PATCH("/auth/me", userHandler.UpdateMe)

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		properties := api.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.PUT("/:id", propertyHandler.UpdateProperty)
			properties.PATCH("/:id", propertyHandler.UpdateProperty)
			properties.DELETE("/:id", propertyHandler.DeleteProperty)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomHandler.ListRooms)
			rooms.POST("", roomHandler.CreateRoom)
			rooms.GET("/:id", roomHandler.GetRoom)
			rooms.PUT("/:id", roomHandler.UpdateRoom)
			rooms.PATCH("/:id", roomHandler.UpdateRoom)
			rooms.DELETE("/:id", roomHandler.DeleteRoom)
		}

		prices := api.Group("/prices")
		{
			prices.GET("", priceHandler.ListServicePrices)
			prices.POST("", priceHandler.CreateServicePrice)
			prices.GET("/:id", priceHandler.GetServicePrice)
			prices.PUT("/:id", priceHandler.UpdateServicePrice)
			prices.PATCH("/:id", priceHandler.UpdateServicePrice)
			prices.DELETE("/:id", priceHandler.DeleteServicePrice)
		}

		tenancies := api.Group("/tenancies")
		{
			tenancies.GET("", tenancyHandler.ListTenancies)
			tenancies.POST("", tenancyHandler.CreateTenancy)
			tenancies.GET("/:id", tenancyHandler.GetTenancy)
			tenancies.PUT("/:id", tenancyHandler.UpdateTenancy)
			tenancies.PATCH("/:id", tenancyHandler.UpdateTenancy)
			tenancies.DELETE("/:id", tenancyHandler.DeleteTenancy)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
			invoices.GET("/:id/pdf", invoiceHandler.DownloadInvoicePDF)
			invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
			invoices.PATCH("/:id", invoiceHandler.UpdateInvoice)
			invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		}

		lines := api.Group("/invoice-lines")
		{
			lines.GET("", invoiceLineHandler.ListInvoiceLines)
			lines.POST("", invoiceLineHandler.CreateInvoiceLine)
			lines.GET("/:id", invoiceLineHandler.GetInvoiceLine)
			lines.PUT("/:id", invoiceLineHandler.UpdateInvoiceLine)
			lines.PATCH("/:id", invoiceLineHandler.UpdateInvoiceLine)
			lines.DELETE("/:id", invoiceLineHandler.DeleteInvoiceLine)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", paymentHandler.ListPayments)
			payments.POST("", paymentHandler.CreatePayment)
			payments.GET("/:id", paymentHandler.GetPayment)
			payments.PUT("/:id", paymentHandler.UpdatePayment)
			payments.PATCH("/:id", paymentHandler.UpdatePayment)
			payments.DELETE("/:id", paymentHandler.DeletePayment)
		}

		maintenance := api.Group("/maintenance")
		{
			maintenance.GET("/attachments", maintenanceHandler.ListAttachments)
			maintenance.POST("/attachments", maintenanceHandler.CreateAttachment)
			maintenance.GET("/attachments/:id", maintenanceHandler.GetAttachment)
			maintenance.DELETE("/attachments/:id", maintenanceHandler.DeleteAttachment)

			maintenance.GET("", maintenanceHandler.ListMaintenance)
			maintenance.POST("", maintenanceHandler.CreateMaintenance)
			maintenance.GET("/:id", maintenanceHandler.GetMaintenance)
			maintenance.PUT("/:id", maintenanceHandler.UpdateMaintenance)
			maintenance.PATCH("/:id", maintenanceHandler.UpdateMaintenance)
			maintenance.DELETE("/:id", maintenanceHandler.DeleteMaintenance)
		}

		readings := api.Group("/meter-readings")
		{
			readings.GET("", meterReadingHandler.ListMeterReadings)
			readings.POST("", meterReadingHandler.CreateMeterReading)
			readings.GET("/:id", meterReadingHandler.GetMeterReading)
			readings.PUT("/:id", meterReadingHandler.UpdateMeterReading)
			readings.PATCH("/:id", meterReadingHandler.UpdateMeterReading)
			readings.DELETE("/:id", meterReadingHandler.DeleteMeterReading)
		}

		invites := api.Group("/invites")
		{
			invites.POST("/accept", inviteHandler.AcceptInvite)
			invites.GET("", inviteHandler.ListInvites)
			invites.POST("", inviteHandler.CreateInvite)
			invites.GET("/:id", inviteHandler.GetInvite)
			invites.PUT("/:id", inviteHandler.UpdateInvite)
			invites.PATCH("/:id", inviteHandler.UpdateInvite)
			invites.DELETE("/:id", inviteHandler.DeleteInvite)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/my", notificationHandler.MyNotifications)
			notifications.GET("/unread_count", notificationHandler.UnreadCount)
			notifications.POST("/mark_all_read", notificationHandler.MarkAllRead)
			notifications.GET("/:id", notificationHandler.GetNotification)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
			notifications.POST("/:id/mark_read", notificationHandler.MarkRead)
			notifications.POST("/:id/mark_unread", notificationHandler.MarkUnread)
		}

		files := api.Group("/files")
		{
			files.GET("", fileHandler.ListFiles)
			files.POST("", fileHandler.UploadFile)
			files.GET("/:id", fileHandler.GetFile)
			files.DELETE("/:id", fileHandler.DeleteFile)
		}

		audit := api.Group("/audit-logs")
		audit.Use(authMiddleware.RequireSuperuser())
		{
			audit.GET("", auditLogHandler.ListAuditLogs)
			audit.GET("/:id", auditLogHandler.GetAuditLog)
		}

		api.GET("/qr-code", bankHandler.QRCode)
	}

	return router, nil
}
