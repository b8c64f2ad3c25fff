package models

// UserRole defines the role of a user account
type UserRole string

const (
	UserRoleLandlord UserRole = "landlord"
	UserRoleTenant   UserRole = "tenant"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleLandlord, UserRoleTenant:
		return true
	}
	return false
}

// RoomStatus defines the occupancy state of a room
type RoomStatus string

const (
	RoomStatusVacant      RoomStatus = "vacant"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// IsValid checks if the RoomStatus is valid
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusVacant, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}

// TenancyStatus defines the lifecycle state of a tenancy
type TenancyStatus string

const (
	TenancyStatusActive     TenancyStatus = "active"
	TenancyStatusExpired    TenancyStatus = "expired"
	TenancyStatusTerminated TenancyStatus = "terminated"
)

// IsValid checks if the TenancyStatus is valid
func (s TenancyStatus) IsValid() bool {
	switch s {
	case TenancyStatusActive, TenancyStatusExpired, TenancyStatusTerminated:
		return true
	}
	return false
}

// InvoiceStatus defines the billing state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// IsValid checks if the InvoiceStatus is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// LineItemType defines the kind of charge on an invoice line
type LineItemType string

const (
	LineItemRent        LineItemType = "rent"
	LineItemDeposit     LineItemType = "deposit"
	LineItemElectricity LineItemType = "electricity"
	LineItemWater       LineItemType = "water"
	LineItemInternet    LineItemType = "internet"
	LineItemCleaning    LineItemType = "cleaning"
	LineItemService     LineItemType = "service"
	LineItemAdjustment  LineItemType = "adjustment"
)

// IsValid checks if the LineItemType is valid
func (t LineItemType) IsValid() bool {
	switch t {
	case LineItemRent, LineItemDeposit, LineItemElectricity, LineItemWater,
		LineItemInternet, LineItemCleaning, LineItemService, LineItemAdjustment:
		return true
	}
	return false
}

// PaymentMethod defines how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMomo         PaymentMethod = "momo"
	PaymentMethodVNPay        PaymentMethod = "vnpay"
	PaymentMethodOther        PaymentMethod = "other"
)

// IsValid checks if the PaymentMethod is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodMomo, PaymentMethodVNPay, PaymentMethodOther:
		return true
	}
	return false
}

// PaymentStatus defines the processing state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// MaintenanceCategory defines the kind of maintenance issue
type MaintenanceCategory string

const (
	MaintenanceCategoryElectricity MaintenanceCategory = "electricity"
	MaintenanceCategoryPlumbing    MaintenanceCategory = "plumbing"
	MaintenanceCategoryAppliance   MaintenanceCategory = "appliance"
	MaintenanceCategoryFurniture   MaintenanceCategory = "furniture"
	MaintenanceCategoryInternet    MaintenanceCategory = "internet"
	MaintenanceCategoryOther       MaintenanceCategory = "other"
)

// IsValid checks if the MaintenanceCategory is valid
func (c MaintenanceCategory) IsValid() bool {
	switch c {
	case MaintenanceCategoryElectricity, MaintenanceCategoryPlumbing, MaintenanceCategoryAppliance,
		MaintenanceCategoryFurniture, MaintenanceCategoryInternet, MaintenanceCategoryOther:
		return true
	}
	return false
}

// MaintenanceStatus defines the progress of a maintenance request
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusDone       MaintenanceStatus = "done"
	MaintenanceStatusRejected   MaintenanceStatus = "rejected"
)

// IsValid checks if the MaintenanceStatus is valid
func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusDone, MaintenanceStatusRejected:
		return true
	}
	return false
}

// MeterSource defines where a meter reading came from
type MeterSource string

const (
	MeterSourceManual MeterSource = "manual"
	MeterSourceOCR    MeterSource = "ocr"
)

// IsValid checks if the MeterSource is valid
func (s MeterSource) IsValid() bool {
	return s == MeterSourceManual || s == MeterSourceOCR
}

// InviteStatus defines the state of an invite
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
	InviteStatusExpired  InviteStatus = "expired"
)

// IsValid checks if the InviteStatus is valid
func (s InviteStatus) IsValid() bool {
	switch s {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusRejected, InviteStatusExpired:
		return true
	}
	return false
}

// NotificationChannel defines how a notification is delivered
type NotificationChannel string

const (
	ChannelInApp NotificationChannel = "inapp"
	ChannelEmail NotificationChannel = "email"
	ChannelPush  NotificationChannel = "push"
)

// IsValid checks if the NotificationChannel is valid
func (c NotificationChannel) IsValid() bool {
	switch c {
	case ChannelInApp, ChannelEmail, ChannelPush:
		return true
	}
	return false
}

// NotificationPriority defines the urgency of a notification
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// IsValid checks if the NotificationPriority is valid
func (p NotificationPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// AuditAction defines the kind of audited event
type AuditAction string

const (
	AuditActionCreate       AuditAction = "create"
	AuditActionUpdate       AuditAction = "update"
	AuditActionDelete       AuditAction = "delete"
	AuditActionStatusChange AuditAction = "status_change"
	AuditActionLogin        AuditAction = "login"
	AuditActionLogout       AuditAction = "logout"
	AuditActionView         AuditAction = "view"
	AuditActionExport       AuditAction = "export"
	AuditActionOther        AuditAction = "other"
)

// IsValid checks if the AuditAction is valid
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionStatusChange,
		AuditActionLogin, AuditActionLogout, AuditActionView, AuditActionExport, AuditActionOther:
		return true
	}
	return false
}

// FilePurpose defines what an uploaded file is used for
type FilePurpose string

const (
	FilePurposeContract    FilePurpose = "contract"
	FilePurposeMeter       FilePurpose = "meter"
	FilePurposeMaintenance FilePurpose = "maintenance"
)

// IsValid checks if the FilePurpose is valid
func (p FilePurpose) IsValid() bool {
	switch p {
	case FilePurposeContract, FilePurposeMeter, FilePurposeMaintenance:
		return true
	}
	return false
}

// ServiceType defines the kind of priced service on a property
type ServiceType string

const (
	ServiceTypeElectricity ServiceType = "electricity"
	ServiceTypeWater       ServiceType = "water"
	ServiceTypeInternet    ServiceType = "internet"
	ServiceTypeCleaning    ServiceType = "cleaning"
	ServiceTypeParking     ServiceType = "parking"
	ServiceTypeOther       ServiceType = "other"
)

// IsValid checks if the ServiceType is valid
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeElectricity, ServiceTypeWater, ServiceTypeInternet,
		ServiceTypeCleaning, ServiceTypeParking, ServiceTypeOther:
		return true
	}
	return false
}

// Label returns the human readable name of the service type
func (t ServiceType) Label() string {
	switch t {
	case ServiceTypeElectricity:
		return "Electricity"
	case ServiceTypeWater:
		return "Water"
	case ServiceTypeInternet:
		return "Internet"
	case ServiceTypeCleaning:
		return "Cleaning"
	case ServiceTypeParking:
		return "Parking"
	case ServiceTypeOther:
		return "Other"
	}
	return string(t)
}
