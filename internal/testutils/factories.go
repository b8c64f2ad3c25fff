package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"rental-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var seq atomic.Int64

func next() int64 { return seq.Add(1) }

// FactorySet builds and persists test data with sensible defaults
type FactorySet struct {
	db *gorm.DB
}

// NewFactorySet creates a factory set writing to db
func NewFactorySet(db *gorm.DB) *FactorySet {
	return &FactorySet{db: db}
}

func (f *FactorySet) save(v interface{}) {
	if err := f.db.Create(v).Error; err != nil {
		panic(fmt.Sprintf("factory: %v", err))
	}
}

// NewUser returns an unsaved active user with a unique email
func NewUser(role models.UserRole) *models.User {
	n := next()
	return &models.User{
		Email:        fmt.Sprintf("%s%d@example.com", role, n),
		FullName:     fmt.Sprintf("Test %s %d", role, n),
		Role:         role,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuJ1kQ6lB0n6f0C2a3Qx9mXn5b5y9w3kC",
		IsActive:     true,
	}
}

// Landlord persists a landlord with bank information
func (f *FactorySet) Landlord() *models.User {
	u := NewUser(models.UserRoleLandlord)
	u.BankAccountNumber = "0123456789"
	u.BankCode = "VCB"
	f.save(u)
	return u
}

// Tenant persists a tenant with a unique phone number
func (f *FactorySet) Tenant() *models.User {
	u := NewUser(models.UserRoleTenant)
	phone := fmt.Sprintf("09%08d", next())
	u.Phone = &phone
	f.save(u)
	return u
}

// Superuser persists a superuser
func (f *FactorySet) Superuser() *models.User {
	u := NewUser(models.UserRoleLandlord)
	u.IsSuperuser = true
	u.IsStaff = true
	f.save(u)
	return u
}

// Property persists a property owned by owner
func (f *FactorySet) Property(owner *models.User) *models.Property {
	p := &models.Property{
		OwnerID: owner.ID,
		Name:    fmt.Sprintf("Building %d", next()),
		Address: "12 Nguyen Hue, District 1",
	}
	f.save(p)
	return p
}

// Room persists a vacant room in property
func (f *FactorySet) Room(property *models.Property) *models.Room {
	r := &models.Room{
		BuildingID: property.ID,
		RoomNumber: fmt.Sprintf("R%d", next()),
		Floor:      1,
		BaseRent:   3000000,
		Status:     models.RoomStatusVacant,
	}
	f.save(r)
	r.Building = property
	return r
}

// Tenancy persists an active tenancy and marks the room occupied
func (f *FactorySet) Tenancy(room *models.Room, tenant *models.User) *models.Tenancy {
	t := &models.Tenancy{
		RoomID:    room.ID,
		TenantID:  tenant.ID,
		StartDate: models.Today().AddDate(0, -1, 0),
		Deposit:   3000000,
		BaseRent:  room.BaseRent,
		Status:    models.TenancyStatusActive,
	}
	f.save(t)
	f.db.Model(&models.Room{}).Where("id = ?", room.ID).Update("status", models.RoomStatusOccupied)
	room.Status = models.RoomStatusOccupied
	t.Room = room
	t.Tenant = tenant
	return t
}

// Invoice persists a pending invoice with one rent line
func (f *FactorySet) Invoice(tenancy *models.Tenancy, period string, total float64) *models.Invoice {
	due := models.Today().AddDate(0, 0, 10)
	issued := time.Now()
	inv := &models.Invoice{
		TenancyID:   tenancy.ID,
		Period:      period,
		TotalAmount: total,
		AmountDue:   total,
		Status:      models.InvoiceStatusPending,
		DueDate:     &due,
		IssuedAt:    &issued,
		Lines: []models.InvoiceLine{{
			ItemType:    models.LineItemRent,
			Description: "Rent " + period,
			Quantity:    1,
			UnitPrice:   total,
			Amount:      total,
		}},
	}
	f.save(inv)
	return inv
}

// Payment persists a payment against invoice
func (f *FactorySet) Payment(invoice *models.Invoice, amount float64, status models.PaymentStatus) *models.Payment {
	p := &models.Payment{
		InvoiceID: invoice.ID,
		Amount:    amount,
		Method:    models.PaymentMethodBankTransfer,
		Status:    status,
	}
	f.save(p)
	return p
}

// Maintenance persists a pending maintenance request
func (f *FactorySet) Maintenance(room *models.Room, requester *models.User) *models.MaintenanceRequest {
	m := &models.MaintenanceRequest{
		RoomID:      room.ID,
		RequesterID: requester.ID,
		Title:       "Leaking tap",
		Description: "Kitchen tap drips all night",
		Category:    models.MaintenanceCategoryPlumbing,
		Status:      models.MaintenanceStatusPending,
	}
	f.save(m)
	return m
}

// MeterReading persists a manual reading for room and period
func (f *FactorySet) MeterReading(room *models.Room, period string) *models.MeterReading {
	eOld, eNew, wOld, wNew := 100.0, 150.0, 10.0, 14.0
	m := &models.MeterReading{
		RoomID:         room.ID,
		Period:         period,
		ElectricityOld: &eOld,
		ElectricityNew: &eNew,
		WaterOld:       &wOld,
		WaterNew:       &wNew,
		Source:         models.MeterSourceManual,
	}
	f.save(m)
	return m
}

// Invite persists a pending invite for email to room
func (f *FactorySet) Invite(room *models.Room, email string) *models.Invite {
	roomID := room.ID
	inv := &models.Invite{
		PropertyID:   room.BuildingID,
		RoomID:       &roomID,
		Email:        email,
		Token:        uuid.NewString()[:32],
		Role:         models.UserRoleTenant,
		Status:       models.InviteStatusPending,
		ContractFile: "contract/test/contract.pdf",
		ExpiresAt:    time.Now().Add(7 * 24 * time.Hour),
	}
	f.save(inv)
	return inv
}

// Notification persists an unread in-app notification for user
func (f *FactorySet) Notification(user *models.User, template string) *models.Notification {
	now := time.Now()
	n := &models.Notification{
		UserID:   user.ID,
		Channel:  models.ChannelInApp,
		Template: template,
		Payload:  []byte(`{}`),
		SentAt:   &now,
		Priority: models.DefaultPriority(template),
	}
	f.save(n)
	return n
}
