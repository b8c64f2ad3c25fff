package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a landlord or tenant account
type User struct {
	BaseModel
	Email             string     `json:"email" gorm:"uniqueIndex;not null;size:254" validate:"required,email,max=254"`
	Phone             *string    `json:"phone" gorm:"uniqueIndex;size:20"`
	FullName          string     `json:"full_name" gorm:"size:255"`
	Avatar            string     `json:"avatar" gorm:"size:500"`
	Role              UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'tenant';index"`
	PasswordHash      string     `json:"-" gorm:"size:255;not null"`
	IsActive          bool       `json:"is_active" gorm:"not null"`
	IsStaff           bool       `json:"is_staff" gorm:"not null"`
	IsSuperuser       bool       `json:"is_superuser" gorm:"not null"`
	BankAccountNumber string     `json:"bank_account_number" gorm:"size:32"`
	BankCode          string     `json:"bank_code" gorm:"size:20"`
	LastLogin         *time.Time `json:"last_login"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsLandlord reports whether the user has the landlord role
func (u *User) IsLandlord() bool {
	return u.Role == UserRoleLandlord
}

// IsTenant reports whether the user has the tenant role
func (u *User) IsTenant() bool {
	return u.Role == UserRoleTenant
}

// HasBankInfo reports whether both bank account number and bank code are set
func (u *User) HasBankInfo() bool {
	return u.BankAccountNumber != "" && u.BankCode != ""
}

// DisplayName returns the full name, falling back to the email
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// RefreshToken is a rotating refresh token; only the SHA-256 hash is stored
type RefreshToken struct {
	BaseModel
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	User      *User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TokenHash string     `json:"-" gorm:"uniqueIndex;not null;size:64"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	RevokedAt *time.Time `json:"revoked_at"`
}

// TableName returns the table name for RefreshToken
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
