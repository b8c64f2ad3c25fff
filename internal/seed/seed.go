// Package seed loads demo users, properties, rooms and service prices from YAML files.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"rental-management-backend/internal/database/models"
	"rental-management-backend/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// UserData describes one account
type UserData struct {
	Email             string `yaml:"email"`
	Password          string `yaml:"password"`
	FullName          string `yaml:"full_name"`
	Phone             string `yaml:"phone,omitempty"`
	Role              string `yaml:"role"`
	Superuser         bool   `yaml:"superuser,omitempty"`
	BankAccountNumber string `yaml:"bank_account_number,omitempty"`
	BankCode          string `yaml:"bank_code,omitempty"`
}

// RoomData describes one room of a property
type RoomData struct {
	RoomNumber  string   `yaml:"room_number"`
	Floor       int      `yaml:"floor"`
	Area        *float64 `yaml:"area,omitempty"`
	BaseRent    float64  `yaml:"base_rent"`
	Description string   `yaml:"description,omitempty"`
}

// PriceData describes one service price of a property
type PriceData struct {
	ServiceType string  `yaml:"service_type"`
	Name        string  `yaml:"name,omitempty"`
	UnitPrice   float64 `yaml:"unit_price"`
	Unit        string  `yaml:"unit"`
	IsRecurring bool    `yaml:"is_recurring"`
}

// PropertyData describes a property with its rooms and prices
type PropertyData struct {
	OwnerEmail  string      `yaml:"owner_email"`
	Name        string      `yaml:"name"`
	Address     string      `yaml:"address"`
	Description string      `yaml:"description,omitempty"`
	Rooms       []RoomData  `yaml:"rooms,omitempty"`
	Prices      []PriceData `yaml:"prices,omitempty"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type PropertiesFile struct {
	Properties []PropertyData `yaml:"properties"`
}

// Result counts the rows created by a run
type Result struct {
	Users      int
	Properties int
	Rooms      int
	Prices     int
}

// Loader writes seed data idempotently; existing rows are left untouched
type Loader struct {
	db         *gorm.DB
	bcryptCost int
}

// NewLoader creates a loader; a zero cost uses bcrypt's default
func NewLoader(db *gorm.DB, bcryptCost int) *Loader {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Loader{db: db, bcryptCost: bcryptCost}
}

// LoadDir reads users*.yaml and properties*.yaml under dataDir and loads them
func (l *Loader) LoadDir(ctx context.Context, dataDir string) (*Result, error) {
	var users []UserData
	if err := walkYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		users = append(users, file.Users...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var properties []PropertyData
	if err := walkYAML(dataDir, "properties", func(data []byte) error {
		var file PropertiesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		properties = append(properties, file.Properties...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	return l.Load(ctx, users, properties)
}

// Load writes users first, then properties with their rooms and prices
func (l *Loader) Load(ctx context.Context, users []UserData, properties []PropertyData) (*Result, error) {
	result := &Result{}
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range users {
			created, err := l.loadUser(tx, u)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Email, err)
			}
			if created {
				result.Users++
			}
		}
		for _, p := range properties {
			if err := l.loadProperty(tx, p, result); err != nil {
				return fmt.Errorf("property %s: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"users":      result.Users,
		"properties": result.Properties,
		"rooms":      result.Rooms,
		"prices":     result.Prices,
	}).Info("Seed data loaded")
	return result, nil
}

func (l *Loader) loadUser(tx *gorm.DB, u UserData) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(u.Email))
	if email == "" || u.Password == "" {
		return false, errors.New("email and password are required")
	}

	var existing models.User
	err := tx.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	role := models.UserRole(u.Role)
	if role == "" {
		role = models.UserRoleTenant
	}
	if role != models.UserRoleTenant && role != models.UserRoleLandlord {
		return false, fmt.Errorf("invalid role %q", u.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), l.bcryptCost)
	if err != nil {
		return false, err
	}

	user := models.User{
		Email:             email,
		FullName:          u.FullName,
		Role:              role,
		PasswordHash:      string(hash),
		IsActive:          true,
		IsStaff:           u.Superuser,
		IsSuperuser:       u.Superuser,
		BankAccountNumber: u.BankAccountNumber,
		BankCode:          strings.ToUpper(u.BankCode),
	}
	if phone := strings.TrimSpace(u.Phone); phone != "" {
		user.Phone = &phone
	}
	return true, tx.Create(&user).Error
}

func (l *Loader) loadProperty(tx *gorm.DB, p PropertyData, result *Result) error {
	var owner models.User
	if err := tx.Where("email = ?", strings.ToLower(strings.TrimSpace(p.OwnerEmail))).First(&owner).Error; err != nil {
		return fmt.Errorf("owner %s: %w", p.OwnerEmail, err)
	}
	if owner.Role != models.UserRoleLandlord {
		return fmt.Errorf("owner %s is not a landlord", p.OwnerEmail)
	}

	property := models.Property{OwnerID: owner.ID, Name: p.Name}
	res := tx.Where("owner_id = ? AND name = ?", owner.ID, p.Name).
		Attrs(models.Property{Address: p.Address, Description: p.Description}).
		FirstOrCreate(&property)
	if res.Error != nil {
		return res.Error
	}
	result.Properties += int(res.RowsAffected)

	for _, r := range p.Rooms {
		floor := r.Floor
		if floor == 0 {
			floor = 1
		}
		room := models.Room{BuildingID: property.ID, RoomNumber: r.RoomNumber}
		res := tx.Where("building_id = ? AND room_number = ?", property.ID, r.RoomNumber).
			Attrs(models.Room{
				Floor:       floor,
				Area:        r.Area,
				BaseRent:    models.RoundMoney(r.BaseRent),
				Status:      models.RoomStatusVacant,
				Description: r.Description,
			}).
			FirstOrCreate(&room)
		if res.Error != nil {
			return fmt.Errorf("room %s: %w", r.RoomNumber, res.Error)
		}
		result.Rooms += int(res.RowsAffected)
	}

	for _, sp := range p.Prices {
		price := models.ServicePrice{PropertyID: property.ID, ServiceType: models.ServiceType(sp.ServiceType)}
		res := tx.Where("property_id = ? AND service_type = ?", property.ID, sp.ServiceType).
			Attrs(models.ServicePrice{
				Name:        sp.Name,
				UnitPrice:   models.RoundMoney(sp.UnitPrice),
				Unit:        sp.Unit,
				IsRecurring: sp.IsRecurring,
			}).
			FirstOrCreate(&price)
		if res.Error != nil {
			return fmt.Errorf("price %s: %w", sp.ServiceType, res.Error)
		}
		result.Prices += int(res.RowsAffected)
	}
	return nil
}

// walkYAML calls fn with the content of every .yaml file whose path contains kind
func walkYAML(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(data)
	})
}
