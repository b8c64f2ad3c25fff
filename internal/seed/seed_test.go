package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rental-management-backend/internal/database/models"
	"rental-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const usersYAML = `users:
  - email: Owner@Example.com
    password: owner-pass
    full_name: Owner
    role: landlord
    bank_code: vcb
  - email: renter@example.com
    password: renter-pass
    phone: "0909000000"
`

const propertiesYAML = `properties:
  - owner_email: owner@example.com
    name: Block A
    address: 1 Le Loi
    rooms:
      - room_number: "101"
        base_rent: 3000000
      - room_number: "102"
        floor: 2
        base_rent: 3200000.456
    prices:
      - service_type: electricity
        unit_price: 3500
        unit: kWh
        is_recurring: true
`

func writeData(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.yaml"), []byte(usersYAML), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sites"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sites", "properties.yaml"), []byte(propertiesYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o600))
	return dir
}

func TestLoadDir(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	loader := NewLoader(db, bcrypt.MinCost)
	dir := writeData(t)

	result, err := loader.LoadDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, &Result{Users: 2, Properties: 1, Rooms: 2, Prices: 1}, result)

	var owner models.User
	require.NoError(t, db.Where("email = ?", "owner@example.com").First(&owner).Error)
	assert.Equal(t, models.UserRoleLandlord, owner.Role)
	assert.Equal(t, "VCB", owner.BankCode)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte("owner-pass")))

	var renter models.User
	require.NoError(t, db.Where("email = ?", "renter@example.com").First(&renter).Error)
	assert.Equal(t, models.UserRoleTenant, renter.Role)

	var room models.Room
	require.NoError(t, db.Where("room_number = ?", "101").First(&room).Error)
	assert.Equal(t, 1, room.Floor)
	assert.Equal(t, models.RoomStatusVacant, room.Status)
	require.NoError(t, db.Where("room_number = ?", "102").First(&room).Error)
	assert.Equal(t, 3200000.46, room.BaseRent)

	again, err := loader.LoadDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, &Result{}, again)
}

func TestLoadRejectsNonLandlordOwner(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	loader := NewLoader(db, bcrypt.MinCost)

	_, err := loader.Load(context.Background(),
		[]UserData{{Email: "t@example.com", Password: "pw-123456", Role: "tenant"}},
		[]PropertyData{{OwnerEmail: "t@example.com", Name: "X"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a landlord")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count, "the failed run is rolled back")
}

func TestLoadRejectsInvalidRole(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	_, err := NewLoader(db, bcrypt.MinCost).Load(context.Background(),
		[]UserData{{Email: "x@example.com", Password: "pw-123456", Role: "admin"}}, nil)
	assert.Error(t, err)
}
