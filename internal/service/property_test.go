package service_test

import (
	"context"
	"testing"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyRoomAndPrices(t *testing.T) {
	base := testutils.SetupSQLiteSuite(t)
	services := newTestServices(t, base)
	ctx := context.Background()
	landlord := base.Factory.Landlord()

	_, err := services.Properties.Create(ctx, base.Factory.Tenant(), &service.CreatePropertyRequest{Name: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrOnlyLandlords)

	property, err := services.Properties.Create(ctx, landlord, &service.CreatePropertyRequest{Name: "  Sunrise House ", Address: "5 Tran Phu"})
	require.NoError(t, err)
	assert.Equal(t, "Sunrise House", property.Name)
	assert.Equal(t, landlord.ID, property.Owner)

	room, err := services.Rooms.Create(ctx, landlord, &service.CreateRoomRequest{Building: property.ID, RoomNumber: "101", BaseRent: 2500000})
	require.NoError(t, err)
	assert.Equal(t, 1, room.Floor)
	assert.Equal(t, models.RoomStatusVacant, room.Status)

	_, err = services.Rooms.Create(ctx, landlord, &service.CreateRoomRequest{Building: property.ID, RoomNumber: "101"})
	assert.ErrorIs(t, err, apperrors.ErrRoomExists)

	floor := 2
	_, err = services.Rooms.Create(ctx, landlord, &service.CreateRoomRequest{
		Building: property.ID, RoomNumber: "201", Floor: &floor, Status: models.RoomStatusOccupied,
	})
	require.NoError(t, err)

	_, err = services.Rooms.Create(ctx, base.Factory.Landlord(), &service.CreateRoomRequest{Building: property.ID, RoomNumber: "301"})
	assert.Error(t, err)

	got, err := services.Properties.Get(ctx, landlord, property.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalRooms)
	assert.Equal(t, int64(1), got.OccupiedRooms)
	assert.Equal(t, 50.0, got.OccupancyRate)

	rooms, err := services.Rooms.List(ctx, landlord, service.RoomQuery{FloorGTE: "2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rooms.Total)

	price, err := services.ServicePrices.Create(ctx, landlord, &service.CreateServicePriceRequest{
		Property: property.ID, ServiceType: models.ServiceTypeElectricity, UnitPrice: 3500.456, Unit: "kWh",
	})
	require.NoError(t, err)
	assert.Equal(t, 3500.46, price.UnitPrice)

	_, err = services.ServicePrices.Create(ctx, landlord, &service.CreateServicePriceRequest{
		Property: property.ID, ServiceType: models.ServiceTypeElectricity, UnitPrice: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrServicePriceExists)

	require.NoError(t, services.Properties.Delete(ctx, landlord, property.ID))
	_, err = services.Properties.Get(ctx, landlord, property.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
