package repository

import (
	"context"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeterReadingFilter narrows meter reading listings
type MeterReadingFilter struct {
	RoomID     *uuid.UUID
	PropertyID *uuid.UUID
	Period     string
}

var meterReadingOrdering = map[string]string{
	"period":     "meter_readings.period",
	"created_at": "meter_readings.created_at",
}

// MeterReadingRepository handles database operations for meter readings
type MeterReadingRepository struct {
	db *gorm.DB
}

// NewMeterReadingRepository creates a new meter reading repository
func NewMeterReadingRepository(db *gorm.DB) *MeterReadingRepository {
	return &MeterReadingRepository{db: db}
}

func (r *MeterReadingRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	switch {
	case v.IsSuperuser:
		return db
	case v.IsLandlord():
		return db.Where("meter_readings.room_id IN (?)", ownedRoomIDs(db, v.UserID))
	case v.IsTenant():
		return db.Where("meter_readings.room_id IN (?)", activeTenantRoomIDs(db, v.UserID))
	}
	return nothing(db)
}

// Create creates a new meter reading
func (r *MeterReadingRepository) Create(ctx context.Context, reading *models.MeterReading) error {
	err := r.db.WithContext(ctx).Omit("Room").Create(reading).Error
	return translate(err, nil, apperrors.ErrMeterReadingExists)
}

// GetVisible retrieves a reading when its room is within v's scope
func (r *MeterReadingRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.MeterReading, error) {
	var reading models.MeterReading
	q := r.visible(r.db.WithContext(ctx).Model(&models.MeterReading{}), v).Preload("Room.Building")
	if err := q.First(&reading, "meter_readings.id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrMeterReadingNotFound, nil)
	}
	return &reading, nil
}

// List returns the meter readings visible to v
func (r *MeterReadingRepository) List(ctx context.Context, v Viewer, filter MeterReadingFilter, opts ListOptions) ([]models.MeterReading, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.MeterReading{}), v).
		Joins("JOIN rooms ON rooms.id = meter_readings.room_id")

	if filter.RoomID != nil {
		q = q.Where("meter_readings.room_id = ?", *filter.RoomID)
	}
	if filter.PropertyID != nil {
		q = q.Where("rooms.building_id = ?", *filter.PropertyID)
	}
	if filter.Period != "" {
		q = q.Where("meter_readings.period = ?", filter.Period)
	}
	q = q.Scopes(searchScope(opts.Search, "rooms.room_number", "meter_readings.period"))

	return paginate[models.MeterReading](q, opts, orderBy(opts.Ordering, meterReadingOrdering, "meter_readings.period DESC"),
		"Room.Building")
}

// Update saves all reading fields
func (r *MeterReadingRepository) Update(ctx context.Context, reading *models.MeterReading) error {
	err := r.db.WithContext(ctx).Omit("Room").Save(reading).Error
	return translate(err, nil, apperrors.ErrMeterReadingExists)
}

// Delete removes a meter reading
func (r *MeterReadingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.MeterReading{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrMeterReadingNotFound
	}
	return nil
}

// PeriodTaken reports whether the room already has a reading for period
func (r *MeterReadingRepository) PeriodTaken(ctx context.Context, roomID uuid.UUID, period string, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&models.MeterReading{}).
		Where("room_id = ? AND period = ? AND id <> ?", roomID, period, excludeID))
}
