package repository

import (
	"context"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomFilter narrows room listings
type RoomFilter struct {
	BuildingID *uuid.UUID
	Statuses   []models.RoomStatus
	FloorGTE   *int
	FloorLTE   *int
}

var roomOrdering = map[string]string{
	"room_number": "rooms.room_number",
	"floor":       "rooms.floor",
	"base_rent":   "rooms.base_rent",
	"created_at":  "rooms.created_at",
}

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	switch {
	case v.IsSuperuser:
		return db
	case v.IsLandlord():
		return db.Where("rooms.building_id IN (?)", ownedPropertyIDs(db, v.UserID))
	case v.IsTenant():
		return db.Where("rooms.id IN (?)", activeTenantRoomIDs(db, v.UserID))
	}
	return nothing(db)
}

// Create creates a new room
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	return translate(r.db.WithContext(ctx).Omit("Building").Create(room).Error, nil, apperrors.ErrRoomExists)
}

// GetByID retrieves a room with its building, without visibility checks
func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Preload("Building").First(&room, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrRoomNotFound, nil)
	}
	return &room, nil
}

// GetVisible retrieves a room when it is within v's scope
func (r *RoomRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Room, error) {
	var room models.Room
	q := r.visible(r.db.WithContext(ctx).Model(&models.Room{}), v).Preload("Building")
	if err := q.First(&room, "rooms.id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrRoomNotFound, nil)
	}
	return &room, nil
}

// List returns the rooms visible to v
func (r *RoomRepository) List(ctx context.Context, v Viewer, filter RoomFilter, opts ListOptions) ([]models.Room, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.Room{}), v).
		Joins("JOIN properties ON properties.id = rooms.building_id")

	if filter.BuildingID != nil {
		q = q.Where("rooms.building_id = ?", *filter.BuildingID)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("rooms.status IN ?", filter.Statuses)
	}
	if filter.FloorGTE != nil {
		q = q.Where("rooms.floor >= ?", *filter.FloorGTE)
	}
	if filter.FloorLTE != nil {
		q = q.Where("rooms.floor <= ?", *filter.FloorLTE)
	}
	q = q.Scopes(searchScope(opts.Search, "rooms.room_number", "properties.name"))

	return paginate[models.Room](q, opts, orderBy(opts.Ordering, roomOrdering, "rooms.created_at DESC"), "Building")
}

// Update saves all room fields
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	return translate(r.db.WithContext(ctx).Omit("Building").Save(room).Error, nil, apperrors.ErrRoomExists)
}

// UpdateStatus changes only the status column
func (r *RoomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes a room
func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Room{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}

// NumberTaken reports whether another room in the building already uses number
func (r *RoomRepository) NumberTaken(ctx context.Context, buildingID uuid.UUID, number string, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&models.Room{}).
		Where("building_id = ? AND room_number = ? AND id <> ?", buildingID, number, excludeID))
}
