package repository

import (
	"context"
	"math"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyFilter narrows property listings
type PropertyFilter struct {
	OwnerID *uuid.UUID
}

// RoomStats holds the per-status room counts of one property
type RoomStats struct {
	Total       int64
	Vacant      int64
	Occupied    int64
	Maintenance int64
}

// OccupancyRate returns occupied/total as a percentage rounded to one decimal
func (s RoomStats) OccupancyRate() float64 {
	if s.Total == 0 {
		return 0
	}
	rate := float64(s.Occupied) / float64(s.Total) * 100
	return math.Round(rate*10) / 10
}

var propertyOrdering = map[string]string{
	"created_at": "created_at",
	"name":       "name",
}

// PropertyRepository handles database operations for properties
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	switch {
	case v.IsSuperuser:
		return db
	case v.IsLandlord():
		return db.Where("properties.owner_id = ?", v.UserID)
	}
	return nothing(db)
}

// Create creates a new property
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

// GetByID retrieves a property by ID without visibility checks
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).Preload("Owner").First(&property, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrPropertyNotFound, nil)
	}
	return &property, nil
}

// GetVisible retrieves a property when it is within v's scope
func (r *PropertyRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	q := r.visible(r.db.WithContext(ctx).Model(&models.Property{}), v).Preload("Owner")
	if err := q.First(&property, "properties.id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrPropertyNotFound, nil)
	}
	return &property, nil
}

// List returns the properties visible to v
func (r *PropertyRepository) List(ctx context.Context, v Viewer, filter PropertyFilter, opts ListOptions) ([]models.Property, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.Property{}), v)
	if filter.OwnerID != nil {
		q = q.Where("properties.owner_id = ?", *filter.OwnerID)
	}
	q = q.Scopes(searchScope(opts.Search, "properties.name", "properties.address"))

	return paginate[models.Property](q, opts, orderBy(opts.Ordering, propertyOrdering, "created_at DESC"), "Owner")
}

// Update saves all property fields
func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Omit("Owner", "Rooms").Save(property).Error
}

// Delete removes a property; rooms and everything below cascade
func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Property{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPropertyNotFound
	}
	return nil
}

// RoomStats counts rooms by status for each of the given properties in one query
func (r *PropertyRepository) RoomStats(ctx context.Context, propertyIDs []uuid.UUID) (map[uuid.UUID]RoomStats, error) {
	out := make(map[uuid.UUID]RoomStats, len(propertyIDs))
	if len(propertyIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		BuildingID uuid.UUID
		Status     models.RoomStatus
		Count      int64
	}
	err := r.db.WithContext(ctx).Model(&models.Room{}).
		Select("building_id, status, COUNT(*) AS count").
		Where("building_id IN ?", propertyIDs).
		Group("building_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		s := out[row.BuildingID]
		s.Total += row.Count
		switch row.Status {
		case models.RoomStatusVacant:
			s.Vacant += row.Count
		case models.RoomStatusOccupied:
			s.Occupied += row.Count
		case models.RoomStatusMaintenance:
			s.Maintenance += row.Count
		}
		out[row.BuildingID] = s
	}
	return out, nil
}
