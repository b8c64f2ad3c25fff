package repository

import (
	"context"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenancyFilter narrows tenancy listings
type TenancyFilter struct {
	RoomID     *uuid.UUID
	TenantID   *uuid.UUID
	PropertyID *uuid.UUID
	Status     models.TenancyStatus
}

var tenancyOrdering = map[string]string{
	"start_date": "tenancies.start_date",
	"end_date":   "tenancies.end_date",
	"created_at": "tenancies.created_at",
}

// TenancyRepository handles database operations for tenancies
type TenancyRepository struct {
	db *gorm.DB
}

// NewTenancyRepository creates a new tenancy repository
func NewTenancyRepository(db *gorm.DB) *TenancyRepository {
	return &TenancyRepository{db: db}
}

func (r *TenancyRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	if v.IsSuperuser {
		return db
	}
	return db.Where("tenancies.id IN (?)", visibleTenancyIDs(db, v))
}

// Create creates a new tenancy
func (r *TenancyRepository) Create(ctx context.Context, tenancy *models.Tenancy) error {
	return r.db.WithContext(ctx).Omit("Room", "Tenant").Create(tenancy).Error
}

// GetByID retrieves a tenancy with room, building and tenant, without visibility checks
func (r *TenancyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenancy, error) {
	var tenancy models.Tenancy
	err := r.db.WithContext(ctx).Preload("Room.Building").Preload("Tenant").First(&tenancy, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrTenancyNotFound, nil)
	}
	return &tenancy, nil
}

// GetVisible retrieves a tenancy when it is within v's scope
func (r *TenancyRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Tenancy, error) {
	var tenancy models.Tenancy
	q := r.visible(r.db.WithContext(ctx).Model(&models.Tenancy{}), v).Preload("Room.Building").Preload("Tenant")
	if err := q.First(&tenancy, "tenancies.id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrTenancyNotFound, nil)
	}
	return &tenancy, nil
}

// List returns the tenancies visible to v
func (r *TenancyRepository) List(ctx context.Context, v Viewer, filter TenancyFilter, opts ListOptions) ([]models.Tenancy, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.Tenancy{}), v).
		Joins("JOIN rooms ON rooms.id = tenancies.room_id").
		Joins("JOIN users ON users.id = tenancies.tenant_id")

	if filter.RoomID != nil {
		q = q.Where("tenancies.room_id = ?", *filter.RoomID)
	}
	if filter.TenantID != nil {
		q = q.Where("tenancies.tenant_id = ?", *filter.TenantID)
	}
	if filter.PropertyID != nil {
		q = q.Where("rooms.building_id = ?", *filter.PropertyID)
	}
	if filter.Status != "" {
		q = q.Where("tenancies.status = ?", filter.Status)
	}
	q = q.Scopes(searchScope(opts.Search, "rooms.room_number", "users.full_name", "users.email"))

	return paginate[models.Tenancy](q, opts, orderBy(opts.Ordering, tenancyOrdering, "tenancies.created_at DESC"),
		"Room.Building", "Tenant")
}

// Update saves all tenancy fields
func (r *TenancyRepository) Update(ctx context.Context, tenancy *models.Tenancy) error {
	return r.db.WithContext(ctx).Omit("Room", "Tenant").Save(tenancy).Error
}

// Delete removes a tenancy
func (r *TenancyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Tenancy{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTenancyNotFound
	}
	return nil
}

// FindActive returns the active tenancy for the room and tenant pair
func (r *TenancyRepository) FindActive(ctx context.Context, roomID, tenantID uuid.UUID) (*models.Tenancy, error) {
	var tenancy models.Tenancy
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND tenant_id = ? AND status = ?", roomID, tenantID, models.TenancyStatusActive).
		First(&tenancy).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrTenancyNotFound, nil)
	}
	return &tenancy, nil
}

// ActiveForRoom returns the most recent active tenancy of a room, with its tenant
func (r *TenancyRepository) ActiveForRoom(ctx context.Context, roomID uuid.UUID) (*models.Tenancy, error) {
	var tenancy models.Tenancy
	err := r.db.WithContext(ctx).Preload("Tenant").
		Where("room_id = ? AND status = ?", roomID, models.TenancyStatusActive).
		Order("start_date DESC").
		First(&tenancy).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrTenancyNotFound, nil)
	}
	return &tenancy, nil
}
