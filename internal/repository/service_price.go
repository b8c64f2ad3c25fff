package repository

import (
	"context"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServicePriceFilter narrows service price listings
type ServicePriceFilter struct {
	PropertyID  *uuid.UUID
	ServiceType models.ServiceType
}

var servicePriceOrdering = map[string]string{
	"service_type": "service_type",
	"unit_price":   "unit_price",
	"created_at":   "created_at",
}

// ServicePriceRepository handles database operations for service prices
type ServicePriceRepository struct {
	db *gorm.DB
}

// NewServicePriceRepository creates a new service price repository
func NewServicePriceRepository(db *gorm.DB) *ServicePriceRepository {
	return &ServicePriceRepository{db: db}
}

func (r *ServicePriceRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	switch {
	case v.IsSuperuser:
		return db
	case v.IsLandlord():
		return db.Where("property_id IN (?)", ownedPropertyIDs(db, v.UserID))
	}
	return nothing(db)
}

// Create creates a new service price
func (r *ServicePriceRepository) Create(ctx context.Context, price *models.ServicePrice) error {
	return translate(r.db.WithContext(ctx).Omit("Property").Create(price).Error, nil, apperrors.ErrServicePriceExists)
}

// GetVisible retrieves a service price when it is within v's scope
func (r *ServicePriceRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.ServicePrice, error) {
	var price models.ServicePrice
	q := r.visible(r.db.WithContext(ctx).Model(&models.ServicePrice{}), v)
	if err := q.First(&price, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrServicePriceNotFound, nil)
	}
	return &price, nil
}

// List returns the service prices visible to v
func (r *ServicePriceRepository) List(ctx context.Context, v Viewer, filter ServicePriceFilter, opts ListOptions) ([]models.ServicePrice, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.ServicePrice{}), v)
	if filter.PropertyID != nil {
		q = q.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.ServiceType != "" {
		q = q.Where("service_type = ?", filter.ServiceType)
	}
	q = q.Scopes(searchScope(opts.Search, "name", "service_type"))

	return paginate[models.ServicePrice](q, opts, orderBy(opts.Ordering, servicePriceOrdering, "service_type ASC"))
}

// Update saves all service price fields
func (r *ServicePriceRepository) Update(ctx context.Context, price *models.ServicePrice) error {
	return translate(r.db.WithContext(ctx).Omit("Property").Save(price).Error, nil, apperrors.ErrServicePriceExists)
}

// Delete removes a service price
func (r *ServicePriceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.ServicePrice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrServicePriceNotFound
	}
	return nil
}

// TypeTaken reports whether the property already prices serviceType
func (r *ServicePriceRepository) TypeTaken(ctx context.Context, propertyID uuid.UUID, serviceType models.ServiceType, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&models.ServicePrice{}).
		Where("property_id = ? AND service_type = ? AND id <> ?", propertyID, serviceType, excludeID))
}
