package repository

import (
	"context"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceFilter narrows maintenance request listings
type MaintenanceFilter struct {
	RoomID   *uuid.UUID
	Status   models.MaintenanceStatus
	Category models.MaintenanceCategory
}

var maintenanceOrdering = map[string]string{
	"created_at": "created_at",
	"status":     "status",
}

// MaintenanceRepository handles database operations for maintenance requests and their attachments
type MaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func visibleMaintenanceIDs(db *gorm.DB, v Viewer) *gorm.DB {
	q := subquery(db).Model(&models.MaintenanceRequest{}).Select("id")
	switch {
	case v.IsSuperuser:
		return q
	case v.IsTenant():
		return q.Where("requester_id = ?", v.UserID)
	case v.IsLandlord():
		return q.Where("room_id IN (?)", ownedRoomIDs(db, v.UserID))
	}
	return nothing(q)
}

func (r *MaintenanceRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	if v.IsSuperuser {
		return db
	}
	return db.Where("id IN (?)", visibleMaintenanceIDs(db, v))
}

// Create creates a new maintenance request
func (r *MaintenanceRepository) Create(ctx context.Context, req *models.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Omit("Room", "Requester", "Assignee").Create(req).Error
}

// GetVisible retrieves a request with room, people and attachments when it is within v's scope
func (r *MaintenanceRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.MaintenanceRequest, error) {
	var req models.MaintenanceRequest
	q := r.visible(r.db.WithContext(ctx).Model(&models.MaintenanceRequest{}), v).
		Preload("Room.Building").Preload("Requester").Preload("Assignee").Preload("Attachments")
	if err := q.First(&req, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrMaintenanceRequestNotFound, nil)
	}
	return &req, nil
}

// List returns the maintenance requests visible to v
func (r *MaintenanceRepository) List(ctx context.Context, v Viewer, filter MaintenanceFilter, opts ListOptions) ([]models.MaintenanceRequest, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.MaintenanceRequest{}), v)
	if filter.RoomID != nil {
		q = q.Where("room_id = ?", *filter.RoomID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	q = q.Scopes(searchScope(opts.Search, "title", "description"))

	return paginate[models.MaintenanceRequest](q, opts, orderBy(opts.Ordering, maintenanceOrdering, "created_at DESC"),
		"Room.Building", "Requester", "Assignee", "Attachments")
}

// Update saves the request's own columns
func (r *MaintenanceRepository) Update(ctx context.Context, req *models.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Omit("Room", "Requester", "Assignee", "Attachments").Save(req).Error
}

// Delete removes a maintenance request; attachments cascade
func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.MaintenanceRequest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrMaintenanceRequestNotFound
	}
	return nil
}

// CreateAttachment stores a new attachment row
func (r *MaintenanceRepository) CreateAttachment(ctx context.Context, att *models.MaintenanceAttachment) error {
	return r.db.WithContext(ctx).Omit("Request").Create(att).Error
}

// GetVisibleAttachment retrieves an attachment whose request is within v's scope
func (r *MaintenanceRepository) GetVisibleAttachment(ctx context.Context, v Viewer, id uuid.UUID) (*models.MaintenanceAttachment, error) {
	var att models.MaintenanceAttachment
	q := r.db.WithContext(ctx).Model(&models.MaintenanceAttachment{})
	if !v.IsSuperuser {
		q = q.Where("request_id IN (?)", visibleMaintenanceIDs(q, v))
	}
	if err := q.First(&att, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrMaintenanceAttachmentNotFound, nil)
	}
	return &att, nil
}

// ListAttachments returns attachments visible to v, optionally for one request
func (r *MaintenanceRepository) ListAttachments(ctx context.Context, v Viewer, requestID *uuid.UUID, opts ListOptions) ([]models.MaintenanceAttachment, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.MaintenanceAttachment{})
	if !v.IsSuperuser {
		q = q.Where("request_id IN (?)", visibleMaintenanceIDs(q, v))
	}
	if requestID != nil {
		q = q.Where("request_id = ?", *requestID)
	}
	return paginate[models.MaintenanceAttachment](q, opts, "created_at DESC")
}

// DeleteAttachment removes an attachment row
func (r *MaintenanceRepository) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.MaintenanceAttachment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrMaintenanceAttachmentNotFound
	}
	return nil
}
