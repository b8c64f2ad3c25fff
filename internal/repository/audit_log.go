package repository

import (
	"context"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogFilter narrows audit log listings
type AuditLogFilter struct {
	ActionType    models.AuditAction
	ModelName     string
	UserID        *uuid.UUID
	ObjectID      string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

var auditLogOrdering = map[string]string{
	"created_at":  "created_at",
	"action_type": "action_type",
	"model_name":  "model_name",
}

// AuditLogRepository handles database operations for audit log entries
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an audit entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Omit("User").Create(entry).Error
}

// GetByID retrieves an audit entry with its user
func (r *AuditLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AuditLog, error) {
	var entry models.AuditLog
	if err := r.db.WithContext(ctx).Preload("User").First(&entry, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrAuditLogNotFound, nil)
	}
	return &entry, nil
}

// List returns audit entries matching filter
func (r *AuditLogRepository) List(ctx context.Context, filter AuditLogFilter, opts ListOptions) ([]models.AuditLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.AuditLog{})
	if filter.ActionType != "" {
		q = q.Where("action_type = ?", filter.ActionType)
	}
	if filter.ModelName != "" {
		q = q.Where("model_name = ?", filter.ModelName)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.ObjectID != "" {
		q = q.Where("object_id = ?", filter.ObjectID)
	}
	if filter.CreatedAfter != nil {
		q = q.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		q = q.Where("created_at <= ?", *filter.CreatedBefore)
	}
	q = q.Scopes(searchScope(opts.Search, "object_repr", "model_name"))

	return paginate[models.AuditLog](q, opts, orderBy(opts.Ordering, auditLogOrdering, "created_at DESC"), "User")
}
