package repository

import (
	"context"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationFilter narrows notification listings
type NotificationFilter struct {
	UserID            *uuid.UUID
	Channel           models.NotificationChannel
	Template          string
	IsRead            *bool
	Priority          models.NotificationPriority
	RelatedObjectType string
}

var notificationOrdering = map[string]string{
	"created_at": "created_at",
	"priority":   "priority",
	"is_read":    "is_read",
}

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	if v.IsSuperuser {
		return db
	}
	return db.Where("user_id = ?", v.UserID)
}

// Create stores a notification
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Omit("User").Create(n).Error
}

// GetVisible retrieves a notification owned by v, or any notification for superusers
func (r *NotificationRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	if err := r.visible(r.db.WithContext(ctx), v).First(&n, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrNotificationNotFound, nil)
	}
	return &n, nil
}

// List returns the notifications visible to v
func (r *NotificationRepository) List(ctx context.Context, v Viewer, filter NotificationFilter, opts ListOptions) ([]models.Notification, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.Notification{}), v)
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Channel != "" {
		q = q.Where("channel = ?", filter.Channel)
	}
	if filter.Template != "" {
		q = q.Where("template = ?", filter.Template)
	}
	if filter.IsRead != nil {
		q = q.Where("is_read = ?", *filter.IsRead)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.RelatedObjectType != "" {
		q = q.Where("related_object_type = ?", filter.RelatedObjectType)
	}
	q = q.Scopes(searchScope(opts.Search, "template"))

	return paginate[models.Notification](q, opts, orderBy(opts.Ordering, notificationOrdering, "created_at DESC"))
}

// Update saves all notification fields
func (r *NotificationRepository) Update(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Omit("User").Save(n).Error
}

// Delete removes a notification
func (r *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Notification{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	return res.RowsAffected, res.Error
}

// MarkRelatedRead marks the user's unread notifications about one object as read
func (r *NotificationRepository) MarkRelatedRead(ctx context.Context, userID uuid.UUID, objectType, objectID string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND related_object_type = ? AND related_object_id = ?", userID, false, objectType, objectID).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	return res.RowsAffected, res.Error
}

// UnreadCount counts the user's unread notifications
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}
